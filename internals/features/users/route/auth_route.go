package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/features/users/controller"
	"eusouninja_backend/internals/middlewares"
)

// AuthRoutes are public except change-password; the session context has
// already run for the whole /api group.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/me", ctl.Me)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/logout", ctl.Logout)
	auth.Post("/change-password", middlewares.RequireAuth(), ctl.ChangePassword)
}
