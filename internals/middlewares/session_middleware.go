package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/configs"
	helper "eusouninja_backend/internals/helpers"
	userModel "eusouninja_backend/internals/features/users/model"
	userRepo "eusouninja_backend/internals/features/users/repository"
)

const LocalsUserKey = "current_user"

// SessionContext resolves the session cookie into a user record and stores
// it in locals. A missing, malformed or expired token is never an error
// here; protected routes reject downstream via RequireAuth.
func SessionContext(db *gorm.DB) fiber.Handler {
	repo := userRepo.NewUserRepository(db)

	return func(c *fiber.Ctx) error {
		raw := helper.GetSessionCookie(c)
		if raw == "" {
			return c.Next()
		}

		claims, err := helper.ParseSessionToken(configs.JWTSecret, raw)
		if err != nil {
			log.Printf("[WARN] session token rejected: %v", err)
			return c.Next()
		}

		user, err := repo.Get(c.UserContext(), claims.UserID)
		if err != nil {
			log.Printf("[ERROR] session user lookup: %v", err)
			return c.Next()
		}
		if user != nil {
			c.Locals(LocalsUserKey, user)
		}
		return c.Next()
	}
}

// RequireAuth gates protected routes: no resolved user → 401, distinct from
// validation (400) and not-found (404) failures.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
		}
		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) *userModel.UserModel {
	u, ok := c.Locals(LocalsUserKey).(*userModel.UserModel)
	if !ok {
		return nil
	}
	return u
}
