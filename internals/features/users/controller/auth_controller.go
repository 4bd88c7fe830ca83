package controller

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eusouninja_backend/internals/configs"
	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/users/dto"
	"eusouninja_backend/internals/features/users/repository"
	helper "eusouninja_backend/internals/helpers"
	"eusouninja_backend/internals/middlewares"
)

var validate = validator.New()

type AuthController struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Repo: repository.NewUserRepository(db)}
}

// Me is public: returns the resolved session user or null.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return helper.JsonOK(c, "OK", fiber.Map{"user": nil})
	}
	return helper.JsonOK(c, "OK", fiber.Map{"user": dto.FromUserModel(*u)})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := ac.Repo.VerifyPassword(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	// One message for unknown email and wrong password: don't leak which.
	if user == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	email := ""
	if user.UserEmail != nil {
		email = *user.UserEmail
	}
	token, err := helper.SignSessionToken(configs.JWTSecret, user.UserID, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session token")
	}
	helper.SetSessionCookie(c, token)

	now := time.Now().UTC()
	if err := ac.Repo.Upsert(c.UserContext(), repository.UpsertInput{ID: user.UserID, LastSignedIn: &now}); err != nil {
		log.Printf("[WARN] last_signed_in refresh: %v", err)
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"success": true,
		"user":    dto.FromUserModel(*user),
	})
}

// LoginGoogle verifies a Google ID token and upserts the platform user
// before issuing the same session cookie local logins get.
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	method := "google"
	now := time.Now().UTC()
	in := repository.UpsertInput{
		ID:           claimSet.Sub,
		Name:         &claimSet.Name,
		Email:        &claimSet.Email,
		LoginMethod:  &method,
		LastSignedIn: &now,
	}
	if err := ac.Repo.Upsert(c.UserContext(), in); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save user")
	}

	user, err := ac.Repo.Get(c.UserContext(), claimSet.Sub)
	if err != nil || user == nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	token, err := helper.SignSessionToken(configs.JWTSecret, user.UserID, claimSet.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session token")
	}
	helper.SetSessionCookie(c, token)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"success": true,
		"user":    dto.FromUserModel(*user),
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	existing, err := ac.Repo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	if existing != nil {
		return helper.JsonError(c, fiber.StatusConflict, "User already exists")
	}

	userID, err := ac.Repo.CreateLocalUser(c.UserContext(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	// No auto-login: the form redirects to the login screen.
	return helper.JsonCreated(c, "Registration successful", fiber.Map{
		"success": true,
		"user_id": userID,
	})
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	u := middlewares.CurrentUser(c)
	if u == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if u.UserEmail == nil || *u.UserEmail == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User email not found")
	}

	verified, err := ac.Repo.VerifyPassword(c.UserContext(), *u.UserEmail, req.CurrentPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify password")
	}
	if verified == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	if err := ac.Repo.UpdatePassword(c.UserContext(), u.UserID, req.NewPassword); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not available")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonOK(c, "Password updated", fiber.Map{"success": true})
}

// Logout clears the cookie with the same option-derivation rule as login.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearSessionCookie(c)
	return helper.JsonOK(c, "Logout successful", fiber.Map{"success": true})
}
