package dto

import (
	"time"

	"eusouninja_backend/internals/features/users/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type UserResponse struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name,omitempty"`
	Email        *string   `json:"email,omitempty"`
	LoginMethod  *string   `json:"login_method,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:           m.UserID,
		Name:         m.UserName,
		Email:        m.UserEmail,
		LoginMethod:  m.UserLoginMethod,
		Role:         m.UserRole,
		CreatedAt:    m.UserCreatedAt,
		LastSignedIn: m.UserLastSignedIn,
	}
}
