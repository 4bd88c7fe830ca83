package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserModel backs the auth flow. IDs are opaque strings: platform logins
// bring their own id, local registrations get a fresh UUID.
type UserModel struct {
	UserID           string    `gorm:"type:varchar(64);primaryKey;column:user_id" json:"id"`
	UserName         *string   `gorm:"type:text;column:user_name" json:"name,omitempty"`
	UserEmail        *string   `gorm:"type:varchar(320);index;column:user_email" json:"email,omitempty"`
	UserLoginMethod  *string   `gorm:"type:varchar(64);column:user_login_method" json:"login_method,omitempty"`
	UserRole         string    `gorm:"type:varchar(20);not null;default:'user';column:user_role" json:"role"`
	UserPasswordHash *string   `gorm:"type:text;column:user_password_hash" json:"-"`
	UserCreatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"created_at"`
	UserLastSignedIn time.Time `gorm:"type:timestamptz;not null;default:now();column:user_last_signed_in" json:"last_signed_in"`
}

func (UserModel) TableName() string { return "users" }
