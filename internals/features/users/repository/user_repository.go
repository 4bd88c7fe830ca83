package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eusouninja_backend/internals/configs"
	database "eusouninja_backend/internals/databases"
	"eusouninja_backend/internals/features/users/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// UpsertInput carries a partial column set. Pointer fields: nil = leave
// untouched on update, non-nil empty string = normalize to NULL.
type UpsertInput struct {
	ID           string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn *time.Time
}

// Upsert inserts or updates by primary key. The configured owner id is
// forced to admin when no role is supplied; when no field changed at all,
// last_signed_in still gets refreshed.
func (r *UserRepository) Upsert(ctx context.Context, in UpsertInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return errors.New("user id is required for upsert")
	}
	if r.DB == nil {
		return database.ErrUnavailable
	}

	values := map[string]interface{}{"user_id": in.ID}
	updates := map[string]interface{}{}

	assign := func(col string, v *string) {
		if v == nil {
			return
		}
		if s := strings.TrimSpace(*v); s != "" {
			values[col] = s
			updates[col] = s
		} else {
			values[col] = nil
			updates[col] = nil
		}
	}
	assign("user_name", in.Name)
	assign("user_email", in.Email)
	assign("user_login_method", in.LoginMethod)

	if in.LastSignedIn != nil {
		values["user_last_signed_in"] = *in.LastSignedIn
		updates["user_last_signed_in"] = *in.LastSignedIn
	}

	role := in.Role
	if role == nil && configs.OwnerUserID != "" && in.ID == configs.OwnerUserID {
		admin := model.RoleAdmin
		role = &admin
	}
	if role != nil {
		values["user_role"] = *role
		updates["user_role"] = *role
	}

	if len(updates) == 0 {
		updates["user_last_signed_in"] = time.Now().UTC()
	}

	return r.DB.WithContext(ctx).
		Table("users").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(values).Error
}

func (r *UserRepository) Get(ctx context.Context, id string) (*model.UserModel, error) {
	if r.DB == nil {
		return nil, nil
	}
	var u model.UserModel
	if err := r.DB.WithContext(ctx).Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	if r.DB == nil {
		return nil, nil
	}
	var u model.UserModel
	if err := r.DB.WithContext(ctx).Where("user_email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// CreateLocalUser registers a password-backed account. Every self-registered
// user becomes an admin: this is a single-school staff tool and registration
// is rate limited at the route layer.
func (r *UserRepository) CreateLocalUser(ctx context.Context, email, password, name string) (string, error) {
	if r.DB == nil {
		return "", database.ErrUnavailable
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	hashStr := string(hash)
	method := "local"
	userID := uuid.NewString()
	now := time.Now().UTC()

	u := model.UserModel{
		UserID:           userID,
		UserName:         &name,
		UserEmail:        &email,
		UserLoginMethod:  &method,
		UserRole:         model.RoleAdmin,
		UserPasswordHash: &hashStr,
		UserLastSignedIn: now,
	}
	if err := r.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return "", err
	}
	return userID, nil
}

// VerifyPassword returns the user on a match and nil on any miss (unknown
// email, no stored hash, wrong password). A wrong password is never an error.
func (r *UserRepository) VerifyPassword(ctx context.Context, email, password string) (*model.UserModel, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.UserPasswordHash == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(*u.UserPasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return u, nil
}

// UpdatePassword rehashes and overwrites. Verifying the current password is
// the caller's job.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if r.DB == nil {
		return database.ErrUnavailable
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password_hash", string(hash)).Error
}
