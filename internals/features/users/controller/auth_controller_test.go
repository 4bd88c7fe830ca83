package controller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eusouninja_backend/internals/configs"
	"eusouninja_backend/internals/testutil"
)

func newAuthApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.SessionCookieName = "eusouninja_session"

	db, mock := testutil.NewMockDB(t)
	ctrl := NewAuthController(db)

	app := fiber.New()
	app.Post("/login", ctrl.Login)
	app.Post("/register", ctrl.Register)
	app.Post("/logout", ctrl.Logout)
	return app, mock
}

func TestLogin_UnknownEmail(t *testing.T) {
	app, mock := newAuthApp(t)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_email`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"whatever1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	app, mock := newAuthApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_email`).
		WithArgs("admin@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_email", "user_password_hash", "user_role"}).
			AddRow("user-1", "admin@example.com", string(hash), "admin"))

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong-pass"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_Success_SetsCookie(t *testing.T) {
	app, mock := newAuthApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_email`).
		WithArgs("admin@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_email", "user_password_hash", "user_role"}).
			AddRow("user-1", "admin@example.com", string(hash), "admin"))

	// non-fatal last_signed_in refresh
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" .*ON CONFLICT`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"admin@example.com","password":"correct-horse"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessionCookie string
	for _, c := range resp.Cookies() {
		if c.Name == "eusouninja_session" {
			sessionCookie = c.Value
		}
	}
	assert.NotEmpty(t, sessionCookie)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed last_signed_in refresh must not undo a successful login.
func TestLogin_RefreshFailureIsNotFatal(t *testing.T) {
	app, mock := newAuthApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_email`).
		WithArgs("admin@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_email", "user_password_hash", "user_role"}).
			AddRow("user-1", "admin@example.com", string(hash), "admin"))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" .*ON CONFLICT`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"admin@example.com","password":"correct-horse"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_ValidationError(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"not-an-email","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegister_Conflict(t *testing.T) {
	app, mock := newAuthApp(t)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_email`).
		WithArgs("admin@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_email"}).
			AddRow("user-1", "admin@example.com"))

	req := httptest.NewRequest("POST", "/register",
		strings.NewReader(`{"name":"Admin","email":"admin@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_ClearsCookie(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == "eusouninja_session" {
			found = true
			assert.Empty(t, c.Value)
			assert.True(t, c.Expires.Before(time.Now()), "expiry must be in the past")
		}
	}
	assert.True(t, found)
}
