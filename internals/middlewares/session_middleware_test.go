package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eusouninja_backend/internals/configs"
	helper "eusouninja_backend/internals/helpers"
	"eusouninja_backend/internals/testutil"
)

func newSessionApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.SessionCookieName = "eusouninja_session"

	db, mock := testutil.NewMockDB(t)

	app := fiber.New()
	app.Use(SessionContext(db))
	app.Get("/protected", RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).UserID)
	})
	return app, mock
}

func TestRequireAuth_NoCookie(t *testing.T) {
	app, _ := newSessionApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_GarbageCookie(t *testing.T) {
	app, _ := newSessionApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "eusouninja_session", Value: "not-a-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	app, mock := newSessionApp(t)

	token, err := helper.SignSessionToken("test-secret", "user-1", "admin@example.com")
	require.NoError(t, err)

	email := "admin@example.com"
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_id`).
		WithArgs("user-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_email", "user_role"}).
			AddRow("user-1", email, "admin"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "eusouninja_session", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-1", string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	app, mock := newSessionApp(t)

	token, err := helper.SignSessionToken("test-secret", "ghost", "")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_id`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "eusouninja_session", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
