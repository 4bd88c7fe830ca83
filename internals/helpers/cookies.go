package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"eusouninja_backend/internals/configs"
)

type CookieOptions struct {
	Secure   bool
	SameSite string
}

// SessionCookieOptions pairs the secure flag with the same-site policy:
// secure is forced on in production or when the request itself arrived over
// TLS, and cross-origin use requires SameSite=None whenever secure is on.
func SessionCookieOptions(isProd, isTLS bool) CookieOptions {
	secure := isProd || isTLS
	sameSite := "Lax"
	if secure {
		sameSite = "None"
	}
	return CookieOptions{Secure: secure, SameSite: sameSite}
}

func RequestCookieOptions(c *fiber.Ctx) CookieOptions {
	return SessionCookieOptions(configs.IsProduction(), c.Secure())
}

func SetSessionCookie(c *fiber.Ctx, token string) {
	opts := RequestCookieOptions(c)
	c.Cookie(&fiber.Cookie{
		Name:     configs.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
		Path:     "/",
		Expires:  time.Now().Add(SessionTTL),
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	opts := RequestCookieOptions(c)
	c.Cookie(&fiber.Cookie{
		Name:     configs.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}

func GetSessionCookie(c *fiber.Ctx) string {
	return c.Cookies(configs.SessionCookieName)
}
