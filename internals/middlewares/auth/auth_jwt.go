// file: internals/middlewares/auth/auth_jwt.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "sekolahku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool
}

// Keys yang disimpan di c.Locals setelah token valid.
const (
	LocalsUserID = "user_id"
	LocalsRole   = "role"
)

// AuthJWT memvalidasi Bearer token (fallback ke cookie access_token bila
// diizinkan) dan menaruh klaim user di Locals.
func AuthJWT(opts AuthJWTOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractToken(c, opts.AllowCookieFallback)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(opts.Secret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau kedaluwarsa")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Klaim token tidak valid")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals(LocalsUserID, sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals(LocalsRole, role)
		}

		return c.Next()
	}
}

// RequireRoles membatasi akses ke role tertentu. Dipasang SETELAH AuthJWT.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalsRole).(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan mengakses fitur ini")
	}
}

func extractToken(c *fiber.Ctx, allowCookie bool) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if allowCookie {
		return c.Cookies("access_token")
	}
	return ""
}
