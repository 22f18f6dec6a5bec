package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const credentialKey = "credential"

// BearerAuth extracts the bearer credential from the Authorization header and
// stores it in the request locals. When a secret is configured the token is
// verified as a JWT; with an empty secret only presence is required, since
// the session store owning the token lives outside this service. A missing
// credential is rejected before any collaborator call is attempted.
func BearerAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing session credential, please sign in again",
			})
		}

		if secret != "" {
			parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !parsed.Valid {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "session credential is invalid or expired",
				})
			}
		}

		c.Locals(credentialKey, token)
		return c.Next()
	}
}

// credentialFrom returns the bearer credential stored by BearerAuth.
func credentialFrom(c *fiber.Ctx) string {
	if token, ok := c.Locals(credentialKey).(string); ok {
		return token
	}
	return ""
}
