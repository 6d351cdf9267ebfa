package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/auth"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

// TokenRequired rejects requests without an Authorization header with 401,
// and requests whose bearer token fails verification with 403. On success
// the decoded email is attached to the request for downstream handlers.
func TokenRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(401).JSON(fiber.Map{"error": "missing auth"})
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		email, err := auth.ParseToken(tokenStr, []byte(secret))
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("user_email", email)
		return c.Next()
	}
}

// AdminRequired re-reads the account's role on every request so a
// revocation takes effect on the very next call. A missing account is
// forbidden, not an error.
func AdminRequired(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("user_email").(string)
		if !ok || email == "" {
			return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
		}

		user, err := users.Get(c.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
			}
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if !user.IsAdmin() {
			return c.Status(403).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}
