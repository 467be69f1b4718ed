package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/store"
	"github.com/sahilchouksey/college-connect/utils/response"
)

const actorKey = "acting_user"

// ActingUser resolves the X-User-ID header against the store and attaches
// the user to the request. There is no authentication in this system: the
// client picks its role, the server only checks the id exists.
func ActingUser(st store.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return response.Unauthorized(c, "X-User-ID header is required")
		}

		user, ok := st.GetUser(userID)
		if !ok {
			return response.Unauthorized(c, "Unknown acting user")
		}

		c.Locals(actorKey, user)
		return c.Next()
	}
}

// GetUser returns the acting user attached by ActingUser.
func GetUser(c *fiber.Ctx) (model.User, bool) {
	user, ok := c.Locals(actorKey).(model.User)
	return user, ok
}

// RequireRole rejects requests whose acting user has a different role.
func RequireRole(role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok {
			return response.Unauthorized(c, "")
		}
		if user.Role != role {
			return response.Forbidden(c, "")
		}
		return c.Next()
	}
}
