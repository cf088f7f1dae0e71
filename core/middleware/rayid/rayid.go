package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the fiber locals key holding the ray ID.
const LocalsKey = "ray_id"

// HeaderName is the response header echoing the ray ID back to the caller.
const HeaderName = "X-Ray-ID"

// New creates a middleware that assigns a unique ray ID to every request.
// If the client already sent one (e.g. injected by a gateway) it is reused.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
