package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response (and optional request) header carrying the ray id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key under which the ray id is stored.
const LocalsKey = "ray_id"

// New returns a middleware assigning every request a ray id.
// An incoming X-Ray-ID header is honoured so upstream proxies can correlate.
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
