package usercontext

import (
	"github.com/gofiber/fiber/v2"
)

// MemberContext carries the resolved member state for one request
type MemberContext struct {
	MbID       string
	Nick       string
	Level      int
	IsLoggedIn bool
	IsAdmin    bool
}

// GetMemberContext returns the member context set by the middleware; the
// zero value means anonymous.
func GetMemberContext(c *fiber.Ctx) MemberContext {
	if v, ok := c.Locals(KeyMemberContext).(MemberContext); ok {
		return v
	}
	return MemberContext{}
}
