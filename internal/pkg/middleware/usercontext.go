package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/database"
	"github.com/gonuboard/gonuboard/internal/pkg/security"
	"github.com/gonuboard/gonuboard/internal/pkg/session"
	"github.com/gonuboard/gonuboard/internal/pkg/usercontext"
)

// Session keys owned by the auth flow. ss_mb_key is the integrity key minted
// at login; a session whose key no longer matches the member state is
// treated as anonymous.
const (
	SessMbID  = "ss_mb_id"
	SessMbKey = "ss_mb_key"
)

// MemberContextMiddleware resolves the session into a MemberContext for
// every request
func MemberContextMiddleware(c *fiber.Ctx) error {
	// The social login/callback pair runs on goth_fiber's own session store;
	// skip the app session there to avoid cross-store collisions.
	if strings.HasPrefix(c.Path(), "/social/login") {
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return asAnonymous(c)
	}

	mbID, _ := sess.Get(SessMbID).(string)
	if mbID == "" {
		return asAnonymous(c)
	}

	var member models.Member
	if err := database.GetDB().Where("mb_id = ?", mbID).First(&member).Error; err != nil {
		return asAnonymous(c)
	}

	sessKey, _ := sess.Get(SessMbKey).(string)
	if sessKey == "" || sessKey != security.SessionMemberKey(member.MbID, member.MbDatetime, c.Get("User-Agent")) {
		return asAnonymous(c)
	}

	cfg := models.GetBoardConfig()
	isAdmin := cfg != nil && cfg.AdminID != "" && cfg.AdminID == member.MbID

	ctx := usercontext.MemberContext{
		MbID:       member.MbID,
		Nick:       member.MbNick,
		Level:      member.MbLevel,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	}
	c.Locals(usercontext.KeyMemberContext, ctx)
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyIsAdmin, isAdmin)

	return c.Next()
}

func asAnonymous(c *fiber.Ctx) error {
	c.Locals(usercontext.KeyMemberContext, usercontext.MemberContext{})
	c.Locals(usercontext.KeyFromProtected, false)
	c.Locals(usercontext.KeyIsAdmin, false)
	return c.Next()
}
