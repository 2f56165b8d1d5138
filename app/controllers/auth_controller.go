package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/database"
	"github.com/gonuboard/gonuboard/internal/pkg/security"
	"github.com/gonuboard/gonuboard/internal/pkg/session"
)

// HandleAuthLogin renders the login form and processes password logins
func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var member models.Member

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		login := c.FormValue("mb_id")
		result := database.GetDB().Where("mb_id = ? OR mb_email = ?", login, login).First(&member)
		if result.Error != nil {
			return alert(c, "로그인 정보가 올바르지 않습니다.", "/login")
		}

		if !member.CheckPassword(c.FormValue("mb_password")) {
			return alert(c, "로그인 정보가 올바르지 않습니다.", "/login")
		}

		if member.IsIntercepted() {
			return alert(c, "접근이 차단된 회원입니다.", "/login")
		}

		if err := establishMemberSession(c, &member); err != nil {
			return alert(c, fmt.Sprintf("something went wrong: %s", err), "/login")
		}

		database.GetDB().Model(&member).UpdateColumn("mb_today_login", time.Now())

		return successRedirect(c, "로그인 되었습니다.", "/")
	}

	layout := layoutFor(c, " | 로그인")
	return c.Render("login", fiber.Map{
		"Layout":    layout,
		"CSRFToken": csrfToken(c),
		"Providers": socialProvidersEnabled(),
	}, "layouts/main")
}

// HandleAuthLogout destroys the member session
func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return alert(c, "logged out (no sess)", "/login")
	}

	if err := sess.Destroy(); err != nil {
		return alert(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	return successRedirect(c, "로그아웃 되었습니다.", "/login")
}

// establishMemberSession stores the member id together with the integrity
// key derived from member state; the middleware re-derives and compares the
// key on every request.
func establishMemberSession(c *fiber.Ctx, member *models.Member) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(SessMbID, member.MbID)
	sess.Set(SessMbKey, security.SessionMemberKey(member.MbID, member.MbDatetime, c.Get("User-Agent")))

	return sess.Save()
}

// socialProvidersEnabled lists the providers the login page may offer
func socialProvidersEnabled() []string {
	cfg := models.GetBoardConfig()
	if cfg == nil || !cfg.SocialLoginUse {
		return nil
	}
	return cfg.ServiceList()
}
