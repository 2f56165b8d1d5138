package controllers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/usercontext"
	"github.com/gonuboard/gonuboard/internal/pkg/viewmodel"
)

// Session keys owned by the member flows
const (
	SessMbID         = "ss_mb_id"
	SessMbKey        = "ss_mb_key"
	SessSocialLink   = "ss_social_link"
	SessMemberFormID = "ss_member_form_mb_id"
)

// alert is the user-facing failure path: flash the message and bounce to url.
// Nothing has been written when this is called; validation always runs before
// any mutation.
func alert(c *fiber.Ctx, message, url string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(url)
}

// criticalAlert logs a broken-integration condition at the highest severity
// and surfaces it to the user as a generic alert.
func criticalAlert(c *fiber.Ctx, logMsg, url string) error {
	log.Printf("[CRITICAL] %s", logMsg)
	return alert(c, "유효하지 않은 요청입니다. 관리자에게 문의하십시오.", url)
}

func successRedirect(c *fiber.Ctx, message, url string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(url)
}

// layoutFor assembles the common render bind for a page
func layoutFor(c *fiber.Ctx, title string) viewmodel.Layout {
	mc := usercontext.GetMemberContext(c)
	siteTitle := "gonuboard"
	if cfg := models.GetBoardConfig(); cfg != nil && cfg.SiteTitle != "" {
		siteTitle = cfg.SiteTitle
	}
	return viewmodel.Layout{
		Title:      title,
		SiteTitle:  siteTitle,
		IsLoggedIn: mc.IsLoggedIn,
		IsAdmin:    mc.IsAdmin,
		Nick:       mc.Nick,
		Msg:        flash.Get(c),
	}
}

func isLoggedIn(c *fiber.Ctx) bool {
	v := c.Locals(usercontext.KeyFromProtected)
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func formInt(c *fiber.Ctx, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.FormValue(name)))
	if err != nil {
		return 0
	}
	return v
}

// fallbackNickname derives a nickname from a social member id when the form
// left it blank: the part after the provider prefix separator.
func fallbackNickname(socialID string) string {
	parts := strings.SplitN(socialID, "_", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return socialID
}

func csrfToken(c *fiber.Ctx) string {
	if tok, ok := c.Locals("csrf").(string); ok {
		return tok
	}
	return ""
}
