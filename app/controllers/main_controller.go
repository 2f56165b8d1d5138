package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/app/repository"
	"github.com/gonuboard/gonuboard/internal/pkg/usercontext"
)

// HandleStart renders the start page. Logged-in members see their point
// balance and the social identities linked to their account.
func HandleStart(c *fiber.Ctx) error {
	layout := layoutFor(c, "")

	bind := fiber.Map{
		"Layout":    layout,
		"Providers": socialProvidersEnabled(),
	}

	if isLoggedIn(c) {
		mc := usercontext.GetMemberContext(c)
		repos := repository.GetGlobalRepositories()

		if member, err := repos.Member.GetByID(mc.MbID); err == nil {
			bind["Member"] = member
		}
		if profiles, err := repos.SocialProfile.ListByMember(mc.MbID); err == nil {
			bind["SocialProfiles"] = profiles
		}
		bind["LinkableProviders"] = linkableProviders(c, mc.MbID)
	}

	return c.Render("index", bind, "layouts/main")
}

// linkableProviders lists enabled providers the member has not linked yet.
func linkableProviders(c *fiber.Ctx, mbID string) []string {
	cfg := models.GetBoardConfig()
	if cfg == nil || !cfg.SocialLoginUse {
		return nil
	}

	profiles, err := repository.GetGlobalRepositories().SocialProfile.ListByMember(mbID)
	if err != nil {
		return cfg.ServiceList()
	}

	linked := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		linked[p.Provider] = true
	}

	var out []string
	for _, name := range cfg.ServiceList() {
		if !linked[name] {
			out = append(out, name)
		}
	}
	return out
}
