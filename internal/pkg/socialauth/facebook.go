package socialauth

import (
	"strings"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/facebook"

	"github.com/gonuboard/gonuboard/app/models"
)

type facebookProvider struct{}

func (facebookProvider) Name() string { return "facebook" }

func (p facebookProvider) Register(cfg *models.BoardConfig) error {
	appID := strings.TrimSpace(cfg.FacebookAppID)
	secret := strings.TrimSpace(cfg.FacebookSecret)
	if appID == "" || secret == "" {
		return ErrMissingCredentials
	}
	goth.UseProviders(facebook.New(appID, secret, CallbackURL(p.Name()), "email", "public_profile"))
	return nil
}

func (p facebookProvider) ConvertProfile(u goth.User) (string, models.MemberSocialProfile, error) {
	identifier := firstNonEmpty(rawString(u.RawData, "id"), u.UserID)
	if identifier == "" {
		return "", models.MemberSocialProfile{}, ErrEmptyIdentifier
	}

	profile := models.MemberSocialProfile{
		Provider:   p.Name(),
		Identifier: DeriveSocialID(identifier, p.Name()),
		Nickname:   firstNonEmpty(u.Name, u.NickName),
		ProfileURL: rawString(u.RawData, "link"),
		PhotoURL:   u.AvatarURL,
	}
	return u.Email, profile, nil
}
