package socialauth

import (
	"strings"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/google"

	"github.com/gonuboard/gonuboard/app/models"
)

type googleProvider struct{}

func (googleProvider) Name() string { return "google" }

func (p googleProvider) Register(cfg *models.BoardConfig) error {
	clientID := strings.TrimSpace(cfg.GoogleClientID)
	secret := strings.TrimSpace(cfg.GoogleSecret)
	if clientID == "" || secret == "" {
		return ErrMissingCredentials
	}
	goth.UseProviders(google.New(clientID, secret, CallbackURL(p.Name()), "email", "profile"))
	return nil
}

func (p googleProvider) ConvertProfile(u goth.User) (string, models.MemberSocialProfile, error) {
	identifier := firstNonEmpty(rawString(u.RawData, "sub"), u.UserID)
	if identifier == "" {
		return "", models.MemberSocialProfile{}, ErrEmptyIdentifier
	}

	profile := models.MemberSocialProfile{
		Provider:   p.Name(),
		Identifier: DeriveSocialID(identifier, p.Name()),
		Nickname:   firstNonEmpty(u.NickName, u.Name),
		PhotoURL:   firstNonEmpty(rawString(u.RawData, "picture"), u.AvatarURL),
	}
	return u.Email, profile, nil
}
