package socialauth

import (
	"strings"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/naver"

	"github.com/gonuboard/gonuboard/app/models"
)

type naverProvider struct{}

func (naverProvider) Name() string { return "naver" }

func (p naverProvider) Register(cfg *models.BoardConfig) error {
	clientID := strings.TrimSpace(cfg.NaverClientID)
	secret := strings.TrimSpace(cfg.NaverSecret)
	if clientID == "" || secret == "" {
		return ErrMissingCredentials
	}
	goth.UseProviders(naver.New(clientID, secret, CallbackURL(p.Name())))
	return nil
}

func (p naverProvider) ConvertProfile(u goth.User) (string, models.MemberSocialProfile, error) {
	// Naver wraps the account payload in a "response" object.
	identifier := firstNonEmpty(rawString(u.RawData, "response", "id"), u.UserID)
	if identifier == "" {
		return "", models.MemberSocialProfile{}, ErrEmptyIdentifier
	}

	profile := models.MemberSocialProfile{
		Provider:   p.Name(),
		Identifier: DeriveSocialID(identifier, p.Name()),
		Nickname:   firstNonEmpty(rawString(u.RawData, "response", "nickname"), u.NickName, u.Name),
		PhotoURL:   firstNonEmpty(rawString(u.RawData, "response", "profile_image"), u.AvatarURL),
	}
	email := firstNonEmpty(rawString(u.RawData, "response", "email"), u.Email)
	return email, profile, nil
}
