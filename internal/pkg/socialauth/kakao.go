package socialauth

import (
	"strings"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/kakao"

	"github.com/gonuboard/gonuboard/app/models"
)

type kakaoProvider struct{}

func (kakaoProvider) Name() string { return "kakao" }

func (p kakaoProvider) Register(cfg *models.BoardConfig) error {
	restKey := strings.TrimSpace(cfg.KakaoRestKey)
	if restKey == "" {
		return ErrMissingCredentials
	}
	// The kakao client secret is optional.
	goth.UseProviders(kakao.New(restKey, strings.TrimSpace(cfg.KakaoClientSecret), CallbackURL(p.Name())))
	return nil
}

func (p kakaoProvider) ConvertProfile(u goth.User) (string, models.MemberSocialProfile, error) {
	identifier := firstNonEmpty(rawString(u.RawData, "id"), u.UserID)
	if identifier == "" {
		return "", models.MemberSocialProfile{}, ErrEmptyIdentifier
	}

	profile := models.MemberSocialProfile{
		Provider:   p.Name(),
		Identifier: DeriveSocialID(identifier, p.Name()),
		Nickname:   firstNonEmpty(rawString(u.RawData, "properties", "nickname"), u.NickName, u.Name),
		PhotoURL:   firstNonEmpty(rawString(u.RawData, "properties", "profile_image"), u.AvatarURL),
	}
	email := firstNonEmpty(rawString(u.RawData, "kakao_account", "email"), u.Email)
	return email, profile, nil
}
