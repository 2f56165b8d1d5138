package socialauth

import (
	"strings"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/twitterv2"

	"github.com/gonuboard/gonuboard/app/models"
)

type twitterProvider struct{}

func (twitterProvider) Name() string { return "twitter" }

func (p twitterProvider) Register(cfg *models.BoardConfig) error {
	key := strings.TrimSpace(cfg.TwitterKey)
	secret := strings.TrimSpace(cfg.TwitterSecret)
	if key == "" || secret == "" {
		return ErrMissingCredentials
	}
	prov := twitterv2.New(key, secret, CallbackURL(p.Name()))
	prov.SetName(p.Name())
	goth.UseProviders(prov)
	return nil
}

func (p twitterProvider) ConvertProfile(u goth.User) (string, models.MemberSocialProfile, error) {
	identifier := firstNonEmpty(rawString(u.RawData, "id_str"), rawString(u.RawData, "id"), u.UserID)
	if identifier == "" {
		return "", models.MemberSocialProfile{}, ErrEmptyIdentifier
	}

	profile := models.MemberSocialProfile{
		Provider:   p.Name(),
		Identifier: DeriveSocialID(identifier, p.Name()),
		Nickname:   firstNonEmpty(u.NickName, u.Name),
		ProfileURL: "https://twitter.com/" + u.NickName,
		PhotoURL:   u.AvatarURL,
	}
	return u.Email, profile, nil
}
