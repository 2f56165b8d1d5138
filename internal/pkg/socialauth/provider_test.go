package socialauth

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonuboard/gonuboard/app/models"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"naver", "kakao", "google", "twitter", "facebook"} {
		p, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name())
	}

	_, ok := Lookup("github")
	assert.False(t, ok)
}

func TestRegister_MissingCredentials(t *testing.T) {
	cfg := &models.BoardConfig{}

	for _, name := range []string{"naver", "kakao", "google", "twitter", "facebook"} {
		p, ok := Lookup(name)
		require.True(t, ok, name)
		assert.ErrorIs(t, p.Register(cfg), ErrMissingCredentials, name)
	}
}

func TestRegister_WhitespaceCredentials(t *testing.T) {
	p, ok := Lookup("naver")
	require.True(t, ok)

	cfg := &models.BoardConfig{NaverClientID: "   ", NaverSecret: "\t"}
	assert.ErrorIs(t, p.Register(cfg), ErrMissingCredentials)
}

func TestNaverConvertProfile(t *testing.T) {
	p, _ := Lookup("naver")

	user := goth.User{
		RawData: map[string]interface{}{
			"response": map[string]interface{}{
				"id":            "abc123",
				"nickname":      "네이버유저",
				"email":         "user@naver.com",
				"profile_image": "https://phinf.naver.net/pic.png",
			},
		},
	}

	email, profile, err := p.ConvertProfile(user)
	require.NoError(t, err)
	assert.Equal(t, "user@naver.com", email)
	assert.Equal(t, "naver", profile.Provider)
	assert.Equal(t, DeriveSocialID("abc123", "naver"), profile.Identifier)
	assert.Equal(t, "네이버유저", profile.Nickname)
	assert.Equal(t, "https://phinf.naver.net/pic.png", profile.PhotoURL)
}

func TestKakaoConvertProfile_NumericID(t *testing.T) {
	p, _ := Lookup("kakao")

	// Kakao delivers the id as a JSON number.
	user := goth.User{
		RawData: map[string]interface{}{
			"id": float64(1234567890),
			"properties": map[string]interface{}{
				"nickname": "카카오유저",
			},
			"kakao_account": map[string]interface{}{
				"email": "user@kakao.com",
			},
		},
	}

	email, profile, err := p.ConvertProfile(user)
	require.NoError(t, err)
	assert.Equal(t, "user@kakao.com", email)
	assert.Equal(t, DeriveSocialID("1234567890", "kakao"), profile.Identifier)
	assert.Equal(t, "카카오유저", profile.Nickname)
}

func TestConvertProfile_FallsBackToGothFields(t *testing.T) {
	p, _ := Lookup("google")

	user := goth.User{
		UserID:    "g-sub-1",
		Email:     "user@gmail.com",
		NickName:  "googler",
		AvatarURL: "https://lh3.googleusercontent.com/p.png",
		RawData:   map[string]interface{}{},
	}

	email, profile, err := p.ConvertProfile(user)
	require.NoError(t, err)
	assert.Equal(t, "user@gmail.com", email)
	assert.Equal(t, DeriveSocialID("g-sub-1", "google"), profile.Identifier)
	assert.Equal(t, "googler", profile.Nickname)
}

func TestConvertProfile_EmptyIdentifier(t *testing.T) {
	for _, name := range []string{"naver", "kakao", "google", "twitter", "facebook"} {
		p, ok := Lookup(name)
		require.True(t, ok, name)

		_, _, err := p.ConvertProfile(goth.User{RawData: map[string]interface{}{}})
		assert.ErrorIs(t, err, ErrEmptyIdentifier, name)
	}
}

func TestCallbackURL(t *testing.T) {
	t.Setenv("PUBLIC_DOMAIN", "https://board.example.com/")

	got := CallbackURL("naver")
	assert.Equal(t, "https://board.example.com/social/login/callback?provider=naver", got)
}

func TestRawString(t *testing.T) {
	raw := map[string]interface{}{
		"id": float64(42),
		"nested": map[string]interface{}{
			"key": "value",
		},
		"flag": true,
	}

	assert.Equal(t, "42", rawString(raw, "id"))
	assert.Equal(t, "value", rawString(raw, "nested", "key"))
	assert.Equal(t, "", rawString(raw, "missing"))
	assert.Equal(t, "", rawString(raw, "flag"))
	assert.Equal(t, "", rawString(raw, "id", "too", "deep"))
}
