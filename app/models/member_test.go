package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	member := &Member{}
	require.NoError(t, member.SetPassword("correct horse"))

	assert.True(t, member.CheckPassword("correct horse"))
	assert.False(t, member.CheckPassword("wrong horse"))
	assert.False(t, member.CheckPassword(""))
}

func TestOAuthOnlyPassword_NeverVerifiesAgainstSeed(t *testing.T) {
	now := time.Now()
	seed := MicrosecondSeed(now)

	stored, err := OAuthOnlyPassword(seed)
	require.NoError(t, err)

	// The double hash guarantees the account cannot be entered through the
	// password form, even by someone who knows the registration timestamp.
	member := &Member{MbPassword: stored}
	assert.False(t, member.CheckPassword(seed))
	assert.False(t, member.CheckPassword(""))
}

func TestMicrosecondSeed(t *testing.T) {
	a := MicrosecondSeed(time.UnixMicro(1700000000000000))
	assert.Equal(t, "1700000000000000", a)

	b := MicrosecondSeed(time.UnixMicro(1700000000000001))
	assert.NotEqual(t, a, b)
}

func TestIsIntercepted(t *testing.T) {
	assert.False(t, (&Member{}).IsIntercepted())
	assert.True(t, (&Member{MbInterceptDate: "20240301"}).IsIntercepted())
}

func TestMemberValidate(t *testing.T) {
	valid := &Member{
		MbID:       "naver_968d08f6",
		MbPassword: "hash",
		MbEmail:    "user@example.com",
	}
	assert.NoError(t, valid.Validate())

	noID := &Member{MbPassword: "hash"}
	assert.Error(t, noID.Validate())

	badEmail := &Member{MbID: "abc", MbPassword: "hash", MbEmail: "not-an-email"}
	assert.Error(t, badEmail.Validate())
}
