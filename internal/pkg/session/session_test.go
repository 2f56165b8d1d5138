package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingSocialSignupValid(t *testing.T) {
	assert.False(t, PendingSocialSignup{}.Valid())
	assert.False(t, PendingSocialSignup{Provider: "naver"}.Valid())
	assert.False(t, PendingSocialSignup{SessionData: "{}"}.Valid())

	// Email is optional: some providers do not disclose one.
	assert.True(t, PendingSocialSignup{Provider: "naver", SessionData: "{}"}.Valid())
	assert.True(t, PendingSocialSignup{Provider: "kakao", SessionData: "{}", Email: "u@k.com"}.Valid())
}

func TestPendingSocialSignupJSONRoundTrip(t *testing.T) {
	in := PendingSocialSignup{
		Provider:    "naver",
		SessionData: `{"AuthURL":"","AccessToken":"tok"}`,
		Email:       "user@naver.com",
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out PendingSocialSignup
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
	assert.True(t, out.Valid())
}
