package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTokenRoundTrip(t *testing.T) {
	token, err := GenerateFormToken("memberA", "secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, VerifyFormToken(token, "memberA", "secret-key"))
}

func TestFormToken_BoundToTarget(t *testing.T) {
	token, err := GenerateFormToken("memberA", "secret-key")
	require.NoError(t, err)

	// A token minted for one id never validates for another; this is the
	// branch decision for the member form handler.
	assert.False(t, VerifyFormToken(token, "memberB", "secret-key"))
	assert.False(t, VerifyFormToken(token, "", "secret-key"))
}

func TestFormToken_BoundToSecret(t *testing.T) {
	token, err := GenerateFormToken("memberA", "secret-key")
	require.NoError(t, err)

	assert.False(t, VerifyFormToken(token, "memberA", "other-key"))
}

func TestFormToken_EmptyTarget(t *testing.T) {
	// The add form carries a token over the empty id.
	token, err := GenerateFormToken("", "secret-key")
	require.NoError(t, err)

	assert.True(t, VerifyFormToken(token, "", "secret-key"))
	assert.False(t, VerifyFormToken(token, "memberA", "secret-key"))
}

func TestFormToken_Malformed(t *testing.T) {
	assert.False(t, VerifyFormToken("not-base64!!", "memberA", "secret-key"))
	assert.False(t, VerifyFormToken("", "memberA", "secret-key"))
}

func TestFormToken_RequiresSecret(t *testing.T) {
	_, err := GenerateFormToken("memberA", "")
	assert.Error(t, err)

	assert.False(t, VerifyFormToken("anything", "memberA", ""))
}
