package socialauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSocialID_KnownValue(t *testing.T) {
	// Value fixed by the legacy id scheme; existing rows depend on it.
	got := DeriveSocialID("12345", "naver")
	assert.Equal(t, "naver_968d08f6", got)
}

func TestDeriveSocialID_Deterministic(t *testing.T) {
	first := DeriveSocialID("some-provider-uid", "kakao")
	second := DeriveSocialID("some-provider-uid", "kakao")
	assert.Equal(t, first, second)
}

func TestDeriveSocialID_Format(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		provider   string
	}{
		{"numeric id", "1234567890", "kakao"},
		{"uuid style id", "d290f1ee-6c54-4b01-90e6-d701748f0851", "google"},
		{"short id", "a", "twitter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSocialID(tt.identifier, tt.provider)

			parts := strings.SplitN(got, "_", 2)
			assert.Len(t, parts, 2)
			assert.Equal(t, tt.provider, parts[0])

			// Adler-32 over a 32-char hex digest never sums to zero, so the
			// suffix is a non-empty lowercase hex string without padding.
			assert.NotEmpty(t, parts[1])
			assert.LessOrEqual(t, len(parts[1]), 8)
			assert.Equal(t, strings.ToLower(parts[1]), parts[1])
			assert.False(t, strings.HasPrefix(parts[1], "0"))
		})
	}
}

func TestDeriveSocialID_DiffersPerProvider(t *testing.T) {
	// The provider prefix separates namespaces even for identical raw ids.
	naver := DeriveSocialID("12345", "naver")
	kakao := DeriveSocialID("12345", "kakao")
	assert.NotEqual(t, naver, kakao)

	// The hash suffix itself only depends on the raw identifier.
	assert.Equal(t,
		strings.TrimPrefix(naver, "naver_"),
		strings.TrimPrefix(kakao, "kakao_"),
	)
}
