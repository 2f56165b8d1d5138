package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionMemberKey_Deterministic(t *testing.T) {
	registered := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	first := SessionMemberKey("member1", registered, "Mozilla/5.0")
	second := SessionMemberKey("member1", registered, "Mozilla/5.0")
	assert.Equal(t, first, second)
	assert.Len(t, first, 32)
}

func TestSessionMemberKey_VariesPerInput(t *testing.T) {
	registered := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	base := SessionMemberKey("member1", registered, "Mozilla/5.0")

	assert.NotEqual(t, base, SessionMemberKey("member2", registered, "Mozilla/5.0"))
	assert.NotEqual(t, base, SessionMemberKey("member1", registered.Add(time.Second), "Mozilla/5.0"))
	assert.NotEqual(t, base, SessionMemberKey("member1", registered, "curl/8.0"))
}
