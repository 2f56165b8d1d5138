package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberID(t *testing.T) {
	tests := []struct {
		name    string
		mbID    string
		wantErr bool
	}{
		{"valid", "naver_968d08f6", false},
		{"valid short", "abc", false},
		{"valid digits only", "12345", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 21), true},
		{"uppercase", "Naver123", true},
		{"hyphen", "na-ver", true},
		{"korean", "아이디", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MemberID(tt.mbID, "")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMemberID_Prohibited(t *testing.T) {
	prohibited := "admin, administrator ,root"

	assert.Error(t, MemberID("admin", prohibited))
	assert.Error(t, MemberID("root", prohibited))
	assert.NoError(t, MemberID("admin2", prohibited))
}

func TestNickname(t *testing.T) {
	assert.NoError(t, Nickname("홍길동", ""))
	assert.NoError(t, Nickname("968d08f6", ""))
	assert.Error(t, Nickname("", ""))
	assert.Error(t, Nickname("  ", ""))
	assert.Error(t, Nickname(strings.Repeat("a", 256), ""))
}

func TestNickname_Prohibited(t *testing.T) {
	prohibited := "관리자,운영자"

	assert.Error(t, Nickname("관리자", prohibited))
	assert.Error(t, Nickname(" 관리자 ", prohibited))
	assert.NoError(t, Nickname("일반회원", prohibited))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("user@example.com"))
	assert.True(t, Email("user.name+tag@sub.example.co.kr"))
	assert.False(t, Email(""))
	assert.False(t, Email("user"))
	assert.False(t, Email("user@"))
	assert.False(t, Email("@example.com"))
}
