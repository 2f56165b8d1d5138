package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	v = validator.New()

	memberIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

const (
	minMemberIDLen = 3
	maxMemberIDLen = 20
	maxNicknameLen = 255
)

// MemberID checks the username policy: lowercase alphanumerics plus
// underscore, bounded length, not on the prohibited list.
func MemberID(mbID, prohibitWords string) error {
	if strings.TrimSpace(mbID) == "" {
		return fmt.Errorf("회원아이디를 입력해 주세요")
	}
	if len(mbID) < minMemberIDLen || len(mbID) > maxMemberIDLen {
		return fmt.Errorf("회원아이디는 %d~%d자로 입력해 주세요", minMemberIDLen, maxMemberIDLen)
	}
	if !memberIDPattern.MatchString(mbID) {
		return fmt.Errorf("회원아이디는 영문소문자, 숫자, _ 만 사용할 수 있습니다")
	}
	if isProhibited(mbID, prohibitWords) {
		return fmt.Errorf("%s : 사용할 수 없는 아이디 입니다", mbID)
	}
	return nil
}

// Nickname checks the nickname policy: non-blank after trimming, bounded
// length, not on the prohibited list.
func Nickname(nick, prohibitWords string) error {
	nick = strings.TrimSpace(nick)
	if nick == "" {
		return fmt.Errorf("닉네임을 입력해 주세요")
	}
	if len(nick) > maxNicknameLen {
		return fmt.Errorf("닉네임이 너무 깁니다")
	}
	if isProhibited(nick, prohibitWords) {
		return fmt.Errorf("%s : 사용할 수 없는 닉네임 입니다", nick)
	}
	return nil
}

// Email reports whether the address is syntactically valid.
func Email(email string) bool {
	return v.Var(email, "required,email") == nil
}

// isProhibited matches against the comma separated prohibited word list from
// the board configuration.
func isProhibited(value, prohibitWords string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, word := range strings.Split(prohibitWords, ",") {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" && word == value {
			return true
		}
	}
	return false
}
