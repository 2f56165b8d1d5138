package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

// The member form token distinguishes "create a new record" from "edit an
// existing record" across the HTTP request boundary. It is an integrity
// check, not a capability credential: a keyed hash over the target id that
// the update handler verifies against the submitted id field. A token minted
// for one id never validates for another.

// GenerateFormToken returns the HMAC-SHA256 tag over the target id.
func GenerateFormToken(targetID, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret is required for token generation")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(targetID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// VerifyFormToken reports whether token is a valid tag for targetID.
// Comparison is constant time.
func VerifyFormToken(token, targetID, secret string) bool {
	if secret == "" {
		return false
	}
	got, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(targetID))
	return hmac.Equal(got, mac.Sum(nil))
}
