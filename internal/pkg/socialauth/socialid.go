package socialauth

import (
	"crypto/md5"
	"fmt"
	"hash/adler32"
)

// DeriveSocialID maps a provider name and the provider's user identifier to
// the local member id used for social accounts.
//
// The two-stage hash (Adler-32 over the lowercase MD5 hex of the identifier,
// formatted without zero padding) is a fixed external contract inherited from
// the legacy board: pre-existing accounts were created with exactly this
// scheme, so it must be reproduced bit for bit.
func DeriveSocialID(identifier, provider string) string {
	md5Hex := fmt.Sprintf("%x", md5.Sum([]byte(identifier)))
	sum := adler32.Checksum([]byte(md5Hex))

	return fmt.Sprintf("%s_%x", provider, sum)
}
