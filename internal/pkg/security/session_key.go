package security

import (
	"crypto/md5"
	"fmt"
	"time"
)

// SessionMemberKey derives the per-session integrity key stored next to the
// member id. It binds the session to member state and the client user agent,
// so a session value pasted into another browser or an id swapped inside the
// store stops validating. Legacy scheme, md5 on purpose.
func SessionMemberKey(mbID string, registered time.Time, userAgent string) string {
	seed := fmt.Sprintf("%s%s%s", mbID, registered.Format("2006-01-02 15:04:05"), userAgent)
	return fmt.Sprintf("%x", md5.Sum([]byte(seed)))
}
