package socialauth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markbates/goth"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/env"
)

// ErrMissingCredentials is returned by Register when the board configuration
// does not carry the credentials the provider requires. Registration happens
// per request because the configuration is hot-reloadable.
var ErrMissingCredentials = errors.New("social provider credentials are not configured")

// ErrEmptyIdentifier is returned by ConvertProfile when the provider payload
// carries no usable identifier. Callers log this at critical level: it means
// the provider integration is broken, not that the user did anything wrong.
var ErrEmptyIdentifier = errors.New("social profile has no identifier")

// Provider is one supported OAuth identity service. Implementations install
// live credentials into the shared goth registry and normalize the raw
// provider payload into the common profile record.
type Provider interface {
	Name() string
	Register(cfg *models.BoardConfig) error
	ConvertProfile(u goth.User) (email string, profile models.MemberSocialProfile, err error)
}

var registry = map[string]Provider{
	"naver":    naverProvider{},
	"kakao":    kakaoProvider{},
	"google":   googleProvider{},
	"twitter":  twitterProvider{},
	"facebook": facebookProvider{},
}

// Lookup resolves a provider by name from the closed registry.
func Lookup(name string) (Provider, bool) {
	p, ok := registry[name]
	return p, ok
}

// CallbackURL builds the provider redirect target. The provider name rides
// along as a query parameter because a single callback route serves every
// provider.
func CallbackURL(provider string) string {
	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}
	return fmt.Sprintf("%s/social/login/callback?provider=%s", base, provider)
}

// SessionFromMarshal rebuilds a goth session from its stored marshaled form
// so the profile can be re-fetched server side. Registration submissions
// never trust client-sent identity fields; the profile is always re-read
// from the provider with this session.
func SessionFromMarshal(providerName, marshaled string) (goth.Provider, goth.Session, error) {
	gp, err := goth.GetProvider(providerName)
	if err != nil {
		return nil, nil, err
	}
	sess, err := gp.UnmarshalSession(marshaled)
	if err != nil {
		return nil, nil, err
	}
	return gp, sess, nil
}

// rawString digs a string out of a provider raw payload, tolerating numeric
// ids (kakao sends them as JSON numbers).
func rawString(raw map[string]interface{}, keys ...string) string {
	node := raw
	for i, key := range keys {
		v, ok := node[key]
		if !ok {
			return ""
		}
		if i == len(keys)-1 {
			switch t := v.(type) {
			case string:
				return t
			case float64:
				return fmt.Sprintf("%.0f", t)
			case int64:
				return fmt.Sprintf("%d", t)
			default:
				return ""
			}
		}
		next, ok := v.(map[string]interface{})
		if !ok {
			return ""
		}
		node = next
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
