package oauth

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/markbates/goth/gothic"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/gonuboard/gonuboard/internal/pkg/cache"
	"github.com/gonuboard/gonuboard/internal/pkg/env"
)

// Setup points goth_fiber at a Redis-backed session store for OAuth state.
// Provider registration itself happens per request in socialauth, because
// provider credentials live in the hot-reloadable board configuration.
// Safe to call multiple times.
func Setup() {
	cacheClient := cache.GetClient()
	cacheOpts := cacheClient.Options()
	host, port := "127.0.0.1", 6379
	if cacheOpts != nil && cacheOpts.Addr != "" {
		if h, p, err := net.SplitHostPort(cacheOpts.Addr); err == nil {
			host = h
			if parsed, e := strconv.Atoi(p); e == nil {
				port = parsed
			}
		} else {
			host = cacheOpts.Addr
		}
	}

	// OAuth state uses the same Redis as app sessions, separate database
	gothfiber.SessionStore = session.New(session.Config{
		Storage: redisstorage.New(redisstorage.Config{
			Host:     host,
			Port:     port,
			Username: cacheOpts.Username,
			Password: cacheOpts.Password,
			Database: 2,
			Reset:    false,
		}),
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     72 * time.Hour,
	})
}
