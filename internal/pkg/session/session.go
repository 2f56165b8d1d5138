package session

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/gonuboard/gonuboard/internal/pkg/cache"
	"github.com/gonuboard/gonuboard/internal/pkg/env"
)

var sessionStore *session.Store

func NewSessionStore() *session.Store {
	// Reuse the Redis connection parameters from the cache setup
	cacheClient := cache.GetClient()
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	// Sessions live in database 1, cache uses DB 0
	storage := redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})

	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		Expiration:     time.Hour * 1,
		KeyLookup:      "cookie:session_id",
	})

	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the visitor's session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the visitor's session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}

// DeleteSessionValue removes a key from the visitor's session
func DeleteSessionValue(c *fiber.Ctx, key string) {
	if sessionStore == nil {
		return
	}
	sess, err := sessionStore.Get(c)
	if err != nil {
		return
	}
	sess.Delete(key)
	_ = sess.Save()
}

// PendingSocialSignup is the multi-step registration state stashed in the
// session between the provider callback and the registration form submit.
// Field presence is the state: Provider and SessionData must both be set for
// the registration form to be reachable; Email may be empty when the
// provider did not disclose one.
type PendingSocialSignup struct {
	Provider    string `json:"provider"`
	SessionData string `json:"session_data"`
	Email       string `json:"email"`
}

// Valid reports whether the record satisfies the registration form
// preconditions (pending access token and provider name both present).
func (p PendingSocialSignup) Valid() bool {
	return p.Provider != "" && p.SessionData != ""
}

const pendingSocialKey = "ss_social_pending"

// SetPendingSocial stores the pending signup record in the session.
func SetPendingSocial(c *fiber.Ctx, pending PendingSocialSignup) error {
	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return SetSessionValue(c, pendingSocialKey, string(raw))
}

// GetPendingSocial loads the pending signup record; the zero record (not
// Valid) is returned when none is stored.
func GetPendingSocial(c *fiber.Ctx) PendingSocialSignup {
	var pending PendingSocialSignup
	raw := GetSessionValue(c, pendingSocialKey)
	if raw == "" {
		return pending
	}
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return PendingSocialSignup{}
	}
	return pending
}

// ClearPendingSocial drops the pending signup record.
func ClearPendingSocial(c *fiber.Ctx) {
	DeleteSessionValue(c, pendingSocialKey)
}
