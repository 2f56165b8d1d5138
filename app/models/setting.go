package models

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Setting represents one durable board configuration row
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardConfig is the materialized board configuration. It is loaded once at
// startup and replaced wholesale on reload; flow controllers read it once per
// request and never write it.
type BoardConfig struct {
	SiteTitle         string
	AdminID           string
	AdminEmail        string
	RegisterLevel     int
	RegisterPoint     int
	ProhibitWords     string
	SocialLoginUse    bool
	SocialServiceList string
	NaverClientID     string
	NaverSecret       string
	KakaoRestKey      string
	KakaoClientSecret string
	GoogleClientID    string
	GoogleSecret      string
	TwitterKey        string
	TwitterSecret     string
	FacebookAppID     string
	FacebookSecret    string
}

var (
	boardConfig *BoardConfig
	configMu    sync.RWMutex
)

// GetBoardConfig returns the current board configuration
func GetBoardConfig() *BoardConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return boardConfig
}

// LoadBoardConfig loads configuration rows from the database into memory
func LoadBoardConfig(db *gorm.DB) error {
	configMu.Lock()
	defer configMu.Unlock()

	cfg := &BoardConfig{
		SiteTitle:     "gonuboard",
		RegisterLevel: 2,
		RegisterPoint: 1000,
	}

	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, setting := range settings {
		switch setting.Key {
		case "cf_title":
			cfg.SiteTitle = setting.Value
		case "cf_admin":
			cfg.AdminID = setting.Value
		case "cf_admin_email":
			cfg.AdminEmail = setting.Value
		case "cf_register_level":
			if v, err := strconv.Atoi(setting.Value); err == nil {
				cfg.RegisterLevel = v
			}
		case "cf_register_point":
			if v, err := strconv.Atoi(setting.Value); err == nil {
				cfg.RegisterPoint = v
			}
		case "cf_prohibit_id":
			cfg.ProhibitWords = setting.Value
		case "cf_social_login_use":
			cfg.SocialLoginUse = setting.Value == "1" || setting.Value == "true"
		case "cf_social_servicelist":
			cfg.SocialServiceList = setting.Value
		case "cf_naver_clientid":
			cfg.NaverClientID = setting.Value
		case "cf_naver_secret":
			cfg.NaverSecret = setting.Value
		case "cf_kakao_rest_key":
			cfg.KakaoRestKey = setting.Value
		case "cf_kakao_client_secret":
			cfg.KakaoClientSecret = setting.Value
		case "cf_google_clientid":
			cfg.GoogleClientID = setting.Value
		case "cf_google_secret":
			cfg.GoogleSecret = setting.Value
		case "cf_twitter_key":
			cfg.TwitterKey = setting.Value
		case "cf_twitter_secret":
			cfg.TwitterSecret = setting.Value
		case "cf_facebook_appid":
			cfg.FacebookAppID = setting.Value
		case "cf_facebook_secret":
			cfg.FacebookSecret = setting.Value
		}
	}

	boardConfig = cfg
	return nil
}

// ServiceList splits the configured social provider csv into names.
func (c *BoardConfig) ServiceList() []string {
	if c == nil || strings.TrimSpace(c.SocialServiceList) == "" {
		return nil
	}
	parts := strings.Split(c.SocialServiceList, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsServiceEnabled reports whether the provider is in the enabled csv list.
func (c *BoardConfig) IsServiceEnabled(provider string) bool {
	for _, name := range c.ServiceList() {
		if name == provider {
			return true
		}
	}
	return false
}

// SetSettingValue upserts a single configuration row. The in-memory config is
// not touched; callers reload explicitly.
func SetSettingValue(db *gorm.DB, key, value string) error {
	var setting Setting
	err := db.Where("setting_key = ?", key).First(&setting).Error

	if err == gorm.ErrRecordNotFound {
		setting = Setting{Key: key, Value: value}
		return db.Create(&setting).Error
	} else if err != nil {
		return err
	}

	setting.Value = value
	return db.Save(&setting).Error
}
