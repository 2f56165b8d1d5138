package repository

import (
	"github.com/gonuboard/gonuboard/app/models"
)

// MemberRepository defines the member-related database operations
type MemberRepository interface {
	Create(member *models.Member) error
	GetByID(mbID string) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	GetByNick(nick string) (*models.Member, error)
	// GetByNickExcluding / GetByEmailExcluding back the admin update path:
	// a collision only counts when it belongs to a different member.
	GetByNickExcluding(nick, excludeMbID string) (*models.Member, error)
	GetByEmailExcluding(email, excludeMbID string) (*models.Member, error)
	Update(member *models.Member) error
	Delete(mbID string) error
	List(offset, limit int) ([]models.Member, error)
	Count() (int64, error)
	Search(query string) ([]models.Member, error)
}

// SocialProfileRepository defines the social-link database operations
type SocialProfileRepository interface {
	Create(profile *models.MemberSocialProfile) error
	GetByProviderIdentifier(provider, identifier string) (*models.MemberSocialProfile, error)
	ListByMember(mbID string) ([]models.MemberSocialProfile, error)
	DeleteByMember(mbID string) error
}

// PointRepository defines the point ledger database operations
type PointRepository interface {
	ListByMember(mbID string, offset, limit int) ([]models.Point, error)
	CountByMember(mbID string) (int64, error)
}

// SettingRepository defines configuration row access
type SettingRepository interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
	Reload() error
}

// Repositories bundles every repository for dependency injection
type Repositories struct {
	Member        MemberRepository
	SocialProfile SocialProfileRepository
	Point         PointRepository
	Setting       SettingRepository
}
