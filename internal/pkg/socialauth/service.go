package socialauth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gonuboard/gonuboard/app/models"
	"github.com/gonuboard/gonuboard/internal/pkg/database"
)

// Service resolves links between social identities and local members.
// Every operation is one short-lived read against the database; nothing is
// cached because each request re-reads live state.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// GetMemberBySocialID returns the local member id linked to the given derived
// social id, or "" when no link exists.
func (s *Service) GetMemberBySocialID(identifier, provider string) (string, error) {
	var profile models.MemberSocialProfile
	err := database.GetDB().
		Select("mb_id").
		Where("provider = ? AND identifier = ?", provider, identifier).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return profile.MbID, nil
}

// CheckExistsSocialID reports whether the (provider, identifier) pair is
// already linked to any member.
func (s *Service) CheckExistsSocialID(identifier, provider string) (bool, error) {
	var count int64
	err := database.GetDB().
		Model(&models.MemberSocialProfile{}).
		Where("provider = ? AND identifier = ?", provider, identifier).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
