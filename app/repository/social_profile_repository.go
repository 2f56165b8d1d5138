package repository

import (
	"gorm.io/gorm"

	"github.com/gonuboard/gonuboard/app/models"
)

// socialProfileRepository implements the SocialProfileRepository interface
type socialProfileRepository struct {
	db *gorm.DB
}

// NewSocialProfileRepository creates a new social profile repository instance
func NewSocialProfileRepository(db *gorm.DB) SocialProfileRepository {
	return &socialProfileRepository{db: db}
}

// Create inserts a link row; the unique (provider, identifier) index turns a
// duplicate-link race into an error instead of a second row.
func (r *socialProfileRepository) Create(profile *models.MemberSocialProfile) error {
	return r.db.Create(profile).Error
}

func (r *socialProfileRepository) GetByProviderIdentifier(provider, identifier string) (*models.MemberSocialProfile, error) {
	var profile models.MemberSocialProfile
	err := r.db.Where("provider = ? AND identifier = ?", provider, identifier).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *socialProfileRepository) ListByMember(mbID string) ([]models.MemberSocialProfile, error) {
	var profiles []models.MemberSocialProfile
	err := r.db.Where("mb_id = ?", mbID).Order("mp_register_day").Find(&profiles).Error
	return profiles, err
}

func (r *socialProfileRepository) DeleteByMember(mbID string) error {
	return r.db.Where("mb_id = ?", mbID).Delete(&models.MemberSocialProfile{}).Error
}
