package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/gonuboard/gonuboard/app/models"
)

// memberRepository implements the MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts a new member row. Uniqueness of id, nick and email is
// enforced by the database; a duplicate surfaces as the returned error.
func (r *memberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepository) GetByID(mbID string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("mb_id = ?", mbID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("mb_email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetByNick(nick string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("mb_nick = ?", nick).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetByNickExcluding(nick, excludeMbID string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("mb_nick = ? AND mb_id <> ?", nick, excludeMbID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetByEmailExcluding(email, excludeMbID string) (*models.Member, error) {
	var member models.Member
	err := r.db.Where("mb_email = ? AND mb_id <> ?", email, excludeMbID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepository) Delete(mbID string) error {
	return r.db.Where("mb_id = ?", mbID).Delete(&models.Member{}).Error
}

func (r *memberRepository) List(offset, limit int) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Order("mb_datetime DESC").Offset(offset).Limit(limit).Find(&members).Error
	return members, err
}

func (r *memberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Count(&count).Error
	return count, err
}

// Search matches members by id, nick or email
func (r *memberRepository) Search(query string) ([]models.Member, error) {
	var members []models.Member
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("mb_id LIKE ? OR mb_nick LIKE ? OR mb_email LIKE ?", pattern, pattern, pattern).
		Find(&members).Error
	return members, err
}
