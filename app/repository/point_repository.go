package repository

import (
	"gorm.io/gorm"

	"github.com/gonuboard/gonuboard/app/models"
)

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) ListByMember(mbID string, offset, limit int) ([]models.Point, error) {
	var points []models.Point
	err := r.db.Where("mb_id = ?", mbID).
		Order("po_datetime DESC").Offset(offset).Limit(limit).
		Find(&points).Error
	return points, err
}

func (r *pointRepository) CountByMember(mbID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Point{}).Where("mb_id = ?", mbID).Count(&count).Error
	return count, err
}
