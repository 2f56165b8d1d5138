package point

import (
	"gorm.io/gorm"

	"github.com/gonuboard/gonuboard/app/models"
)

// RecordPoint appends one ledger row and moves the member's running total in
// a single transaction. The registration bonus and every later point event
// go through here so the ledger and mb_point never drift apart.
func RecordPoint(db *gorm.DB, mbID string, amount int, content, relTable, relID, relAction string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		row := models.Point{
			MbID:        mbID,
			PoContent:   content,
			PoPoint:     amount,
			PoRelTable:  relTable,
			PoRelID:     relID,
			PoRelAction: relAction,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Model(&models.Member{}).
			Where("mb_id = ?", mbID).
			UpdateColumn("mb_point", gorm.Expr("mb_point + ?", amount)).Error
	})
}

// TotalPoints sums the ledger for one member (admin screens cross-check the
// cached mb_point against this).
func TotalPoints(db *gorm.DB, mbID string) (int64, error) {
	var total int64
	err := db.Model(&models.Point{}).
		Where("mb_id = ?", mbID).
		Select("COALESCE(SUM(po_point), 0)").
		Row().Scan(&total)
	return total, err
}
