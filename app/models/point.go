package models

import "time"

// Point is one ledger row of the member point book. The member row carries
// the running total in mb_point.
type Point struct {
	PoNo        uint      `gorm:"column:po_no;primaryKey" json:"po_no"`
	MbID        string    `gorm:"column:mb_id;index;type:varchar(20)" json:"mb_id"`
	PoContent   string    `gorm:"column:po_content;type:varchar(255)" json:"po_content"`
	PoPoint     int       `gorm:"column:po_point" json:"po_point"`
	PoRelTable  string    `gorm:"column:po_rel_table;type:varchar(20)" json:"po_rel_table"`
	PoRelID     string    `gorm:"column:po_rel_id;type:varchar(20)" json:"po_rel_id"`
	PoRelAction string    `gorm:"column:po_rel_action;type:varchar(50)" json:"po_rel_action"`
	PoDatetime  time.Time `gorm:"column:po_datetime;autoCreateTime" json:"po_datetime"`
}

func (Point) TableName() string {
	return "points"
}
