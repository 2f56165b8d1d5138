package models

import "time"

// MemberSocialProfile links one (provider, identifier) pair to exactly one
// local member, and one member to at most one profile per provider; both
// invariants are backed by unique indexes. Identifier carries the derived
// social id (the legacy scheme keys every lookup on it); the raw provider
// identifier only feeds the hasher.
type MemberSocialProfile struct {
	MpNo          uint      `gorm:"column:mp_no;primaryKey" json:"mp_no"`
	MbID          string    `gorm:"column:mb_id;index:idx_member_provider,unique;type:varchar(20)" json:"mb_id"`
	Provider      string    `gorm:"column:provider;index:idx_provider_identifier,unique;index:idx_member_provider,unique;type:varchar(50)" json:"provider"`
	Identifier    string    `gorm:"column:identifier;index:idx_provider_identifier,unique;type:varchar(191)" json:"identifier"`
	Nickname      string    `gorm:"column:nickname;type:varchar(255)" json:"nickname"`
	ProfileURL    string    `gorm:"column:profile_url;type:varchar(255)" json:"profile_url"`
	PhotoURL      string    `gorm:"column:photourl;type:varchar(255)" json:"photourl"`
	ObjectSHA     string    `gorm:"column:object_sha;type:varchar(45)" json:"-"`
	MpRegisterDay time.Time `gorm:"column:mp_register_day;autoCreateTime" json:"mp_register_day"`
}

func (MemberSocialProfile) TableName() string {
	return "member_social_profiles"
}
