package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// Member is the board account record. MbID is the platform's primary account
// identifier; for social-only accounts it is derived from the provider
// identity (see internal/pkg/socialauth).
type Member struct {
	MbID            string    `gorm:"column:mb_id;primaryKey;type:varchar(20)" json:"mb_id" validate:"required,min=3,max=20"`
	MbPassword      string    `gorm:"column:mb_password;type:varchar(255)" json:"-" validate:"required"`
	MbName          string    `gorm:"column:mb_name;type:varchar(255)" json:"mb_name"`
	MbNick          string    `gorm:"column:mb_nick;uniqueIndex;type:varchar(255)" json:"mb_nick"`
	MbNickDate      string    `gorm:"column:mb_nick_date;type:varchar(30)" json:"-"`
	MbEmail         string    `gorm:"column:mb_email;uniqueIndex;type:varchar(255)" json:"mb_email" validate:"omitempty,email"`
	MbHomepage      string    `gorm:"column:mb_homepage;type:varchar(255)" json:"mb_homepage"`
	MbLevel         int       `gorm:"column:mb_level;default:1" json:"mb_level"`
	MbPoint         int       `gorm:"column:mb_point;default:0" json:"mb_point"`
	MbHP            string    `gorm:"column:mb_hp;type:varchar(255)" json:"-"`
	MbTel           string    `gorm:"column:mb_tel;type:varchar(255)" json:"-"`
	MbCertify       string    `gorm:"column:mb_certify;type:varchar(20)" json:"-"`
	MbAdult         int       `gorm:"column:mb_adult;default:0" json:"-"`
	MbZip1          string    `gorm:"column:mb_zip1;type:varchar(5)" json:"-"`
	MbZip2          string    `gorm:"column:mb_zip2;type:varchar(5)" json:"-"`
	MbAddr1         string    `gorm:"column:mb_addr1;type:varchar(255)" json:"-"`
	MbAddr2         string    `gorm:"column:mb_addr2;type:varchar(255)" json:"-"`
	MbAddr3         string    `gorm:"column:mb_addr3;type:varchar(255)" json:"-"`
	MbMailling      int       `gorm:"column:mb_mailling;default:0" json:"-"`
	MbSMS           int       `gorm:"column:mb_sms;default:0" json:"-"`
	MbOpen          int       `gorm:"column:mb_open;default:0" json:"-"`
	MbSignature     string    `gorm:"column:mb_signature;type:text" json:"-"`
	MbProfile       string    `gorm:"column:mb_profile;type:text" json:"-"`
	MbMemo          string    `gorm:"column:mb_memo;type:text" json:"-"`
	MbInterceptDate string    `gorm:"column:mb_intercept_date;type:varchar(8)" json:"-"`
	MbLeaveDate     string    `gorm:"column:mb_leave_date;type:varchar(8)" json:"-"`
	MbTodayLogin    time.Time `gorm:"column:mb_today_login" json:"-"`
	Mb1             string    `gorm:"column:mb_1;type:varchar(255)" json:"-"`
	Mb2             string    `gorm:"column:mb_2;type:varchar(255)" json:"-"`
	Mb3             string    `gorm:"column:mb_3;type:varchar(255)" json:"-"`
	Mb4             string    `gorm:"column:mb_4;type:varchar(255)" json:"-"`
	Mb5             string    `gorm:"column:mb_5;type:varchar(255)" json:"-"`
	Mb6             string    `gorm:"column:mb_6;type:varchar(255)" json:"-"`
	Mb7             string    `gorm:"column:mb_7;type:varchar(255)" json:"-"`
	Mb8             string    `gorm:"column:mb_8;type:varchar(255)" json:"-"`
	Mb9             string    `gorm:"column:mb_9;type:varchar(255)" json:"-"`
	Mb10            string    `gorm:"column:mb_10;type:varchar(255)" json:"-"`
	MbDatetime      time.Time `gorm:"column:mb_datetime;autoCreateTime" json:"mb_datetime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) Validate() error {
	v := validator.New()

	return v.Struct(m)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// OAuthOnlyPassword builds the stored credential for accounts created through
// a social provider. The seed is hashed twice so the stored value never
// verifies against anything a caller could submit on the password login form.
func OAuthOnlyPassword(seed string) (string, error) {
	inner, err := HashPassword(seed)
	if err != nil {
		return "", err
	}
	return HashPassword(inner)
}

// MicrosecondSeed is the registration password seed: the current microsecond
// timestamp, matching the legacy account scheme.
func MicrosecondSeed(now time.Time) string {
	return fmt.Sprintf("%d", now.UnixMicro())
}

// CheckPassword verifies if the provided password matches the member's stored password
func (m *Member) CheckPassword(password string) bool {
	return CheckPasswordHash(password, m.MbPassword)
}

// SetPassword hashes and sets a new password for the member
func (m *Member) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	m.MbPassword = hashedPassword
	return nil
}

// IsIntercepted reports whether the account has been blocked by an admin.
func (m *Member) IsIntercepted() bool {
	return m.MbInterceptDate != ""
}
