package models

import "time"

// PasswordResetToken is a single-use token with an expiry. Expired rows
// are purged lazily whenever a token is looked up.
type PasswordResetToken struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	UserID uint `gorm:"index" json:"-"`

	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"-"`
}
