package entity

import (
	"time"

	"gorm.io/gorm"
)

// One-time reset token delivered as a link. Used by both the
// forgot-password and the admin-reset flow.
type PasswordReset struct {
	gorm.Model
	UserID    uint       `gorm:"index;not null" json:"userId"`
	User      User       `json:"-"`
	Token     string     `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
}
