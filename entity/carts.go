package entity

import (
	"gorm.io/gorm"
)

// Cart is server-side: either owned by a logged-in user (UserID set)
// or by a guest browser session (SessionID set). Stale carts are swept
// by UpdatedAt, see CartRepository.PurgeStale.
type Cart struct {
	gorm.Model
	UserID    *uint  `gorm:"uniqueIndex" json:"userId,omitempty"`
	User      *User  `json:"-"`
	SessionID string `gorm:"index" json:"sessionId,omitempty"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
