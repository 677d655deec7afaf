package entity

import (
	"gorm.io/gorm"
)

// Complaint statuses
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
	ComplaintClosed     = "closed"
	ComplaintEscalated  = "escalated"
)

// Support-center ticket. ComplaintNumber is generated once and never changes.
type Complaint struct {
	gorm.Model
	ComplaintNumber string `gorm:"uniqueIndex;not null" json:"complaintNumber"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	SubscriptionID *uint         `json:"subscriptionId,omitempty"`
	Subscription   *Subscription `json:"-"`

	Category    string `json:"category"`
	Priority    string `gorm:"not null;default:normal" json:"priority"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Status      string `gorm:"not null;default:open" json:"status"`
}

func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed, ComplaintEscalated:
		return true
	}
	return false
}
