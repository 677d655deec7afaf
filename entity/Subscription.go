package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionActive    = "active"
	SubscriptionPaused    = "paused"
	SubscriptionCancelled = "cancelled"
)

type Subscription struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	PlanID uint             `gorm:"not null" json:"planId"`
	Plan   SubscriptionPlan `gorm:"foreignKey:PlanID" json:"-"`

	Status    string     `gorm:"not null;default:active" json:"status"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}
