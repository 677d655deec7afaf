package entity

import (
	"gorm.io/gorm"
)

type SubscriptionPlan struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	MealsPerWeek int    `json:"mealsPerWeek"`
	FinalPrice   int64  `json:"finalPrice"` // cents per week
	IsPopular    bool   `gorm:"not null;default:false" json:"isPopular"`
	SortOrder    int    `json:"sortOrder"`

	Subscriptions []Subscription `gorm:"foreignKey:PlanID" json:"-"`
}
