package entity

import (
	"gorm.io/gorm"
)

// Product prices are stored in cents (int64) to avoid float drift.
type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null;check:price >= 0" json:"price"`

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"` // preload for category name only

	StockQuantity int    `json:"stockQuantity"`
	IsActive      bool   `gorm:"not null;default:true" json:"isActive"`
	SpiceLevel    int    `json:"spiceLevel"`
	ImagePath     string `json:"imagePath"`
}
