package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	SortOrder int    `json:"sortOrder"`

	Products []Product `json:"-"`
}
