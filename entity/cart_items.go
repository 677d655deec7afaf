package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID   uint    `json:"productId"`
	Product     Product `json:"-"`
	ProductName string  `json:"productName"` // snapshot at add time

	Qty       int   `gorm:"not null" json:"qty"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"` // base price snapshot, cents

	// customization flags; per-unit surcharge snapshotted alongside
	ExtraProtein    bool  `gorm:"not null;default:false" json:"extraProtein"`
	ExtraVegetables bool  `gorm:"not null;default:false" json:"extraVegetables"`
	UnitSurcharge   int64 `gorm:"not null;default:0" json:"unitSurcharge"`

	LineTotal int64 `gorm:"not null" json:"lineTotal"`
}
