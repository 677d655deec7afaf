package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID   uint    `json:"productId"`
	Product     Product `json:"-"`
	ProductName string  `json:"productName"` // denormalized snapshot

	Qty       int   `gorm:"not null;check:qty >= 1" json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // base price snapshot, cents

	ExtraProtein    bool `gorm:"not null;default:false" json:"extraProtein"`
	ExtraVegetables bool `gorm:"not null;default:false" json:"extraVegetables"`

	Total int64 `json:"total"` // (unit + surcharges) * qty
}
