package entity

import (
	"gorm.io/gorm"
)

// Order statuses, in fulfilment order
const (
	OrderPending    = "pending"
	OrderPaid       = "paid"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// All money fields are cents. Total = Subtotal + ShippingCost + TaxAmount.
type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"` // preload for guest-ness checks only

	// shipping snapshot
	CustomerEmail string `gorm:"index;not null" json:"customerEmail"`
	ShippingName  string `json:"shippingName"`
	ShippingPhone string `json:"shippingPhone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`

	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	TaxAmount    int64 `json:"taxAmount"`
	Total        int64 `json:"total"`

	Status         string `gorm:"not null;default:pending" json:"status"`
	PaymentStatus  string `gorm:"not null;default:pending" json:"paymentStatus"`
	TrackingNumber string `json:"trackingNumber"`

	// preload only on detail
	OrderItems []OrderItem `json:"-"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPaid, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
