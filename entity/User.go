package entity

import (
	"gorm.io/gorm"
)

// Roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleKitchen  = "kitchen"
	RoleRider    = "rider"
	RoleSupport  = "support"
)

// Account statuses
const (
	UserActive              = "active"
	UserInactive            = "inactive"
	UserSuspended           = "suspended"
	UserPendingVerification = "pending_verification"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`
	Status      string `gorm:"not null;default:active" json:"status"`

	// guest checkout creates a real row; guest-ness is this flag,
	// never a NULL user_id on the order
	IsGuest       bool `gorm:"not null;default:false" json:"isGuest"`
	EmailVerified bool `gorm:"not null;default:false" json:"emailVerified"`

	// default shipping profile, filled from the first checkout for guests
	DeliveryAddress string `json:"deliveryAddress"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`

	FailedLogins int `gorm:"not null;default:0" json:"-"`

	// Relations - preload only when needed
	Orders        []Order        `json:"-"`
	Subscriptions []Subscription `json:"-"`
	Complaints    []Complaint    `json:"-"`
}

func ValidRole(r string) bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleKitchen, RoleRider, RoleSupport:
		return true
	}
	return false
}

func ValidUserStatus(s string) bool {
	switch s {
	case UserActive, UserInactive, UserSuspended, UserPendingVerification:
		return true
	}
	return false
}
