package entity

import (
	"gorm.io/gorm"
)

// Audit trail for staff actions (admin user mutations, complaint updates).
type ActivityLog struct {
	gorm.Model
	ActorID  uint   `gorm:"index" json:"actorId"`
	Action   string `gorm:"not null" json:"action"`
	TargetID uint   `json:"targetId"`
	Detail   string `json:"detail"`
}
