package repository

import (
	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ DB *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Log(tx *gorm.DB, actorID uint, action string, targetID uint, detail string) error {
	return tx.Create(&entity.ActivityLog{
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
		Detail:   detail,
	}).Error
}

func (r *ActivityRepository) ListRecent(limit int) ([]entity.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.ActivityLog
	err := r.DB.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
