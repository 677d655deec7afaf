package repository

import (
	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

type SubscriptionRepository struct{ DB *gorm.DB }

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) ListPlans() ([]entity.SubscriptionPlan, error) {
	var plans []entity.SubscriptionPlan
	err := r.DB.Order("sort_order ASC").Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepository) FindPlan(id uint) (*entity.SubscriptionPlan, error) {
	var p entity.SubscriptionPlan
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SubscriptionRepository) Create(s *entity.Subscription) error {
	return r.DB.Create(s).Error
}

func (r *SubscriptionRepository) ListForUser(userID uint) ([]entity.Subscription, error) {
	var out []entity.Subscription
	err := r.DB.Preload("Plan").Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *SubscriptionRepository) CountActiveForUser(userID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Subscription{}).
		Where("user_id = ? AND status = ?", userID, entity.SubscriptionActive).
		Count(&n).Error
	return n, err
}

func (r *SubscriptionRepository) FindForUser(userID, subID uint) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := r.DB.Where("id = ? AND user_id = ?", subID, userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) CountActive() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Subscription{}).
		Where("status = ?", entity.SubscriptionActive).Count(&n).Error
	return n, err
}
