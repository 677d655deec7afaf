package services

import (
	"errors"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"gorm.io/gorm"
)

type SubscriptionService struct {
	DB   *gorm.DB
	Repo *repository.SubscriptionRepository
}

func NewSubscriptionService(db *gorm.DB, repo *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{DB: db, Repo: repo}
}

func (s *SubscriptionService) Plans() ([]entity.SubscriptionPlan, error) {
	return s.Repo.ListPlans()
}

// Subscribe starts a plan for the user; one active subscription at a time.
func (s *SubscriptionService) Subscribe(userID, planID uint) (*entity.Subscription, error) {
	if _, err := s.Repo.FindPlan(planID); err != nil {
		return nil, errors.New("plan not found")
	}

	active, err := s.Repo.CountActiveForUser(userID)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, errors.New("already has an active subscription")
	}

	sub := &entity.Subscription{
		UserID:    userID,
		PlanID:    planID,
		Status:    entity.SubscriptionActive,
		StartDate: time.Now(),
	}
	if err := s.Repo.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) ListForUser(userID uint) ([]entity.Subscription, error) {
	return s.Repo.ListForUser(userID)
}

func (s *SubscriptionService) Cancel(userID, subID uint) error {
	sub, err := s.Repo.FindForUser(userID, subID)
	if err != nil {
		return errors.New("subscription not found")
	}
	if sub.Status == entity.SubscriptionCancelled {
		return nil
	}
	now := time.Now()
	return s.DB.Model(&entity.Subscription{}).Where("id = ?", sub.ID).
		Updates(map[string]any{"status": entity.SubscriptionCancelled, "end_date": now}).Error
}
