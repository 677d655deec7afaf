package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintService struct {
	DB           *gorm.DB
	Repo         *repository.ComplaintRepository
	ActivityRepo *repository.ActivityRepository
}

func NewComplaintService(db *gorm.DB, repo *repository.ComplaintRepository, ar *repository.ActivityRepository) *ComplaintService {
	return &ComplaintService{DB: db, Repo: repo, ActivityRepo: ar}
}

type CreateComplaintIn struct {
	SubscriptionID *uint  `json:"subscriptionId"`
	Category       string `json:"category" binding:"required"`
	Priority       string `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
}

func newComplaintNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("CMP-%s-%s", time.Now().Format("20060102"), suffix)
}

func (s *ComplaintService) Create(userID uint, in *CreateComplaintIn) (*entity.Complaint, error) {
	priority := in.Priority
	if priority == "" {
		priority = "normal"
	}

	c := &entity.Complaint{
		UserID:         userID,
		SubscriptionID: in.SubscriptionID,
		Category:       in.Category,
		Priority:       priority,
		Title:          in.Title,
		Description:    in.Description,
		Status:         entity.ComplaintOpen,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for attempt := 0; ; attempt++ {
			c.ComplaintNumber = newComplaintNumber()
			err := s.Repo.Create(tx, c)
			if err == nil {
				return nil
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < 3 {
				continue
			}
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ComplaintService) ListForUser(userID uint) ([]entity.Complaint, error) {
	return s.Repo.ListForUser(userID)
}

func (s *ComplaintService) List(status string, page, limit int) ([]entity.Complaint, int64, error) {
	return s.Repo.List(status, page, limit)
}

// UpdateStatus ignores junk statuses, audits real changes.
func (s *ComplaintService) UpdateStatus(actorID, complaintID uint, status string) error {
	if !entity.ValidComplaintStatus(status) {
		return errors.New("invalid status")
	}
	if _, err := s.Repo.FindByID(complaintID); err != nil {
		return errors.New("complaint not found")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, complaintID, status); err != nil {
			return err
		}
		return s.ActivityRepo.Log(tx, actorID, "complaint_status", complaintID, status)
	})
}
