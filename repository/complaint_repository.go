package repository

import (
	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

type ComplaintRepository struct{ DB *gorm.DB }

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{DB: db}
}

func (r *ComplaintRepository) Create(tx *gorm.DB, c *entity.Complaint) error {
	return tx.Create(c).Error
}

func (r *ComplaintRepository) ListForUser(userID uint) ([]entity.Complaint, error) {
	var out []entity.Complaint
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ComplaintRepository) FindByID(id uint) (*entity.Complaint, error) {
	var c entity.Complaint
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// staff listing, optional status filter
func (r *ComplaintRepository) List(status string, page, limit int) ([]entity.Complaint, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Complaint{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Complaint
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *ComplaintRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.Complaint{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ComplaintRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Complaint{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
