package repository

import (
	"strings"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ---------------- Admin listing ----------------

const UsersPerPage = 20

// Absent filters impose no constraint; everything binds as parameters.
type UserFilter struct {
	Search string
	Role   string
	Status string
	Page   int // 1-indexed
}

type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	IsGuest   bool      `json:"isGuest"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *UserRepository) List(f UserFilter) ([]UserSummary, int64, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * UsersPerPage

	q := r.DB.Model(&entity.User{})
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []UserSummary
	err := q.Select("id, email, first_name, last_name, role, status, is_guest, created_at").
		Order("created_at DESC").
		Limit(UsersPerPage).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// ---------------- Password resets ----------------

func (r *UserRepository) CreatePasswordReset(pr *entity.PasswordReset) error {
	return r.DB.Create(pr).Error
}

func (r *UserRepository) FindActiveReset(token string) (*entity.PasswordReset, error) {
	var pr entity.PasswordReset
	err := r.DB.Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now()).
		First(&pr).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *UserRepository) MarkResetUsed(tx *gorm.DB, id uint) error {
	now := time.Now()
	return tx.Model(&entity.PasswordReset{}).Where("id = ?", id).Update("used_at", now).Error
}
