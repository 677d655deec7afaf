package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"gorm.io/gorm"
)

// Admin user-management actions. Every mutation is audited; acting on
// your own account is a silent no-op, as is an unknown status/role.
type AdminService struct {
	DB           *gorm.DB
	UserRepo     *repository.UserRepository
	ActivityRepo *repository.ActivityRepository
	Auth         *AuthService
}

func NewAdminService(db *gorm.DB, ur *repository.UserRepository, ar *repository.ActivityRepository, auth *AuthService) *AdminService {
	return &AdminService{DB: db, UserRepo: ur, ActivityRepo: ar, Auth: auth}
}

const (
	ActionUpdateStatus  = "update_status"
	ActionUpdateRole    = "update_role"
	ActionDeleteUser    = "delete_user"
	ActionResetPassword = "reset_password"
)

func (s *AdminService) ListUsers(f repository.UserFilter) ([]repository.UserSummary, int64, error) {
	return s.UserRepo.List(f)
}

// Dispatch runs one admin action against a target user. A no-op
// (self-target, invalid value, unknown action) returns nil.
func (s *AdminService) Dispatch(actorID uint, action string, targetID uint, value string) error {
	if targetID == actorID {
		return nil // self-action prevention
	}

	switch action {
	case ActionUpdateStatus:
		return s.updateStatus(actorID, targetID, value)
	case ActionUpdateRole:
		return s.updateRole(actorID, targetID, value)
	case ActionDeleteUser:
		return s.deleteUser(actorID, targetID)
	case ActionResetPassword:
		return s.resetPassword(actorID, targetID)
	}
	return nil
}

func (s *AdminService) updateStatus(actorID, targetID uint, status string) error {
	if !entity.ValidUserStatus(status) {
		return nil
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.User{}).Where("id = ?", targetID).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return s.ActivityRepo.Log(tx, actorID, ActionUpdateStatus, targetID, status)
	})
}

func (s *AdminService) updateRole(actorID, targetID uint, role string) error {
	if !entity.ValidRole(role) {
		return nil
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.User{}).Where("id = ?", targetID).Update("role", role)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return s.ActivityRepo.Log(tx, actorID, ActionUpdateRole, targetID, role)
	})
}

// Soft delete: status flips to inactive and the email gets a suffix so
// the original address can register again. History keeps its rows.
func (s *AdminService) deleteUser(actorID, targetID uint) error {
	target, err := s.UserRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	mutated := fmt.Sprintf("%s.deleted.%d", target.Email, time.Now().Unix())
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.User{}).Where("id = ?", targetID).
			Updates(map[string]any{"status": entity.UserInactive, "email": mutated}).Error; err != nil {
			return err
		}
		return s.ActivityRepo.Log(tx, actorID, ActionDeleteUser, targetID, mutated)
	})
}

// resetPassword clears the lockout counter and mails a one-time reset
// link. No temporary password ever leaves the server.
func (s *AdminService) resetPassword(actorID, targetID uint) error {
	target, err := s.UserRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.UserRepo.Update(targetID, map[string]any{"failed_logins": 0}); err != nil {
		return err
	}
	if err := s.Auth.IssueResetFor(target); err != nil {
		return err
	}
	return s.ActivityRepo.Log(s.DB, actorID, ActionResetPassword, targetID, "")
}
