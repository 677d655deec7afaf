package services

import (
	"errors"
	"strings"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/pkg/mailer"
	"github.com/werawoot/Krua-Thai1-sub002/repository"
	"github.com/werawoot/Krua-Thai1-sub002/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const resetTokenTTL = 30 * time.Minute

// AuthService handles register/login/profile and the reset-token flow.
type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	Mailer    *mailer.Mailer
	JWTSecret string
	JWTTTL    time.Duration
	BaseURL   string
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, m *mailer.Mailer, secret string, ttl time.Duration, baseURL string) *AuthService {
	return &AuthService{DB: db, UserRepo: repo, Mailer: m, JWTSecret: secret, JWTTTL: ttl, BaseURL: baseURL}
}

// Register creates an account. An email that already belongs to a guest
// account (created at checkout) claims that account instead of failing,
// so the guest's order history carries over.
func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	existing, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		if !existing.IsGuest {
			return nil, errors.New("email already registered")
		}
		// claim the guest account
		updates := map[string]any{
			"password":   string(hashed),
			"is_guest":   false,
			"first_name": strings.TrimSpace(firstName),
			"last_name":  strings.TrimSpace(lastName),
		}
		if phone != "" {
			updates["phone_number"] = strings.TrimSpace(phone)
		}
		if err := s.UserRepo.Update(existing.ID, updates); err != nil {
			return nil, err
		}
		return s.UserRepo.FindByID(existing.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        entity.RoleCustomer,
		Status:      entity.UserActive,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

const lockoutThreshold = 5

// Login verifies credentials and issues a JWT. Failed attempts bump a
// counter that admins can clear via reset_password.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Status != entity.UserActive || user.IsGuest {
		return "", nil, ErrInvalidCredentials
	}
	if user.FailedLogins >= lockoutThreshold {
		return "", nil, errors.New("account locked, reset your password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		_ = s.UserRepo.Update(user.ID, map[string]any{"failed_logins": user.FailedLogins + 1})
		return "", nil, ErrInvalidCredentials
	}

	if user.FailedLogins != 0 {
		_ = s.UserRepo.Update(user.ID, map[string]any{"failed_logins": 0})
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.UserRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}

// ----- Reset-token flow (shared by forgot-password and admin reset) -----

// IssueResetToken stores a one-time token and mails a reset link.
// Unknown emails return nil so the endpoint can't be used to enumerate
// accounts.
func (s *AuthService) IssueResetToken(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.IssueResetFor(user)
}

func (s *AuthService) IssueResetFor(user *entity.User) error {
	token, err := utils.RandomToken(32)
	if err != nil {
		return err
	}
	pr := &entity.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.UserRepo.CreatePasswordReset(pr); err != nil {
		return err
	}
	link := s.BaseURL + "/reset-password?token=" + token
	return s.Mailer.Send(user.Email,
		"Reset your Krua Thai password",
		"Use this link within 30 minutes to choose a new password:\n\n"+link)
}

// ResetPassword consumes a token and sets the new password.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	pr, err := s.UserRepo.FindActiveReset(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.User{}).Where("id = ?", pr.UserID).
			Updates(map[string]any{"password": string(hashed), "failed_logins": 0}).Error; err != nil {
			return err
		}
		return s.UserRepo.MarkResetUsed(tx, pr.ID)
	})
}
