package services

import (
	"testing"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*gorm.DB, *AuthService) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(db, repository.NewUserRepository(db), devMailer(),
		"test-secret", 0, "http://localhost:8000")
	return db, svc
}

func TestRegisterAndLogin(t *testing.T) {
	_, svc := newAuthFixture(t)

	u, err := svc.Register("Som.Chai@Example.COM", "secret123", "Som", "Chai", "555-0101")
	require.NoError(t, err)
	assert.Equal(t, "som.chai@example.com", u.Email, "email stored lowercased")
	assert.Equal(t, entity.RoleCustomer, u.Role)
	assert.False(t, u.IsGuest)
	assert.NotEqual(t, "secret123", u.Password)

	token, got, err := svc.Login("som.chai@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, got.ID)

	_, _, err = svc.Login("som.chai@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register("som.chai@example.com", "other", "X", "Y", "")
	assert.Error(t, err, "duplicate registration rejected")
}

func TestRegisterClaimsGuestAccount(t *testing.T) {
	db, svc := newAuthFixture(t)

	guest := entity.User{
		Email: "walkin@example.com", Password: "unusable", IsGuest: true,
		Role: entity.RoleCustomer, Status: entity.UserActive,
	}
	require.NoError(t, db.Create(&guest).Error)

	// a guest account cannot log in even with the stored hash's input
	_, _, err := svc.Login("walkin@example.com", "unusable")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	claimed, err := svc.Register("walkin@example.com", "newpass99", "Walk", "In", "")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, claimed.ID, "guest row claimed, not duplicated")
	assert.False(t, claimed.IsGuest)
	assert.Equal(t, "Walk", claimed.FirstName)

	_, _, err = svc.Login("walkin@example.com", "newpass99")
	require.NoError(t, err)
}

func TestLoginLockout(t *testing.T) {
	db, svc := newAuthFixture(t)
	_, err := svc.Register("lock@example.com", "rightpass", "L", "O", "")
	require.NoError(t, err)

	for i := 0; i < lockoutThreshold; i++ {
		_, _, err = svc.Login("lock@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// counter hit the threshold, even the right password is refused now
	_, _, err = svc.Login("lock@example.com", "rightpass")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	var u entity.User
	require.NoError(t, db.Where("email = ?", "lock@example.com").First(&u).Error)
	assert.Equal(t, lockoutThreshold, u.FailedLogins)
}

func TestLoginSuspendedAccount(t *testing.T) {
	db, svc := newAuthFixture(t)
	u, err := svc.Register("susp@example.com", "secret123", "S", "U", "")
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", u.ID).
		Update("status", entity.UserSuspended).Error)

	_, _, err = svc.Login("susp@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordFlow(t *testing.T) {
	db, svc := newAuthFixture(t)
	u, err := svc.Register("forgot@example.com", "oldpass11", "F", "G", "")
	require.NoError(t, err)
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", u.ID).
		Update("failed_logins", 3).Error)

	// unknown email is silent, no token row appears
	require.NoError(t, svc.IssueResetToken("nobody@example.com"))
	var count int64
	db.Model(&entity.PasswordReset{}).Count(&count)
	assert.Zero(t, count)

	require.NoError(t, svc.IssueResetToken("forgot@example.com"))
	var pr entity.PasswordReset
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&pr).Error)

	require.NoError(t, svc.ResetPassword(pr.Token, "brandnew22"))

	var after entity.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Zero(t, after.FailedLogins)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.Password), []byte("brandnew22")))

	// token is one-time
	err = svc.ResetPassword(pr.Token, "again33")
	assert.Error(t, err)

	_, _, err = svc.Login("forgot@example.com", "brandnew22")
	require.NoError(t, err)
}
