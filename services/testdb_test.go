package services

import (
	"fmt"
	"testing"

	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/pkg/mailer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fresh shared in-memory DB per test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SubscriptionPlan{}, &entity.Subscription{},
		&entity.Complaint{},
		&entity.ActivityLog{},
		&entity.PasswordReset{},
	))
	return db
}

func devMailer() *mailer.Mailer {
	return mailer.New("", "", "test@kruathai.example", true)
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Slug: name, Price: price, IsActive: true, StockQuantity: 100}
	require.NoError(t, db.Create(p).Error)
	return p
}
