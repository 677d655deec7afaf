package configs

import (
	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	// TranslateError so unique-index collisions surface as gorm.ErrDuplicatedKey
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SubscriptionPlan{}, &entity.Subscription{},
		&entity.Complaint{},
		&entity.ActivityLog{},
		&entity.PasswordReset{},
	)
}
