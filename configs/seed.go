package configs

import (
	"log"

	"github.com/werawoot/Krua-Thai1-sub002/entity"

	"golang.org/x/crypto/bcrypt"
)

// First-run admin account from env
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
		Status:    entity.UserActive,
	}
	return db.Create(&admin).Error
}

// Seed starter catalog + subscription plans
func SeedLookups() error {
	db := DB()

	// Menu categories
	cats := []entity.MenuCategory{
		{Name: "Curries", Slug: "curries", SortOrder: 1},
		{Name: "Noodles", Slug: "noodles", SortOrder: 2},
		{Name: "Stir-Fry", Slug: "stir-fry", SortOrder: 3},
		{Name: "Salads", Slug: "salads", SortOrder: 4},
		{Name: "Desserts", Slug: "desserts", SortOrder: 5},
	}
	for i := range cats {
		db.FirstOrCreate(&cats[i], entity.MenuCategory{Slug: cats[i].Slug})
	}

	byslug := func(slug string) uint {
		for _, c := range cats {
			if c.Slug == slug {
				return c.ID
			}
		}
		return 0
	}

	seed := []entity.Product{
		{Name: "Green Curry", Slug: "green-curry", Description: "Coconut green curry with Thai basil", Price: 2499, MenuCategoryID: byslug("curries"), StockQuantity: 50, SpiceLevel: 3},
		{Name: "Massaman Curry", Slug: "massaman-curry", Description: "Slow-braised massaman with peanuts", Price: 2599, MenuCategoryID: byslug("curries"), StockQuantity: 50, SpiceLevel: 1},
		{Name: "Pad Thai", Slug: "pad-thai", Description: "Rice noodles, tamarind, crushed peanuts", Price: 1999, MenuCategoryID: byslug("noodles"), StockQuantity: 80, SpiceLevel: 1},
		{Name: "Pad See Ew", Slug: "pad-see-ew", Description: "Wide noodles in sweet soy", Price: 1899, MenuCategoryID: byslug("noodles"), StockQuantity: 80, SpiceLevel: 0},
		{Name: "Pad Krapow", Slug: "pad-krapow", Description: "Holy basil stir-fry over jasmine rice", Price: 1799, MenuCategoryID: byslug("stir-fry"), StockQuantity: 60, SpiceLevel: 3},
		{Name: "Som Tum", Slug: "som-tum", Description: "Green papaya salad", Price: 1499, MenuCategoryID: byslug("salads"), StockQuantity: 40, SpiceLevel: 2},
		{Name: "Mango Sticky Rice", Slug: "mango-sticky-rice", Description: "Sweet sticky rice with ripe mango", Price: 1299, MenuCategoryID: byslug("desserts"), StockQuantity: 30, SpiceLevel: 0},
	}
	for i := range seed {
		db.FirstOrCreate(&seed[i], entity.Product{Slug: seed[i].Slug})
	}

	// Subscription plans
	plans := []entity.SubscriptionPlan{
		{Name: "Starter", MealsPerWeek: 4, FinalPrice: 6999, SortOrder: 1},
		{Name: "Family", MealsPerWeek: 8, FinalPrice: 12999, IsPopular: true, SortOrder: 2},
		{Name: "Feast", MealsPerWeek: 12, FinalPrice: 17999, SortOrder: 3},
	}
	for i := range plans {
		db.FirstOrCreate(&plans[i], entity.SubscriptionPlan{Name: plans[i].Name})
	}

	return nil
}
