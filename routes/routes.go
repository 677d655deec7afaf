package routes

import (
	"github.com/werawoot/Krua-Thai1-sub002/configs"
	"github.com/werawoot/Krua-Thai1-sub002/controllers"
	"github.com/werawoot/Krua-Thai1-sub002/entity"
	"github.com/werawoot/Krua-Thai1-sub002/middlewares"
	"github.com/werawoot/Krua-Thai1-sub002/pkg/mailer"
	"github.com/werawoot/Krua-Thai1-sub002/repository"
	"github.com/werawoot/Krua-Thai1-sub002/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.IsDev())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, mail, cfg.JWTSecret, cfg.JWTTTL, cfg.AppBaseURL)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, productRepo, userRepo, mail)
	adminSvc := services.NewAdminService(db, userRepo, activityRepo, authSvc)
	subSvc := services.NewSubscriptionService(db, subRepo)
	complaintSvc := services.NewComplaintService(db, complaintRepo, activityRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	subCtrl := controllers.NewSubscriptionController(subSvc)
	complaintCtrl := controllers.NewComplaintController(complaintSvc)
	adminCtrl := controllers.NewAdminController(db, adminSvc, complaintSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/categories", productCtrl.Categories)
	r.GET("/plans", subCtrl.Plans)

	// Cart + checkout: guests welcome, identity attached when present
	shop := r.Group("/", middlewares.OptionalAuth(cfg.JWTSecret))
	{
		shop.GET("/cart", cartCtrl.Get)
		shop.POST("/cart/items", cartCtrl.Add)
		shop.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		shop.DELETE("/cart/items", cartCtrl.RemoveItem)
		shop.DELETE("/cart", cartCtrl.Clear)
		shop.POST("/checkout", orderCtrl.Checkout)
	}

	// Guest order tracking (public)
	r.GET("/order-status", orderCtrl.GuestStatus)

	// Orders (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.Detail)

		u.POST("/subscriptions", subCtrl.Subscribe)
		u.GET("/subscriptions/me", subCtrl.Mine)
		u.PATCH("/subscriptions/:id/cancel", subCtrl.Cancel)

		u.POST("/complaints", complaintCtrl.Create)
		u.GET("/complaints/me", complaintCtrl.Mine)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.POST("/users", adminCtrl.UserAction)
	}

	// Support staff see complaints too
	support := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin, entity.RoleSupport))
	{
		support.GET("/complaints", adminCtrl.Complaints)
		support.PATCH("/complaints/:id/status", adminCtrl.UpdateComplaintStatus)
	}
}
