package routes

import (
	"burgerhouse/configs"
	"burgerhouse/controllers"
	"burgerhouse/entity"
	"burgerhouse/middlewares"
	"burgerhouse/repository"
	"burgerhouse/services"
	"burgerhouse/utils"
	"burgerhouse/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	utils.RegisterValidators()
	r.Use(middlewares.CORSMiddleware(cfg.FrontendURL))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	toppingRepo := repository.NewToppingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, toppingRepo, hub)
	checkoutSvc := services.NewCheckoutService(db, checkoutRepo, orderSvc, cfg.CheckoutURL, cfg.FrontendURL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWTTTL)
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo))
	toppingCtrl := controllers.NewToppingController(services.NewToppingService(toppingRepo))
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))
	orderCtrl := controllers.NewOrderController(orderSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	reportCtrl := controllers.NewReportController(services.NewReportService(reportRepo))

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog: reads are public, writes are admin only
	p := r.Group("/products")
	{
		p.GET("", productCtrl.List)
		p.GET("/:name", productCtrl.Get)
		p.POST("", admin, productCtrl.Create)
		p.PUT("/:name", admin, productCtrl.Update)
		p.DELETE("/:name", admin, productCtrl.Delete)
	}
	t := r.Group("/toppings")
	{
		t.GET("", toppingCtrl.List)
		t.GET("/:name", toppingCtrl.Get)
		t.POST("", admin, toppingCtrl.Create)
		t.PUT("/:name", admin, toppingCtrl.Update)
		t.DELETE("/:name", admin, toppingCtrl.Delete)
	}

	// Users (admin only)
	u := r.Group("/users", admin)
	{
		u.GET("", userCtrl.List)
		u.GET("/:email", userCtrl.Get)
		u.POST("", userCtrl.Create)
		u.PUT("/:email", userCtrl.Update)
		u.DELETE("/:email", userCtrl.Delete)
	}

	// Orders
	o := r.Group("/orders", auth)
	{
		o.POST("", orderCtrl.Create)
		o.POST("/quote", orderCtrl.Quote)
		o.GET("/me", orderCtrl.ListForMe)
		o.GET("/:id", orderCtrl.Detail)
		o.GET("", admin, orderCtrl.List)
		o.PATCH("/:id/status", admin, orderCtrl.UpdateStatus)
	}

	// Checkout
	ck := r.Group("/checkout", auth)
	{
		ck.POST("", checkoutCtrl.Start)
		ck.POST("/:session/success", checkoutCtrl.Success)
		ck.POST("/:session/cancel", checkoutCtrl.Cancel)
	}

	// Reports (admin only)
	rp := r.Group("/reports", admin)
	{
		rp.GET("/sales", reportCtrl.Sales)
		rp.GET("/top-products", reportCtrl.TopProducts)
	}

	// WebSocket
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
