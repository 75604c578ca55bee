package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tourism-backend/configs"
	"tourism-backend/controllers"
	"tourism-backend/middlewares"
	"tourism-backend/repository"
	"tourism-backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	scenicRepo := repository.NewScenicRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	checkinRepo := repository.NewCheckInRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, scenicRepo, routeRepo, hotelRepo)
	commentSvc := services.NewCommentService(db, commentRepo, scenicRepo, hotelRepo, foodRepo, routeRepo, newsRepo)
	assistantSvc := services.NewAssistantService(planRepo, scenicRepo, services.NewTemplateGenerator())

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	scenicCtrl := controllers.NewScenicController(scenicRepo, commentRepo)
	routeCtrl := controllers.NewRouteController(routeRepo)
	hotelCtrl := controllers.NewHotelController(hotelRepo, commentRepo)
	foodCtrl := controllers.NewFoodController(foodRepo)
	newsCtrl := controllers.NewNewsController(newsRepo, commentRepo)
	commentCtrl := controllers.NewCommentController(commentSvc)
	checkinCtrl := controllers.NewCheckInController(checkinRepo, scenicRepo)
	favCtrl := controllers.NewFavoriteController(userRepo, scenicRepo, routeRepo, hotelRepo, foodRepo, newsRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	assistantCtrl := controllers.NewAssistantController(assistantSvc)
	adminCtrl := controllers.NewAdminController(db, orderRepo, orderSvc)
	homeCtrl := controllers.NewHomeController(scenicRepo, routeRepo, hotelRepo, foodRepo, newsRepo, checkinRepo)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	staff := middlewares.AuthMiddleware(cfg.JWTSecret, "staff")
	cache := middlewares.CacheMiddleware(rdb, cfg.CacheTTL)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalogs, cached when Redis is up
	pub := r.Group("", cache)
	{
		pub.GET("/home", homeCtrl.Home)

		pub.GET("/scenic/categories", scenicCtrl.Categories)
		pub.GET("/scenic/spots", scenicCtrl.List)
		pub.GET("/scenic/spots/:id", scenicCtrl.Detail)

		pub.GET("/routes/categories", routeCtrl.Categories)
		pub.GET("/routes", routeCtrl.List)
		pub.GET("/routes/:id", routeCtrl.Detail)

		pub.GET("/hotels", hotelCtrl.List)
		pub.GET("/hotels/:id", hotelCtrl.Detail)

		pub.GET("/foods/categories", foodCtrl.Categories)
		pub.GET("/foods", foodCtrl.List)
		pub.GET("/foods/:id", foodCtrl.Detail)

		pub.GET("/news/categories", newsCtrl.Categories)
		pub.GET("/news", newsCtrl.List)
		pub.GET("/news/:id", newsCtrl.Detail)
	}

	// Public, never cached
	r.GET("/comments", commentCtrl.ListByTarget)
	r.GET("/scenic/spots/:id/checkins", checkinCtrl.ListBySpot)
	r.POST("/assistant/plan", middlewares.OptionalAuthMiddleware(cfg.JWTSecret), assistantCtrl.Plan)

	// Orders (user)
	u := r.Group("", auth)
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:sn", orderCtrl.Detail)
		u.GET("/orders/:sn/pay", orderCtrl.Pay)
		u.POST("/orders/:sn/cancel", orderCtrl.Cancel)

		u.POST("/comments", commentCtrl.Create)
		u.DELETE("/comments/:id", commentCtrl.Delete)

		u.POST("/checkins", checkinCtrl.Create)
		u.DELETE("/checkins/:id", checkinCtrl.Delete)

		u.POST("/favorites", favCtrl.Add)
		u.GET("/favorites", favCtrl.List)
		u.DELETE("/favorites", favCtrl.Remove)

		u.GET("/assistant/history", assistantCtrl.History)
		u.PATCH("/assistant/history/:id/favorite", assistantCtrl.SetFavorite)
	}

	// Profile
	profile := r.Group("/profile", auth)
	{
		profile.GET("/checkins", checkinCtrl.ListMine)
	}

	// Staff admin
	admin := r.Group("/admin", staff)
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.Orders)
		admin.PATCH("/orders/:sn/complete", adminCtrl.CompleteOrder)

		admin.POST("/scenic/spots", adminCtrl.CreateSpot)
		admin.PATCH("/scenic/spots/:id", adminCtrl.UpdateSpot)
		admin.DELETE("/scenic/spots/:id", adminCtrl.DeleteSpot)

		admin.POST("/routes", adminCtrl.CreateRoute)
		admin.PATCH("/routes/:id", adminCtrl.UpdateRoute)
		admin.DELETE("/routes/:id", adminCtrl.DeleteRoute)

		admin.POST("/hotels", adminCtrl.CreateHotel)
		admin.PATCH("/hotels/:id", adminCtrl.UpdateHotel)
		admin.DELETE("/hotels/:id", adminCtrl.DeleteHotel)

		admin.POST("/room-types", adminCtrl.CreateRoom)
		admin.PATCH("/room-types/:id", adminCtrl.UpdateRoom)
		admin.DELETE("/room-types/:id", adminCtrl.DeleteRoom)

		admin.POST("/foods", adminCtrl.CreateFood)
		admin.PATCH("/foods/:id", adminCtrl.UpdateFood)
		admin.DELETE("/foods/:id", adminCtrl.DeleteFood)

		admin.POST("/news", adminCtrl.CreateNews)
		admin.PATCH("/news/:id", adminCtrl.UpdateNews)
		admin.DELETE("/news/:id", adminCtrl.DeleteNews)

		admin.DELETE("/comments/:id", commentCtrl.Delete)
	}
}
