package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"equiprent/internal/cache"
	"equiprent/internal/config"
	"equiprent/internal/database"
	"equiprent/internal/jobs"
	"equiprent/internal/middleware"
	"equiprent/internal/modules/admin"
	"equiprent/internal/modules/auth"
	"equiprent/internal/modules/booking"
	"equiprent/internal/modules/catalog"
	"equiprent/internal/modules/favorite"
	"equiprent/internal/modules/review"
	"equiprent/internal/notify"
	jwtsvc "equiprent/internal/pkg/jwt"
	"equiprent/internal/pricing"
	"equiprent/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	catalogCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if catalogCache == nil {
		log.Println("redis not configured, catalog caching disabled")
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	calculator := pricing.NewCalculator(cfg.DeliveryFee, cfg.TaxRate)

	hub := notify.NewHub()
	defer hub.Close()
	notifyService := notify.NewService(hub)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(equipmentRepo, categoryRepo, catalogCache))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, equipmentRepo, calculator, notifyService))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, equipmentRepo))
	favoriteHandler := favorite.NewHandler(favoriteRepo, equipmentRepo)
	adminHandler := admin.NewHandler(bookingRepo)
	notifyHandler := notify.NewHandler(hub)

	runner := jobs.NewRunner(bookingRepo)
	if err := runner.Start(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer runner.Stop()

	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := router.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)
	reviewHandler.RegisterPublicRoutes(v1)
	bookingHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtService))
	authHandler.RegisterProtectedRoutes(protected)
	reviewHandler.RegisterProtectedRoutes(protected)
	bookingHandler.RegisterProtectedRoutes(protected)
	favoriteHandler.RegisterRoutes(protected)
	notifyHandler.RegisterRoutes(protected)

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.Auth(jwtService), middleware.AdminOnly())
	catalogHandler.RegisterAdminRoutes(adminGroup)
	adminHandler.RegisterRoutes(adminGroup)

	log.Printf("listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
