package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planmystay/config"
	"planmystay/cron"
	"planmystay/database"
	bookingRepoPkg "planmystay/database/repository/booking"
	hotelRepoPkg "planmystay/database/repository/hotel"
	reviewRepoPkg "planmystay/database/repository/review"
	userRepoPkg "planmystay/database/repository/user"
	"planmystay/handlers"
	"planmystay/middleware"
	"planmystay/routes"
	"planmystay/services/booking"
	"planmystay/services/hotel"
	"planmystay/services/review"
	"planmystay/services/user"
	"planmystay/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories.
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	hotelCache := &utils.RedisHotelCache{Client: utils.GetCacheClient()}

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	hotelService := &hotel.DefaultHotelService{Repo: hotelRepo, Cache: hotelCache}
	bookingService := &booking.DefaultBookingService{
		HotelRepo:   hotelRepo,
		BookingRepo: bookingRepo,
		Clock:       booking.SystemClock{},
		InvalidateHotel: func(hotelID string) {
			hotelCache.Drop(context.Background(), hotelID)
		},
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		Clock:       booking.SystemClock{},
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Hotel:    handlers.NewHotelHandler(hotelService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Review:   handlers.NewReviewHandler(reviewService),
		Wishlist: handlers.NewWishlistHandler(userService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the nightly reserved-range sweeper.
	sweeper := cron.NewSweeper(bookingService, config.AppConfig.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start sweeper: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
