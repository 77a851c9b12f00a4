package routes

import (
	"net/http"

	userRepo "planmystay/database/repository/user"
	"planmystay/handlers"
	"planmystay/middleware"
	"planmystay/models"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers and repositories route registration needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *handlers.AuthHandler
	Hotel    *handlers.HotelHandler
	Booking  *handlers.BookingHandler
	Review   *handlers.ReviewHandler
	Wishlist *handlers.WishlistHandler
}

// RegisterRoutes wires the full API surface onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterWishlistRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Plan My Stay API running"})
	})
}

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterHotelRoutes registers public listing endpoints and admin management.
func RegisterHotelRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("", hb.Hotel.ListHotelsHandler)
		api.POST("/search", hb.Hotel.SearchHotelsHandler)
		api.GET("/:id", hb.Hotel.GetHotelHandler)

		// Admin endpoints.
		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Hotel.CreateHotelHandler)
		admin.PUT("/:id", hb.Hotel.UpdateHotelHandler)
	}

	// Own-listings live outside /api/hotels so the static path cannot collide
	// with the :id wildcard.
	mine := r.Group("/api/my-hotels")
	mine.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
	mine.GET("", hb.Hotel.ListMyHotelsHandler)
}

// RegisterBookingRoutes registers customer booking and admin moderation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/history", hb.Booking.BookingHistoryHandler)
		api.GET("/active", hb.Booking.ActiveBookingsHandler)

		// Admin moderation endpoints.
		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("/pending", hb.Booking.PendingBookingsHandler)
		admin.POST("/:id/approve", hb.Booking.ApproveBookingHandler)
		admin.POST("/:id/deny", hb.Booking.DenyBookingHandler)
		admin.GET("/owned/confirmed", hb.Booking.OwnedConfirmedBookingsHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), hb.Review.AddReviewHandler)
		api.GET("/hotel/:hotelId", hb.Review.HotelReviewsHandler)
	}
}

// RegisterWishlistRoutes registers wishlist endpoints.
func RegisterWishlistRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/wishlist")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", hb.Wishlist.AddToWishlistHandler)
		api.GET("", hb.Wishlist.GetWishlistHandler)
		api.DELETE("", hb.Wishlist.RemoveFromWishlistHandler)
	}
}
