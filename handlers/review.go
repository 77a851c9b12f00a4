package handlers

import (
	"net/http"

	"planmystay/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes hotel review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

type addReviewRequest struct {
	HotelID string `json:"hotelId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// AddReviewHandler records a review for a hotel the caller has stayed in.
func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.AddReview(customerID, req.HotelID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// HotelReviewsHandler returns all reviews for a hotel.
func (h *ReviewHandler) HotelReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListHotelReviews(c.Param("hotelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
