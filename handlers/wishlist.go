package handlers

import (
	"net/http"

	"planmystay/services/user"

	"github.com/gin-gonic/gin"
)

// WishlistHandler exposes the caller's hotel wishlist.
type WishlistHandler struct {
	Service user.UserService
}

func NewWishlistHandler(svc user.UserService) *WishlistHandler {
	return &WishlistHandler{Service: svc}
}

type wishlistRequest struct {
	HotelID string `json:"hotelId" binding:"required"`
}

// AddToWishlistHandler saves a hotel on the caller's wishlist.
func (h *WishlistHandler) AddToWishlistHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hotel ID required"})
		return
	}

	if err := h.Service.AddToWishlist(userID, req.HotelID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel added to wishlist"})
}

// RemoveFromWishlistHandler removes a hotel from the caller's wishlist.
func (h *WishlistHandler) RemoveFromWishlistHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hotel ID required"})
		return
	}

	if err := h.Service.RemoveFromWishlist(userID, req.HotelID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel removed from wishlist"})
}

// GetWishlistHandler returns the caller's wishlist.
func (h *WishlistHandler) GetWishlistHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	wishlist, err := h.Service.GetWishlist(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": wishlist})
}
