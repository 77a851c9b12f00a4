package handlers

import (
	"errors"
	"net/http"

	"planmystay/models"
	"planmystay/services/review"
	"planmystay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors to HTTP status codes and emits the standard
// error envelope. Unknown errors become a 500 with the detail logged, not leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidRange),
		errors.Is(err, models.ErrInvalidTransition):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, models.ErrInvalidCreds):
		utils.JSONError(c, http.StatusBadRequest, "Invalid credentials", "")
	case errors.Is(err, models.ErrHotelNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, models.ErrNotAuthorized),
		errors.Is(err, review.ErrNoCompletedStay):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, models.ErrRangeConflict):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, models.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		getLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

// currentUserID returns the authenticated user ID set by JWTAuthMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get("userID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id.(string), true
}
