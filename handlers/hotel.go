package handlers

import (
	"net/http"

	"planmystay/models"
	"planmystay/services/hotel"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelHandler exposes hotel listing endpoints.
type HotelHandler struct {
	Service hotel.HotelService
}

func NewHotelHandler(svc hotel.HotelService) *HotelHandler {
	return &HotelHandler{Service: svc}
}

// CreateHotelHandler registers a new listing owned by the calling admin.
func (h *HotelHandler) CreateHotelHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.Hotel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateHotel(ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("hotel created", zap.String("hotelID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateHotelHandler modifies a listing owned by the calling admin.
func (h *HotelHandler) UpdateHotelHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.Hotel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.UpdateHotel(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetHotelHandler returns one listing.
func (h *HotelHandler) GetHotelHandler(c *gin.Context) {
	found, err := h.Service.GetHotel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListHotelsHandler returns all listings.
func (h *HotelHandler) ListHotelsHandler(c *gin.Context) {
	hotels, err := h.Service.ListHotels()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// ListMyHotelsHandler returns the calling admin's listings.
func (h *HotelHandler) ListMyHotelsHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	hotels, err := h.Service.ListMyHotels(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

type searchRequest struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// SearchHotelsHandler returns listings matching a location.
func (h *HotelHandler) SearchHotelsHandler(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	hotels, err := h.Service.SearchHotels(req.City, req.State, req.Country)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(hotels) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No hotels found for the given location"})
		return
	}
	c.JSON(http.StatusOK, hotels)
}
