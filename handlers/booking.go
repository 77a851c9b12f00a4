package handlers

import (
	"net/http"
	"time"

	"planmystay/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type createBookingRequest struct {
	HotelID  string    `json:"hotelId" binding:"required"`
	CheckIn  time.Time `json:"checkIn" binding:"required"`
	CheckOut time.Time `json:"checkOut" binding:"required"`
}

// CreateBookingHandler records a pending stay request for the calling customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in or check-out date"})
		return
	}

	created, err := h.Service.CreateBooking(req.HotelID, customerID, req.CheckIn, req.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// ApproveBookingHandler confirms a pending booking on a hotel the caller owns.
func (h *BookingHandler) ApproveBookingHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	approved, updatedHotel, err := h.Service.ApproveBooking(c.Param("id"), actorID)
	if err != nil {
		getLogger(c).Warn("approval rejected",
			zap.String("bookingID", c.Param("id")),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": approved, "hotel": updatedHotel})
}

// DenyBookingHandler cancels a pending booking on a hotel the caller owns.
func (h *BookingHandler) DenyBookingHandler(c *gin.Context) {
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	denied, err := h.Service.DenyBooking(c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": denied})
}

// BookingHistoryHandler returns the caller's elapsed bookings.
func (h *BookingHandler) BookingHistoryHandler(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookings, err := h.Service.History(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ActiveBookingsHandler returns the caller's current and upcoming bookings.
func (h *BookingHandler) ActiveBookingsHandler(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ActiveAndUpcoming(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// PendingBookingsHandler lists pending bookings on the caller's hotels.
func (h *BookingHandler) PendingBookingsHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	pending, err := h.Service.PendingForOwner(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// OwnedConfirmedBookingsHandler lists confirmed bookings on the caller's hotels.
func (h *BookingHandler) OwnedConfirmedBookingsHandler(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	confirmed, err := h.Service.ConfirmedForOwner(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmed)
}
