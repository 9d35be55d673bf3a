package handlers

import (
	"errors"
	"net/http"

	"fairway/models"
	"fairway/services/booking"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes tee-time booking validation.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// ValidateBookingHandler validates a booking request against the course's
// tee sheet. Business rejections (unknown course, unavailable slot, not
// enough capacity) are 200 responses with a structured reason; only
// malformed input is a 400.
func (h *BookingHandler) ValidateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	result, err := h.Svc.Validate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidTime) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
			return
		}
		logger.Error("Booking validation failed", zap.String("courseId", req.CourseID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking validation failed", "")
		return
	}

	c.JSON(http.StatusOK, result)
}
