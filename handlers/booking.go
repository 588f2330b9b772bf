// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	bookingRepo "luxego/database/repository/booking"
	"luxego/models"
	"luxego/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	result, err := h.Service.SubmitBooking(input)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid booking data",
				"errors":  vErr.Fields,
			})
			return
		}
		h.Logger.Error("booking submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to create booking"})
		return
	}

	message := "Booking submitted successfully! We will contact you soon to confirm your appointment."
	if result.Duplicate {
		message = "Booking received. It appears you may have already submitted a booking recently. Our team will review and contact you to confirm."
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": message,
		"data":    gin.H{"booking": result.Booking},
	})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := bookingRepo.BookingFilter{
		Status: c.Query("status"),
		Email:  c.Query("email"),
	}
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid startDate"})
			return
		}
		filter.StartDate = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid endDate"})
			return
		}
		filter.EndDate = t
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	bookings, total, err := h.Service.ListBookings(filter)
	if err != nil {
		h.Logger.Error("booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to list bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(bookings),
		"total":   total,
		"data":    gin.H{"bookings": bookings},
	})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"booking": b}})
}

// UpdateBooking handles PATCH /api/bookings/:id. Only the allow-listed fields
// are applied; anything else in the body is ignored.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	b, err := h.Service.UpdateBooking(c.Param("id"), update)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"booking": b}})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BookingStats handles GET /api/bookings/stats/summary.
func (h *BookingHandler) BookingStats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		h.Logger.Error("booking stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to compute booking stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"stats":        stats.ByStatus,
			"monthlyStats": stats.CurrentMonth,
		},
	})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var nfErr *booking.NotFoundError
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "No booking found with that ID"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid booking data", "errors": vErr.Fields})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Internal Server Error"})
	}
}

// parseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
