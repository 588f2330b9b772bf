package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "luxego/database/repository/booking"
	"luxego/models"
	"luxego/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns canned results per method.
type stubBookingService struct {
	submitResult *booking.SubmitResult
	submitErr    error
	getBooking   *models.Booking
	getErr       error
	updateResult *models.Booking
	updateErr    error
	deleteErr    error
	listBookings []models.Booking
	listTotal    int64
	stats        *models.BookingStats
}

func (s *stubBookingService) SubmitBooking(input models.BookingInput) (*booking.SubmitResult, error) {
	return s.submitResult, s.submitErr
}

func (s *stubBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.getBooking, s.getErr
}

func (s *stubBookingService) ListBookings(filter bookingRepo.BookingFilter) ([]models.Booking, int64, error) {
	return s.listBookings, s.listTotal, nil
}

func (s *stubBookingService) UpdateBooking(id string, update models.BookingUpdate) (*models.Booking, error) {
	return s.updateResult, s.updateErr
}

func (s *stubBookingService) DeleteBooking(id string) error {
	return s.deleteErr
}

func (s *stubBookingService) Stats() (*models.BookingStats, error) {
	return s.stats, nil
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.ListBookings)
	api.GET("/bookings/stats/summary", h.BookingStats)
	api.GET("/bookings/:id", h.GetBooking)
	api.PATCH("/bookings/:id", h.UpdateBooking)
	api.DELETE("/bookings/:id", h.DeleteBooking)
	return r
}

func performJSON(t *testing.T, r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateBooking_Success(t *testing.T) {
	svc := &stubBookingService{
		submitResult: &booking.SubmitResult{Booking: &models.Booking{
			ID:      "bkg-123",
			Name:    "John Smith",
			Status:  models.BookingStatusPending,
			Package: models.PackageStandardValeting,
			Price:   50,
		}},
	}
	r := newBookingRouter(svc)

	w := performJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"name":    "John Smith",
		"phone":   "07700900000",
		"email":   "john@example.com",
		"vehicle": "BMW 3 Series",
		"package": "standard-valeting",
		"address": "1 High St, Chelmsford",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["message"], "Booking submitted successfully")

	data := body["data"].(map[string]interface{})
	bkg := data["booking"].(map[string]interface{})
	assert.Equal(t, "bkg-123", bkg["id"])
	assert.Equal(t, "pending", bkg["status"])
}

func TestCreateBooking_DuplicateMessage(t *testing.T) {
	svc := &stubBookingService{
		submitResult: &booking.SubmitResult{
			Booking:   &models.Booking{ID: "bkg-456", Status: models.BookingStatusDuplicate},
			Duplicate: true,
		},
	}
	r := newBookingRouter(svc)

	w := performJSON(t, r, http.MethodPost, "/api/bookings", gin.H{"name": "John Smith"})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "already submitted a booking recently")
}

func TestCreateBooking_ValidationErrorsEnvelope(t *testing.T) {
	svc := &stubBookingService{
		submitErr: &booking.ValidationError{Fields: map[string]string{
			"email": "Please provide a valid email",
		}},
	}
	r := newBookingRouter(svc)

	w := performJSON(t, r, http.MethodPost, "/api/bookings", gin.H{"name": "John Smith"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Invalid booking data", body["message"])

	fieldErrs := body["errors"].(map[string]interface{})
	assert.Equal(t, "Please provide a valid email", fieldErrs["email"])
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, w)["message"])
}

func TestGetBooking_NotFound(t *testing.T) {
	svc := &stubBookingService{getErr: &booking.NotFoundError{ID: "missing"}}
	r := newBookingRouter(svc)

	w := performJSON(t, r, http.MethodGet, "/api/bookings/missing", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No booking found with that ID", decodeBody(t, w)["message"])
}

func TestListBookings_EmptyIsArrayNotNull(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := performJSON(t, r, http.MethodGet, "/api/bookings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["results"])

	data := body["data"].(map[string]interface{})
	bookings, ok := data["bookings"].([]interface{})
	require.True(t, ok, "bookings must serialize as an array")
	assert.Empty(t, bookings)
}

func TestListBookings_InvalidDateFilter(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := performJSON(t, r, http.MethodGet, "/api/bookings?startDate=notadate", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid startDate", decodeBody(t, w)["message"])
}

func TestUpdateBooking_Success(t *testing.T) {
	completed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc := &stubBookingService{
		updateResult: &models.Booking{
			ID:            "bkg-123",
			Status:        models.BookingStatusCompleted,
			CompletedDate: &completed,
		},
	}
	r := newBookingRouter(svc)

	w := performJSON(t, r, http.MethodPatch, "/api/bookings/bkg-123", gin.H{"status": "completed"})

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	bkg := data["booking"].(map[string]interface{})
	assert.Equal(t, "completed", bkg["status"])
	assert.NotNil(t, bkg["completedDate"])
}

func TestDeleteBooking_NoContent(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := performJSON(t, r, http.MethodDelete, "/api/bookings/bkg-123", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBookingStats(t *testing.T) {
	svc := &stubBookingService{
		stats: &models.BookingStats{
			ByStatus: []models.BookingStatusStat{
				{Status: "pending", Count: 3, TotalRevenue: 150},
			},
			CurrentMonth: []models.BookingDayStat{
				{Day: 14, Count: 2, Revenue: 100},
			},
		},
	}
	r := newBookingRouter(svc)

	w := performJSON(t, r, http.MethodGet, "/api/bookings/stats/summary", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	require.Contains(t, data, "stats")
	require.Contains(t, data, "monthlyStats")
}
