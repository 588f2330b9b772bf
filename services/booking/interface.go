package booking

import (
	bookingRepo "luxego/database/repository/booking"
	"luxego/models"
)

// SubmitResult is the outcome of a booking submission.
type SubmitResult struct {
	Booking   *models.Booking
	Duplicate bool
}

// Notifier triggers new-booking notification fan-out. Implementations must
// return quickly and never surface transport failures to the caller.
type Notifier interface {
	NotifyNewBooking(booking models.Booking)
}

// BookingService defines the interface for the booking submission pipeline
// and administrative booking management.
type BookingService interface {
	SubmitBooking(input models.BookingInput) (*SubmitResult, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookings(filter bookingRepo.BookingFilter) ([]models.Booking, int64, error)
	UpdateBooking(id string, update models.BookingUpdate) (*models.Booking, error)
	DeleteBooking(id string) error
	Stats() (*models.BookingStats, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier Notifier
}
