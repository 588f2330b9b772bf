package bookingRepo

import (
	"time"

	"luxego/models"
)

// BookingFilter narrows booking listings. Zero values mean "no filter".
type BookingFilter struct {
	Status    string
	Email     string
	StartDate time.Time
	EndDate   time.Time
	Page      int
	Limit     int
}

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	Update(id string, fields map[string]interface{}) (*models.Booking, error)
	Delete(id string) error

	// List returns bookings matching the filter sorted by appointment date
	// descending, plus the total match count for pagination.
	List(filter BookingFilter) ([]models.Booking, int64, error)

	// FindRecentByEmail returns the most recent booking for the email created
	// at or after since, or nil when none exists.
	FindRecentByEmail(email string, since time.Time) (*models.Booking, error)

	// StatsByStatus aggregates count and revenue per status.
	StatsByStatus() ([]models.BookingStatusStat, error)

	// StatsCurrentMonth aggregates count and revenue per day of the current
	// month, bucketed by appointment date.
	StatsCurrentMonth(now time.Time) ([]models.BookingDayStat, error)
}
