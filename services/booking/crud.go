// File: services/booking/crud.go
package booking

import (
	"errors"
	"time"

	bookingRepo "luxego/database/repository/booking"
	"luxego/models"
)

// GetBooking fetches a single booking by id.
func (svc *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return b, nil
}

// ListBookings returns bookings matching the filter plus the total count.
func (svc *DefaultBookingService) ListBookings(filter bookingRepo.BookingFilter) ([]models.Booking, int64, error) {
	return svc.Repo.List(filter)
}

// UpdateBooking applies the allow-listed mutable fields. Setting status to
// "completed" stamps completedDate with the update time when absent.
func (svc *DefaultBookingService) UpdateBooking(id string, update models.BookingUpdate) (*models.Booking, error) {
	fields := map[string]interface{}{}

	if update.Status != nil {
		if !isValidStatus(*update.Status) {
			return nil, &ValidationError{Fields: map[string]string{
				"status": "Status must be one of: pending, confirmed, completed, cancelled, duplicate",
			}}
		}
		fields["status"] = *update.Status
		if *update.Status == models.BookingStatusCompleted && update.CompletedDate == nil {
			fields["completed_date"] = time.Now()
		}
	}
	if update.Notes != nil {
		if len(*update.Notes) > 1000 {
			return nil, &ValidationError{Fields: map[string]string{
				"notes": "Notes must have less or equal than 1000 characters",
			}}
		}
		fields["notes"] = *update.Notes
	}
	if update.AppointmentDate != nil {
		fields["appointment_date"] = *update.AppointmentDate
	}
	if update.CompletedDate != nil {
		fields["completed_date"] = *update.CompletedDate
	}

	if len(fields) == 0 {
		return svc.GetBooking(id)
	}

	b, err := svc.Repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return b, nil
}

// DeleteBooking removes a booking document.
func (svc *DefaultBookingService) DeleteBooking(id string) error {
	if err := svc.Repo.Delete(id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		return err
	}
	return nil
}

// Stats aggregates counts and revenue by status plus a per-day breakdown of
// the current month.
func (svc *DefaultBookingService) Stats() (*models.BookingStats, error) {
	byStatus, err := svc.Repo.StatsByStatus()
	if err != nil {
		return nil, err
	}
	currentMonth, err := svc.Repo.StatsCurrentMonth(time.Now())
	if err != nil {
		return nil, err
	}
	return &models.BookingStats{ByStatus: byStatus, CurrentMonth: currentMonth}, nil
}

func isValidStatus(status string) bool {
	for _, s := range models.ValidBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}
