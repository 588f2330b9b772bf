// File: services/booking/service.go
package booking

import (
	"fmt"
	"time"

	"luxego/models"
	"luxego/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// duplicateWindow is how far back a same-email submission counts as a
// possible duplicate.
const duplicateWindow = 24 * time.Hour

// SubmitBooking validates the input, checks for a near-duplicate submission,
// persists the booking and triggers notification fan-out. A repeat submission
// from the same email within 24 hours is stored with status "duplicate" and a
// note naming the prior booking rather than being rejected, so a double-click
// never loses customer data. The duplicate probe and the insert are not
// atomic; simultaneous submissions from one email can slip through as two
// non-duplicates, which is accepted given human submission cadence.
func (svc *DefaultBookingService) SubmitBooking(input models.BookingInput) (*SubmitResult, error) {
	logger := utils.GetLogger()

	if err := validateBookingInput(&input); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           utils.NormalizeEmail(input.Email),
		Vehicle:         input.Vehicle,
		Package:         input.Package,
		Address:         input.Address,
		SpecialRequests: input.SpecialRequests,
		Status:          models.BookingStatusPending,
		AppointmentDate: input.AppointmentDate,
		AddOns:          input.AddOns,
		Price:           input.Price,
	}
	if b.AppointmentDate.IsZero() {
		b.AppointmentDate = now
	}
	if b.Price == 0 {
		b.Price = ComputePrice(b.Package, b.AddOns)
	}

	prior, err := svc.Repo.FindRecentByEmail(b.Email, now.Add(-duplicateWindow))
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if prior != nil {
		b.Status = models.BookingStatusDuplicate
		b.Notes = fmt.Sprintf("Possible duplicate of booking ID: %s", prior.ID)
		if err := svc.Repo.Create(b); err != nil {
			return nil, err
		}
		logger.Info("duplicate booking flagged",
			zap.String("id", b.ID),
			zap.String("priorId", prior.ID),
			zap.String("email", b.Email),
		)
		return &SubmitResult{Booking: b, Duplicate: true}, nil
	}

	if err := svc.Repo.Create(b); err != nil {
		return nil, err
	}

	// Fire-and-forget: the response never waits on notification delivery,
	// and delivery failure never unwinds the persisted booking.
	if svc.Notifier != nil {
		svc.Notifier.NotifyNewBooking(*b)
	}

	logger.Info("booking submitted",
		zap.String("id", b.ID),
		zap.String("package", b.Package),
		zap.Float64("price", b.Price),
	)
	return &SubmitResult{Booking: b}, nil
}

// validateBookingInput enforces the field constraints of a submission.
func validateBookingInput(input *models.BookingInput) error {
	fields := map[string]string{}

	switch {
	case input.Name == "":
		fields["name"] = "A booking must have a name"
	case len(input.Name) > 50:
		fields["name"] = "A name must have less or equal than 50 characters"
	}

	switch {
	case input.Phone == "":
		fields["phone"] = "A booking must have a phone number"
	case !utils.IsValidPhone(input.Phone):
		fields["phone"] = "Please provide a valid phone number"
	}

	switch {
	case input.Email == "":
		fields["email"] = "A booking must have an email"
	case !utils.IsValidEmail(input.Email):
		fields["email"] = "Please provide a valid email"
	}

	switch {
	case input.Vehicle == "":
		fields["vehicle"] = "A booking must have vehicle details"
	case len(input.Vehicle) > 100:
		fields["vehicle"] = "Vehicle details must have less or equal than 100 characters"
	}

	switch {
	case input.Package == "":
		fields["package"] = "A booking must have a package selected"
	case !models.IsValidPackage(input.Package):
		fields["package"] = "Package must be either: full-valeting, standard-valeting, or regular-maintenance"
	}

	switch {
	case input.Address == "":
		fields["address"] = "A booking must have an address"
	case len(input.Address) > 200:
		fields["address"] = "Address must have less or equal than 200 characters"
	}

	if len(input.SpecialRequests) > 500 {
		fields["specialRequests"] = "Special requests must have less or equal than 500 characters"
	}
	if input.Price < 0 {
		fields["price"] = "Price cannot be negative"
	}
	for _, a := range input.AddOns {
		if a.Price < 0 {
			fields["addOns"] = "Add-on prices cannot be negative"
			break
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
