package booking

import (
	"sync"
	"testing"
	"time"

	bookingRepo "luxego/database/repository/booking"
	"luxego/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	order    []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	copied := *b
	f.bookings[b.ID] = &copied
	f.order = append(f.order, b.ID)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) Update(id string, fields map[string]interface{}) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			b.Status = v.(string)
		case "notes":
			b.Notes = v.(string)
		case "appointment_date":
			b.AppointmentDate = v.(time.Time)
		case "completed_date":
			d := v.(time.Time)
			b.CompletedDate = &d
		}
	}
	b.UpdatedAt = time.Now()
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) List(filter bookingRepo.BookingFilter) ([]models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, id := range f.order {
		b, ok := f.bookings[id]
		if !ok {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Email != "" && b.Email != filter.Email {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) FindRecentByEmail(email string, since time.Time) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.order) - 1; i >= 0; i-- {
		b, ok := f.bookings[f.order[i]]
		if !ok {
			continue
		}
		if b.Email == email && !b.CreatedAt.Before(since) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) StatsByStatus() ([]models.BookingStatusStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byStatus := map[string]*models.BookingStatusStat{}
	for _, b := range f.bookings {
		s, ok := byStatus[b.Status]
		if !ok {
			s = &models.BookingStatusStat{Status: b.Status}
			byStatus[b.Status] = s
		}
		s.Count++
		s.TotalRevenue += b.Price
	}
	var out []models.BookingStatusStat
	for _, s := range byStatus {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeBookingRepo) StatsCurrentMonth(now time.Time) ([]models.BookingDayStat, error) {
	return nil, nil
}

// recordingNotifier records fan-out triggers.
type recordingNotifier struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (n *recordingNotifier) NotifyNewBooking(b models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, b)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.bookings)
}

func validInput() models.BookingInput {
	return models.BookingInput{
		Name:    "John Smith",
		Phone:   "07700900000",
		Email:   "john@example.com",
		Vehicle: "BMW 3 Series",
		Package: models.PackageStandardValeting,
		Address: "1 High St, Chelmsford",
	}
}

func TestSubmitBooking_DerivesPriceAndDefaults(t *testing.T) {
	repo := newFakeBookingRepo()
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	result, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)
	require.NotNil(t, result.Booking)

	assert.False(t, result.Duplicate)
	assert.Equal(t, 50.0, result.Booking.Price)
	assert.Equal(t, models.BookingStatusPending, result.Booking.Status)
	assert.NotEmpty(t, result.Booking.ID)
	assert.False(t, result.Booking.AppointmentDate.IsZero())
	assert.Equal(t, 1, notifier.count())
}

func TestSubmitBooking_PriceIncludesAddOns(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Notifier: &recordingNotifier{}}

	input := validInput()
	input.Package = models.PackageFullValeting
	input.AddOns = []models.AddOn{
		{Name: "Pet hair removal", Price: 15},
		{Name: "Odour treatment", Price: 12.5},
	}

	result, err := svc.SubmitBooking(input)
	require.NoError(t, err)
	assert.Equal(t, 107.5, result.Booking.Price)
}

func TestSubmitBooking_ExplicitPriceNotRecomputed(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Notifier: &recordingNotifier{}}

	input := validInput()
	input.Price = 65

	result, err := svc.SubmitBooking(input)
	require.NoError(t, err)
	assert.Equal(t, 65.0, result.Booking.Price)
}

func TestSubmitBooking_RepeatWithin24HoursFlaggedDuplicate(t *testing.T) {
	repo := newFakeBookingRepo()
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}

	first, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	second, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	assert.True(t, second.Duplicate)
	assert.Equal(t, models.BookingStatusDuplicate, second.Booking.Status)
	assert.Contains(t, second.Booking.Notes, first.Booking.ID)
	// Only the first submission triggers notifications.
	assert.Equal(t, 1, notifier.count())
}

func TestSubmitBooking_NormalizesEmailForDuplicateCheck(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Notifier: &recordingNotifier{}}

	_, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	input := validInput()
	input.Email = "John@Example.COM"
	second, err := svc.SubmitBooking(input)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
}

func TestSubmitBooking_ValidationErrors(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Notifier: &recordingNotifier{}}

	tests := []struct {
		name   string
		mutate func(*models.BookingInput)
		field  string
	}{
		{"Missing name", func(in *models.BookingInput) { in.Name = "" }, "name"},
		{"Name too long", func(in *models.BookingInput) { in.Name = string(make([]byte, 51)) }, "name"},
		{"Missing phone", func(in *models.BookingInput) { in.Phone = "" }, "phone"},
		{"Invalid phone", func(in *models.BookingInput) { in.Phone = "not-a-phone" }, "phone"},
		{"Missing email", func(in *models.BookingInput) { in.Email = "" }, "email"},
		{"Invalid email", func(in *models.BookingInput) { in.Email = "john@" }, "email"},
		{"Missing vehicle", func(in *models.BookingInput) { in.Vehicle = "" }, "vehicle"},
		{"Unknown package", func(in *models.BookingInput) { in.Package = "platinum-valeting" }, "package"},
		{"Missing address", func(in *models.BookingInput) { in.Address = "" }, "address"},
		{"Negative price", func(in *models.BookingInput) { in.Price = -1 }, "price"},
		{"Negative add-on", func(in *models.BookingInput) {
			in.AddOns = []models.AddOn{{Name: "Wax", Price: -5}}
		}, "addOns"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.SubmitBooking(input)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}

func TestSubmitBooking_NilNotifierDoesNotPanic(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	result, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, result.Booking.Status)
}

func TestUpdateBooking_CompletedStampsCompletedDate(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Notifier: &recordingNotifier{}}

	result, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	status := models.BookingStatusCompleted
	updated, err := svc.UpdateBooking(result.Booking.ID, models.BookingUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedDate)
	assert.WithinDuration(t, time.Now(), *updated.CompletedDate, time.Minute)
}

func TestUpdateBooking_ExplicitCompletedDatePreserved(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Notifier: &recordingNotifier{}}

	result, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	status := models.BookingStatusCompleted
	completed := time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateBooking(result.Booking.ID, models.BookingUpdate{
		Status:        &status,
		CompletedDate: &completed,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedDate)
	assert.True(t, updated.CompletedDate.Equal(completed))
}

func TestUpdateBooking_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Notifier: &recordingNotifier{}}

	result, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	status := "archived"
	_, err = svc.UpdateBooking(result.Booking.ID, models.BookingUpdate{Status: &status})
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Notifier: &recordingNotifier{}}

	notes := "call back"
	_, err := svc.UpdateBooking("missing-id", models.BookingUpdate{Notes: &notes})
	require.Error(t, err)
	_, ok := err.(*NotFoundError)
	assert.True(t, ok)
}

func TestDeleteBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Notifier: &recordingNotifier{}}

	result, err := svc.SubmitBooking(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(result.Booking.ID))

	_, err = svc.GetBooking(result.Booking.ID)
	require.Error(t, err)
	_, ok := err.(*NotFoundError)
	assert.True(t, ok)
}
