// File: services/notification/service.go
package notification

import (
	"context"
	"fmt"
	"sync"

	"luxego/models"
	"luxego/utils"

	"go.uber.org/zap"
)

// NotifyNewBooking attempts every configured channel concurrently and
// collects a per-channel report. A stalled transport is cut off at the
// configured deadline and marked failed; no failure ever escapes as an error.
func (s *DefaultNotificationService) NotifyNewBooking(ctx context.Context, booking models.Booking) DispatchReport {
	logger := utils.GetLogger()

	type channel struct {
		name string
		send func(context.Context) error
	}

	var channels []channel
	if s.Mailer != nil && booking.Email != "" {
		channels = append(channels, channel{ChannelCustomerEmail, func(cctx context.Context) error {
			return s.Mailer.Send(cctx,
				[]string{booking.Email},
				"Your Booking Confirmation - Luxego Auto Spa",
				CustomerConfirmationEmail(booking),
			)
		}})
	}
	if s.Mailer != nil && s.AdminEmail != "" {
		channels = append(channels, channel{ChannelAdminEmail, func(cctx context.Context) error {
			return s.Mailer.Send(cctx,
				[]string{s.AdminEmail},
				fmt.Sprintf("New Booking Received - %s", booking.Name),
				AdminBookingEmail(booking),
			)
		}})
	}
	if s.WhatsApp != nil && s.WhatsApp.Enabled() {
		channels = append(channels, channel{ChannelAdminWhatsApp, func(cctx context.Context) error {
			return s.WhatsApp.SendNewBookingAlert(cctx, booking)
		}})
	}

	report := DispatchReport{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, ch := range channels {
		report.Attempted = append(report.Attempted, ch.name)

		wg.Add(1)
		go func(ch channel) {
			defer wg.Done()
			err := s.attempt(ctx, ch.send)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, ChannelFailure{Channel: ch.name, Error: err.Error()})
				logger.Warn("notification channel failed",
					zap.String("channel", ch.name),
					zap.String("bookingId", booking.ID),
					zap.Error(err),
				)
				return
			}
			report.Succeeded = append(report.Succeeded, ch.name)
		}(ch)
	}
	wg.Wait()

	logger.Info("booking notification dispatched",
		zap.String("bookingId", booking.ID),
		zap.Strings("attempted", report.Attempted),
		zap.Strings("succeeded", report.Succeeded),
		zap.Int("failed", len(report.Failed)),
	)
	return report
}

// NotifyContact forwards a contact form submission to the admin email. This
// is the one surface where a transport failure is surfaced to the caller.
func (s *DefaultNotificationService) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	if s.Mailer == nil || s.AdminEmail == "" {
		return fmt.Errorf("contact notification: no admin email channel configured")
	}
	return s.attempt(ctx, func(cctx context.Context) error {
		return s.Mailer.Send(cctx,
			[]string{s.AdminEmail},
			"New Contact Form Submission - Luxego Auto Spa",
			ContactEmail(msg),
		)
	})
}

// attempt runs a send under the per-channel deadline. Transports that are not
// context-aware (net/smtp) are abandoned on expiry rather than awaited.
func (s *DefaultNotificationService) attempt(ctx context.Context, send func(context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- send(cctx) }()

	select {
	case err := <-done:
		return err
	case <-cctx.Done():
		return cctx.Err()
	}
}
