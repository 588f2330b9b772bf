package notification

import (
	"context"
	"time"

	"luxego/models"
	"luxego/utils"
)

// Notification channels.
const (
	ChannelCustomerEmail = "customer_email"
	ChannelAdminEmail    = "admin_email"
	ChannelAdminWhatsApp = "admin_whatsapp"
)

// ChannelFailure records one failed channel attempt.
type ChannelFailure struct {
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

// DispatchReport is the per-channel outcome of a notification fan-out.
type DispatchReport struct {
	Attempted []string         `json:"attempted"`
	Succeeded []string         `json:"succeeded"`
	Failed    []ChannelFailure `json:"failed"`
}

// NotificationService fans a new-booking event out to the configured
// channels. Channel attempts are independent; the report always resolves and
// transport failures never propagate as errors to the booking pipeline.
type NotificationService interface {
	NotifyNewBooking(ctx context.Context, booking models.Booking) DispatchReport
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

// DefaultNotificationService is the production implementation. The mail
// transport and WhatsApp client are injected at startup.
type DefaultNotificationService struct {
	Mailer     utils.Mailer
	WhatsApp   *WhatsAppClient
	AdminEmail string
	Timeout    time.Duration
}

func (s *DefaultNotificationService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return 5 * time.Second
}
