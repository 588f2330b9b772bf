// File: services/notification/whatsapp.go
package notification

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"luxego/models"
	"luxego/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// WhatsApp dispatch modes.
const (
	WhatsAppModeAPI  = "api"
	WhatsAppModeLink = "link"
	WhatsAppModeOff  = "off"
)

// WhatsAppClient delivers admin WhatsApp alerts either through a messaging
// gateway API or by rendering a click-to-chat link.
type WhatsAppClient struct {
	Mode        string
	APIURL      string
	APIToken    string
	AdminNumber string

	http *resty.Client
}

// NewWhatsAppClient builds a client for the configured dispatch mode.
func NewWhatsAppClient(mode, apiURL, apiToken, adminNumber string) *WhatsAppClient {
	return &WhatsAppClient{
		Mode:        mode,
		APIURL:      apiURL,
		APIToken:    apiToken,
		AdminNumber: adminNumber,
		http:        resty.New().SetTimeout(10 * time.Second),
	}
}

// Enabled reports whether the channel should be attempted at all.
func (c *WhatsAppClient) Enabled() bool {
	return c.Mode != WhatsAppModeOff && c.Mode != "" && c.AdminNumber != ""
}

// SendNewBookingAlert delivers the admin alert for a new booking.
func (c *WhatsAppClient) SendNewBookingAlert(ctx context.Context, booking models.Booking) error {
	message := WhatsAppBookingAlert(booking)

	switch c.Mode {
	case WhatsAppModeAPI:
		return c.sendViaAPI(ctx, c.AdminNumber, message)
	case WhatsAppModeLink:
		link := ClickToChatLink(c.AdminNumber, message)
		utils.GetLogger().Info("whatsapp link generated for admin",
			zap.String("bookingId", booking.ID),
			zap.String("link", link),
		)
		return nil
	default:
		return fmt.Errorf("whatsapp: unknown dispatch mode %q", c.Mode)
	}
}

func (c *WhatsAppClient) sendViaAPI(ctx context.Context, to, message string) error {
	if c.APIURL == "" {
		return fmt.Errorf("whatsapp: api mode configured without WHATSAPP_API_URL")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.APIToken).
		SetBody(map[string]string{
			"to":   to,
			"body": message,
		}).
		Post(c.APIURL)
	if err != nil {
		return fmt.Errorf("whatsapp: api request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp: gateway returned %s", resp.Status())
	}
	return nil
}

// ClickToChatLink builds a wa.me deep link that opens a chat to number with
// the message pre-filled.
func ClickToChatLink(number, message string) string {
	number = strings.TrimPrefix(strings.ReplaceAll(number, " ", ""), "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
