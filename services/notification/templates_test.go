package notification

import (
	"strings"
	"testing"

	"luxego/models"

	"github.com/stretchr/testify/assert"
)

func TestAdminBookingEmail(t *testing.T) {
	b := sampleBooking()
	b.SpecialRequests = "Please avoid wax on the roof wrap"

	body := AdminBookingEmail(b)

	assert.Contains(t, body, "New Booking Received")
	assert.Contains(t, body, "John Smith")
	assert.Contains(t, body, "07700900000")
	assert.Contains(t, body, "BMW 3 Series")
	assert.Contains(t, body, "Standard Valeting")
	assert.Contains(t, body, "£50+")
	assert.Contains(t, body, "14 September 2026")
	assert.Contains(t, body, "Please avoid wax on the roof wrap")
	assert.Contains(t, body, "Luxego Auto Spa - Auto Spa on Wheels")
}

func TestCustomerConfirmationEmail_UsesFirstName(t *testing.T) {
	body := CustomerConfirmationEmail(sampleBooking())

	assert.Contains(t, body, "Thank You, John!")
	assert.NotContains(t, body, "Thank You, John Smith!")
	assert.Contains(t, body, "booking request, not a confirmed appointment")
}

func TestContactEmail_OptionalFields(t *testing.T) {
	withAll := ContactEmail(models.ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "07700900333",
		Subject: "Coverage",
		Message: "Do you cover CM2 postcodes?",
	})
	assert.Contains(t, withAll, "07700900333")
	assert.Contains(t, withAll, "Coverage")

	minimal := ContactEmail(models.ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	assert.NotContains(t, minimal, "Phone:")
	assert.NotContains(t, minimal, "Subject:")
}

func TestWhatsAppBookingAlert(t *testing.T) {
	msg := WhatsAppBookingAlert(sampleBooking())

	assert.True(t, strings.HasPrefix(msg, "*NEW BOOKING ALERT*"))
	assert.Contains(t, msg, "*Customer:* John Smith")
	assert.Contains(t, msg, "Standard Valeting (£50+)")
	assert.Contains(t, msg, "*Date:* 14/09/2026")
}

func TestPackageDisplayLookups(t *testing.T) {
	assert.Equal(t, "Luxego Full Valeting", PackageDisplayName(models.PackageFullValeting))
	assert.Equal(t, "£80+", PackageDisplayPrice(models.PackageFullValeting))

	// Unknown ids degrade to a generic label rather than leaking the raw id.
	assert.Equal(t, "Selected Package", PackageDisplayName("mystery-package"))
	assert.Equal(t, "", PackageDisplayPrice("mystery-package"))
}

func TestClickToChatLink(t *testing.T) {
	link := ClickToChatLink("+44 7700 111222", "New booking: John & Jane")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/447700111222?text="))
	assert.Contains(t, link, "New+booking%3A+John+%26+Jane")
}

func TestWhatsAppClientEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		number  string
		enabled bool
	}{
		{"Link mode with number", WhatsAppModeLink, "+447700111222", true},
		{"API mode with number", WhatsAppModeAPI, "+447700111222", true},
		{"Off mode", WhatsAppModeOff, "+447700111222", false},
		{"Empty mode", "", "+447700111222", false},
		{"No admin number", WhatsAppModeLink, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewWhatsAppClient(tc.mode, "", "", tc.number)
			assert.Equal(t, tc.enabled, c.Enabled())
		})
	}
}
