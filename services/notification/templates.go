// File: services/notification/templates.go
package notification

import (
	"fmt"
	"strings"

	"luxego/models"
)

// Rendering is a pure function of the booking record plus the static package
// lookup tables; no external state is consulted.

// PackageDisplayName returns the customer-facing package name.
func PackageDisplayName(packageID string) string {
	if name, ok := models.PackageDisplayNames[packageID]; ok {
		return name
	}
	return "Selected Package"
}

// PackageDisplayPrice returns the customer-facing price label.
func PackageDisplayPrice(packageID string) string {
	if price, ok := models.PackageDisplayPrices[packageID]; ok {
		return price
	}
	return ""
}

func detailRow(label, value string) string {
	return fmt.Sprintf(`<tr><td class="label">%s</td><td>%s</td></tr>`, label, value)
}

func emailShell(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: 'Inter', sans-serif; background-color: #0B0B0B; color: #FFFFFF; margin: 0; padding: 20px; }
	.container { max-width: 600px; margin: 0 auto; background-color: #121212; border-radius: 12px; border: 1px solid #D4AF37; }
	.header { background: linear-gradient(135deg, #D4AF37, #C9A24D); padding: 30px; text-align: center; color: #0B0B0B; }
	.content { padding: 30px; }
	.label { color: #D4AF37; font-weight: 600; padding-right: 16px; }
	.footer { padding: 20px; text-align: center; color: #B5B5B5; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
	<div class="header"><h1>%s</h1></div>
	<div class="content">%s</div>
	<div class="footer">
		<p>Luxego Auto Spa - Auto Spa on Wheels</p>
		<p>Chelmsford, Essex, UK</p>
		<p>This is an automated message. Please do not reply to this email.</p>
	</div>
</div>
</body>
</html>`, title, body)
}

// AdminBookingEmail renders the new-booking notification for the admin.
func AdminBookingEmail(b models.Booking) string {
	var sb strings.Builder
	sb.WriteString("<h2>Customer Booking Details</h2><table>")
	sb.WriteString(detailRow("Customer Name:", b.Name))
	sb.WriteString(detailRow("Phone Number:", b.Phone))
	sb.WriteString(detailRow("Email Address:", b.Email))
	sb.WriteString(detailRow("Vehicle:", b.Vehicle))
	sb.WriteString(detailRow("Service Address:", b.Address))
	sb.WriteString(detailRow("Service:", PackageDisplayName(b.Package)))
	sb.WriteString(detailRow("Estimated Price:", PackageDisplayPrice(b.Package)))
	sb.WriteString(detailRow("Booking Date:", b.AppointmentDate.Format("2 January 2006")))
	sb.WriteString("</table>")
	if b.SpecialRequests != "" {
		sb.WriteString(fmt.Sprintf("<h3>Special Requests:</h3><p><em>%s</em></p>", b.SpecialRequests))
	}
	sb.WriteString("<p>Please respond to this booking within 24 hours to provide excellent customer service!</p>")
	return emailShell("New Booking Received", sb.String())
}

// CustomerConfirmationEmail renders the booking-received confirmation for the
// customer.
func CustomerConfirmationEmail(b models.Booking) string {
	firstName := b.Name
	if i := strings.IndexByte(b.Name, ' '); i > 0 {
		firstName = b.Name[:i]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<h2>Thank You, %s!</h2>", firstName))
	sb.WriteString("<p>We've received your booking request and will contact you within 24 hours to confirm your appointment.</p><table>")
	sb.WriteString(detailRow("Service:", PackageDisplayName(b.Package)))
	sb.WriteString(detailRow("Vehicle:", b.Vehicle))
	sb.WriteString(detailRow("Service Address:", b.Address))
	sb.WriteString(detailRow("Estimated Price:", PackageDisplayPrice(b.Package)))
	sb.WriteString(detailRow("Booking Date:", b.AppointmentDate.Format("2 January 2006")))
	sb.WriteString("</table>")
	if b.SpecialRequests != "" {
		sb.WriteString(fmt.Sprintf("<h3>Your Special Requests:</h3><p><em>%s</em></p>", b.SpecialRequests))
	}
	sb.WriteString("<p>Note: This is a booking request, not a confirmed appointment. Our team will contact you to finalize the details.</p>")
	return emailShell("Booking Confirmation", sb.String())
}

// ContactEmail renders a contact form submission for the admin.
func ContactEmail(msg models.ContactMessage) string {
	var sb strings.Builder
	sb.WriteString("<h2>Contact Form Submission</h2><table>")
	sb.WriteString(detailRow("Name:", msg.Name))
	sb.WriteString(detailRow("Email:", msg.Email))
	if msg.Phone != "" {
		sb.WriteString(detailRow("Phone:", msg.Phone))
	}
	if msg.Subject != "" {
		sb.WriteString(detailRow("Subject:", msg.Subject))
	}
	sb.WriteString("</table>")
	sb.WriteString(fmt.Sprintf("<p>%s</p>", msg.Message))
	return emailShell("New Enquiry", sb.String())
}

// WhatsAppBookingAlert renders the plain-text admin alert used for both the
// API and click-to-chat channels.
func WhatsAppBookingAlert(b models.Booking) string {
	var sb strings.Builder
	sb.WriteString("*NEW BOOKING ALERT*\n\n")
	sb.WriteString(fmt.Sprintf("*Customer:* %s\n", b.Name))
	sb.WriteString(fmt.Sprintf("*Phone:* %s\n", b.Phone))
	sb.WriteString(fmt.Sprintf("*Email:* %s\n", b.Email))
	sb.WriteString(fmt.Sprintf("*Service:* %s (%s)\n", PackageDisplayName(b.Package), PackageDisplayPrice(b.Package)))
	sb.WriteString(fmt.Sprintf("*Vehicle:* %s\n", b.Vehicle))
	sb.WriteString(fmt.Sprintf("*Address:* %s\n", b.Address))
	sb.WriteString(fmt.Sprintf("*Date:* %s\n", b.AppointmentDate.Format("02/01/2006")))
	if b.SpecialRequests != "" {
		sb.WriteString(fmt.Sprintf("\n*Special Requests:* %s\n", b.SpecialRequests))
	}
	sb.WriteString("\nPlease contact the customer within 24 hours to confirm the appointment.")
	return sb.String()
}
