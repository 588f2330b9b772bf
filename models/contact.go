package models

// ContactMessage is a contact form submission. It is forwarded to the admin
// email channel and never persisted.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
