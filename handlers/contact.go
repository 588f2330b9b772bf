package handlers

import (
	"net/http"

	"luxego/models"
	"luxego/services/notification"
	"luxego/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

func NewContactHandler(notifier notification.NotificationService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Notifier: notifier, Logger: logger}
}

// SubmitContact handles POST /api/contact. The message is not persisted; it
// is forwarded to the admin email and the send result decides the response.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request body"})
		return
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Please provide name, email, and message"})
		return
	}
	if !utils.IsValidEmail(msg.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Please provide a valid email"})
		return
	}

	if err := h.Notifier.NotifyContact(c.Request.Context(), msg); err != nil {
		h.Logger.Error("contact notification failed", zap.String("email", msg.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to send your message. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your message has been sent successfully. We will get back to you soon!",
	})
}
