package tasks

import (
	"encoding/json"

	"luxego/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "booking:notify"

// NewBookingNotifyTask wraps a booking in a queue task for notification
// fan-out.
func NewBookingNotifyTask(booking models.Booking) (*asynq.Task, error) {
	b, err := json.Marshal(booking)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}
