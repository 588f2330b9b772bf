package cron

import (
	"context"

	"luxego/models"
	"luxego/services/notification"
	"luxego/services/tasks"
	"luxego/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer pushes new-booking notification work onto the redis queue. When
// the queue is unreachable it degrades to a direct background dispatch so
// notifications are delayed or lossy only as a last resort, never silently
// dropped while redis is down.
type Enqueuer struct {
	Client   *asynq.Client
	Dispatch notification.NotificationService
}

// NewEnqueuer builds the production booking notifier.
func NewEnqueuer(client *asynq.Client, dispatch notification.NotificationService) *Enqueuer {
	return &Enqueuer{Client: client, Dispatch: dispatch}
}

// NotifyNewBooking enqueues the fan-out for a booking. It returns quickly and
// never surfaces an error to the booking pipeline.
func (e *Enqueuer) NotifyNewBooking(booking models.Booking) {
	logger := utils.GetLogger()

	if e.Client != nil {
		task, err := tasks.NewBookingNotifyTask(booking)
		if err == nil {
			if _, err = e.Client.Enqueue(task); err == nil {
				return
			}
		}
		logger.Warn("notification enqueue failed, dispatching directly",
			zap.String("bookingId", booking.ID),
			zap.Error(err),
		)
	}

	if e.Dispatch != nil {
		go e.Dispatch.NotifyNewBooking(context.Background(), booking)
	}
}
