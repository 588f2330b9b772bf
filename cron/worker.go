package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"luxego/config"
	"luxego/models"
	"luxego/services/notification"
	"luxego/services/tasks"

	"github.com/hibiken/asynq"
)

// RedisOpts returns the asynq redis connection options for the notification
// queue.
func RedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}
}

// InitNotifyWorker runs the async notification worker in background.
func InitNotifyWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		RedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, handleBookingNotifyTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[NotifyWorker] max retry attempts reached; notification queue disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var booking models.Booking
		if err := json.Unmarshal(task.Payload(), &booking); err != nil {
			log.Printf("[NotifyWorker] invalid payload: %v", err)
			return err
		}

		// The report is advisory; failed channels are logged by the
		// dispatcher and never retried through the queue.
		notifSvc.NotifyNewBooking(ctx, booking)
		return nil
	}
}
