// File: luxego/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxego/config"
	"luxego/cron"
	"luxego/database"
	bookingRepoPkg "luxego/database/repository/booking"
	reviewRepoPkg "luxego/database/repository/review"
	"luxego/handlers"
	"luxego/middleware"
	"luxego/routes"
	"luxego/services/booking"
	"luxego/services/notification"
	"luxego/services/review"
	"luxego/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	utils.StartHealthMonitor(redisClient, database.MongoClient)

	// Mail transport is constructed once at startup and injected; development
	// runs swap in a logging no-op instead of hitting an SMTP server.
	var mailer utils.Mailer
	if config.AppConfig.EmailEnabled {
		mailer = utils.NewSMTPMailer(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPUser,
			config.AppConfig.SMTPPass,
			config.AppConfig.SMTPFrom,
		)
	} else {
		mailer = utils.LogMailer{}
	}

	whatsappClient := notification.NewWhatsAppClient(
		config.AppConfig.WhatsAppMode,
		config.AppConfig.WhatsAppAPIURL,
		config.AppConfig.WhatsAppAPIToken,
		config.AppConfig.AdminWhatsApp,
	)

	notificationService := &notification.DefaultNotificationService{
		Mailer:     mailer,
		WhatsApp:   whatsappClient,
		AdminEmail: config.AppConfig.AdminEmail,
		Timeout:    time.Duration(config.AppConfig.NotifyTimeoutSeconds) * time.Second,
	}

	// Notification fan-out runs through the redis queue; the worker consumes
	// in-process and the enqueuer degrades to direct dispatch if redis is down.
	asynqClient := asynq.NewClient(cron.RedisOpts())
	defer asynqClient.Close()
	cron.InitNotifyWorker(notificationService)

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Notifier: cron.NewEnqueuer(asynqClient, notificationService),
	}
	reviewService := &review.DefaultReviewService{
		Repo: reviewRepo,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	utils.RegisterMetrics()
	router.Use(utils.MetricsMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Review:  handlers.NewReviewHandler(reviewService, logger),
		Contact: handlers.NewContactHandler(notificationService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
