package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Redis configuration (notification queue + health checks).
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisNotifyQueueDB int    `mapstructure:"REDIS_NOTIFY_QUEUE_DB"`

	// Outbound email (SMTP).
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPass     string `mapstructure:"SMTP_PASS"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	EmailEnabled bool   `mapstructure:"EMAIL_ENABLED"`

	// Admin notification targets.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminWhatsApp string `mapstructure:"ADMIN_WHATSAPP"`

	// WhatsApp dispatch: "api" posts to a messaging gateway, "link" renders a
	// click-to-chat URL, "off" disables the channel.
	WhatsAppMode     string `mapstructure:"WHATSAPP_MODE"`
	WhatsAppAPIURL   string `mapstructure:"WHATSAPP_API_URL"`
	WhatsAppAPIToken string `mapstructure:"WHATSAPP_API_TOKEN"`

	// Per-channel notification deadline.
	NotifyTimeoutSeconds int `mapstructure:"NOTIFY_TIMEOUT_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "luxego")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_NOTIFY_QUEUE_DB", 0)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("EMAIL_ENABLED", true)
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_WHATSAPP", "")
	viper.SetDefault("WHATSAPP_MODE", "link")
	viper.SetDefault("WHATSAPP_API_URL", "")
	viper.SetDefault("WHATSAPP_API_TOKEN", "")
	viper.SetDefault("NOTIFY_TIMEOUT_SECONDS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
