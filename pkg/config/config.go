package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	FirebaseCredentials string

	// Notification settings
	BaseURL     string
	DefaultRole string

	// Cron job settings
	CronSecret             string
	RepertoireReminderDays int
	UpcomingReminderDays   int
	WorshipLeadPosition    string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=worship port=5432 sslmode=disable"),
		JWTSecret:              getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		FirebaseCredentials:    getEnv("FIREBASE_CREDENTIALS", ""),
		BaseURL:                getEnv("BASE_URL", ""),
		DefaultRole:            getEnv("DEFAULT_NOTIFY_ROLE", "member"),
		CronSecret:             getEnv("CRON_SECRET", ""),
		RepertoireReminderDays: getEnvInt("REPERTOIRE_REMINDER_DAYS", 3),
		UpcomingReminderDays:   getEnvInt("UPCOMING_REMINDER_DAYS", 1),
		WorshipLeadPosition:    getEnv("WORSHIP_LEAD_POSITION", "worship-lead"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
