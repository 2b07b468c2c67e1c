package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int

	// Object storage (pre-signed uploads)
	AWSRegion     string
	AWSAccessKey  string
	AWSSecretKey  string
	S3Bucket      string
	PresignExpiry time.Duration

	// Outbound SMS
	SMSAccountID       string
	SMSAuthToken       string
	SMSFromNumber      string
	SMSAPIBaseURL      string
	SMSWebhookUser     string
	SMSWebhookPassword string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "teampulse_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		JWTExpiry:  parseDuration(getEnv("JWT_EXPIRY", "1h"), time.Hour),
		BcryptCost: parseInt(getEnv("BCRYPT_COST", ""), bcrypt.DefaultCost),

		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:  getEnv("AWS_ACCESS_KEY", ""),
		AWSSecretKey:  getEnv("AWS_SECRET_KEY", ""),
		S3Bucket:      getEnv("AWS_S3_BUCKET_NAME", ""),
		PresignExpiry: parseDuration(getEnv("PRESIGN_EXPIRY", "60s"), 60*time.Second),

		SMSAccountID:       getEnv("SMS_ACCOUNT_ID", ""),
		SMSAuthToken:       getEnv("SMS_AUTH_TOKEN", ""),
		SMSFromNumber:      getEnv("SMS_FROM_NUMBER", ""),
		SMSAPIBaseURL:      getEnv("SMS_API_BASE_URL", "https://api.twilio.com/2010-04-01"),
		SMSWebhookUser:     getEnv("SMS_WEBHOOK_USERNAME", ""),
		SMSWebhookPassword: getEnv("SMS_WEBHOOK_PASSWORD", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
