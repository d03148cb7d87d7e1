package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	StripeSecretKey                 string
	StripeWebhookSecret             string // order webhook endpoint
	StripeSubscriptionWebhookSecret string // subscription webhook endpoint

	SuccessURL             string
	CancelURL              string
	SubscriptionSuccessURL string
	SubscriptionCancelURL  string

	ImageHostURL    string // image-hosting upload endpoint
	ImageHostApiKey string

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		StripeSecretKey:                 getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:             getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripeSubscriptionWebhookSecret: getEnv("STRIPE_SUBSCRIPTION_WEBHOOK_SECRET", ""),

		SuccessURL:             getEnv("SUCCESS_URL", "http://localhost:3000/payment/success"),
		CancelURL:              getEnv("CANCEL_URL", "http://localhost:3000/payment/cancel"),
		SubscriptionSuccessURL: getEnv("SUBSCRIPTION_SUCCESS_URL", "http://localhost:3000/subscription/success"),
		SubscriptionCancelURL:  getEnv("SUBSCRIPTION_CANCEL_URL", "http://localhost:3000/subscription/cancel"),

		ImageHostURL:    getEnv("IMAGE_HOST_URL", "https://api.imagehost.io/v1/upload"),
		ImageHostApiKey: getEnv("IMAGE_HOST_API_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", "no-reply@shopfit.io"),
		Password:    getEnv("PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set. Checkout will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
