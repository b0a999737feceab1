package config

import (
	"log"
	"os"
)

// Config holds application configuration loaded from the environment.
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	DatabaseURL  string
	Port         string
	GeminiAPIKey string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads configuration from environment variables. DATABASE_URL is
// mandatory, everything else has a default or is optional.
func Load() {
	AppConfig.DatabaseURL = os.Getenv("DATABASE_URL")
	if AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	AppConfig.Port = os.Getenv("PORT")
	if AppConfig.Port == "" {
		AppConfig.Port = "3000"
	}

	// Optional. The AI insights endpoint is disabled without it.
	AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
}
