package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads environment variables from .env unless GO_ENV says the
// environment already provides them.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	return nil
}

// EnviornmentVariable holds every setting the server reads.
type EnviornmentVariable struct {
	GO_ENV string
	PORT   int

	// Remote record store (Apps-Script-style endpoint for file
	// URL persistence and verification)
	SHEET_SCRIPT_URL string

	// Fire-and-forget webhook mirror
	MIRROR_WEBHOOK_URL string

	// Redis (optional: counters and cached reads)
	REDIS_URL string

	// DigitalOcean Spaces (optional: when unset, uploads go through
	// the sheet script endpoint)
	DO_SPACES_KEY      string
	DO_SPACES_SECRET   string
	DO_SPACES_BUCKET   string
	DO_SPACES_REGION   string
	DO_SPACES_ENDPOINT string
	DO_SPACES_CDN_URL  string
}

// Get reads the environment into a typed struct, applying defaults.
func Get() (*EnviornmentVariable, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	return &EnviornmentVariable{
		GO_ENV:             os.Getenv("GO_ENV"),
		PORT:               port,
		SHEET_SCRIPT_URL:   os.Getenv("SHEET_SCRIPT_URL"),
		MIRROR_WEBHOOK_URL: os.Getenv("MIRROR_WEBHOOK_URL"),
		REDIS_URL:          redisURL,
		DO_SPACES_KEY:      os.Getenv("DO_SPACES_KEY"),
		DO_SPACES_SECRET:   os.Getenv("DO_SPACES_SECRET"),
		DO_SPACES_BUCKET:   os.Getenv("DO_SPACES_BUCKET"),
		DO_SPACES_REGION:   os.Getenv("DO_SPACES_REGION"),
		DO_SPACES_ENDPOINT: os.Getenv("DO_SPACES_ENDPOINT"),
		DO_SPACES_CDN_URL:  os.Getenv("DO_SPACES_CDN_URL"),
	}, nil
}
