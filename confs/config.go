package confs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig loads environment variables from a .env file if present and
// builds the application configuration with sane defaults.
func LoadConfig() (AppConfig, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "168h"))
	if err != nil {
		return AppConfig{}, err
	}

	return AppConfig{
		Port:      get("PORT", "3536"),
		JWTSecret: get("JWT_SECRET", "agroclima_dev_secret"),
		TokenTTL:  ttl,
	}, nil
}
