package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs at startup. It is built once
// in main and passed down explicitly so tests can run with an isolated
// store and their own signing key.
type Config struct {
	// DatabasePath is the SQLite store file.
	DatabasePath string
	// SessionSecret signs the session cookie.
	SessionSecret string
	// Port is the HTTP listen port.
	Port string
}

// Load reads an optional .env file and assembles the config from the
// environment, falling back to development defaults.
func Load() Config {
	_ = godotenv.Load() // ok if missing

	return Config{
		DatabasePath:  envOr("DATABASE_PATH", "cartera.db"),
		SessionSecret: envOr("SESSION_SECRET", "admin1234"),
		Port:          envOr("PORT", "5000"),
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
