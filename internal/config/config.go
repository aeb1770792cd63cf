package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

// AuthConfig is read once at startup. The JWT secret and validity are
// never re-read while the process runs.
type AuthConfig struct {
	JWTSecret      string
	ExpirationDays int
	BcryptCost     int
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Host: getenv("SERVER_HOST", "0.0.0.0"),
			Port: getenv("SERVER_PORT", "3000"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:      getenv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpirationDays: getenvInt("JWT_EXPIRATION_DAYS", 7),
			BcryptCost:     getenvInt("BCRYPT_COST", 10),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
