package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// InsecureJWTSecret is used when JWT_SECRET is not set. Startup logs a warning when it is in effect.
const InsecureJWTSecret = "secret_key"

// This function will Load the ENVIRONMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

type EnvironmentVariable struct {
	GO_ENV string
	PORT   int

	// Database
	DB_DRIVER    string
	DATABASE_URL string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string

	// JWT Configuration
	JWT_SECRET   string
	JWT_ISSUER   string
	JWT_EXPIRY   time.Duration
	REQUIRE_AUTH bool

	// Redis Configuration
	REDIS_URL string

	CRON_ENABLED bool

	// S3-compatible object storage for document downloads
	STORAGE_BUCKET     string
	STORAGE_REGION     string
	STORAGE_ENDPOINT   string
	STORAGE_ACCESS_KEY string
	STORAGE_SECRET_KEY string
	STORAGE_CDN_URL    string
}

func Get() (*EnvironmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 4000
	}

	jwtExpiry := 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("JWT_EXPIRY must be a Go duration such as 24h")
		}
		jwtExpiry = parsed
	}

	envVariables := &EnvironmentVariable{
		GO_ENV: getEnv("GO_ENV", "development"),
		PORT:   port,

		DB_DRIVER:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DATABASE_URL: os.Getenv("DATABASE_URL"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      getEnv("DB_HOST", "localhost"),
		DB_PORT:      getEnv("DB_PORT", "5432"),
		DB_SSL_MODE:  getEnv("DB_SSL_MODE", "disable"),

		JWT_SECRET:   getEnv("JWT_SECRET", InsecureJWTSecret),
		JWT_ISSUER:   getEnv("JWT_ISSUER", "studytrack-api"),
		JWT_EXPIRY:   jwtExpiry,
		REQUIRE_AUTH: getBool("REQUIRE_AUTH", false),

		REDIS_URL: os.Getenv("REDIS_URL"),

		CRON_ENABLED: getBool("CRON_ENABLED", true),

		STORAGE_BUCKET:     os.Getenv("STORAGE_BUCKET"),
		STORAGE_REGION:     os.Getenv("STORAGE_REGION"),
		STORAGE_ENDPOINT:   os.Getenv("STORAGE_ENDPOINT"),
		STORAGE_ACCESS_KEY: os.Getenv("STORAGE_ACCESS_KEY"),
		STORAGE_SECRET_KEY: os.Getenv("STORAGE_SECRET_KEY"),
		STORAGE_CDN_URL:    os.Getenv("STORAGE_CDN_URL"),
	}

	if envVariables.DB_DRIVER != "postgres" && envVariables.DB_DRIVER != "sqlite" {
		return nil, errors.New("DB_DRIVER must be either postgres or sqlite")
	}

	return envVariables, nil
}

// IsProduction reports whether GO_ENV selects production behaviour.
func (e *EnvironmentVariable) IsProduction() bool {
	return e.GO_ENV == "production"
}

// UsesInsecureSecret reports whether tokens are being signed with the built-in fallback secret.
func (e *EnvironmentVariable) UsesInsecureSecret() bool {
	return e.JWT_SECRET == InsecureJWTSecret
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
