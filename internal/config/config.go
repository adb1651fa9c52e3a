package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultSessionSecret is only suitable for local development.
const DefaultSessionSecret = "voxnote-development-session-secret"

// ErrMissingField is matched by every *MissingFieldError.
var ErrMissingField = errors.New("missing required configuration")

// MissingFieldError names a required setting that was not provided.
type MissingFieldError struct {
	Field  string
	EnvVar string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s (set %s)", ErrMissingField, e.Field, e.EnvVar)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// Config holds all configuration for the application.
type Config struct {
	GoogleClientID     string        `env:"GOOGLE_CLIENT_ID" validate:"required"`
	GoogleRedirectURL  string        `env:"GOOGLE_REDIRECT_URL" validate:"required,url"`
	AppBaseURL         string        `env:"APP_BASE_URL" validate:"required,url"`
	BackendExchangeURL string        `env:"BACKEND_EXCHANGE_URL" validate:"required,url"`
	BackendTimeout     time.Duration `env:"BACKEND_TIMEOUT" validate:"gte=0"`
	LoginStateTTL      time.Duration `env:"LOGIN_STATE_TTL" validate:"gt=0"`
	SessionSecret      string        `env:"SESSION_SECRET" validate:"required"`
	ServerAddr         string        `env:"SERVER_ADDR" validate:"required"`
	ContentFile        string        `env:"CONTENT_FILE"`
	LogFormat          string        `env:"LOG_FORMAT" validate:"oneof=text json"`
	LogLevel           string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// New loads configuration from environment variables, reading a .env file
// first when one exists. The returned Config is always usable; a non-nil
// error reports settings that failed validation (see Validate).
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	baseURL := strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/")

	cfg := &Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", baseURL+"/auth/google/callback"),
		AppBaseURL:         baseURL,
		BackendExchangeURL: getEnv("BACKEND_EXCHANGE_URL", "http://localhost:8000/api/auth/google"),
		BackendTimeout:     getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		LoginStateTTL:      getEnvAsDuration("LOGIN_STATE_TTL", 10*time.Minute),
		SessionSecret:      getEnv("SESSION_SECRET", DefaultSessionSecret),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		ContentFile:        os.Getenv("CONTENT_FILE"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "debug")),
	}

	return cfg, cfg.Validate()
}

var (
	validate   = validator.New()
	configType = reflect.TypeOf(Config{})
)

// Validate checks the struct tags. A missing required value is reported as a
// *MissingFieldError; other violations are reported with their tag.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		envVar := envVarFor(fe.StructField())
		if fe.Tag() == "required" {
			errs = append(errs, &MissingFieldError{Field: fe.StructField(), EnvVar: envVar})
			continue
		}
		errs = append(errs, fmt.Errorf("invalid configuration %s (%s): failed %q check", fe.StructField(), envVar, fe.Tag()))
	}
	return errors.Join(errs...)
}

// UsesDefaultSessionSecret reports whether SESSION_SECRET was left unset.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func envVarFor(field string) string {
	if f, ok := configType.FieldByName(field); ok {
		if tag := f.Tag.Get("env"); tag != "" {
			return tag
		}
	}
	return field
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
		log.Printf("Invalid duration for %s=%q, using %s", key, value, defaultValue)
	}
	return defaultValue
}
