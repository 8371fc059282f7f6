// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds the runtime configuration for the server.
type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Society identity printed on receipts and notices
	SocietyName    string
	SocietyRegNo   string
	SocietyAddress string

	// NoticeDues is the fixed outstanding amount printed on demand notices.
	// It is a placeholder, not a computed figure.
	NoticeDues float64
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "./data/society.db"),

		SocietyName:    getEnv("SOCIETY_NAME", "Tulsi Apartment"),
		SocietyRegNo:   getEnv("SOCIETY_REG_NO", "123/TULSI/APT"),
		SocietyAddress: getEnv("SOCIETY_ADDRESS", "Sector 4, City Center"),

		NoticeDues: getEnvFloat("NOTICE_DUES", 5000),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.By(validPort)),
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.SocietyName, validation.Required),
		validation.Field(&c.NoticeDues, validation.Min(0.0)),
	)
}

// Address returns the HTTP listen address.
func (c *Config) Address() string {
	return ":" + c.Port
}

func validPort(value interface{}) error {
	s, _ := value.(string)
	port, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
