package config

import (
	"os"
	"strconv"
	"strings"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Config holds all configuration for the toolbox. Every command loads the
// whole thing and validates only the slice it needs.
type Config struct {
	SMTP SMTPConfig
	Maps MapsConfig

	// HomesFile points at the JSON file mapping person name to home address,
	// used by the breakfast and commute commands.
	HomesFile string
}

// SMTPConfig holds mail delivery configuration
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Recipients []string
}

// MapsConfig holds Google Maps API configuration
type MapsConfig struct {
	APIKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		SMTP: SMTPConfig{
			Host:       getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:       getEnvAsIntOrDefault("SMTP_PORT", 587),
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			Recipients: splitList(os.Getenv("MAIL_RECIPIENTS")),
		},
		Maps: MapsConfig{
			APIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		},
		HomesFile: getEnvOrDefault("HOMES_FILE", "data/homes.json"),
	}
}

// RequireSMTP validates the fields the mail commands need
func (c *Config) RequireSMTP() error {
	if c.SMTP.Username == "" {
		return gnerr.InvalidArgument("SMTP_USERNAME is required")
	}
	if c.SMTP.Password == "" {
		return gnerr.InvalidArgument("SMTP_PASSWORD is required")
	}
	if len(c.SMTP.Recipients) == 0 {
		return gnerr.InvalidArgument("MAIL_RECIPIENTS is required")
	}
	return nil
}

// RequireMaps validates the fields the geocoding commands need
func (c *Config) RequireMaps() error {
	if c.Maps.APIKey == "" {
		return gnerr.InvalidArgument("GOOGLE_MAPS_API_KEY is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
