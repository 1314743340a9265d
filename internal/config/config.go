package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Time     TimeConfig
	AutoSave AutoSaveConfig
}

type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// TimeConfig holds the company timezone used for day boundaries.
// The offset is a fixed UTC offset in minutes; zones with daylight-saving
// transitions are not supported.
type TimeConfig struct {
	Zone          string
	OffsetMinutes int
}

// AutoSaveConfig controls the periodic snapshot auto-save job.
type AutoSaveConfig struct {
	Enabled  bool
	Interval string // robfig/cron spec, e.g. "@every 5m"
}

func Load() (*Config, error) {
	// .env is optional; in production everything comes from the environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Mongo = MongoConfig{
		URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGODB_DATABASE", "rise_hr"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	offset, err := ParseOffset(getEnv("TIMEZONE_OFFSET", "+05:30"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE_OFFSET: %w", err)
	}
	config.Time = TimeConfig{
		Zone:          getEnv("TIMEZONE", "Asia/Colombo"),
		OffsetMinutes: offset,
	}

	config.AutoSave = AutoSaveConfig{
		Enabled:  getEnv("AUTOSAVE_ENABLED", "true") == "true",
		Interval: getEnv("AUTOSAVE_INTERVAL", "@every 5m"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGODB_DATABASE is required")
	}
	return nil
}

// ParseOffset parses a fixed UTC offset of the form "+05:30" or "-03:00"
// into minutes.
func ParseOffset(s string) (int, error) {
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return 0, fmt.Errorf("offset must look like +05:30, got %q", s)
	}
	hours, err := strconv.Atoi(s[1:3])
	if err != nil {
		return 0, fmt.Errorf("offset hours: %w", err)
	}
	mins, err := strconv.Atoi(s[4:6])
	if err != nil {
		return 0, fmt.Errorf("offset minutes: %w", err)
	}
	if hours > 14 || mins > 59 {
		return 0, fmt.Errorf("offset out of range: %q", s)
	}
	total := hours*60 + mins
	if strings.HasPrefix(s, "-") {
		total = -total
	}
	return total, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
