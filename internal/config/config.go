package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
)

type Config struct {
	Database DatabaseConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	App      AppConfig
	Schedule ScheduleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ScheduleConfig holds the schedule parameters used to derive lateness
// and overtime from raw scans.
type ScheduleConfig struct {
	ScheduledStart   string
	StandardDayHours float64
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Document store configuration
	config.Mongo = MongoConfig{
		URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGO_DB", "attendance"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Schedule configuration
	standardDayHours, err := strconv.ParseFloat(getEnv("STANDARD_DAY_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_DAY_HOURS: %w", err)
	}

	config.Schedule = ScheduleConfig{
		ScheduledStart:   getEnv("SCHEDULED_START", "09:00"),
		StandardDayHours: standardDayHours,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := attendance.ParseTimeOfDay(c.Schedule.ScheduledStart); err != nil {
		return fmt.Errorf("invalid SCHEDULED_START: %w", err)
	}
	if c.Schedule.StandardDayHours <= 0 || c.Schedule.StandardDayHours > 24 {
		return fmt.Errorf("STANDARD_DAY_HOURS must be between 0 and 24")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// WorkSchedule converts the configured schedule into the domain shape.
func (c *Config) WorkSchedule() attendance.ScheduleConfig {
	start, _ := attendance.ParseTimeOfDay(c.Schedule.ScheduledStart)
	return attendance.ScheduleConfig{
		ScheduledStart:   start,
		StandardDayHours: c.Schedule.StandardDayHours,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
