package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Commission CommissionConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// CommissionConfig holds the fallback policy knobs; see commission.Policy.
type CommissionConfig struct {
	DefaultSalaryModelID string
	UnknownOfficeLabel   string
	TenureMonths         int
	TenureDeductionRate  decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
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
		Name:     getEnv("DB_NAME", "provipay-commission"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
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
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Commission policy configuration
	tenureMonths, err := strconv.Atoi(getEnv("TENURE_MONTHS", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid TENURE_MONTHS: %w", err)
	}
	tenureRate, err := decimal.NewFromString(getEnv("TENURE_DEDUCTION_RATE", "0.05"))
	if err != nil {
		return nil, fmt.Errorf("invalid TENURE_DEDUCTION_RATE: %w", err)
	}

	config.Commission = CommissionConfig{
		DefaultSalaryModelID: getEnv("DEFAULT_SALARY_MODEL_ID", "1"),
		UnknownOfficeLabel:   getEnv("UNKNOWN_OFFICE_LABEL", "Ukjent"),
		TenureMonths:         tenureMonths,
		TenureDeductionRate:  tenureRate,
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
	if c.Commission.TenureMonths < 0 {
		return fmt.Errorf("TENURE_MONTHS must be non-negative")
	}
	if c.Commission.TenureDeductionRate.IsNegative() {
		return fmt.Errorf("TENURE_DEDUCTION_RATE must be non-negative")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
