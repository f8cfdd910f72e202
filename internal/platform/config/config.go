package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Control accounts used by the automated posting flows. These must
	// exist in the chart of accounts before sale or payment posting works.
	ARAccountCode      string
	RevenueAccountCode string
	APAccountCode      string
	CashAccountCode    string

	// PostingRateLimit is the per-IP limit applied to posting routes,
	// in ulule/limiter format (e.g. "60-M" for 60 per minute).
	PostingRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("AR_ACCOUNT_CODE", "1100")
	viper.SetDefault("REVENUE_ACCOUNT_CODE", "4000")
	viper.SetDefault("AP_ACCOUNT_CODE", "2000")
	viper.SetDefault("CASH_ACCOUNT_CODE", "1000")
	viper.SetDefault("POSTING_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ARAccountCode = viper.GetString("AR_ACCOUNT_CODE")
	cfg.RevenueAccountCode = viper.GetString("REVENUE_ACCOUNT_CODE")
	cfg.APAccountCode = viper.GetString("AP_ACCOUNT_CODE")
	cfg.CashAccountCode = viper.GetString("CASH_ACCOUNT_CODE")

	cfg.PostingRateLimit = viper.GetString("POSTING_RATE_LIMIT")

	return cfg, nil
}
