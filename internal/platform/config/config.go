package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// DataFile is the JSON file backing the key-value store. Empty means
	// an in-memory store (nothing survives a restart).
	DataFile string

	// Rate provider endpoints, attempted in order before the fixed fallback.
	RatesPrimaryURL   string
	RatesBackupURL    string
	RatesFetchTimeout time.Duration

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "budget-tracker-app")
	viper.SetDefault("DATA_FILE", "budget-data.json")
	viper.SetDefault("RATES_PRIMARY_URL", "https://api.exchangerate-api.com/v4/latest/USD")
	viper.SetDefault("RATES_BACKUP_URL", "https://api.currencyapi.com/v3/latest?apikey=cur_live_free&base_currency=USD")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DataFile = viper.GetString("DATA_FILE")
	if cfg.DataFile == "" {
		log.Println("Warning: DATA_FILE not set. Using in-memory storage; data will not survive restarts.")
	}

	cfg.RatesPrimaryURL = viper.GetString("RATES_PRIMARY_URL")
	cfg.RatesBackupURL = viper.GetString("RATES_BACKUP_URL")

	fetchTimeoutStr := viper.GetString("RATES_FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil {
		fetchTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATES_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", fetchTimeoutStr, fetchTimeout.String())
	}
	cfg.RatesFetchTimeout = fetchTimeout

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
