package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Exchange rate provider
	RateAPIBaseURL string
	RateAPITimeout time.Duration
	RateCacheTTL   time.Duration

	// Calculation engine tunables
	DefaultCurrency   string
	HedgeRatio        float64  // fraction of exposure to hedge, clamped to [0.4, 0.6]
	RiskTierMajor     []string // currencies classified as low risk
	RiskTierDeveloped []string // currencies classified as medium risk

	// API rate limiting, ulule/limiter format (e.g. "100-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_API_BASE_URL", "https://api.exchangerate-api.com/v4")
	viper.SetDefault("RATE_API_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "1h")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("HEDGE_RATIO", 0.5)
	viper.SetDefault("RISK_TIER_MAJOR", "USD,EUR,GBP,JPY,CHF")
	viper.SetDefault("RISK_TIER_DEVELOPED", "CAD,AUD,NZD,SEK,NOK,DKK,SGD,HKD")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_BASE_URL")

	rateTimeoutStr := viper.GetString("RATE_API_TIMEOUT")
	rateTimeout, err := time.ParseDuration(rateTimeoutStr)
	if err != nil {
		rateTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATE_API_TIMEOUT ('%s'). Defaulting to %s.\n", rateTimeoutStr, rateTimeout)
	}
	cfg.RateAPITimeout = rateTimeout

	cacheTTLStr := viper.GetString("RATE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}
	cfg.RateCacheTTL = cacheTTL

	cfg.DefaultCurrency = strings.ToUpper(viper.GetString("DEFAULT_CURRENCY"))

	cfg.HedgeRatio = viper.GetFloat64("HEDGE_RATIO")
	if cfg.HedgeRatio < 0.4 || cfg.HedgeRatio > 0.6 {
		log.Printf("Warning: HEDGE_RATIO %.2f outside [0.40, 0.60]. Defaulting to 0.50.\n", cfg.HedgeRatio)
		cfg.HedgeRatio = 0.5
	}

	cfg.RiskTierMajor = splitCurrencyList(viper.GetString("RISK_TIER_MAJOR"))
	cfg.RiskTierDeveloped = splitCurrencyList(viper.GetString("RISK_TIER_DEVELOPED"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

func splitCurrencyList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
