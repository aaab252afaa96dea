package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageMemory = "memory"
	StoragePgsql  = "pgsql"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	DatabaseURL   string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	OperatorKeyHash   string

	PosthogAPIKey   string
	PosthogEndpoint string

	CORSAllowedOrigins []string
	RateLimit          string

	// Simulation
	RandomSeed        uint64
	TickInterval      time.Duration
	DayLength         time.Duration
	AutoScanInterval  time.Duration
	AutoSettleDelay   time.Duration
	QueuePollInterval time.Duration
	CounterCount      int
	StartingBalance   decimal.Decimal
	CashierHiringFee  decimal.Decimal
	CashierDailyWage  decimal.Decimal
	SalaryLatePenalty decimal.Decimal
	ExpansionPrice    decimal.Decimal

	CatalogFile string
	Catalog     *Catalog
}

// CounterIDs names the configured counters "counter-1" .. "counter-N".
func (c *Config) CounterIDs() []string {
	ids := make([]string, 0, c.CounterCount)
	for i := 1; i <= c.CounterCount; i++ {
		ids = append(ids, fmt.Sprintf("counter-%d", i))
	}
	return ids
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "storefront-sim")
	v.SetDefault("OPERATOR_KEY_HASH", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "20-S")
	v.SetDefault("RANDOM_SEED", 0)
	v.SetDefault("TICK_INTERVAL", "100ms")
	v.SetDefault("DAY_LENGTH", "0s")
	v.SetDefault("AUTO_SCAN_INTERVAL", "1s")
	v.SetDefault("AUTO_SETTLE_DELAY", "2s")
	v.SetDefault("QUEUE_POLL_INTERVAL", "100ms")
	v.SetDefault("COUNTER_COUNT", 2)
	v.SetDefault("STARTING_BALANCE", "500")
	v.SetDefault("CASHIER_HIRING_FEE", "100")
	v.SetDefault("CASHIER_DAILY_WAGE", "40")
	v.SetDefault("SALARY_LATE_PENALTY", "10")
	v.SetDefault("EXPANSION_PRICE", "1000")
	v.SetDefault("CATALOG_FILE", "")
	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		StorageDriver:     strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		OperatorKeyHash:   v.GetString("OPERATOR_KEY_HASH"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		RandomSeed:        v.GetUint64("RANDOM_SEED"),
		TickInterval:      v.GetDuration("TICK_INTERVAL"),
		DayLength:         v.GetDuration("DAY_LENGTH"),
		AutoScanInterval:  v.GetDuration("AUTO_SCAN_INTERVAL"),
		AutoSettleDelay:   v.GetDuration("AUTO_SETTLE_DELAY"),
		QueuePollInterval: v.GetDuration("QUEUE_POLL_INTERVAL"),
		CounterCount:      v.GetInt("COUNTER_COUNT"),
		CatalogFile:       v.GetString("CATALOG_FILE"),
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	money := []struct {
		key    string
		target *decimal.Decimal
	}{
		{"STARTING_BALANCE", &cfg.StartingBalance},
		{"CASHIER_HIRING_FEE", &cfg.CashierHiringFee},
		{"CASHIER_DAILY_WAGE", &cfg.CashierDailyWage},
		{"SALARY_LATE_PENALTY", &cfg.SalaryLatePenalty},
		{"EXPANSION_PRICE", &cfg.ExpansionPrice},
	}
	for _, m := range money {
		d, err := decimal.NewFromString(v.GetString(m.key))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", m.key, err)
		}
		*m.target = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.CatalogFile != "" {
		cfg.Catalog, err = LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg.Catalog = DefaultCatalog()
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePgsql:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %s", StoragePgsql)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.CounterCount <= 0 {
		return fmt.Errorf("COUNTER_COUNT must be positive, got %d", c.CounterCount)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive")
	}
	if c.AutoScanInterval <= 0 {
		return fmt.Errorf("AUTO_SCAN_INTERVAL must be positive")
	}
	if c.AutoSettleDelay < 0 {
		return fmt.Errorf("AUTO_SETTLE_DELAY must not be negative")
	}
	if c.JWTSecret == defaultJWTSecret {
		if c.IsProduction {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if c.OperatorKeyHash == "" {
		if c.IsProduction {
			return fmt.Errorf("OPERATOR_KEY_HASH must be set in production")
		}
		log.Println("Warning: OPERATOR_KEY_HASH not set. Any operator key opens a session.")
	}
	return nil
}
