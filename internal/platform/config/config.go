package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultMigrationsPath  = "file://migrations"
	defaultRateLimit       = "100-M"
	defaultBuildiumURL     = "https://api.buildium.com/v1"
	defaultBuildiumTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	RunMigrations      bool
	MigrationsPath     string
	CORSAllowedOrigins []string
	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit string

	Finance  FinanceConfig
	Buildium BuildiumConfig
}

// FinanceConfig tunes the finance engine.
type FinanceConfig struct {
	DiagnosticsLogging bool
	ReceivableFallback bool
	DefaultBasis       domain.Basis
}

// BuildiumConfig holds the credentials of the remote property-management API.
type BuildiumConfig struct {
	BaseURL       string
	ClientID      string
	ClientSecret  string
	Timeout       time.Duration
	RetryAttempts int
	// CacheTTL keeps fetched balances for this long; zero disables the cache.
	CacheTTL time.Duration
}

// Enabled reports whether enough is configured to call the remote API.
func (b BuildiumConfig) Enabled() bool {
	return b.BaseURL != "" && b.ClientID != "" && b.ClientSecret != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", false)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("FINANCE_DIAGNOSTICS_LOGGING", false)
	viper.SetDefault("FINANCE_RECEIVABLE_FALLBACK", false)
	viper.SetDefault("FINANCE_DEFAULT_BASIS", string(domain.BasisAccrual))
	viper.SetDefault("BUILDIUM_BASE_URL", defaultBuildiumURL)
	viper.SetDefault("BUILDIUM_CLIENT_ID", "")
	viper.SetDefault("BUILDIUM_CLIENT_SECRET", "")
	viper.SetDefault("BUILDIUM_TIMEOUT", defaultBuildiumTimeout.String())
	viper.SetDefault("BUILDIUM_RETRY_ATTEMPTS", 2)
	viper.SetDefault("BUILDIUM_CACHE_TTL", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT environment variable not set.", "default", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.Finance = FinanceConfig{
		DiagnosticsLogging: viper.GetBool("FINANCE_DIAGNOSTICS_LOGGING"),
		ReceivableFallback: viper.GetBool("FINANCE_RECEIVABLE_FALLBACK"),
		DefaultBasis:       domain.ParseBasis(viper.GetString("FINANCE_DEFAULT_BASIS")),
	}

	timeoutStr := viper.GetString("BUILDIUM_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultBuildiumTimeout
		slog.Warn("Invalid value for BUILDIUM_TIMEOUT.", "value", timeoutStr, "default", timeout.String())
	}

	cacheTTLStr := viper.GetString("BUILDIUM_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL < 0 {
		cacheTTL = 0
		slog.Warn("Invalid value for BUILDIUM_CACHE_TTL. Caching disabled.", "value", cacheTTLStr)
	}

	cfg.Buildium = BuildiumConfig{
		BaseURL:       strings.TrimRight(viper.GetString("BUILDIUM_BASE_URL"), "/"),
		ClientID:      viper.GetString("BUILDIUM_CLIENT_ID"),
		ClientSecret:  viper.GetString("BUILDIUM_CLIENT_SECRET"),
		Timeout:       timeout,
		RetryAttempts: viper.GetInt("BUILDIUM_RETRY_ATTEMPTS"),
		CacheTTL:      cacheTTL,
	}
	if !cfg.Buildium.Enabled() {
		slog.Warn("Buildium credentials not set. Lease balances will be computed from local transactions only.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
