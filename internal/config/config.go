package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Identity failure policies applied when the directory update fails after the tenant insert
const (
	IdentityFailureAcceptDrift = "accept-drift"
	IdentityFailureRollback    = "rollback"
)

// Identity directory backends
const (
	IdentityProviderHTTP = "http"
	IdentityProviderLDAP = "ldap"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Object storage configuration (S3 compatible)
	StorageEndpoint  string `mapstructure:"STORAGE_ENDPOINT"`
	StorageAccessKey string `mapstructure:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `mapstructure:"STORAGE_SECRET_KEY"`
	StorageBucket    string `mapstructure:"STORAGE_BUCKET"`
	StorageRegion    string `mapstructure:"STORAGE_REGION"`
	StorageUseSSL    bool   `mapstructure:"STORAGE_USE_SSL"`
	StoragePublicURL string `mapstructure:"STORAGE_PUBLIC_URL"`

	// Identity provider configuration
	IdentityProvider     string `mapstructure:"IDENTITY_PROVIDER"`
	IdentityBaseURL      string `mapstructure:"IDENTITY_BASE_URL"`
	IdentitySecretKey    string `mapstructure:"IDENTITY_SECRET_KEY"`
	IdentityTokenURL     string `mapstructure:"IDENTITY_TOKEN_URL"`
	IdentityClientID     string `mapstructure:"IDENTITY_CLIENT_ID"`
	IdentityClientSecret string `mapstructure:"IDENTITY_CLIENT_SECRET"`
	IdentityTimeoutSec   int    `mapstructure:"IDENTITY_TIMEOUT_SEC"`

	// LDAP configuration (IDENTITY_PROVIDER=ldap)
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPUserAttribute      string `mapstructure:"LDAP_USER_ATTRIBUTE"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Redis configuration (identity repair queue)
	RedisAddr                 string `mapstructure:"REDIS_ADDR"`
	RedisPassword             string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                   int    `mapstructure:"REDIS_DB"`
	IdentityRepairStream      string `mapstructure:"IDENTITY_REPAIR_STREAM"`
	IdentityRepairIntervalSec int    `mapstructure:"IDENTITY_REPAIR_INTERVAL_SEC"`

	// Onboarding configuration
	TrialDays             int    `mapstructure:"ONBOARDING_TRIAL_DAYS"`
	StorageLimitBytes     int64  `mapstructure:"ONBOARDING_STORAGE_LIMIT_BYTES"`
	MaxLogoBytes          int64  `mapstructure:"ONBOARDING_MAX_LOGO_BYTES"`
	LogoFolder            string `mapstructure:"ONBOARDING_LOGO_FOLDER"`
	IdentityFailurePolicy string `mapstructure:"ONBOARDING_IDENTITY_FAILURE_POLICY"`
	CleanupTimeoutSec     int    `mapstructure:"ONBOARDING_CLEANUP_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "client_portals")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Object storage defaults (local MinIO)
	viper.SetDefault("STORAGE_ENDPOINT", "localhost:9000")
	viper.SetDefault("STORAGE_ACCESS_KEY", "minioadmin")
	viper.SetDefault("STORAGE_SECRET_KEY", "minioadmin")
	viper.SetDefault("STORAGE_BUCKET", "portals")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_USE_SSL", false)
	viper.SetDefault("STORAGE_PUBLIC_URL", "http://localhost:9000")

	// Identity provider defaults
	viper.SetDefault("IDENTITY_PROVIDER", IdentityProviderHTTP)
	viper.SetDefault("IDENTITY_BASE_URL", "https://api.clerk.com")
	viper.SetDefault("IDENTITY_SECRET_KEY", "")
	viper.SetDefault("IDENTITY_TOKEN_URL", "")
	viper.SetDefault("IDENTITY_CLIENT_ID", "")
	viper.SetDefault("IDENTITY_CLIENT_SECRET", "")
	viper.SetDefault("IDENTITY_TIMEOUT_SEC", 10)

	// LDAP defaults
	viper.SetDefault("LDAP_HOST", "ldap.example.com")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "DC=example,DC=com")
	viper.SetDefault("LDAP_USER_ATTRIBUTE", "uid")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	// Redis defaults - empty address disables the repair queue
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("IDENTITY_REPAIR_STREAM", "identity:repairs")
	viper.SetDefault("IDENTITY_REPAIR_INTERVAL_SEC", 60)

	// Onboarding defaults
	viper.SetDefault("ONBOARDING_TRIAL_DAYS", 14)
	viper.SetDefault("ONBOARDING_STORAGE_LIMIT_BYTES", int64(10737418240)) // 10GB for trial
	viper.SetDefault("ONBOARDING_MAX_LOGO_BYTES", int64(5*1024*1024))
	viper.SetDefault("ONBOARDING_LOGO_FOLDER", "organization-logos")
	viper.SetDefault("ONBOARDING_IDENTITY_FAILURE_POLICY", IdentityFailureAcceptDrift)
	viper.SetDefault("ONBOARDING_CLEANUP_TIMEOUT_SEC", 30)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.IdentityFailurePolicy {
	case IdentityFailureAcceptDrift, IdentityFailureRollback:
	default:
		return fmt.Errorf("ONBOARDING_IDENTITY_FAILURE_POLICY must be %q or %q", IdentityFailureAcceptDrift, IdentityFailureRollback)
	}

	switch config.IdentityProvider {
	case IdentityProviderHTTP, IdentityProviderLDAP:
	default:
		return fmt.Errorf("IDENTITY_PROVIDER must be %q or %q", IdentityProviderHTTP, IdentityProviderLDAP)
	}

	if config.TrialDays <= 0 {
		return fmt.Errorf("ONBOARDING_TRIAL_DAYS must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RepairQueueEnabled reports whether a Redis address was configured
func (c *Config) RepairQueueEnabled() bool {
	return c.RedisAddr != ""
}

// CleanupTimeout bounds the compensation work run after a failed onboarding attempt
func (c *Config) CleanupTimeout() time.Duration {
	if c.CleanupTimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.CleanupTimeoutSec) * time.Second
}
