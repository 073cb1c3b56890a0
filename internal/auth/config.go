package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds the settings used to verify bearer tokens issued by the identity provider
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	Audience  string        `yaml:"audience" json:"audience" mapstructure:"audience"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" mapstructure:"token_ttl"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and the environment still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}
	config = overrideFromEnvironment(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ValidateConfig checks that tokens can be verified with this configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("jwt_secret", "")
	v.SetDefault("issuer", "client-portals")
	v.SetDefault("audience", "")
	v.SetDefault("token_ttl", time.Hour)
}

// overrideFromEnvironment lets deployment env vars win over the file
func overrideFromEnvironment(config AuthConfig) AuthConfig {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWTSecret = secret
	}
	if issuer := os.Getenv("AUTH_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}
	if audience := os.Getenv("AUTH_AUDIENCE"); audience != "" {
		config.Audience = audience
	}
	return config
}
