package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBackendHTTP     = "http"
	StoreBackendDynamoDB = "dynamodb"
)

// Config holds the service settings. Values come from the environment (a
// .env file is autoloaded by the commands) with the defaults below.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	StoreBackend      string        `mapstructure:"STORE_BACKEND"`
	StoreBaseURL      string        `mapstructure:"STORE_BASE_URL"`
	StoreProjectID    string        `mapstructure:"STORE_PROJECT_ID"`
	StoreServiceEmail string        `mapstructure:"STORE_SERVICE_EMAIL"`
	StoreTimeout      time.Duration `mapstructure:"STORE_TIMEOUT"`

	AWSRegion        string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID   string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey     string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `mapstructure:"DYNAMODB_ENDPOINT"`
	DocumentsTable   string `mapstructure:"DOCUMENTS_TABLE"`

	SessionSecret string `mapstructure:"SESSION_SECRET"`
	SessionSecure bool   `mapstructure:"SESSION_SECURE"`

	UsersPageSize int `mapstructure:"USERS_PAGE_SIZE"`
}

var keys = []string{
	"PORT", "GIN_MODE",
	"STORE_BACKEND", "STORE_BASE_URL", "STORE_PROJECT_ID", "STORE_SERVICE_EMAIL", "STORE_TIMEOUT",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT", "DOCUMENTS_TABLE",
	"SESSION_SECRET", "SESSION_SECURE",
	"USERS_PAGE_SIZE",
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORE_BACKEND", StoreBackendHTTP)
	v.SetDefault("STORE_BASE_URL", "https://cloud.blick.run/api/project-db")
	v.SetDefault("STORE_PROJECT_ID", "")
	v.SetDefault("STORE_SERVICE_EMAIL", "admin@torchlinegroup.com")
	v.SetDefault("STORE_TIMEOUT", 0)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("DOCUMENTS_TABLE", "documents")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("USERS_PAGE_SIZE", 100)
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads the configuration through v, which callers may pre-seed.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; bind them explicitly so
	// environment-only values are picked up.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendHTTP:
		if c.StoreBaseURL == "" {
			return fmt.Errorf("STORE_BASE_URL is required for the http store backend")
		}
	case StoreBackendDynamoDB:
		if c.DocumentsTable == "" {
			return fmt.Errorf("DOCUMENTS_TABLE is required for the dynamodb store backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.UsersPageSize < 0 {
		return fmt.Errorf("USERS_PAGE_SIZE must not be negative")
	}
	return nil
}
