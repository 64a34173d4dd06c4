package cookiestore

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds store defaults loadable from the environment.
type Config struct {
	Path       string `env:"COOKIESTORE_PATH" envDefault:""`
	Domain     string `env:"COOKIESTORE_DOMAIN" envDefault:""`
	DefaultTTL int    `env:"COOKIESTORE_DEFAULT_TTL" envDefault:"0"`
	Secure     bool   `env:"COOKIESTORE_SECURE" envDefault:"false"`
	SameSite   string `env:"COOKIESTORE_SAME_SITE" envDefault:""` // strict | lax | none
}

// DefaultConfig returns the zero configuration: no default attributes and no
// default TTL.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads Config from the environment, loading a .env file first
// when one exists.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse cookiestore config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig creates a new Store from the provided Config. Only non-zero
// values from the config are applied.
func NewFromConfig(jar Jar, cfg Config, opts ...Option) (*Store, error) {
	attrs := make([]Attribute, 0, 4)
	if cfg.Path != "" {
		attrs = append(attrs, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		attrs = append(attrs, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		attrs = append(attrs, WithSecure(true))
	}
	if cfg.SameSite != "" {
		sameSite, err := parseSameSite(cfg.SameSite)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, WithSameSite(sameSite))
	}

	configOpts := make([]Option, 0, len(opts)+2)
	if len(attrs) > 0 {
		configOpts = append(configOpts, WithDefaults(attrs...))
	}
	if cfg.DefaultTTL != 0 {
		configOpts = append(configOpts, WithDefaultTTL(cfg.DefaultTTL))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(jar, configOpts...)
}
