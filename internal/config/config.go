package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the runtime settings, all supplied via environment
// variables. Every field has a default except SecretKey.
type Config struct {
	Port       string
	SecretKey  string
	HFAPIKey   string
	HFEndpoint string
	DBPath     string
}

// ErrMissingSecret is returned when SECRET_KEY is not set. Tokens
// signed with a well-known fallback would be forgeable, so startup
// refuses to continue instead of defaulting.
var ErrMissingSecret = errors.New("config: SECRET_KEY must be set")

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("DB_PATH", "brainstorm.db")
	v.SetDefault("HF_ENDPOINT", "https://api-inference.huggingface.co/models/distilgpt2")

	cfg := &Config{
		Port:       v.GetString("PORT"),
		SecretKey:  v.GetString("SECRET_KEY"),
		HFAPIKey:   v.GetString("HF_API_KEY"),
		HFEndpoint: v.GetString("HF_ENDPOINT"),
		DBPath:     v.GetString("DB_PATH"),
	}

	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}
