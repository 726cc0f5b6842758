package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	OpenAIAPIKey   string   `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel    string   `mapstructure:"OPENAI_MODEL"`
	SlotDaysAhead  int      `mapstructure:"SLOT_DAYS_AHEAD"`
	SlotPerDay     int      `mapstructure:"SLOT_PER_DAY"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("SLOT_DAYS_AHEAD", 7)
	v.SetDefault("SLOT_PER_DAY", 6)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("OPENAI_MODEL")
	v.BindEnv("SLOT_DAYS_AHEAD")
	v.BindEnv("SLOT_PER_DAY")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// AIEnabled reports whether an external completion service is configured.
// Without a key the triage engine runs on the rule-based path only.
func (c *Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.SlotDaysAhead <= 0 {
		return fmt.Errorf("SLOT_DAYS_AHEAD must be positive, got %d", c.SlotDaysAhead)
	}
	if c.SlotPerDay <= 0 {
		return fmt.Errorf("SLOT_PER_DAY must be positive, got %d", c.SlotPerDay)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %f", c.RateLimitRPS)
	}
	return nil
}
