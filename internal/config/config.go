package config

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	DatabaseURL     string   `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS    float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int      `mapstructure:"RATE_LIMIT_BURST"`
	MailEnabled     bool     `mapstructure:"MAIL_ENABLED"`
	SendGridAPIKey  string   `mapstructure:"SENDGRID_API_KEY"`
	MailFromAddress string   `mapstructure:"MAIL_FROM_ADDRESS"`
	MailFromName    string   `mapstructure:"MAIL_FROM_NAME"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("MAIL_ENABLED", false)
	v.SetDefault("MAIL_FROM_NAME", "AyurSutra")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("MAIL_ENABLED")
	v.BindEnv("SENDGRID_API_KEY")
	v.BindEnv("MAIL_FROM_ADDRESS")
	v.BindEnv("MAIL_FROM_NAME")

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

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Confirmation mail
// is optional, but once enabled it needs a SendGrid key and a well-formed
// sender address.
func (c *Config) Validate() error {
	if !c.MailEnabled {
		return nil
	}
	if c.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is required when MAIL_ENABLED is true")
	}
	if c.MailFromAddress == "" {
		return fmt.Errorf("MAIL_FROM_ADDRESS is required when MAIL_ENABLED is true")
	}
	if _, err := mail.ParseAddress(c.MailFromAddress); err != nil {
		return fmt.Errorf("MAIL_FROM_ADDRESS is not a valid address: %w", err)
	}
	return nil
}
