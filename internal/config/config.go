package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the single process-wide configuration value. It is parsed once in
// main and injected into every component that needs it; nothing mutates it
// after startup.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// AdminAllowlist is the one source of truth for super-admin emails. Both
	// the authorizer and the route gate receive this same value, so the two
	// can never drift.
	AdminAllowlist []string `env:"ADMIN_ALLOWLIST" envSeparator:"," envDefault:"demo@santaan.com,admin@santaan.com"`

	SessionSecret string `env:"SESSION_SECRET,required"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	OAuthRedirectURL   string `env:"OAUTH_REDIRECT_URL" envDefault:"http://localhost:8080/auth/google/callback"`

	RabbitUser string `env:"RABBITMQ_USER" envDefault:"guest"`
	RabbitPass string `env:"RABBITMQ_PASS" envDefault:"guest"`
	RabbitHost string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	RabbitPort string `env:"RABBITMQ_PORT" envDefault:"5672"`

	MailHost string `env:"MAIL_HOST"`
	MailPort int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser string `env:"MAIL_USER"`
	MailPass string `env:"MAIL_PASS"`
	// CareTeamEmail receives new-registration notifications from the worker.
	CareTeamEmail string `env:"CARE_TEAM_EMAIL" envDefault:"care@santaan.com"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
