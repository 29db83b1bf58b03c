package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// CredentialSource identifies where database credentials were resolved
// from. Resolved once at startup, never per call.
type CredentialSource string

const (
	// CredentialSourceEnv means the connection string was present in the
	// process environment (production deployments).
	CredentialSourceEnv CredentialSource = "credentials-env"

	// CredentialSourceFile means credentials were loaded from a local
	// .env file (local development).
	CredentialSourceFile CredentialSource = "credentials-file"
)

// Config holds all runtime settings for the service
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Order sink
	DatabaseURL    string        `env:"DATABASE_URL"`
	UseMemoryStore bool          `env:"USE_MEMORY_STORE"`
	OrderTimeout   time.Duration `env:"ORDER_TIMEOUT" envDefault:"10s"`

	// SessionTTL bounds idle sessions; 0 keeps abandoned sessions forever
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// WhatsApp webhook
	TwilioAccountSID         string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken          string `env:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom       string `env:"TWILIO_WHATSAPP_FROM"`
	DisableWebhookValidation bool   `env:"DISABLE_WEBHOOK_VALIDATION"`

	credentialSource CredentialSource
}

// Load resolves configuration from the environment. When DATABASE_URL is
// not already set in the process environment, a local .env file is tried
// before parsing, mirroring the two deployment modes: env-injected
// credentials in production, a credentials file during development.
func Load() (*Config, error) {
	source := CredentialSourceEnv
	if os.Getenv("DATABASE_URL") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - relying on environment variables")
		} else {
			source = CredentialSourceFile
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.credentialSource = source

	return cfg, nil
}

// CredentialSource reports which sourcing strategy was used at startup
func (c *Config) CredentialSource() CredentialSource {
	return c.credentialSource
}

// TwilioConfigured reports whether outbound WhatsApp replies can be sent
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}
