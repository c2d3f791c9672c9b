package config

import (
	"fmt"
	"os"
	"strings"
)

// Provider names accepted in PIX_PROVIDER.
const (
	ProviderSelfPay     = "selfpay"
	ProviderMercadoPago = "mercadopago"
)

// Config is the read-only process-wide configuration, loaded once at startup.
//
// All secrets come from the environment; the service refuses to start when a
// secret required by the selected provider is missing.
type Config struct {
	AppEnv   string
	Port     string
	Provider string

	PixAPIURL string
	PixAPIKey string

	MercadoPagoAccessToken string

	WebhookSecret string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:                 os.Getenv("APP_ENV"),
		Port:                   getenvDefault("PORT", "8080"),
		Provider:               strings.ToLower(getenvDefault("PIX_PROVIDER", ProviderSelfPay)),
		PixAPIURL:              strings.TrimRight(os.Getenv("PIX_API_URL"), "/"),
		PixAPIKey:              os.Getenv("PIX_API_KEY"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
	}

	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET must be set")
	}

	switch cfg.Provider {
	case ProviderSelfPay:
		if cfg.PixAPIURL == "" {
			return nil, fmt.Errorf("PIX_API_URL must be set for provider %q", cfg.Provider)
		}
		if cfg.PixAPIKey == "" {
			return nil, fmt.Errorf("PIX_API_KEY must be set for provider %q", cfg.Provider)
		}
	case ProviderMercadoPago:
		if cfg.MercadoPagoAccessToken == "" {
			return nil, fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN must be set for provider %q", cfg.Provider)
		}
	default:
		return nil, fmt.Errorf("unknown PIX_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
