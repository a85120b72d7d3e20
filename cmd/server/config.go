package main

import (
	"time"

	"github.com/umerfilms/website/pkg/environment"
)

type appConfig struct {
	Name          string                  `env:"APP_NAME" envDefault:"umerfilms-website"`
	Env           environment.Environment `env:"APP_ENV" envDefault:"development"`
	PublicBaseURL string                  `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// CORSAllowedOrigins lists the origins allowed to call /api/*, e.g. the
	// static marketing site.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"1m"`

	EmailDevOutputDir   string `env:"EMAIL_DEV_OUTPUT_DIR" envDefault:"./tmp/emails"`
	EmailBreakerEnabled bool   `env:"EMAIL_BREAKER_ENABLED" envDefault:"true"`
}
