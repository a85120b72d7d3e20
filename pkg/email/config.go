package email

import "time"

// Config holds provider credentials and breaker tuning. Missing tokens are
// not a startup error: sends fail instead, which surfaces as a delivery
// failure to callers.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	BreakerMaxFailures uint32        `env:"EMAIL_BREAKER_MAX_FAILURES" envDefault:"5"`
	BreakerOpenTimeout time.Duration `env:"EMAIL_BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
}
