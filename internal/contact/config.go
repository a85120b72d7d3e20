package contact

// Config holds the envelope addresses for contact notifications. Missing
// values are not validated here; a bad address surfaces as a delivery
// failure.
type Config struct {
	FromEmail string `env:"CONTACT_FROM_EMAIL" envDefault:"UmerFilms Website <noreply@umerfilms.com>"`
	ToEmail   string `env:"CONTACT_TO_EMAIL" envDefault:"hello@umerfilms.com"`
}
