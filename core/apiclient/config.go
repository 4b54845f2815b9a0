package apiclient

import "time"

// Config holds the transport configuration, loadable via core/config.
type Config struct {
	// BaseURL is the API base every relative request path is joined to.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`

	// OAuthBaseURL is the base for OAuth provider redirect links.
	// Falls back to BaseURL when empty.
	OAuthBaseURL string `env:"OAUTH_BASE_URL"`

	// DefaultLocale is the Accept-Language value used when no locale
	// provider is configured.
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"fr"`

	// Timeout bounds each HTTP round trip, including the silent retry's
	// refresh call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}
