package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the client tunables. Values are taken from environment
// variables with the prefix "PUJADESK_".
// Example: PUJADESK_BASE_URL=https://api.pujadesk.io PUJADESK_HTTP_TIMEOUT=10s .
type Config struct {
	// BaseURL selects the backend origin. The only required setting.
	BaseURL string `envconfig:"BASE_URL"`

	// HTTPTimeout bounds one HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// RetryMaxAttempts is the default attempt budget for Retry.
	RetryMaxAttempts int `envconfig:"RETRY_MAX_ATTEMPTS" default:"3"`
}

// LoadConfig populates Config from environment variables (prefix PUJADESK_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("PUJADESK", &c)
}
