package recipeshelf

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven client configuration. Every field is
// prefixed RECIPESHELF_ (RECIPESHELF_BASE_URL, RECIPESHELF_HTTP_TIMEOUT,
// ...).
type Config struct {
	BaseURL        string        `envconfig:"BASE_URL" default:"http://localhost:8000"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	PreviewWorkers int           `envconfig:"PREVIEW_WORKERS" default:"4"`
	PreviewQueue   int           `envconfig:"PREVIEW_QUEUE" default:"64"`
	Debug          bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads the RECIPESHELF_* environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("recipeshelf", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
