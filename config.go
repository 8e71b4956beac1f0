package gobox

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries client settings sourced from BOX_* environment variables.
type Config struct {
	Token      string        `envconfig:"TOKEN"       required:"true"`
	BaseURL    string        `envconfig:"BASE_URL"    default:"https://api.box.com/2.0"`
	Timeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"MAX_RETRIES" default:"0"`
	UserAgent  string        `envconfig:"USER_AGENT"  default:""`
	AsUser     string        `envconfig:"AS_USER"     default:""`
	Debug      bool          `envconfig:"DEBUG"       default:"false"`
}

// ConfigFromEnv populates Config from the environment (BOX_ prefix).
func ConfigFromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("BOX", &c)
}

// NewFromEnv constructs a Client from BOX_* environment variables.
// Additional options override what the environment supplied.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	envOpts := []Option{
		WithHTTPTimeout(cfg.Timeout),
		WithMaxRetries(cfg.MaxRetries),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.UserAgent != "" {
		envOpts = append(envOpts, WithUserAgent(cfg.UserAgent))
	}
	if cfg.AsUser != "" {
		envOpts = append(envOpts, WithAsUser(cfg.AsUser))
	}

	return New(cfg.BaseURL, cfg.Token, append(envOpts, opts...)...)
}
