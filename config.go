package sitefetch

import "time"

// Default crawl settings. Flags and config files override these.
const (
	DefaultConcurrency  = 5
	DefaultFetchTimeout = 10 * time.Second
	DefaultRatePerSec   = 1.0
)

// DefaultUserAgent identifies the crawler to servers.
const DefaultUserAgent = "sitefetch/1.0 (+https://github.com/sitefetch/sitefetch)"

// Config holds crawl settings shared between the CLI flags and the
// optional config file. Zero values mean "use the default".
type Config struct {
	Concurrency int             `yaml:"concurrency"`
	Timeout     time.Duration   `yaml:"timeout"`
	RatePerSec  float64         `yaml:"rate"`
	UserAgent   string          `yaml:"user_agent"`
	OutputDir   string          `yaml:"output"`
	RetryDelays []time.Duration `yaml:"retry_delays"`
}

// Normalize fills zero-valued fields with defaults.
func (c *Config) Normalize() {
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultFetchTimeout
	}
	if c.RatePerSec <= 0 {
		c.RatePerSec = DefaultRatePerSec
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}
