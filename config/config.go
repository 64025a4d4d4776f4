// Package config loads the storefront configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "boutique.yaml"

// Config holds all storefront configuration.
type Config struct {
	Name string `yaml:"name"`

	Server   ServerConfig   `yaml:"server"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Sessions SessionsConfig `yaml:"sessions"`
	Relay    RelayConfig    `yaml:"relay"`
	Logging  LoggingConfig  `yaml:"logging"`
	Site     SiteConfig     `yaml:"site"`
}

// ServerConfig configures the HTTP and gRPC listeners.
type ServerConfig struct {
	HTTPAddr        string `yaml:"http_addr"`
	GRPCPort        string `yaml:"grpc_port"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// CatalogConfig configures where products and collections come from.
type CatalogConfig struct {
	// DataDir overrides the embedded catalog when set.
	DataDir     string `yaml:"data_dir"`
	NewArrivals int    `yaml:"new_arrivals"`
}

// SessionsConfig configures session carts.
type SessionsConfig struct {
	TTL           string `yaml:"ttl"`
	SweepInterval string `yaml:"sweep_interval"`
	CookieName    string `yaml:"cookie_name"`
	CookieSecure  bool   `yaml:"cookie_secure"`
}

// RelayConfig configures the optional RabbitMQ cart event relay.
type RelayConfig struct {
	AMQPURL string `yaml:"amqp_url"`
	Queue   string `yaml:"queue"`
	Buffer  int    `yaml:"buffer"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// SiteConfig is the copy shown on the about and contact pages.
type SiteConfig struct {
	Tagline string `yaml:"tagline"`
	About   string `yaml:"about"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	Hours   string `yaml:"hours"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "Trendora Boutique",
		Server: ServerConfig{
			HTTPAddr:        ":8080",
			GRPCPort:        "50051",
			ShutdownTimeout: "10s",
		},
		Catalog: CatalogConfig{
			NewArrivals: 8,
		},
		Sessions: SessionsConfig{
			TTL:           "30m",
			SweepInterval: "1m",
			CookieName:    "boutique_session",
		},
		Relay: RelayConfig{
			Queue:  "cart-events",
			Buffer: 256,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Site: SiteConfig{
			Tagline: "Curated fashion for every occasion",
			About:   "Trendora is an independent boutique offering handpicked dresses, ethnic wear and accessories.",
			Email:   "hello@trendora.example",
			Phone:   "+91 98765 43210",
			Address: "12 MG Road, Bengaluru",
			Hours:   "Mon-Sat 10:00-20:00",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("BOUTIQUE_HTTP_ADDR"); addr != "" {
		c.Server.HTTPAddr = addr
	}
	// PORT is what the standalone gRPC services read too.
	if port := os.Getenv("PORT"); port != "" {
		c.Server.GRPCPort = port
	}
	if dir := os.Getenv("BOUTIQUE_DATA_DIR"); dir != "" {
		c.Catalog.DataDir = dir
	}
	if uri := os.Getenv("RABBITMQ_URI"); uri != "" {
		c.Relay.AMQPURL = uri
	}
	if level := os.Getenv("BOUTIQUE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetSessionTTL returns the idle session timeout.
func (c *Config) GetSessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Sessions.TTL)
	if err != nil {
		return 30 * time.Minute
	}
	return d
}

// GetSweepInterval returns how often idle sessions are swept.
func (c *Config) GetSweepInterval() time.Duration {
	d, err := time.ParseDuration(c.Sessions.SweepInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// GetShutdownTimeout returns the graceful shutdown budget.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// RelayEnabled reports whether cart events go to RabbitMQ.
func (c *Config) RelayEnabled() bool {
	return c.Relay.AMQPURL != ""
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}
	if c.Server.GRPCPort == "" {
		return fmt.Errorf("server.grpc_port is required")
	}
	if c.Sessions.CookieName == "" {
		return fmt.Errorf("sessions.cookie_name is required")
	}
	if c.Sessions.TTL != "" {
		if _, err := time.ParseDuration(c.Sessions.TTL); err != nil {
			return fmt.Errorf("invalid sessions.ttl %q: %w", c.Sessions.TTL, err)
		}
	}
	if c.Relay.Buffer <= 0 {
		return fmt.Errorf("relay.buffer must be positive")
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}
