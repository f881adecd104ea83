package connector

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents database connection configuration.
type Config struct {
	Driver         string            `json:"driver" yaml:"driver"`
	Host           string            `json:"host" yaml:"host"`
	Port           int               `json:"port" yaml:"port"`
	Database       string            `json:"database" yaml:"database"`
	Username       string            `json:"username" yaml:"username"`
	Password       string            `json:"password" yaml:"password"`
	SSLMode        string            `json:"ssl_mode" yaml:"ssl_mode"`
	Params         map[string]string `json:"params" yaml:"params"`
	Pool           PoolConfig        `json:"pool" yaml:"pool"`
	ConnectTimeout time.Duration     `json:"connect_timeout" yaml:"connect_timeout"`
	Retry          *RetryConfig      `json:"retry,omitempty" yaml:"retry,omitempty"`
}

// PoolConfig defines connection pool settings.
type PoolConfig struct {
	MaxOpen     int           `json:"max_open" yaml:"max_open"`
	MaxIdle     int           `json:"max_idle" yaml:"max_idle"`
	MaxLifetime time.Duration `json:"max_lifetime" yaml:"max_lifetime"`
	MaxIdleTime time.Duration `json:"max_idle_time" yaml:"max_idle_time"`
}

// RetryConfig defines connection retry behavior.
type RetryConfig struct {
	MaxRetries int           `json:"max_retries" yaml:"max_retries"`
	BaseDelay  time.Duration `json:"base_delay" yaml:"base_delay"`
	MaxDelay   time.Duration `json:"max_delay" yaml:"max_delay"`
}

var defaultPorts = map[string]int{
	"mysql":    3306,
	"tidb":     4000,
	"postgres": 5432,
}

// LoadConfig reads a YAML connection config from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("connector: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML connection config, applies defaults and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("connector: parse config: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithDefaults returns a copy of c with unset port and pool settings filled in.
func (c Config) WithDefaults() Config {
	if c.Port == 0 {
		c.Port = defaultPorts[c.Driver]
	}
	if c.Pool.MaxOpen <= 0 {
		c.Pool.MaxOpen = 10
	}
	if c.Pool.MaxIdle <= 0 {
		c.Pool.MaxIdle = 2
	}
	if c.Pool.MaxIdle > c.Pool.MaxOpen {
		c.Pool.MaxIdle = c.Pool.MaxOpen
	}
	if c.Pool.MaxLifetime == 0 {
		c.Pool.MaxLifetime = time.Hour
	}
	if c.Pool.MaxIdleTime == 0 {
		c.Pool.MaxIdleTime = 30 * time.Minute
	}
	return c
}

// Validate checks the fields every provider relies on.
func (c Config) Validate() error {
	if c.Driver == "" {
		return fmt.Errorf("connector: driver is required")
	}
	if c.Host == "" {
		return fmt.Errorf("connector: host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("connector: invalid port: %d", c.Port)
	}
	if c.Retry != nil && c.Retry.MaxRetries < 0 {
		return fmt.Errorf("connector: invalid max_retries: %d", c.Retry.MaxRetries)
	}
	return nil
}
