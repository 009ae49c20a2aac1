package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is prepended to every environment override, e.g. APP_SERVER_PORT.
const EnvPrefix = "APP_"

// DefaultPath is the settings file read when no other path is given.
const DefaultPath = "settings.toml"

var (
	ErrConfigRead    = errors.New("config: failed to read settings file")
	ErrConfigParse   = errors.New("config: failed to parse settings file")
	ErrConfigInvalid = errors.New("config: invalid value")
)

// Config is the root configuration for the API server.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `toml:"mode"`
	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
	// ShutdownTimeout is in seconds.
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig configures the relational store.
type DatabaseConfig struct {
	Driver         string `toml:"driver"`
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	Name           string `toml:"name"`
	SSLMode        string `toml:"sslmode"`
	MaxConnections int    `toml:"max_connections"`
	MinConnections int    `toml:"min_connections"`
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when neither a settings file nor
// environment variables provide a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			Mode:            "debug",
			RateLimit:       0,
			RateBurst:       20,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Driver:         "postgres",
			Host:           "localhost",
			Port:           5432,
			Username:       "postgres",
			Password:       "postgres",
			Name:           "postgres",
			SSLMode:        "disable",
			MaxConnections: 12,
			MinConnections: 2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path and
// APP_-prefixed environment variables, in that order of precedence.
// A missing settings file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getEnv(EnvPrefix+"CONFIG", DefaultPath)
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("%w %s: %v", ErrConfigRead, path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrConfigParse, path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port must be between 1 and 65535, got %d", ErrConfigInvalid, c.Server.Port)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port must be between 1 and 65535, got %d", ErrConfigInvalid, c.Database.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode must be debug, release or test, got %q", ErrConfigInvalid, c.Server.Mode)
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("%w: database.driver must be postgres or mysql, got %q", ErrConfigInvalid, c.Database.Driver)
	}
	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("%w: database.max_connections must be positive", ErrConfigInvalid)
	}
	if c.Database.MinConnections < 0 || c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("%w: database.min_connections must be between 0 and max_connections", ErrConfigInvalid)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("%w: server.rate_limit cannot be negative", ErrConfigInvalid)
	}
	return nil
}

// Address returns the host:port pair the server binds to.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL returns the connection URL for the configured database. It is
// accepted both by the gorm postgres driver and by the migration runner.
func (d DatabaseConfig) URL() string {
	switch d.Driver {
	case "mysql":
		return "mysql://" + d.mysqlDSN() + "&multiStatements=true"
	default:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.Username, d.Password),
			Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:     "/" + d.Name,
			RawQuery: "sslmode=" + d.SSLMode,
		}
		return u.String()
	}
}

// DSN returns the data source name handed to the gorm dialector.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "mysql" {
		return d.mysqlDSN()
	}
	return d.URL()
}

func (d DatabaseConfig) mysqlDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username,
		d.Password,
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
	)
}

func applyEnvOverrides(cfg *Config) error {
	cfg.Server.Host = getEnv(EnvPrefix+"SERVER_HOST", cfg.Server.Host)
	cfg.Server.Mode = getEnv(EnvPrefix+"SERVER_MODE", cfg.Server.Mode)
	cfg.Database.Driver = getEnv(EnvPrefix+"DATABASE_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnv(EnvPrefix+"DATABASE_HOST", cfg.Database.Host)
	cfg.Database.Username = getEnv(EnvPrefix+"DATABASE_USERNAME", cfg.Database.Username)
	cfg.Database.Password = getEnv(EnvPrefix+"DATABASE_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv(EnvPrefix+"DATABASE_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnv(EnvPrefix+"DATABASE_SSLMODE", cfg.Database.SSLMode)
	cfg.Log.Level = getEnv(EnvPrefix+"LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv(EnvPrefix+"LOG_FORMAT", cfg.Log.Format)

	ints := []struct {
		key    string
		target *int
	}{
		{"SERVER_PORT", &cfg.Server.Port},
		{"SERVER_RATE_BURST", &cfg.Server.RateBurst},
		{"SERVER_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout},
		{"DATABASE_PORT", &cfg.Database.Port},
		{"DATABASE_MAX_CONNECTIONS", &cfg.Database.MaxConnections},
		{"DATABASE_MIN_CONNECTIONS", &cfg.Database.MinConnections},
	}
	for _, entry := range ints {
		raw := os.Getenv(EnvPrefix + entry.key)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrConfigInvalid, EnvPrefix, entry.key, raw)
		}
		*entry.target = value
	}

	if raw := os.Getenv(EnvPrefix + "SERVER_RATE_LIMIT"); raw != "" {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%w: %sSERVER_RATE_LIMIT=%q is not a number", ErrConfigInvalid, EnvPrefix, raw)
		}
		cfg.Server.RateLimit = value
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
