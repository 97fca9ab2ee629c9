package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server ServerConfig `toml:"server"`
	Auth   AuthConfig   `toml:"auth"`
	Output OutputConfig `toml:"output"`
}

// ServerConfig contains settings for the remote processing service.
type ServerConfig struct {
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RateLimit      float64 `toml:"rate_limit"`
}

// AuthConfig selects the authentication provider and, for the local mode,
// carries the credential table.
type AuthConfig struct {
	Mode  string      `toml:"mode"`
	Users []LocalUser `toml:"users"`
}

// LocalUser is a single entry in the local credential table.
type LocalUser struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	Role     string `toml:"role"`
}

// OutputConfig contains settings for saving processed reports.
type OutputConfig struct {
	Filename string `toml:"filename"`
	Dir      string `toml:"dir"`
}

// Authentication provider modes selectable via [AuthConfig].
const (
	AuthModeSession  = "session"
	AuthModeEndpoint = "endpoint"
	AuthModeLocal    = "local"
)

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) validate() error {
	switch c.Auth.Mode {
	case AuthModeSession, AuthModeEndpoint, AuthModeLocal:
	case "":
		c.Auth.Mode = AuthModeSession
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidConfig, c.Auth.Mode)
	}

	if c.Auth.Mode == AuthModeLocal && len(c.Auth.Users) == 0 {
		return fmt.Errorf("%w: local auth mode requires at least one user", ErrInvalidConfig)
	}

	return nil
}
