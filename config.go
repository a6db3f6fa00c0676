// ABOUTME: Optional YAML configuration loader for embedding applications
// ABOUTME: Supports ${VAR} environment expansion and validates required fields

package letschat

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config holds the connection settings an embedding application needs to
// construct a Client. The library itself reads no files and no environment;
// LoadConfig exists for applications that prefer file-based configuration
// over hardcoding endpoint and token.
type Config struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
}

// LoadConfig reads a YAML configuration file from the given path. Environment
// variables in the format ${VAR_NAME} are expanded before parsing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.Token == "" {
		return fmt.Errorf("token is required")
	}
	return nil
}

// NewClient constructs a Client from the loaded configuration.
func (c *Config) NewClient() *Client {
	return New(c.Endpoint, c.Token)
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(re.FindStringSubmatch(match)[1])
	})
}
