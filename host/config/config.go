package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the console configuration.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Console ConsoleConfig `yaml:"console"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port          string `yaml:"port"`
	BaudRate      int    `yaml:"baud_rate"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// ConsoleConfig contains terminal behavior settings.
type ConsoleConfig struct {
	// Echo repeats typed commands on the local terminal, useful when
	// the device side does not echo.
	Echo bool `yaml:"echo"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:          "/dev/ttyACM0",
			BaudRate:      115200,
			ReadTimeoutMs: 100,
		},
		Console: ConsoleConfig{
			Echo: false,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist,
// it returns the defaults; fields missing from the file keep their
// default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks configuration correctness. It performs declarative
// validation only and must not mutate the configuration.
func (c *Config) Validate() error {
	if c.Serial.Port == "" {
		return fmt.Errorf("serial.port must not be empty")
	}
	if c.Serial.BaudRate <= 0 {
		return fmt.Errorf("serial.baud_rate must be positive, got %d", c.Serial.BaudRate)
	}
	if c.Serial.ReadTimeoutMs < 0 {
		return fmt.Errorf("serial.read_timeout_ms must not be negative, got %d", c.Serial.ReadTimeoutMs)
	}
	return nil
}
