package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML file form of everything the CLI flags accept.
// Flags given explicitly on the command line win over file values.
type Config struct {
	Driver string       `yaml:"driver"`
	Conn   ConnConfig   `yaml:"connection"`
	Stream StreamParams `yaml:"stream"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
