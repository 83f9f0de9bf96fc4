// Package config loads optional tool defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

const mainSection = "main"

// Defaults used when no config file is present.
const (
	DefaultTimeout = 2
	DefaultLevel   = "info"
)

// DefaultPorts is the common-port table probed by the port scanner.
var DefaultPorts = []int{22, 23, 25, 53, 80, 110, 143, 443, 3306, 5432, 6379, 27017, 3389}

// Config holds tool defaults overridable per invocation by flags.
type Config struct {
	LogLevel string
	Timeout  int // probe timeout, seconds
	Ports    []int
}

// Default returns the built-in configuration.
func Default() *Config {
	ports := make([]int, len(DefaultPorts))
	copy(ports, DefaultPorts)
	return &Config{
		LogLevel: DefaultLevel,
		Timeout:  DefaultTimeout,
		Ports:    ports,
	}
}

// Load reads a TOML config file. A missing file yields the defaults;
// a present but invalid file is an error.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	tree, err := toml.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	section, ok := tree.Get(mainSection).(*toml.Tree)
	if !ok {
		return nil, fmt.Errorf("config %s: section %q not found", filename, mainSection)
	}

	var raw struct {
		LogLevel string
		Timeout  int64
		Ports    []int64
	}
	if err := section.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}

	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.Timeout != 0 {
		if raw.Timeout < 0 {
			return nil, fmt.Errorf("config %s: negative timeout %d", filename, raw.Timeout)
		}
		cfg.Timeout = int(raw.Timeout)
	}
	if len(raw.Ports) > 0 {
		cfg.Ports = cfg.Ports[:0]
		for _, p := range raw.Ports {
			if p < 1 || p > 65535 {
				return nil, fmt.Errorf("config %s: invalid port %d", filename, p)
			}
			cfg.Ports = append(cfg.Ports, int(p))
		}
	}
	return cfg, nil
}
