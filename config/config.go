// Package config loads the service configuration from a YAML or JSON
// file with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Input   InputConfig   `json:"input"`
	Output  OutputConfig  `json:"output"`
	Fleet   FleetConfig   `json:"fleet"`
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
}

// InputConfig locates the three planner input documents.
type InputConfig struct {
	MapPath        string `json:"map"`
	SensorsPath    string `json:"sensors"`
	ObjectivesPath string `json:"objectives"`
}

// OutputConfig locates the solution file.
type OutputConfig struct {
	SolutionPath string `json:"solution"`
}

// FleetConfig sets the fleet composition.
type FleetConfig struct {
	Trucks int `json:"trucks"`
	Drones int `json:"drones"`
}

// MetricsConfig controls the optional Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Listen  string `json:"listen"`
}

func (c *InputConfig) SetDefaults() {
	if c.MapPath == "" {
		c.MapPath = "public_map.json"
	}
	if c.SensorsPath == "" {
		c.SensorsPath = "sensor_data.json"
	}
	if c.ObjectivesPath == "" {
		c.ObjectivesPath = "objectives.json"
	}
}

func (c *OutputConfig) SetDefaults() {
	if c.SolutionPath == "" {
		c.SolutionPath = "solution.json"
	}
}

func (c *FleetConfig) SetDefaults() {
	if c.Trucks == 0 && c.Drones == 0 {
		c.Trucks = 3
		c.Drones = 2
	}
}

func (c FleetConfig) Validate() error {
	if c.Trucks < 0 || c.Drones < 0 {
		return fmt.Errorf("fleet counts must be non-negative")
	}
	if c.Trucks+c.Drones == 0 {
		return fmt.Errorf("fleet must contain at least one vehicle")
	}
	return nil
}

func (c *MetricsConfig) SetDefaults() {
	if c.Listen == "" {
		c.Listen = ":9090"
	}
}

// Load reads the file at path and applies RP_-prefixed environment
// overrides (RP_FLEET__TRUCKS=4 overrides fleet.trucks).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("RP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "rp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Input.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Fleet.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Fleet.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
