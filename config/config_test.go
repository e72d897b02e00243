package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLWithDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
input:
  map: maps/city.json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input.MapPath != "maps/city.json" {
		t.Fatalf("map path %s", cfg.Input.MapPath)
	}
	if cfg.Input.SensorsPath != "sensor_data.json" || cfg.Output.SolutionPath != "solution.json" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Fleet.Trucks != 3 || cfg.Fleet.Drones != 2 {
		t.Fatalf("fleet defaults: %+v", cfg.Fleet)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("logging default: %+v", cfg.Logging)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"fleet":{"trucks":1,"drones":4}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Fleet.Trucks != 1 || cfg.Fleet.Drones != 4 {
		t.Fatalf("fleet: %+v", cfg.Fleet)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
fleet:
  trucks: 3
  drones: 2
`)
	t.Setenv("RP_FLEET__TRUCKS", "5")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Fleet.Trucks != 5 {
		t.Fatalf("env override ignored: %+v", cfg.Fleet)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	if _, err := Load(writeConfig(t, "config.yaml", "logging:\n  level: loud\n")); err == nil {
		t.Fatal("expected error for unknown log level")
	}
	if _, err := Load(writeConfig(t, "config.yaml", "fleet:\n  trucks: -1\n  drones: 2\n")); err == nil {
		t.Fatal("expected error for negative fleet count")
	}
	if _, err := Load(writeConfig(t, "config.toml", "")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
