// Package config - configuration tests
package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Pricing.EscalationRate != 0.15 || cfg.Pricing.GSTRate != 0.18 {
		t.Errorf("pricing defaults = %+v", cfg.Pricing)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pricing.EscalationRate != 0.15 {
		t.Errorf("EscalationRate = %g", cfg.Pricing.EscalationRate)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Pricing.GSTRate = 0.12
	cfg.Data.CarrierFile = "/data/carriers.hcl"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Pricing.GSTRate != 0.12 {
		t.Errorf("GSTRate = %g", loaded.Pricing.GSTRate)
	}
	if loaded.Data.CarrierFile != "/data/carriers.hcl" {
		t.Errorf("CarrierFile = %q", loaded.Data.CarrierFile)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FREIGHT_DIESEL_PRICE", "97.5")
	t.Setenv("FREIGHT_CARRIER_FILE", "/tmp/cards.json")
	t.Setenv("FREIGHT_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pricing.CurrentDieselPrice != 97.5 {
		t.Errorf("CurrentDieselPrice = %g", cfg.Pricing.CurrentDieselPrice)
	}
	if cfg.Data.CarrierFile != "/tmp/cards.json" {
		t.Errorf("CarrierFile = %q", cfg.Data.CarrierFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}
