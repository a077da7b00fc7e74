// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"freight-rate/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Data contains reference data locations
	Data DataConfig `json:"data"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// EscalationRate is the margin fraction applied on the subtotal
	EscalationRate float64 `json:"escalation_rate"`

	// GSTRate is the tax fraction applied after escalation
	GSTRate float64 `json:"gst_rate"`

	// CurrentDieselPrice feeds dynamic fuel surcharges; zero disables
	// the live feed
	CurrentDieselPrice float64 `json:"current_diesel_price"`
}

// DataConfig locates the reference data files
type DataConfig struct {
	// Dir is the directory holding carrier region tables
	Dir string `json:"dir"`

	// PincodeFile is the national pincode directory CSV
	PincodeFile string `json:"pincode_file"`

	// AliasFile holds city/state alias spellings (JSON)
	AliasFile string `json:"alias_file"`

	// MetroFile lists metropolitan cities (JSON)
	MetroFile string `json:"metro_file"`

	// SpecialStatesFile lists remote-category states (JSON)
	SpecialStatesFile string `json:"special_states_file"`

	// CarrierFile holds carrier rate cards (.json or .hcl)
	CarrierFile string `json:"carrier_file"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the full cost breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".freight-rate", "data")

	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			EscalationRate: 0.15,
			GSTRate:        0.18,
		},
		Data: DataConfig{
			Dir:               dataDir,
			PincodeFile:       filepath.Join(dataDir, "pincodes.csv"),
			AliasFile:         filepath.Join(dataDir, "aliases.json"),
			MetroFile:         filepath.Join(dataDir, "metros.json"),
			SpecialStatesFile: filepath.Join(dataDir, "special_states.json"),
			CarrierFile:       filepath.Join(dataDir, "carriers.json"),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default().applyEnv(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config.applyEnv(), nil
}

// applyEnv overlays environment variables on the loaded configuration.
// The diesel price in particular changes daily and is easier to feed
// through the environment than a config edit.
func (c *Config) applyEnv() *Config {
	if v := os.Getenv("FREIGHT_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("FREIGHT_CARRIER_FILE"); v != "" {
		c.Data.CarrierFile = v
	}
	if v := os.Getenv("FREIGHT_DIESEL_PRICE"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			c.Pricing.CurrentDieselPrice = price
		}
	}
	if v := os.Getenv("FREIGHT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
