package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings drive a collection run. Regions left empty means all subscribed
// regions of the tenancy.
type Settings struct {
	ConfigPath string   `mapstructure:"config_path"`
	Profile    string   `mapstructure:"profile"`
	Regions    []string `mapstructure:"regions"`
	OutputFile string   `mapstructure:"output_file"`
}

func DefaultSettings() Settings {
	return Settings{
		ConfigPath: DefaultConfigPath(),
		OutputFile: "oci_inventory.xlsx",
	}
}

// LoadSettings reads a settings file on top of the defaults. An empty path
// yields the defaults unchanged.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return &settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
