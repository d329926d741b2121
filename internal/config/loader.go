package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.platformer/config.yaml -> ./configs/platformer.yaml -> embedded default.
// A custom path that cannot be read or parsed, and any missing required
// key, is a fatal configuration error.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return parse(data, userPath)
		}
	}

	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		return parse(data, "configs/platformer.yaml")
	}

	return parse(defaultConfigYAML, "embedded default")
}

// parse unmarshals and validates a configuration document.
func parse(data []byte, source string) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	cfg, err := raw.validate()
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", filename)
}
