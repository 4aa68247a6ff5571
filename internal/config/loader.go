package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVariant loads the configuration of one variant by its registry ID.
// Search order: customPath -> ~/.flappynerd/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func LoadVariant(id, customPath string) (VariantConfig, error) {
	var cfg VariantConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	embedded := GetDefaultYAML(id)
	if embedded == nil {
		return cfg, fmt.Errorf("no configuration known for variant %q", id)
	}
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded default for %s: %w", id, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappynerd", "configs", filename)
}
