package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding config, scores, logs and screenshots.
const AppDir = ".sheepjump"

const configFile = "sheepjump.yaml"

// LoadSheep loads the game configuration.
// Search order: customPath -> ~/.sheepjump/config.yaml -> ./configs/sheepjump.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadSheep(customPath string) (SheepConfig, error) {
	cfg, _, err := LoadSheepWithSource(customPath)
	return cfg, err
}

// LoadSheepWithSource is LoadSheep that also reports which file was used.
// The source is "embedded" when no file on disk was read.
func LoadSheepWithSource(customPath string) (SheepConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SheepConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SheepConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SheepConfig{}, "", fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", configFile)
	if cfg, ok := tryLoad(local); ok {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSheepYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultSheepConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg SheepConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserPath returns a path inside the user app directory, or empty if home is unavailable.
func UserPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, name)
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (SheepConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SheepConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return SheepConfig{}, false
	}
	return cfg, true
}

func parse(data []byte) (SheepConfig, error) {
	cfg := DefaultSheepConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SheepConfig{}, err
	}
	return cfg, nil
}
