package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkyDuel loads the duel configuration.
// Search order: customPath -> ~/.arcade/configs/skyduel.yaml -> ./configs/skyduel.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadSkyDuel(customPath string) (SkyDuelConfig, error) {
	cfg := DefaultSkyDuelConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("skyduel.yaml"), filepath.Join("configs", "skyduel.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML("skyduel"), &cfg); err != nil {
		return DefaultSkyDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid files are skipped.
func tryLoad(path string) (SkyDuelConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SkyDuelConfig{}, false
	}
	cfg := DefaultSkyDuelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyDuelConfig{}, false
	}
	if cfg.Validate() != nil {
		return SkyDuelConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// ApplySkyDuelPreset modifies the config based on a difficulty preset.
func ApplySkyDuelPreset(cfg *SkyDuelConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust roster and lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemy.Count = 8
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemy.Count = 20
		cfg.Difficulty.Enabled = true
	}
}
