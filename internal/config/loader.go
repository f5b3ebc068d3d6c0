package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the hardcoded defaults, so a file only needs the keys
// it changes. The result is validated.
func load[T any, PT interface {
	*T
	validator
}](id, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, PT(&cfg).Validate()
	}

	if data, ok := readFirst(userConfigPath(id+".yaml"), filepath.Join("configs", id+".yaml")); ok {
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, PT(&candidate).Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, PT(&cfg).Validate()
}

// readFirst returns the contents of the first readable path.
func readFirst(paths ...string) ([]byte, bool) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			return data, true
		}
	}
	return nil, false
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadMansion loads the mansion configuration.
func LoadMansion(customPath string) (MansionConfig, error) {
	return load[MansionConfig]("mansion", customPath, defaultMansionYAML, DefaultMansionConfig)
}

// LoadChase loads the chase configuration.
func LoadChase(customPath string) (ChaseConfig, error) {
	return load[ChaseConfig]("chase", customPath, defaultChaseYAML, DefaultChaseConfig)
}

// LoadBricks loads the brick breaker configuration.
func LoadBricks(customPath string) (BricksConfig, error) {
	return load[BricksConfig]("bricks", customPath, defaultBricksYAML, DefaultBricksConfig)
}

// LoadPlatformer loads the platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load[PlatformerConfig]("platformer", customPath, defaultPlatformerYAML, DefaultPlatformerConfig)
}

// ParsePreset converts a CLI flag value to a preset. Empty means none.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// applyPreset sets progression and starting level. An empty preset keeps the file's values.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyMansionPreset modifies the config based on a difficulty preset.
func ApplyMansionPreset(cfg *MansionConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Layout.GhostChance = 0.35
		cfg.Tools.StunTicks = 45
	case DifficultyHard:
		cfg.Layout.GhostChance = 0.7
		cfg.Tools.StunTicks = 20
	}
}

// ApplyChasePreset modifies the config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.HP = 150
		cfg.Cars.Count = 6
	case DifficultyHard:
		cfg.Player.HP = 70
		cfg.Cars.Count = 10
	}
}

// ApplyBricksPreset modifies the config based on a difficulty preset.
// The ball speed is resolved once per run from the starting level.
func ApplyBricksPreset(cfg *BricksConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
	cfg.Difficulty.Progression.Type = "none"

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 140
	case DifficultyHard:
		cfg.Paddle.Width = 80
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.HP = 5
		cfg.Boss.HP = 2
	case DifficultyHard:
		cfg.Player.HP = 1
		cfg.Boss.HP = 5
	}
}
