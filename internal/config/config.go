// Package config provides YAML-based game configuration loading and
// difficulty management for the duel arena.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded config cannot drive a match.
var ErrInvalidConfig = errors.New("config: invalid")

// Point is an arena coordinate written as [x, y] in YAML.
type Point [2]float64

// X returns the horizontal component.
func (p Point) X() float64 { return p[0] }

// Y returns the vertical component.
func (p Point) Y() float64 { return p[1] }

// PlayerPair holds one value per seat.
type PlayerPair struct {
	P1 Point `yaml:"p1"`
	P2 Point `yaml:"p2"`
}

// SkyDuelConfig contains all configuration for the duel arena.
type SkyDuelConfig struct {
	Display    SkyDuelDisplay   `yaml:"display"`
	Player     SkyDuelPlayer    `yaml:"player"`
	Enemy      SkyDuelEnemy     `yaml:"enemy"`
	Weapons    SkyDuelWeapons   `yaml:"weapons"`
	Bullets    SkyDuelBullets   `yaml:"bullets"`
	Explosion  SkyDuelExplosion `yaml:"explosion"`
	Scoring    SkyDuelScoring   `yaml:"scoring"`
	Respawn    SkyDuelRespawn   `yaml:"respawn"`
	Sound      SkyDuelSound     `yaml:"sound"`
	Gameplay   SkyDuelGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkyDuelDisplay is the logical arena size in world units.
type SkyDuelDisplay struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SkyDuelPlayer defines craft handling.
type SkyDuelPlayer struct {
	Lives        int        `yaml:"lives"`
	Acceleration float64    `yaml:"acceleration"` // velocity added per steering bit
	EdgeNudge    float64    `yaml:"edge_nudge"`   // inward shift when an edge is hit
	Start        PlayerPair `yaml:"start"`
}

// SkyDuelEnemy defines the descending enemy grid.
type SkyDuelEnemy struct {
	Count        int     `yaml:"count"`
	Descent      float64 `yaml:"descent"`        // y added per tick
	FirePeriod   int     `yaml:"fire_period"`    // frame counter value that triggers a shot
	FireResetMax int     `yaml:"fire_reset_max"` // counter resets to rand[0, fire_reset_max)
	GridStart    Point   `yaml:"grid_start"`
	GridStep     float64 `yaml:"grid_step"`
	GridMargin   float64 `yaml:"grid_margin"` // wrap when x > width - margin
}

// SkyDuelWeapons defines cooldown gating.
type SkyDuelWeapons struct {
	Gate                int `yaml:"gate"` // a shot is allowed while cooldown < gate
	PlayerCooldownStart int `yaml:"player_cooldown_start"`
	EnemyCooldownStart  int `yaml:"enemy_cooldown_start"`
	PlayerCooldownReset int `yaml:"player_cooldown_reset"`
	EnemyCooldownReset  int `yaml:"enemy_cooldown_reset"`
}

// SkyDuelBullets defines projectile motion and culling.
type SkyDuelBullets struct {
	PlayerDelta   float64 `yaml:"player_delta"`
	EnemyDelta    float64 `yaml:"enemy_delta"`
	SpawnDivisor  float64 `yaml:"spawn_divisor"` // muzzle offset is height / spawn_divisor
	PruneTop      float64 `yaml:"prune_top"`
	RetiredOffset float64 `yaml:"retired_offset"` // coordinate a spent bullet is parked at
}

// SkyDuelExplosion defines the explosion timer.
type SkyDuelExplosion struct {
	IntervalMS      int `yaml:"interval_ms"`
	DebugIntervalMS int `yaml:"debug_interval_ms"`
}

// SkyDuelScoring defines hit rewards.
type SkyDuelScoring struct {
	HitPoints int `yaml:"hit_points"`
}

// SkyDuelRespawn defines where crafts reappear after each kind of hit.
type SkyDuelRespawn struct {
	EnemyRam    PlayerPair `yaml:"enemy_ram"`
	PlayerRam   PlayerPair `yaml:"player_ram"`
	PlayerShot  PlayerPair `yaml:"player_shot"`
	EnemyShot   PlayerPair `yaml:"enemy_shot"`
	EnemyRamX   float64    `yaml:"enemy_ram_x"`
	EnemyShotX  float64    `yaml:"enemy_shot_x"`
	BulletBumpX float64    `yaml:"bullet_bump_x"` // x a bullet is moved to after killing an enemy
}

// SkyDuelSound defines the engine sound state machine.
type SkyDuelSound struct {
	Enabled         bool    `yaml:"enabled"`
	Volume          float64 `yaml:"volume"` // 0..1
	EngineStart     float64 `yaml:"engine_start"`
	EngineStop      float64 `yaml:"engine_stop"`
	CabinIntervalMS int     `yaml:"cabin_interval_ms"`
}

// SkyDuelGameplay holds match rules.
type SkyDuelGameplay struct {
	DebounceExplode bool   `yaml:"debounce_explode"` // ignore Explode while already exploding
	SaveFile        string `yaml:"save_file"`
}

// Validate reports settings that would make the arena unplayable.
func (c SkyDuelConfig) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display %gx%g", ErrInvalidConfig, c.Display.Width, c.Display.Height)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player lives %d", ErrInvalidConfig, c.Player.Lives)
	case c.Enemy.Count < 0:
		return fmt.Errorf("%w: enemy count %d", ErrInvalidConfig, c.Enemy.Count)
	case c.Enemy.FireResetMax <= 0:
		return fmt.Errorf("%w: enemy fire_reset_max %d", ErrInvalidConfig, c.Enemy.FireResetMax)
	case c.Bullets.SpawnDivisor == 0:
		return fmt.Errorf("%w: bullets spawn_divisor is zero", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy descent at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
