package config

import (
	_ "embed"
)

//go:embed defaults/skyduel.yaml
var defaultSkyDuelYAML []byte

// DefaultSkyDuelConfig returns the built-in configuration.
// It mirrors defaults/skyduel.yaml and is used when the embedded file cannot be parsed.
func DefaultSkyDuelConfig() SkyDuelConfig {
	return SkyDuelConfig{
		Display: SkyDuelDisplay{Width: 1280, Height: 720},
		Player: SkyDuelPlayer{
			Lives:        3,
			Acceleration: 3.1,
			EdgeNudge:    1,
			Start:        PlayerPair{P1: Point{100, 500}, P2: Point{300, 500}},
		},
		Enemy: SkyDuelEnemy{
			Count:        14,
			Descent:      0.09,
			FirePeriod:   1200,
			FireResetMax: 1000,
			GridStart:    Point{300, 50},
			GridStep:     150,
			GridMargin:   300,
		},
		Weapons: SkyDuelWeapons{
			Gate:                5,
			PlayerCooldownStart: 50,
			EnemyCooldownStart:  600,
			PlayerCooldownReset: 100,
			EnemyCooldownReset:  700,
		},
		Bullets: SkyDuelBullets{
			PlayerDelta:   -0.7,
			EnemyDelta:    0.5,
			SpawnDivisor:  1.5,
			PruneTop:      10,
			RetiredOffset: -100,
		},
		Explosion: SkyDuelExplosion{IntervalMS: 70, DebugIntervalMS: 50},
		Scoring:   SkyDuelScoring{HitPoints: 100},
		Respawn: SkyDuelRespawn{
			EnemyRam:    PlayerPair{P1: Point{600, 500}, P2: Point{300, 500}},
			PlayerRam:   PlayerPair{P1: Point{200, 600}, P2: Point{50, 600}},
			PlayerShot:  PlayerPair{P1: Point{200, 600}, P2: Point{50, 600}},
			EnemyShot:   PlayerPair{P1: Point{100, 500}, P2: Point{300, 500}},
			EnemyRamX:   100,
			EnemyShotX:  -100,
			BulletBumpX: 100,
		},
		Sound: SkyDuelSound{
			Enabled:         true,
			Volume:          0.5,
			EngineStart:     35,
			EngineStop:      25,
			CabinIntervalMS: 1000,
		},
		Gameplay: SkyDuelGameplay{
			DebounceExplode: false,
			SaveFile:        "~/.arcade/skyduel.sav",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "skyduel", "skyduel_duel":
		return defaultSkyDuelYAML
	default:
		return nil
	}
}
