package skyduel

import (
	"math"
	"testing"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// testRules returns default rules with no enemies, adjusted by mutators.
func testRules(t testing.TB, mutate ...func(*config.SkyDuelConfig)) *Rules {
	t.Helper()
	atlas, err := assets.Default()
	if err != nil {
		t.Fatalf("assets.Default() error: %v", err)
	}
	cfg := config.DefaultSkyDuelConfig()
	cfg.Enemy.Count = 0
	for _, m := range mutate {
		m(&cfg)
	}
	return NewRules(cfg, atlas)
}

// bulletRecorder is a BulletSink that keeps everything it receives.
type bulletRecorder struct {
	bullets []Bullet
}

func (r *bulletRecorder) AddBullet(b Bullet) {
	r.bullets = append(r.bullets, b)
}

// soundRecorder is a SoundPlayer that keeps everything it receives.
type soundRecorder struct {
	sounds []core.Sound
}

func (r *soundRecorder) PlaySound(s core.Sound) {
	r.sounds = append(r.sounds, s)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
