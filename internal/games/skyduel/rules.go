package skyduel

import (
	"time"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// Rules is the read-only parameter set shared by every entity in an arena.
type Rules struct {
	cfg   config.SkyDuelConfig
	atlas *assets.Atlas
}

// NewRules binds a config to the sprite atlas that sizes the entities.
func NewRules(cfg config.SkyDuelConfig, atlas *assets.Atlas) *Rules {
	return &Rules{cfg: cfg, atlas: atlas}
}

// Atlas returns the sprite atlas.
func (r *Rules) Atlas() *assets.Atlas { return r.atlas }

// Bounds returns the display size in arena units.
func (r *Rules) Bounds() (w, h float64) {
	return r.cfg.Display.Width, r.cfg.Display.Height
}

func (r *Rules) size(id assets.SpriteID) (w, h float64) {
	return r.atlas.Size(id)
}

func (r *Rules) explosionFrames() int {
	return r.atlas.FrameCount(assets.Explosion)
}

func (r *Rules) explosionInterval() time.Duration {
	return time.Duration(r.cfg.Explosion.IntervalMS) * time.Millisecond
}

func (r *Rules) debugExplosionInterval() time.Duration {
	return time.Duration(r.cfg.Explosion.DebugIntervalMS) * time.Millisecond
}

func (r *Rules) cabinInterval() float64 {
	return float64(r.cfg.Sound.CabinIntervalMS) / 1000
}

func vec(p config.Point) core.Vec2 {
	return core.V(p.X(), p.Y())
}

// pick returns the point of a pair that belongs to the given role.
func pick(pair config.PlayerPair, role Role) core.Vec2 {
	if role == RolePlayer2 {
		return vec(pair.P2)
	}
	return vec(pair.P1)
}
