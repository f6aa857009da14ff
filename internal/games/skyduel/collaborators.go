package skyduel

//go:generate go tool mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks

import (
	"time"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// Renderer draws sprites by handle. The arena calls BeginFrame, one
// DrawSprite per visible entity, then PresentFrame.
type Renderer interface {
	BeginFrame()
	DrawSprite(id assets.SpriteID, frame int, pos core.Vec2)
	PresentFrame()
}

// SoundPlayer plays a clip without blocking. Failures are the player's problem.
type SoundPlayer interface {
	PlaySound(s core.Sound)
}

// TimerScheduler (re)arms the periodic explosion timer. Each firing should
// call Arena.AdvanceExplosions until it reports nothing is exploding.
type TimerScheduler interface {
	Schedule(interval time.Duration)
}

type silentPlayer struct{}

func (silentPlayer) PlaySound(core.Sound) {}

type noTimer struct{}

func (noTimer) Schedule(time.Duration) {}
