package skyduel

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
	"github.com/vovakirdan/sky-duel/internal/games/skyduel/mocks"
)

func newArena(t *testing.T, enemies int, sounds SoundPlayer) *Arena {
	t.Helper()
	atlas, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultSkyDuelConfig()
	cfg.Enemy.Count = enemies
	return NewArena(NewRules(cfg, atlas), Options{Seed: 3, Sounds: sounds})
}

func TestArenaDrawOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	a := newArena(t, 1, nil)
	a.AddBullet(Bullet{Owner: OwnerPlayer, Pos: core.V(500, 300)})
	a.AddBullet(Bullet{Owner: OwnerEnemy, Pos: core.V(700, 300)})

	gomock.InOrder(
		r.EXPECT().BeginFrame(),
		r.EXPECT().DrawSprite(assets.Enemy, 0, core.V(300, 50)),
		r.EXPECT().DrawSprite(assets.PlaneForward, 0, core.V(100, 500)),
		r.EXPECT().DrawSprite(assets.PlaneForward, 0, core.V(300, 500)),
		r.EXPECT().DrawSprite(assets.Bullet, 0, core.V(500, 300)),
		r.EXPECT().DrawSprite(assets.Bullet, 0, core.V(700, 300)),
		r.EXPECT().PresentFrame(),
	)

	a.Draw(r)
}

func TestArenaDrawExplosion(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	a := newArena(t, 0, nil)
	p1 := a.Player(core.Player1)
	p1.RotateRight()
	p1.Explode()
	a.AdvanceExplosions()
	a.AdvanceExplosions()
	p1.SetPosition(core.V(200, 600))

	gomock.InOrder(
		r.EXPECT().BeginFrame(),
		// The blast stays where the hit happened.
		r.EXPECT().DrawSprite(assets.Explosion, 2, core.V(100, 500)),
		r.EXPECT().DrawSprite(assets.PlaneForward, 0, core.V(300, 500)),
		r.EXPECT().PresentFrame(),
	)

	a.Draw(r)
}

func TestShotPlaysSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockSoundPlayer(ctrl)
	sounds.EXPECT().PlaySound(core.SoundShot).Times(1)

	a := newArena(t, 0, sounds)
	p1 := a.Player(core.Player1)
	// Burn down the opening cooldown.
	for range 60 {
		a.Tick(1.0/60, FrameInput{})
	}
	a.Tick(1.0/60, FrameInput{Events: []Event{
		{Player: core.Player1, Kind: EventFire},
		{Player: core.Player1, Kind: EventFire},
	}})

	if n := len(a.playerBullets); n != 1 {
		t.Errorf("two presses in one frame fired %d bullets, expected 1", n)
	}
	if pc := p1.fireCooldown1; pc != 99 {
		t.Errorf("player cooldown = %d, expected 99 after one tick", pc)
	}
}
