package skyduel

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
	"github.com/vovakirdan/sky-duel/internal/games/skyduel/mocks"
)

func TestNewArenaLayout(t *testing.T) {
	rules := testRules(t, func(c *config.SkyDuelConfig) { c.Enemy.Count = 12 })
	a := NewArena(rules, Options{Seed: 7})

	if a.Player(core.Player1).Position() != core.V(100, 500) {
		t.Errorf("P1 starts at %v", a.Player(core.Player1).Position())
	}
	if a.Player(core.Player2).Position() != core.V(300, 500) {
		t.Errorf("P2 starts at %v", a.Player(core.Player2).Position())
	}

	enemies := a.Enemies()
	if len(enemies) != 12 {
		t.Fatalf("len(Enemies()) = %d, expected 12", len(enemies))
	}

	// Rows wrap once x passes width-300, so five per row at 1280 wide.
	want := map[int]core.Vec2{
		0:  core.V(300, 50),
		4:  core.V(900, 50),
		5:  core.V(300, 200),
		10: core.V(300, 350),
		11: core.V(450, 350),
	}
	for i, pos := range want {
		if enemies[i].Position() != pos {
			t.Errorf("enemy %d at %v, expected %v", i, enemies[i].Position(), pos)
		}
	}
	for i, en := range enemies {
		if fc := en.frameCounter; fc < 0 || fc >= 1000 {
			t.Errorf("enemy %d frame counter %d out of range", i, fc)
		}
	}
}

func TestNewArenaDeterministic(t *testing.T) {
	rules := testRules(t, func(c *config.SkyDuelConfig) { c.Enemy.Count = 6 })
	a := NewArena(rules, Options{Seed: 99})
	b := NewArena(rules, Options{Seed: 99})
	for i := range a.Enemies() {
		if a.Enemies()[i].frameCounter != b.Enemies()[i].frameCounter {
			t.Fatalf("enemy %d counters differ for the same seed", i)
		}
	}
}

func TestAddBulletRouting(t *testing.T) {
	tests := []struct {
		owner     Owner
		wantEnemy bool
	}{
		{OwnerPlayer, false},
		{OwnerNone, false},
		{OwnerEnemy, true},
		{OwnerDown, true},
	}
	for _, tc := range tests {
		t.Run(string(tc.owner), func(t *testing.T) {
			a := newTestArena(t, nil)
			a.AddBullet(Bullet{Owner: tc.owner, Pos: core.V(600, 300)})
			gotEnemy := len(a.enemyBullets) == 1
			if gotEnemy != tc.wantEnemy || len(a.playerBullets)+len(a.enemyBullets) != 1 {
				t.Errorf("owner %q routed to enemy pool = %v", tc.owner, gotEnemy)
			}
		})
	}
}

func TestEnemyFiresAtPeriod(t *testing.T) {
	tests := []struct {
		name     string
		cooldown int
		wantShot bool
	}{
		{"ready", 1, true},
		{"cooling down", 600, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestArena(t, nil)
			en := NewEnemy(core.V(600, 50), 1199, a.rules, nil)
			en.fireCooldown = tc.cooldown
			a.enemies = append(a.enemies, en)

			a.Tick(1.0/60, FrameInput{})

			if got := len(a.enemyBullets) == 1; got != tc.wantShot {
				t.Errorf("shot = %v, expected %v", got, tc.wantShot)
			}
			if en.frameCounter >= 1000 {
				t.Errorf("frame counter %d not reset after reaching the period", en.frameCounter)
			}
		})
	}
}

func TestPlayerFireEvent(t *testing.T) {
	a := newTestArena(t, nil)
	p2 := a.Player(core.Player2)
	p2.fireCooldown1 = 0

	a.Tick(1.0/60, FrameInput{Events: []Event{{Player: core.Player2, Kind: EventFire}}})

	if len(a.playerBullets) != 1 {
		t.Fatalf("len(playerBullets) = %d, expected 1", len(a.playerBullets))
	}
	if b := a.playerBullets[0]; b.Shooter != RolePlayer2 || b.Pos.X != 300 {
		t.Errorf("bullet = %+v", b)
	}

	// Fresh players still have their opening cooldown.
	a.Tick(1.0/60, FrameInput{Events: []Event{{Player: core.Player1, Kind: EventFire}}})
	if len(a.playerBullets) != 1 {
		t.Errorf("P1 fired through its opening cooldown")
	}
}

func TestRotateEvents(t *testing.T) {
	a := newTestArena(t, nil)
	a.Tick(1.0/60, FrameInput{Events: []Event{
		{Player: core.Player1, Kind: EventRotateLeft},
		{Player: core.Player2, Kind: EventRotateRight},
	}})
	if f := a.Player(core.Player1).facing; f != FacingLeft {
		t.Errorf("P1 facing %v", f)
	}
	if f := a.Player(core.Player2).facing; f != FacingRight {
		t.Errorf("P2 facing %v", f)
	}
}

func TestExplodeEventSchedulesDebugTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	timer := mocks.NewMockTimerScheduler(ctrl)
	timer.EXPECT().Schedule(50 * time.Millisecond)

	a := newTestArena(t, timer)
	a.Tick(1.0/60, FrameInput{Events: []Event{{Player: core.Player2, Kind: EventExplode}}})

	if p2 := a.Player(core.Player2); !p2.IsExploding() || p2.Lives() != 2 {
		t.Errorf("P2 exploding %v lives %d", p2.IsExploding(), p2.Lives())
	}
}

func TestPrune(t *testing.T) {
	a := newTestArena(t, nil)
	a.AddBullet(Bullet{Owner: OwnerPlayer, Pos: core.V(600, 5), Delta: -0.7})
	a.AddBullet(Bullet{Owner: OwnerPlayer, Pos: core.V(600, 300), Delta: -0.7})
	a.AddBullet(Bullet{Owner: OwnerEnemy, Pos: core.V(600, 800), Delta: 0.5})
	a.AddBullet(Bullet{Owner: OwnerEnemy, Pos: core.V(600, -100), Delta: 0.5})
	a.AddBullet(Bullet{Owner: OwnerEnemy, Pos: core.V(900, 300), Delta: 0.5})

	dead := NewEnemy(core.V(1000, 100), 0, a.rules, nil)
	dead.dead = true
	live := NewEnemy(core.V(1100, 100), 0, a.rules, nil)
	a.enemies = append(a.enemies, dead, live)

	a.Tick(1.0/60, FrameInput{})

	if len(a.playerBullets) != 1 || len(a.enemyBullets) != 1 {
		t.Errorf("bullets left: %d player, %d enemy", len(a.playerBullets), len(a.enemyBullets))
	}
	if len(a.Enemies()) != 1 || a.Enemies()[0] != live {
		t.Errorf("dead enemy not pruned: %d left", len(a.Enemies()))
	}
}

func TestAdvanceExplosionsRemovesEnemy(t *testing.T) {
	a := newTestArena(t, nil)
	en := NewEnemy(core.V(1000, 100), 0, a.rules, nil)
	a.enemies = append(a.enemies, en)
	en.Explode()

	if !en.IsExploding() {
		t.Fatal("enemy not exploding after Explode")
	}
	for i := 1; i < 16; i++ {
		if !a.AdvanceExplosions() {
			t.Fatalf("AdvanceExplosions() ended at call %d", i)
		}
	}
	if a.AdvanceExplosions() {
		t.Fatal("AdvanceExplosions() should end after the last frame")
	}
	if en.IsExploding() || !en.IsDead() {
		t.Errorf("after the last frame: exploding %v dead %v", en.IsExploding(), en.IsDead())
	}

	a.Tick(1.0/60, FrameInput{})
	if len(a.Enemies()) != 0 {
		t.Errorf("exploded enemy still in roster")
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2     int
		wantWinner core.PlayerID
		wantOver   bool
	}{
		{"both alive", 3, 3, 0, false},
		{"player one out", 0, 2, core.Player2, true},
		{"player two out", 1, -1, core.Player1, true},
		{"both out goes to player two", 0, 0, core.Player2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestArena(t, nil)
			a.Player(core.Player1).lives = tc.p1
			a.Player(core.Player2).lives = tc.p2
			w, over := a.Winner()
			if w != tc.wantWinner || over != tc.wantOver {
				t.Errorf("Winner() = %v, %v, expected %v, %v", w, over, tc.wantWinner, tc.wantOver)
			}
		})
	}
}

func TestSteeringIntegrates(t *testing.T) {
	a := newTestArena(t, nil)
	for range 10 {
		a.Tick(0.5, FrameInput{P1: DirRight})
	}
	p1 := a.Player(core.Player1)
	// Velocity grows by 3.1 each frame and is integrated at half a second.
	if !approx(p1.vel.X, 31) {
		t.Errorf("velocity = %v", p1.vel)
	}
	if !approx(p1.Position().X, 100+3.1*0.5*55) {
		t.Errorf("position = %v", p1.Position())
	}
	if a.Ticks() != 10 {
		t.Errorf("Ticks() = %d", a.Ticks())
	}
}
