package skyduel

import (
	"math/rand"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// EventKind is a discrete per-player input applied at the start of a frame.
type EventKind int

const (
	EventRotateLeft EventKind = iota + 1
	EventRotateRight
	EventFire
	EventExplode
)

// Event is one discrete input from one player.
type Event struct {
	Player core.PlayerID
	Kind   EventKind
}

// FrameInput is everything the players did since the previous frame.
type FrameInput struct {
	P1, P2 DirectionMask
	Events []Event // in arrival order
}

// Options carries the collaborators and seed for a new arena.
type Options struct {
	Seed   int64
	Sounds SoundPlayer
	Timer  TimerScheduler
}

// Arena owns both players, the enemy roster and the two bullet pools, and
// advances them one frame at a time. It is not safe for concurrent use; the
// frame tick and the explosion timer must be delivered on one goroutine.
type Arena struct {
	rules *Rules
	rng   *rand.Rand

	sounds SoundPlayer
	timer  TimerScheduler

	difficulty *config.DifficultyManager

	p1, p2        *Combatant
	enemies       []*Combatant
	playerBullets BulletPool
	enemyBullets  BulletPool

	ticks int
}

// NewArena builds the starting layout: both players at their start
// positions and the enemy grid filled left to right, top to bottom.
func NewArena(rules *Rules, opts Options) *Arena {
	a := &Arena{
		rules:      rules,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		sounds:     opts.Sounds,
		timer:      opts.Timer,
		difficulty: config.NewDifficultyManager(rules.cfg.Difficulty),
	}
	if a.sounds == nil {
		a.sounds = silentPlayer{}
	}
	if a.timer == nil {
		a.timer = noTimer{}
	}

	start := rules.cfg.Player.Start
	a.p1 = NewPlayer(RolePlayer1, vec(start.P1), rules, a.sounds)
	a.p2 = NewPlayer(RolePlayer2, vec(start.P2), rules, a.sounds)
	a.addEnemies(rules.cfg.Enemy.Count)
	return a
}

func (a *Arena) addEnemies(n int) {
	e := a.rules.cfg.Enemy
	width, _ := a.rules.Bounds()
	pos := vec(e.GridStart)

	for range n {
		a.enemies = append(a.enemies, NewEnemy(pos, a.rng.Intn(e.FireResetMax), a.rules, a.sounds))

		pos.X += e.GridStep
		if pos.X > width-e.GridMargin {
			pos.X = e.GridStart.X()
			pos.Y += e.GridStep
		}
	}
}

// AddBullet routes a bullet to the pool its owner tag selects.
func (a *Arena) AddBullet(b Bullet) {
	if b.Owner.Downward() {
		a.enemyBullets = append(a.enemyBullets, b)
		return
	}
	a.playerBullets = append(a.playerBullets, b)
}

// Player returns the combatant in the given seat.
func (a *Arena) Player(id core.PlayerID) *Combatant {
	if id == core.Player2 {
		return a.p2
	}
	return a.p1
}

// Enemies returns the live enemy roster. The slice must not be modified.
func (a *Arena) Enemies() []*Combatant { return a.enemies }

// Ticks returns the number of frames simulated so far.
func (a *Arena) Ticks() int { return a.ticks }

// Rules returns the arena's parameters.
func (a *Arena) Rules() *Rules { return a.rules }

// Tick advances the simulation by one frame of dt seconds:
// discrete events, steering, integration, cooldowns and enemy fire,
// collisions, then pruning of spent bullets and dead enemies.
func (a *Arena) Tick(dt float64, in FrameInput) {
	for _, ev := range in.Events {
		a.apply(ev)
	}

	a.p1.Move(in.P1)
	a.p2.Move(in.P2)
	descent := a.difficulty.Speed(a.rules.cfg.Enemy.Descent, a.bestScore(), a.ticks)
	for _, en := range a.enemies {
		en.MoveEnemy(descent)
	}

	a.p1.Update(dt)
	a.p2.Update(dt)
	for _, en := range a.enemies {
		en.Update(dt)
	}

	a.bookkeeping()
	a.resolveCollisions()
	a.prune()
	a.ticks++
}

func (a *Arena) apply(ev Event) {
	p := a.Player(ev.Player)
	switch ev.Kind {
	case EventRotateLeft:
		p.RotateLeft()
	case EventRotateRight:
		p.RotateRight()
	case EventFire:
		p.Shoot(OwnerPlayer, a)
	case EventExplode:
		a.timer.Schedule(a.rules.debugExplosionInterval())
		p.Explode()
	}
}

// bookkeeping ticks cooldowns and fires any enemy whose counter came due.
func (a *Arena) bookkeeping() {
	e := a.rules.cfg.Enemy

	for _, en := range a.enemies {
		en.TickCooldowns()
		en.frameCounter++
	}
	a.p1.TickCooldowns()
	a.p2.TickCooldowns()

	for _, en := range a.enemies {
		if en.frameCounter == e.FirePeriod {
			en.frameCounter = a.rng.Intn(e.FireResetMax)
			en.Shoot(OwnerEnemy, a)
		}
	}
}

// prune drops bullets that left the visible band and every dead enemy.
func (a *Arena) prune() {
	_, height := a.rules.Bounds()
	top := a.rules.cfg.Bullets.PruneTop

	a.playerBullets = a.playerBullets.Retain(func(b Bullet) bool {
		return b.Pos.Y >= top
	})
	a.enemyBullets = a.enemyBullets.Retain(func(b Bullet) bool {
		return b.Pos.Y >= top && b.Pos.Y <= height
	})

	live := a.enemies[:0]
	for _, en := range a.enemies {
		if !en.IsDead() {
			live = append(live, en)
		}
	}
	clear(a.enemies[len(live):])
	a.enemies = live
}

// AdvanceExplosions is the explosion timer's entry point. It steps every
// exploding combatant and reports whether any is still exploding, so the
// caller knows whether to keep the timer running.
func (a *Arena) AdvanceExplosions() bool {
	active := false
	for _, c := range a.combatants() {
		if !c.IsExploding() {
			continue
		}
		if c.AdvanceExplosion() {
			active = true
		}
	}
	return active
}

func (a *Arena) combatants() []*Combatant {
	all := make([]*Combatant, 0, len(a.enemies)+2)
	all = append(all, a.p1, a.p2)
	return append(all, a.enemies...)
}

func (a *Arena) bestScore() int {
	return max(a.p1.Score(), a.p2.Score())
}

// Winner reports the match result once a player is out of lives.
// Player1 is checked first, so a simultaneous knock-out goes to Player2.
func (a *Arena) Winner() (core.PlayerID, bool) {
	switch {
	case a.p1.Lives() <= 0:
		return core.Player2, true
	case a.p2.Lives() <= 0:
		return core.Player1, true
	default:
		return 0, false
	}
}

// Draw submits the current frame to the renderer. It does not mutate the arena.
func (a *Arena) Draw(r Renderer) {
	r.BeginFrame()
	for _, en := range a.enemies {
		en.draw(r)
	}
	a.p1.draw(r)
	a.p2.draw(r)
	for _, b := range a.playerBullets {
		r.DrawSprite(assets.Bullet, 0, b.Pos)
	}
	for _, b := range a.enemyBullets {
		r.DrawSprite(assets.Bullet, 0, b.Pos)
	}
	r.PresentFrame()
}
