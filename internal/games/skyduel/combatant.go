package skyduel

import (
	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// Role identifies who controls a combatant.
type Role int

const (
	RolePlayer1 Role = iota + 1
	RolePlayer2
	RoleEnemy
)

func (r Role) String() string {
	switch r {
	case RolePlayer1:
		return "player1"
	case RolePlayer2:
		return "player2"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// PlayerID maps a player role to its seat. Enemies have no seat.
func (r Role) PlayerID() core.PlayerID {
	switch r {
	case RolePlayer1:
		return core.Player1
	case RolePlayer2:
		return core.Player2
	default:
		return 0
	}
}

// LifeState is the explosion sub-state derived from a combatant's flags.
type LifeState int

const (
	Alive LifeState = iota
	Exploding
	Dead
)

func (s LifeState) String() string {
	switch s {
	case Exploding:
		return "exploding"
	case Dead:
		return "dead"
	default:
		return "alive"
	}
}

// SpeedState drives the engine sound.
type SpeedState int

const (
	SpeedStopped SpeedState = iota
	SpeedStarted
)

// Combatant is a player craft or an enemy. Both share one capability set;
// the role only changes which entry points the arena calls.
type Combatant struct {
	rules  *Rules
	sounds SoundPlayer

	role   Role
	pos    core.Vec2
	vel    core.Vec2
	facing Facing
	sprite assets.SpriteID

	fireCooldown  int // enemy path
	fireCooldown1 int // player path

	lives int
	score int

	exploding      bool
	explosionFrame int
	explosionPos   core.Vec2
	dead           bool

	frameCounter int

	speed      SpeedState
	soundTimer float64
}

func newCombatant(role Role, pos core.Vec2, rules *Rules, sounds SoundPlayer) *Combatant {
	if sounds == nil {
		sounds = silentPlayer{}
	}
	cfg := rules.cfg
	c := &Combatant{
		rules:         rules,
		sounds:        sounds,
		role:          role,
		pos:           pos,
		facing:        FacingForward,
		sprite:        FacingForward.Sprite(),
		fireCooldown:  cfg.Weapons.EnemyCooldownStart,
		fireCooldown1: cfg.Weapons.PlayerCooldownStart,
		lives:         cfg.Player.Lives,
	}
	if role == RoleEnemy {
		c.sprite = assets.Enemy
	}
	return c
}

// NewPlayer creates a player craft at pos, facing forward.
func NewPlayer(role Role, pos core.Vec2, rules *Rules, sounds SoundPlayer) *Combatant {
	return newCombatant(role, pos, rules, sounds)
}

// NewEnemy creates an enemy at pos with its fire counter preset.
func NewEnemy(pos core.Vec2, frameCounter int, rules *Rules, sounds SoundPlayer) *Combatant {
	c := newCombatant(RoleEnemy, pos, rules, sounds)
	c.frameCounter = frameCounter
	return c
}

// Position is the sprite center in arena pixels.
func (c *Combatant) Position() core.Vec2 { return c.pos }

// SetPosition moves the craft without touching its velocity.
func (c *Combatant) SetPosition(p core.Vec2) { c.pos = p }

// Sprite is the image matching the current facing.
func (c *Combatant) Sprite() assets.SpriteID { return c.sprite }

// Lives is the number of lives left.
func (c *Combatant) Lives() int { return c.lives }

// Score is the points earned from hits.
func (c *Combatant) Score() int { return c.score }

// IsExploding reports whether the explosion animation is running.
func (c *Combatant) IsExploding() bool { return c.exploding }

// IsDead reports whether the animation finished and the craft is gone.
func (c *Combatant) IsDead() bool { return c.dead }

// AddScore awards points for a hit.
func (c *Combatant) AddScore(points int) {
	c.score += points
}

// State derives the explosion sub-state.
func (c *Combatant) State() LifeState {
	switch {
	case c.exploding:
		return Exploding
	case c.dead:
		return Dead
	default:
		return Alive
	}
}

// Size returns the current sprite's extent.
func (c *Combatant) Size() (w, h float64) {
	return c.rules.size(c.sprite)
}

// Box returns the collision box around the current position.
func (c *Combatant) Box() core.Box {
	w, h := c.Size()
	return core.BoxAround(c.pos, w, h)
}

// Move applies steering. Each held bit adds the acceleration to velocity,
// then the matching display edge is checked: at or past it, velocity on
// that axis drops to zero and the craft is pushed one nudge inward.
// The push repeats on every call while the edge condition holds.
// While exploding the mask is ignored but the edges still hold, so a
// craft hit at speed cannot drift out of the arena.
func (c *Combatant) Move(mask DirectionMask) {
	if c.exploding {
		mask = 0
	}
	accel := c.rules.cfg.Player.Acceleration
	nudge := c.rules.cfg.Player.EdgeNudge
	width, height := c.rules.Bounds()
	w, h := c.Size()

	if mask.Has(DirLeft) {
		c.vel.X -= accel
	}
	if c.pos.X-w/2 <= 0 {
		c.vel.X = 0
		c.pos.X += nudge
	}

	if mask.Has(DirRight) {
		c.vel.X += accel
	}
	if c.pos.X+w/2 >= width {
		c.vel.X = 0
		c.pos.X -= nudge
	}

	if mask.Has(DirForward) {
		c.vel.Y -= accel
	}
	if c.pos.Y-h/2 <= 0 {
		c.vel.Y = 0
		c.pos.Y += nudge
	}

	if mask.Has(DirBackward) {
		c.vel.Y += accel
	}
	if c.pos.Y+h/2 >= height {
		c.vel.Y = 0
		c.pos.Y -= nudge
	}
}

// MoveEnemy advances an enemy down the screen by step, ignoring velocity.
func (c *Combatant) MoveEnemy(step float64) {
	c.pos.Y += step
}

// RotateLeft turns the craft one step along Forward -> Left -> Backward -> Right.
func (c *Combatant) RotateLeft() {
	c.face(c.facing.Next())
}

// RotateRight turns the craft one step the other way.
func (c *Combatant) RotateRight() {
	c.face(c.facing.Prev())
}

func (c *Combatant) face(f Facing) {
	c.facing = f
	if c.role != RoleEnemy {
		c.sprite = f.Sprite()
	}
}

// Shoot fires a bullet if the cooldown for the tag's path allows it.
// A "player" shot leaves above the craft and goes to the player pool;
// an "enemy" shot leaves below it and goes to the enemy pool. Both
// cooldowns are re-armed after every call, fired or not.
func (c *Combatant) Shoot(tag Owner, sink BulletSink) bool {
	cfg := c.rules.cfg
	_, h := c.Size()
	offset := h / cfg.Bullets.SpawnDivisor

	fired := false
	if tag == OwnerPlayer && c.fireCooldown1 < cfg.Weapons.Gate {
		sink.AddBullet(Bullet{
			Owner:   OwnerPlayer,
			Pos:     c.pos.Offset(0, -offset),
			Delta:   cfg.Bullets.PlayerDelta,
			Shooter: c.role,
		})
		fired = true
	}
	if tag == OwnerEnemy && c.fireCooldown < cfg.Weapons.Gate {
		sink.AddBullet(Bullet{
			Owner:   OwnerEnemy,
			Pos:     c.pos.Offset(0, offset),
			Delta:   cfg.Bullets.EnemyDelta,
			Shooter: c.role,
		})
		fired = true
	}

	c.fireCooldown1 = cfg.Weapons.PlayerCooldownReset
	c.fireCooldown = cfg.Weapons.EnemyCooldownReset
	if fired {
		c.sounds.PlaySound(core.SoundShot)
	}
	return fired
}

// TickCooldowns counts both fire cooldowns down by one, stopping at 1.
func (c *Combatant) TickCooldowns() {
	if c.fireCooldown1 > 1 {
		c.fireCooldown1--
	}
	if c.fireCooldown > 1 {
		c.fireCooldown--
	}
}

// Update integrates velocity over dt seconds and runs the engine sound machine.
func (c *Combatant) Update(dt float64) {
	c.pos = c.pos.Add(c.vel.Scale(dt))

	if c.role == RoleEnemy {
		return
	}

	snd := c.rules.cfg.Sound
	speed := c.vel.Magnitude()
	c.soundTimer += dt

	switch c.speed {
	case SpeedStopped:
		if speed > snd.EngineStart {
			c.speed = SpeedStarted
			c.sounds.PlaySound(core.SoundJetStart)
			c.soundTimer = 0
		}
	case SpeedStarted:
		if speed < snd.EngineStop {
			c.speed = SpeedStopped
			c.sounds.PlaySound(core.SoundJetStop)
			c.soundTimer = 0
		} else if c.soundTimer > c.rules.cabinInterval() {
			c.sounds.PlaySound(core.SoundJetCabin)
			c.soundTimer = 0
		}
	}
}

// Explode costs a life and starts the explosion animation where the
// combatant currently is. Calling it again mid-explosion restarts the
// animation and costs another life, unless the debounce option is on.
func (c *Combatant) Explode() {
	if c.exploding && c.rules.cfg.Gameplay.DebounceExplode {
		return
	}
	c.lives--
	c.exploding = true
	c.explosionFrame = 0
	c.explosionPos = c.pos
	c.sounds.PlaySound(core.SoundExplosion)
}

// AdvanceExplosion shows the next explosion frame. When the last frame has
// been shown the combatant is marked dead, its velocity cleared and the
// engine stopped, and false is returned. Otherwise, including when nothing
// is exploding, it returns true.
func (c *Combatant) AdvanceExplosion() bool {
	if !c.exploding {
		return true
	}
	c.explosionFrame++
	if c.explosionFrame >= c.rules.explosionFrames() {
		c.dead = true
		c.exploding = false
		c.explosionFrame = 0
		c.vel = core.Vec2{}
		c.speed = SpeedStopped
		return false
	}
	return true
}

// draw submits the combatant's current look to the renderer.
func (c *Combatant) draw(r Renderer) {
	if c.exploding {
		r.DrawSprite(assets.Explosion, c.explosionFrame, c.explosionPos)
		return
	}
	r.DrawSprite(c.sprite, 0, c.pos)
}
