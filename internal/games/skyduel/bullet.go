package skyduel

import "github.com/vovakirdan/sky-duel/internal/core"

// Owner tags a bullet with the side that fired it. The tag picks the pool
// the bullet lives in and so the direction it travels.
type Owner string

const (
	OwnerNone   Owner = ""
	OwnerPlayer Owner = "player"
	OwnerEnemy  Owner = "enemy"
	OwnerDown   Owner = "down"
)

// Downward reports whether bullets with this tag travel down the screen
// and belong in the enemy pool.
func (o Owner) Downward() bool {
	return o == OwnerEnemy || o == OwnerDown
}

// Bullet is a projectile in flight.
type Bullet struct {
	Owner   Owner
	Pos     core.Vec2
	Delta   float64 // vertical movement per frame
	Shooter Role
}

// Advance moves the bullet by its per-frame delta.
func (b *Bullet) Advance() {
	b.Pos.Y += b.Delta
}

// BulletSink receives bullets emitted by Shoot.
type BulletSink interface {
	AddBullet(b Bullet)
}

// BulletPool is an ordered set of live bullets. Iteration order decides
// which hit is seen first when several bullets overlap in one frame.
type BulletPool []Bullet

// Retain drops every bullet for which keep returns false, preserving order.
func (p BulletPool) Retain(keep func(Bullet) bool) BulletPool {
	out := p[:0]
	for _, b := range p {
		if keep(b) {
			out = append(out, b)
		}
	}
	clear(p[len(out):])
	return out
}
