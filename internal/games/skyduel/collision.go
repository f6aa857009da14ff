package skyduel

import (
	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// Intersects reports whether two boxes overlap. Symmetric in its arguments.
func Intersects(a, b core.Box) bool {
	return a.Intersects(b)
}

func collide(a, b *Combatant) bool {
	return Intersects(a.Box(), b.Box())
}

func (a *Arena) bulletBox(b Bullet) core.Box {
	w, h := a.rules.size(assets.Bullet)
	return core.BoxAround(b.Pos, w, h)
}

// hit explodes a combatant and (re)arms the explosion timer.
func (a *Arena) hit(c *Combatant) {
	c.Explode()
	a.timer.Schedule(a.rules.explosionInterval())
}

// resolveCollisions runs every pairwise check for one frame in a fixed order:
// enemies against each player, player against player, player bullets against
// the players and then every enemy, enemy bullets against the players.
// Entities are repositioned in place; removal happens later in prune.
func (a *Arena) resolveCollisions() {
	cfg := a.rules.cfg
	resp := cfg.Respawn
	points := cfg.Scoring.HitPoints
	p1, p2 := a.p1, a.p2

	for _, en := range a.enemies {
		for _, p := range []*Combatant{p1, p2} {
			if !collide(en, p) {
				continue
			}
			a.hit(p)
			p.SetPosition(pick(resp.EnemyRam, p.role))
			a.hit(en)
			en.pos.X = resp.EnemyRamX
		}
	}

	if collide(p1, p2) {
		a.hit(p2)
		p2.SetPosition(pick(resp.PlayerRam, RolePlayer2))
		a.hit(p1)
		p1.SetPosition(pick(resp.PlayerRam, RolePlayer1))
	}

	for i := range a.playerBullets {
		b := &a.playerBullets[i]
		b.Advance()

		// The opposing seat gets the credit.
		for _, victim := range []*Combatant{p2, p1} {
			other := a.Player(victim.role.PlayerID().Other())
			if !Intersects(a.bulletBox(*b), victim.Box()) {
				continue
			}
			a.hit(victim)
			b.Pos.X = cfg.Bullets.RetiredOffset
			other.AddScore(points)
			victim.SetPosition(pick(resp.PlayerShot, victim.role))
		}

		for _, en := range a.enemies {
			if !Intersects(a.bulletBox(*b), en.Box()) {
				continue
			}
			a.hit(en)
			en.pos.X = resp.EnemyShotX
			b.Pos.X = resp.BulletBumpX
			p1.AddScore(points)
			p2.AddScore(points)
		}
	}

	for i := range a.enemyBullets {
		b := &a.enemyBullets[i]
		b.Advance()

		for _, p := range []*Combatant{p1, p2} {
			if !Intersects(a.bulletBox(*b), p.Box()) {
				continue
			}
			a.hit(p)
			b.Pos.Y = cfg.Bullets.RetiredOffset
			p.SetPosition(pick(resp.EnemyShot, p.role))
		}
	}
}
