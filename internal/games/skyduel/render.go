package skyduel

import (
	"fmt"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/core"
)

// Minimum terminal size the arena can be drawn in.
const (
	minScreenW = 40
	minScreenH = 12
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// screenRenderer draws atlas sprites into a character screen, scaling
// arena coordinates to cells. Sprites are centered on their position.
type screenRenderer struct {
	dst    *core.Screen
	atlas  *assets.Atlas
	arenaW float64
	arenaH float64
}

func newScreenRenderer(dst *core.Screen, rules *Rules) *screenRenderer {
	w, h := rules.Bounds()
	return &screenRenderer{dst: dst, atlas: rules.Atlas(), arenaW: w, arenaH: h}
}

func (r *screenRenderer) BeginFrame() {}

func (r *screenRenderer) PresentFrame() {}

// cell maps an arena position to a screen cell.
func (r *screenRenderer) cell(pos core.Vec2) (x, y int) {
	fieldH := r.dst.Height() - hudRows
	x = int(pos.X / r.arenaW * float64(r.dst.Width()))
	y = hudRows + int(pos.Y/r.arenaH*float64(fieldH))
	return x, y
}

func (r *screenRenderer) DrawSprite(id assets.SpriteID, frame int, pos core.Vec2) {
	s, err := r.atlas.Get(id)
	if err != nil {
		return
	}
	lines := s.Stage(frame)
	cx, cy := r.cell(pos)
	top := cy - len(lines)/2
	color := spriteColor(id)

	for i, line := range lines {
		y := top + i
		if y < hudRows {
			continue
		}
		runes := []rune(line)
		left := cx - len(runes)/2
		for j, ch := range runes {
			if ch == ' ' {
				continue
			}
			r.dst.SetColored(left+j, y, ch, color)
		}
	}
}

func spriteColor(id assets.SpriteID) core.Color {
	switch id {
	case assets.Enemy:
		return core.ColorEnemy
	case assets.Bullet:
		return core.ColorBullet
	case assets.Explosion:
		return core.ColorExplosion
	default:
		return core.ColorWhite
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateBroken {
		dst.DrawTextCentered(dst.Height()/2-1, "Sky Duel cannot start")
		dst.DrawTextCentered(dst.Height()/2+1, g.State().Notice)
		return
	}
	if g.arena == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	r := newScreenRenderer(dst, g.arena.Rules())
	g.arena.Draw(r)
	g.renderTags(dst, r)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderTags marks each craft with its seat number in the seat's color.
func (g *Game) renderTags(dst *core.Screen, r *screenRenderer) {
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		p := g.arena.Player(id)
		if p.IsExploding() {
			continue
		}
		x, y := r.cell(p.Position())
		tag := fmt.Sprintf("%d", int(id))
		below := y + 2 // under the plane art
		dst.DrawColoredText(x, below, tag, core.PlayerColor(id))
	}
}

// renderHUD draws lives and scores for both players.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()

	left := fmt.Sprintf("P1  Lives: %d  Score: %d", st.P1.Lives, st.P1.Score)
	dst.DrawColoredText(1, 0, left, core.PlayerColor(core.Player1))

	right := fmt.Sprintf("P2  Lives: %d  Score: %d", st.P2.Lives, st.P2.Score)
	dst.DrawColoredText(dst.Width()-len(right)-1, 0, right, core.PlayerColor(core.Player2))

	if g.mode == ModeArena {
		enemies := fmt.Sprintf("Enemies: %d", len(g.arena.Enemies()))
		dst.DrawTextCentered(0, enemies)
	}

	if st.Notice != "" {
		dst.DrawTextCentered(dst.Height()-1, st.Notice)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		title := "GAME OVER"
		if g.winner == core.Player1 {
			title = "FIRST PLAYER WINS"
		} else if g.winner == core.Player2 {
			title = "SECOND PLAYER WINS"
		}
		drawCenteredBox(dst, title, "Press R to restart")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
