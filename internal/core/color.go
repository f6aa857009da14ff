package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Colors used by the duel arena.
const (
	ColorPlayer1   = ColorCyan
	ColorPlayer2   = ColorMagenta
	ColorEnemy     = ColorGreen
	ColorBullet    = ColorBrightYellow
	ColorExplosion = ColorOrange
	ColorHUD       = ColorWhite
)

// PlayerColor returns the color a player's craft and HUD entry are drawn in.
func PlayerColor(id PlayerID) Color {
	if id == Player2 {
		return ColorPlayer2
	}
	return ColorPlayer1
}
