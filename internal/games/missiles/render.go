package missiles

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-defense/internal/core"
)

// Visual characters for rendering
const (
	GroundChar    = '─'
	CityChar      = '▄'
	RubbleChar    = '░'
	LauncherChar  = '▲'
	WreckChar     = '▒'
	MissileChar   = '●'
	TrailChar     = '·'
	BlastChar     = '*'
	CrosshairChar = '+'
)

// CityWidth is the rendered width of a city in cells.
const CityWidth = 3

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// playHeight returns the playfield height in cells.
func (g *Game) playHeight() int {
	return core.Max(1, g.runtime.ScreenH-hudRows)
}

// cellX converts a field x-coordinate to a screen column.
func (g *Game) cellX(fx float64) int {
	w := g.runtime.ScreenW
	return core.Clamp(int(fx/g.cfg.Field.Width*float64(w)), 0, w-1)
}

// cellY converts a field y-coordinate to a screen row below the HUD.
func (g *Game) cellY(fy float64) int {
	h := g.playHeight()
	return core.Clamp(hudRows+int(fy/g.cfg.Field.Height*float64(h)), hudRows, hudRows+h-1)
}

// fieldX converts a screen column to a field x-coordinate (cell center).
func (g *Game) fieldX(cx int) float64 {
	w := float64(g.runtime.ScreenW)
	return core.ClampF((float64(cx)+0.5)/w*g.cfg.Field.Width, 0, g.cfg.Field.Width)
}

// fieldY converts a screen row to a field y-coordinate (cell center).
func (g *Game) fieldY(cy int) float64 {
	h := float64(g.playHeight())
	return core.ClampF((float64(cy-hudRows)+0.5)/h*g.cfg.Field.Height, 0, g.cfg.Field.Height)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderFlash(dst)
	g.renderGround(dst)
	g.renderTargets(dst)
	g.renderLaunchers(dst)
	g.renderMissiles(dst)
	g.renderBlasts(dst)
	g.renderCrosshair(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderFlash draws the level-transition border cue while active.
func (g *Game) renderFlash(dst *core.Screen) {
	if g.flashTimer <= 0 {
		return
	}
	dst.DrawBoxColored(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), g.flashColor)
	dst.DrawTextCenteredColored(dst.Height()/2, fmt.Sprintf("LEVEL %d", g.level), g.flashColor)
}

// renderGround draws the ground line.
func (g *Game) renderGround(dst *core.Screen) {
	y := g.cellY(g.groundY())
	dst.DrawHLineColored(0, y, dst.Width(), GroundChar, core.ColorWhite)
}

// renderTargets draws cities on the ground line; destroyed cities leave rubble.
func (g *Game) renderTargets(dst *core.Screen) {
	y := g.cellY(g.groundY())
	for _, t := range g.targets {
		cx := g.cellX(t.Pos.X)
		ch, color := CityChar, t.Color
		if !t.Active {
			ch, color = RubbleChar, core.ColorGray
		}
		for dx := -CityWidth / 2; dx <= CityWidth/2; dx++ {
			dst.SetColored(cx+dx, y, ch, color)
		}
	}
}

// renderLaunchers draws launchers with their ammo counts below the ground.
func (g *Game) renderLaunchers(dst *core.Screen) {
	y := g.cellY(g.groundY())
	for _, l := range g.launchers {
		cx := g.cellX(l.Pos.X)
		if l.Active {
			dst.SetColored(cx, y, LauncherChar, core.ColorBrightCyan)
			ammo := fmt.Sprintf("%d", l.Ammo)
			dst.DrawTextColored(cx-len(ammo)/2, y+1, ammo, core.ColorWhite)
		} else {
			dst.SetColored(cx, y, WreckChar, core.ColorGray)
		}
	}
}

// renderMissiles draws trails from launch point to current position, with a
// bright head cell.
func (g *Game) renderMissiles(dst *core.Screen) {
	for _, m := range g.interceptors {
		g.renderMissile(dst, m)
	}
	for _, m := range g.threats {
		g.renderMissile(dst, m)
	}
}

func (g *Game) renderMissile(dst *core.Screen, m *Missile) {
	x0, y0 := g.cellX(m.Start.X), g.cellY(m.Start.Y)
	x1, y1 := g.cellX(m.Pos.X), g.cellY(m.Pos.Y)
	dst.DrawLineColored(x0, y0, x1, y1, TrailChar, m.Color)
	dst.SetColored(x1, y1, MissileChar, m.Color)
}

// renderBlasts draws each blast as a sampled circle outline, scaled to the
// terminal's cell aspect.
func (g *Game) renderBlasts(dst *core.Screen) {
	for _, b := range g.blasts {
		cx, cy := g.cellX(b.Center.X), g.cellY(b.Center.Y)
		rx := b.Radius / g.cfg.Field.Width * float64(g.runtime.ScreenW)
		ry := b.Radius / g.cfg.Field.Height * float64(g.playHeight())

		color := core.ColorBrightYellow
		if !b.Growing {
			color = core.ColorOrange
		}

		samples := core.Max(8, int(2*math.Pi*math.Max(rx, ry)))
		for i := 0; i < samples; i++ {
			a := 2 * math.Pi * float64(i) / float64(samples)
			x := cx + int(math.Round(rx*math.Cos(a)))
			y := cy + int(math.Round(ry*math.Sin(a)))
			if y >= hudRows {
				dst.SetColored(x, y, BlastChar, color)
			}
		}
	}
}

// renderCrosshair marks the aiming position.
func (g *Game) renderCrosshair(dst *core.Screen) {
	if !g.pointer.Valid || g.gameOver {
		return
	}
	y := core.Clamp(g.pointer.Y, hudRows, dst.Height()-1)
	x := core.Clamp(g.pointer.X, 0, dst.Width()-1)
	dst.SetColored(x, y, CrosshairChar, core.ColorWhite)
}

// renderHUD draws the score and level indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderOverlay draws pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, "PAUSED", core.ColorBrightYellow)
		return
	}
	if g.gameOver {
		midY := dst.Height() / 2
		boxW := 30
		boxX := (dst.Width() - boxW) / 2
		dst.DrawBoxColored(core.NewRect(boxX, midY-2, boxW, 5), core.ColorBrightRed)
		dst.DrawTextCenteredColored(midY-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(midY, fmt.Sprintf("Final Score: %d", g.score))
		dst.DrawTextCentered(midY+1, "Press R to restart")
	}
}
