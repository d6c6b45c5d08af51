package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/gravityquest/internal/loop/config"
	"github.com/tomz197/gravityquest/internal/object"
	"github.com/tomz197/gravityquest/internal/quest"
)

// rangeBarWidth is the number of cells in the range gauge.
const rangeBarWidth = 20

// restartBanner is the message shown after a restart.
func restartBanner(reason quest.RestartReason) string {
	switch reason {
	case quest.RestartOutOfRange:
		return "Drifted out of range"
	case quest.RestartHazard:
		return "Burned by a nova"
	default:
		return ""
	}
}

// rangeBar renders how much of the gun's range the nearest asteroid uses.
// An asteroid beyond range fills the bar.
func rangeBar(distance, maxRange float64, width int) string {
	filled := 0
	if maxRange > 0 {
		filled = int(distance / maxRange * float64(width))
	}
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// drawUI draws the HUD overlay.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (g *Game) drawUI() {
	cw := g.chunkWriter
	termWidth := g.canvas.TerminalWidth()
	termHeight := g.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if g.state.idle {
		g.drawIdleScreen(centerX, centerY)
		return
	}

	sc := g.state.Scene
	d := g.state.Decision

	title := fmt.Sprintf("GRAVITY QUEST  %-9s", sc.Settings.Demo)
	cw.WriteAt(2, 1, title)

	distText := "Distance: --   "
	if d.HasTarget() {
		distText = fmt.Sprintf("Distance: %-5.0f", d.Distance)
	}
	cw.WriteAt(termWidth-len(distText)-1, 1, distText)

	bar := rangeBar(d.Distance, sc.Settings.Targeting.MaxRange, rangeBarWidth)
	if !d.HasTarget() {
		bar = rangeBar(0, 1, rangeBarWidth)
	}
	cw.WriteAt(2, termHeight, "Range "+bar)

	mode := "hold SPACE"
	if g.state.Input.Latched {
		mode = "LATCHED   "
	}
	help := fmt.Sprintf("%s  F latch  1-3 demo  Q quit", mode)
	if len(help)+rangeBarWidth+12 < termWidth {
		cw.WriteAt(termWidth-len(help)-1, termHeight, help)
	}

	// Restart message sits above the astronaut's spawn point
	if banner := g.state.banner; banner != "" {
		view := object.Screen{Width: config.ViewWidth, Height: config.ViewHeight}
		p := object.WorldToScreen(g.state.bannerX, g.state.bannerY, sc.Camera, view)
		col, row := g.canvas.LogicalToTerminal(p.X, p.Y)
		col = max(1, min(termWidth-len(banner), col-len(banner)/2))
		cw.WriteAt(col, max(2, row-3), banner)
	}
}

// drawIdleScreen draws the idle disconnect warning.
func (g *Game) drawIdleScreen(centerX, centerY int) {
	cw := g.chunkWriter
	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	left := g.opts.IdleTimeout - time.Since(g.state.lastInput)
	msg := fmt.Sprintf("You will be disconnected in %d seconds.", max(0, int(left.Seconds())))
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}
