package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/autopilot"
	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
)

// Visual characters for game elements.
const (
	pipeChar   = '█'
	pilotChar  = '●'
	pilotNose  = '▶'
	groundChar = '═'
)

// cellColor identifies the style of one projected cell.
type cellColor uint8

const (
	colorNone cellColor = iota
	colorPipe
	colorPilot
	colorPilotJump
	colorFloor
	colorHUD
)

var cellStyles = map[cellColor]lipgloss.Style{
	colorNone:      lipgloss.NewStyle(),
	colorPipe:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	colorPilot:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	colorPilotJump: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	colorFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	colorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// canvas is a 2D character buffer the world is projected into.
type canvas struct {
	w, h   int
	runes  [][]rune
	colors [][]cellColor
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.colors = make([][]cellColor, h)
	for y := range c.runes {
		c.runes[y] = make([]rune, w)
		c.colors[y] = make([]cellColor, w)
		for x := range c.runes[y] {
			c.runes[y][x] = ' '
		}
	}
	return c
}

// set places a rune; out-of-bounds coordinates are silently ignored.
func (c *canvas) set(x, y int, r rune, col cellColor) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.colors[y][x] = col
}

// text writes a string horizontally, clipped at the canvas edge.
func (c *canvas) text(x, y int, s string, col cellColor) {
	for i, r := range s {
		c.set(x+i, y, r, col)
	}
}

// textCentered writes a string centered horizontally at the given row.
func (c *canvas) textCentered(y int, s string, col cellColor) {
	c.text((c.w-len(s))/2, y, s, col)
}

// String converts the canvas to a styled string, grouping adjacent cells
// with the same color to minimize ANSI escape sequences.
func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.w*c.h*2 + c.h)

	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.w {
			start := c.colors[y][x]
			var run strings.Builder
			for x < c.w && c.colors[y][x] == start {
				run.WriteRune(c.runes[y][x])
				x++
			}
			sb.WriteString(cellStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// renderWorld projects the simulation state onto a cols x rows terminal
// area. The field scales to the full area; only the visible slice of the
// world (x in [0, ScreenW)) is drawn.
func renderWorld(w *sim.World, dec autopilot.Decision, autopilotOn, paused bool, cols, rows int) string {
	if cols < 10 || rows < 5 {
		return "Terminal too small"
	}

	cfg := w.Config()
	c := newCanvas(cols, rows)
	scaleX := cfg.ScreenW / float64(cols)
	scaleY := cfg.ScreenH / float64(rows)

	// Floor line
	floorRow := int(w.FloorY / scaleY)
	for x := 0; x < cols; x++ {
		c.set(x, floorRow, groundChar, colorFloor)
	}

	// Pipes: columns the pipe overlaps, rows above the gap and below it down
	// to the floor.
	for _, p := range w.Pipes {
		if p.Right(cfg.PipeWidth) < 0 || p.X >= cfg.ScreenW {
			continue
		}
		left := int(p.X / scaleX)
		right := int(p.Right(cfg.PipeWidth) / scaleX)
		gapTopRow := int(p.GapTop / scaleY)
		gapBottomRow := int(p.GapBottom / scaleY)

		for x := left; x <= right; x++ {
			for y := 0; y < gapTopRow && y < rows; y++ {
				c.set(x, y, pipeChar, colorPipe)
			}
			for y := gapBottomRow + 1; y < floorRow; y++ {
				c.set(x, y, pipeChar, colorPipe)
			}
		}
	}

	// Pilot: highlight red on frames the autopilot fires.
	pilotColor := colorPilot
	if autopilotOn && dec.Jump {
		pilotColor = colorPilotJump
	}
	pLeft := int(w.Pilot.X / scaleX)
	pRight := int(w.Pilot.Right() / scaleX)
	pTop := int(w.Pilot.Y / scaleY)
	pBottom := int(w.Pilot.Bottom() / scaleY)
	for y := pTop; y <= pBottom; y++ {
		for x := pLeft; x <= pRight; x++ {
			r := pilotChar
			if x == pRight && y == pTop {
				r = pilotNose
			}
			c.set(x, y, r, pilotColor)
		}
	}

	// HUD
	mode := "manual"
	if autopilotOn {
		mode = fmt.Sprintf("autopilot [%s]", dec.Rule)
	}
	hud := fmt.Sprintf(" Score: %d  Frame: %d  Vel: %+.1f  Mode: %s ", w.Score, w.Frame, w.Pilot.Velocity, mode)
	c.text(1, 0, hud, colorHUD)

	if paused && !w.GameOver {
		c.textCentered(rows/2, " PAUSED - press P to resume ", colorHUD)
	}

	if w.GameOver {
		c.textCentered(rows/2-1, " GAME OVER ", colorHUD)
		c.textCentered(rows/2, fmt.Sprintf(" Hit %s | Score: %d ", w.Cause, w.Score), colorHUD)
		c.textCentered(rows/2+1, " R restart | B menu | Q quit ", colorHUD)
	}

	return c.String()
}
