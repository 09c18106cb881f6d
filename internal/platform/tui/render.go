package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2

const blockRune = '█'

// CellRenderer draws world pixels onto a character screen, each cell
// covering scaleX×scaleY pixels. It implements core.Renderer.
type CellRenderer struct {
	screen *core.Screen
	worldW int
	worldH int
	scaleX int
	scaleY int
}

// NewCellRenderer creates a renderer for a worldW×worldH pixel world.
func NewCellRenderer(worldW, worldH, scaleX int) *CellRenderer {
	r := &CellRenderer{
		screen: core.NewScreen(0, 0),
		worldW: worldW,
		worldH: worldH,
	}
	r.SetScale(scaleX)
	return r
}

// FitScale returns the smallest horizontal scale at which the world fits in
// cols×rows cells. The vertical scale is cellAspect times larger.
func FitScale(worldW, worldH, cols, rows int) int {
	if cols < 1 || rows < 1 {
		return 1
	}
	sx := core.CeilDiv(worldW, cols)
	if sy := core.CeilDiv(worldH, rows*cellAspect); sy > sx {
		sx = sy
	}
	return max(sx, 1)
}

// SetScale changes the pixels per cell and resizes the screen to match.
func (r *CellRenderer) SetScale(scaleX int) {
	r.scaleX = max(scaleX, 1)
	r.scaleY = r.scaleX * cellAspect
	r.screen.Resize(core.CeilDiv(r.worldW, r.scaleX), core.CeilDiv(r.worldH, r.scaleY))
}

// Fit picks the largest picture that fits in cols×rows cells.
func (r *CellRenderer) Fit(cols, rows int) {
	r.SetScale(FitScale(r.worldW, r.worldH, cols, rows))
}

// Scale returns the pixels covered by one cell.
func (r *CellRenderer) Scale() (int, int) {
	return r.scaleX, r.scaleY
}

// Screen returns the cell buffer.
func (r *CellRenderer) Screen() *core.Screen {
	return r.screen
}

// Clear fills the screen with the background color.
func (r *CellRenderer) Clear(c core.Color) {
	r.screen.Clear(c)
}

// DrawRect fills every cell the rectangle touches.
func (r *CellRenderer) DrawRect(rect core.Rect, c core.Color) {
	x0 := core.FloorDiv(rect.X, r.scaleX)
	y0 := core.FloorDiv(rect.Y, r.scaleY)
	x1 := core.CeilDiv(rect.Right(), r.scaleX)
	y1 := core.CeilDiv(rect.Bottom(), r.scaleY)
	r.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), blockRune, c)
}

// DrawText writes text at the cell containing the anchor pixel.
func (r *CellRenderer) DrawText(text string, x, y int, align core.Align, c core.Color) {
	cx := core.FloorDiv(x, r.scaleX)
	cy := core.FloorDiv(y, r.scaleY)
	if align == core.AlignCenter {
		r.screen.DrawTextCentered(cx, cy, text, c)
		return
	}
	r.screen.DrawText(cx, cy, text, c)
}

// Present is a no-op: the screen is read when the frame is displayed.
func (r *CellRenderer) Present() {}

type cellStyle struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a truecolor string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(cs cellStyle) lipgloss.Style {
		st, ok := styles[cs]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(cs.fg.Hex())).
				Background(lipgloss.Color(cs.bg.Hex()))
			styles[cs] = st
		}
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
