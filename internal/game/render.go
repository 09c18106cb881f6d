package game

import (
	"fmt"

	"github.com/vovakirdan/skyhop/internal/core"
)

// HUD layout in world pixels.
const (
	hudMargin       = 10
	summaryLineGap  = 20 // Offset of each summary line from the vertical center
	summaryLineSize = 28 // Approximate text height used to center summary lines
)

// Draw renders platforms, the player and the score readout.
func (w *World) Draw(r core.Renderer) {
	pal := w.cfg.Palette

	r.Clear(pal.Background)
	for _, p := range w.platforms {
		r.DrawRect(p.Rect, p.Color(pal))
	}
	r.DrawRect(w.player.Rect, pal.Player)

	r.DrawText(fmt.Sprintf("Score: %d", w.score), hudMargin, hudMargin, core.AlignLeft, pal.Text)
}

// DrawGameOver renders the end-of-session summary centered on screen.
func (w *World) DrawGameOver(r core.Renderer) {
	pal := w.cfg.Palette
	cx := w.cfg.Screen.Width / 2
	cy := w.cfg.MidY()

	r.Clear(pal.Background)
	r.DrawText("Game Over!", cx, cy-summaryLineGap-summaryLineSize/2, core.AlignCenter, pal.GameOver)
	r.DrawText(fmt.Sprintf("Score: %d", w.score), cx, cy+summaryLineGap-summaryLineSize/2, core.AlignCenter, pal.Text)
}
