package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/skyhop/internal/core"
)

const fontSize = 20

// Renderer draws onto the ebiten screen image handed to Draw.
// It implements core.Renderer.
type Renderer struct {
	target *ebiten.Image
	face   *text.GoTextFace
}

// NewRenderer loads the HUD font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return &Renderer{face: &text.GoTextFace{Source: src, Size: fontSize}}, nil
}

// SetTarget selects the image the next frame is drawn on.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear fills the target with c.
func (r *Renderer) Clear(c core.Color) {
	r.target.Fill(c)
}

// DrawRect fills a rectangle in world pixels.
func (r *Renderer) DrawRect(rect core.Rect, c core.Color) {
	vector.DrawFilledRect(r.target, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// DrawText draws a line of text with its top at y.
func (r *Renderer) DrawText(s string, x, y int, align core.Align, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	if align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(r.target, s, r.face, op)
}

// Present is a no-op: ebiten shows the screen image after Draw returns.
func (r *Renderer) Present() {}
