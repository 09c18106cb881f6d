package game

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

type drawnText struct {
	text  string
	x, y  int
	align core.Align
	color core.Color
}

// recordingRenderer keeps the calls of the last presented frame.
type recordingRenderer struct {
	rects    []core.Rect
	texts    []drawnText
	clears   int
	presents int
	last     []drawnText
}

func (r *recordingRenderer) Clear(core.Color) {
	r.clears++
	r.rects = r.rects[:0]
	r.texts = r.texts[:0]
}

func (r *recordingRenderer) DrawRect(rect core.Rect, _ core.Color) {
	r.rects = append(r.rects, rect)
}

func (r *recordingRenderer) DrawText(text string, x, y int, align core.Align, c core.Color) {
	r.texts = append(r.texts, drawnText{text: text, x: x, y: y, align: align, color: c})
}

func (r *recordingRenderer) Present() {
	r.presents++
	r.last = append(r.last[:0], r.texts...)
}

func (r *recordingRenderer) sawText(text string) bool {
	for _, t := range r.last {
		if t.text == text {
			return true
		}
	}
	return false
}

// scriptedInput replays frames in order, then returns empty frames.
type scriptedInput struct {
	frames []core.InputFrame
	polls  int
}

func (s *scriptedInput) Poll() core.InputFrame {
	s.polls++
	if len(s.frames) == 0 {
		return core.NewInputFrame()
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

// quitAfter requests termination on poll number n (1-based).
type quitAfter struct {
	n     int
	polls int
}

func (q *quitAfter) Poll() core.InputFrame {
	q.polls++
	in := core.NewInputFrame()
	if q.polls >= q.n {
		in.Set(core.ActionQuit)
	}
	return in
}

type fakeClock struct {
	ticks  int
	rates  []int
	sleeps []time.Duration
}

func (c *fakeClock) Tick(fps int) {
	c.ticks++
	c.rates = append(c.rates, fps)
}

func (c *fakeClock) Sleep(d time.Duration) { c.sleeps = append(c.sleeps, d) }

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// staticConfig returns the default config with moving platforms disabled.
func staticConfig() config.Config {
	cfg := config.Default()
	cfg.Platforms.MoveChance = 0
	return cfg
}
