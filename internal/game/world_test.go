package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

func newTestWorld(cfg config.Config, seed int64) *World {
	return NewWorld(cfg, NewSeededGenerator(cfg, seed))
}

// randomInputs returns a reproducible stream of left/right/no-op frames.
func randomInputs(seed int64, n int) []core.InputFrame {
	rng := rand.New(rand.NewSource(seed))
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch rng.Intn(3) {
		case 0:
			frames[i].Set(core.ActionLeft)
		case 1:
			frames[i].Set(core.ActionRight)
		}
	}
	return frames
}

func TestWorldInitialState(t *testing.T) {
	w := newTestWorld(config.Default(), 1)
	st := w.Status()

	if st.State != StateRunning {
		t.Errorf("State = %v, expected Running", st.State)
	}
	if st.Score != 0 || st.Scroll != 0 || st.Frame != 0 {
		t.Errorf("fresh world status = %+v", st)
	}
	if len(w.Platforms()) != 6 {
		t.Errorf("platform slots = %d, expected 6", len(w.Platforms()))
	}
	p := w.Player()
	if p.Rect != core.NewRect(200, 520, 30, 30) || p.VelY != 0 {
		t.Errorf("player = %+v, expected at (200, 520) at rest", p)
	}
}

func TestWorldFirstFrameBouncesOffBase(t *testing.T) {
	w := newTestWorld(config.Default(), 1)
	st := w.Step(core.NewInputFrame())

	p := w.Player()
	if p.Rect.Bottom() != 550 {
		t.Errorf("player bottom = %d, expected base top 550", p.Rect.Bottom())
	}
	if p.VelY != -15 {
		t.Errorf("VelY = %v, expected -15", p.VelY)
	}
	if st.Bounces != 1 {
		t.Errorf("Bounces = %d, expected 1", st.Bounces)
	}
}

func TestWorldBouncesWithoutGameOver(t *testing.T) {
	w := newTestWorld(staticConfig(), 5)

	landings := 0
	prevVel := w.Player().VelY
	for i := 0; i < 150; i++ {
		st := w.Step(core.NewInputFrame())
		if st.State != StateRunning {
			t.Fatalf("frame %d: game over while bouncing in place", i)
		}
		vel := w.Player().VelY
		if vel == -15 && prevVel != -15 {
			landings++
		}
		prevVel = vel
	}

	if landings < 2 {
		t.Errorf("observed %d landings in 150 frames, expected at least 2", landings)
	}
	if w.Status().Bounces != landings {
		t.Errorf("Bounces = %d, observed %d", w.Status().Bounces, landings)
	}
}

func TestWorldScoreMonotonic(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		w := newTestWorld(config.Default(), seed)
		prev := 0
		for i, in := range randomInputs(seed, 3000) {
			st := w.Step(in)
			if st.Score < prev {
				t.Fatalf("seed %d frame %d: score dropped %d -> %d", seed, i, prev, st.Score)
			}
			if st.Score < st.Scroll {
				t.Fatalf("seed %d frame %d: score %d below scroll %d", seed, i, st.Score, st.Scroll)
			}
			prev = st.Score
			if st.State == StateGameOver {
				break
			}
		}
	}
}

func TestWorldPlatformInvariants(t *testing.T) {
	w := newTestWorld(config.Default(), 11)

	for i, in := range randomInputs(11, 3000) {
		before := w.Platforms()
		st := w.Step(in)
		after := w.Platforms()

		for slot := range before {
			b, a := before[slot], after[slot]
			if a.Rect.Y < b.Rect.Y {
				continue // recycled this frame
			}
			if !b.Moving && a.Rect.X != b.Rect.X {
				t.Fatalf("frame %d slot %d: static x changed %d -> %d", i, slot, b.Rect.X, a.Rect.X)
			}
			if a.Moving && (a.Rect.X < a.OriginX-a.Range || a.Rect.X > a.OriginX+a.Range) {
				t.Fatalf("frame %d slot %d: moving x %d outside origin %d ± %d", i, slot, a.Rect.X, a.OriginX, a.Range)
			}
		}
		if st.State == StateGameOver {
			break
		}
	}
}

func TestWorldCameraPinsPlayer(t *testing.T) {
	w := newTestWorld(staticConfig(), 2)
	w.platforms = []Platform{NewPlatform(0, 500, 70, 15)}
	w.player.Rect.Y = 250
	w.player.VelY = -10

	st := w.Step(core.NewInputFrame())

	// -9.5 rounds to -10: player reaches 240, then is pinned at 300
	if w.player.Rect.Y != 300 {
		t.Errorf("player y = %d, expected pinned at 300", w.player.Rect.Y)
	}
	if st.Scroll != 60 || st.Score != 60 {
		t.Errorf("scroll/score = %d/%d, expected 60/60", st.Scroll, st.Score)
	}
	if w.platforms[0].Rect.Y != 560 {
		t.Errorf("platform y = %d, expected shifted to 560", w.platforms[0].Rect.Y)
	}
}

func TestWorldNoShiftBelowMiddle(t *testing.T) {
	w := newTestWorld(staticConfig(), 2)
	w.platforms = []Platform{NewPlatform(0, 500, 70, 15)}
	w.player.Rect.Y = 350

	st := w.Step(core.NewInputFrame())

	if st.Scroll != 0 || w.platforms[0].Rect.Y != 500 {
		t.Errorf("no shift expected below the middle, scroll=%d platform y=%d", st.Scroll, w.platforms[0].Rect.Y)
	}
}

func TestWorldRecyclesOffscreenPlatform(t *testing.T) {
	cfg := staticConfig()
	w := newTestWorld(cfg, 3)
	w.platforms = []Platform{
		NewPlatform(0, 100, 70, 15),
		NewPlatform(0, 601, 70, 15), // below the visible area
		NewPlatform(0, -20, 70, 15),
	}
	w.player.Rect = core.NewRect(300, 400, 30, 30)
	prevTop := Topmost(w.platforms)

	w.Step(core.NewInputFrame())

	got := w.platforms[1].Rect.Y
	if got > prevTop-cfg.Platforms.GapMin {
		t.Errorf("recycled y = %d, expected at most %d", got, prevTop-cfg.Platforms.GapMin)
	}
	if got < prevTop-cfg.Platforms.GapMax {
		t.Errorf("recycled y = %d, expected at least %d", got, prevTop-cfg.Platforms.GapMax)
	}
	if w.platforms[0].Rect.Y != 100 || w.platforms[2].Rect.Y != -20 {
		t.Error("on-screen platforms must keep their slots")
	}
	if len(w.platforms) != 3 {
		t.Errorf("slot count changed to %d", len(w.platforms))
	}
}

func TestWorldRecycleOrderStacksReplacements(t *testing.T) {
	w := newTestWorld(staticConfig(), 4)
	w.platforms = []Platform{
		NewPlatform(0, 650, 70, 15),
		NewPlatform(0, 0, 70, 15),
		NewPlatform(0, 700, 70, 15),
	}
	w.player.Rect = core.NewRect(300, 400, 30, 30)

	w.Step(core.NewInputFrame())

	first, second := w.platforms[0].Rect.Y, w.platforms[2].Rect.Y
	if first >= 0 {
		t.Errorf("slot 0 should be recycled above y=0, got %d", first)
	}
	if second >= first {
		t.Errorf("slot 2 (y=%d) should be placed above slot 0's replacement (y=%d)", second, first)
	}
}

func TestWorldGameOverIsTerminal(t *testing.T) {
	w := newTestWorld(staticConfig(), 6)
	w.platforms = []Platform{NewPlatform(0, -200, 70, 15)}
	w.player.Rect = core.NewRect(200, 601, 30, 30)

	st := w.Step(core.NewInputFrame())
	if st.State != StateGameOver {
		t.Fatalf("State = %v, expected GameOver", st.State)
	}

	player := w.Player()
	platforms := w.Platforms()
	frame := st.Frame

	for i := 0; i < 10; i++ {
		st = w.Step(frameWith(core.ActionLeft))
	}

	if w.Player() != player {
		t.Errorf("player changed after game over: %+v -> %+v", player, w.Player())
	}
	if !reflect.DeepEqual(w.Platforms(), platforms) {
		t.Error("platforms changed after game over")
	}
	if st.Frame != frame || st.State != StateGameOver {
		t.Errorf("status advanced after game over: %+v", st)
	}
}

func TestWorldFallingPlayerEventuallyEnds(t *testing.T) {
	w := newTestWorld(staticConfig(), 8)
	w.platforms = []Platform{NewPlatform(0, -500, 70, 15)}
	w.player.Rect.Y = 350

	for i := 0; i < 200 && w.State() == StateRunning; i++ {
		w.Step(core.NewInputFrame())
	}
	if w.State() != StateGameOver {
		t.Error("a player with nothing below should fall off the screen")
	}
}

func TestWorldAccessorsReturnCopies(t *testing.T) {
	w := newTestWorld(config.Default(), 1)
	ps := w.Platforms()
	ps[0].Rect.Y = -999

	if w.Platforms()[0].Rect.Y == -999 {
		t.Error("Platforms() must not expose internal slots")
	}
}
