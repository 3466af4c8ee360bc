package game

import (
	"strings"
	"testing"

	"scoopstack/internal/core"
	"scoopstack/internal/session"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(session.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

// stepUntilFrame advances empty ticks until at least one frame is pending.
func stepUntilFrame(t *testing.T, g *Game) *session.Frame {
	t.Helper()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
		if frames := g.Session().Frames(); len(frames) > 0 {
			return frames[0]
		}
	}
	t.Fatal("no frame placed after 10 ticks")
	return nil
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.CapacityUnits = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestResetStartsFresh(t *testing.T) {
	g := newTestGame(t, 7)
	frame := stepUntilFrame(t, g)
	if frame.Text == "" {
		t.Fatal("placed frame has no text")
	}
	if st := g.State(); st.Score != 0 || st.GameOver {
		t.Fatalf("unexpected initial state %+v", st)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7})
	if len(g.Session().Frames()) != 0 {
		t.Fatal("Reset kept pending frames")
	}
	if len(g.scoops) != 0 {
		t.Fatal("Reset kept scoop stack")
	}
}

func TestConfirmCorrectAnswerScores(t *testing.T) {
	g := newTestGame(t, 42)
	frame := stepUntilFrame(t, g)

	for i, v := range frame.Answers {
		if frame.Check(v) {
			g.answerSel = i
			break
		}
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	st := g.Step(in).State
	if st.Score != 1 {
		t.Fatalf("score = %d, want 1", st.Score)
	}
	if st.GameOver {
		t.Fatalf("game over after correct answer: %q", st.Reason)
	}
}

func TestConfirmWrongAnswerEndsRun(t *testing.T) {
	g := newTestGame(t, 42)
	frame := stepUntilFrame(t, g)

	for i, v := range frame.Answers {
		if !frame.Check(v) {
			g.answerSel = i
			break
		}
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	st := g.Step(in).State
	if !st.GameOver || st.Won {
		t.Fatalf("expected loss, got %+v", st)
	}
	if st.Reason != session.ReasonWrongAnswer {
		t.Fatalf("reason = %q", st.Reason)
	}
}

func TestSelectionWrapsAroundAnswers(t *testing.T) {
	g := newTestGame(t, 3)
	frame := stepUntilFrame(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.answerSel != len(frame.Answers)-1 {
		t.Fatalf("answerSel = %d after wrapping left", g.answerSel)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.answerSel != 0 {
		t.Fatalf("answerSel = %d after wrapping right", g.answerSel)
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g := newTestGame(t, 5)
	stepUntilFrame(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if st := g.Step(in).State; !st.Paused {
		t.Fatal("pause not applied")
	}

	before := g.Session().Clock()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Clock() != before {
		t.Fatal("session clock advanced while paused")
	}
}

func TestStepIsNoOpAfterGameOver(t *testing.T) {
	g := newTestGame(t, 42)
	frame := stepUntilFrame(t, g)
	for i, v := range frame.Answers {
		if !frame.Check(v) {
			g.answerSel = i
			break
		}
	}
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	clock := g.Session().Clock()
	g.Step(core.NewInputFrame())
	if g.Session().Clock() != clock {
		t.Fatal("session advanced after game over")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, 9)
	stepUntilFrame(t, g)

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("missing score in render")
	}
	if !strings.Contains(out, "Equations") {
		t.Error("missing sidebar header")
	}
	if !strings.Contains(out, "x") {
		t.Error("missing equation text")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 42)
	frame := stepUntilFrame(t, g)
	for i, v := range frame.Answers {
		if !frame.Check(v) {
			g.answerSel = i
			break
		}
	}
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	screen := core.NewScreen(100, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("missing game over overlay")
	}
}
