// Package game adapts the pure session core to the platform contract:
// it maps input actions to answer submissions, owns the answer-selection
// cursor, and draws the sidebar and scoop stack into a screen buffer.
package game

import (
	"fmt"
	"math/rand"

	"scoopstack/internal/core"
	"scoopstack/internal/equation"
	"scoopstack/internal/session"
)

// bannerSeconds is how long transient messages (milestones, encouragement)
// stay on screen.
const bannerSeconds = 2.0

// scoop is one presentational blob on the ice-cream stack. Purely visual;
// the session knows nothing about it.
type scoop struct {
	giant bool
	color core.Color
}

// scoopPalette cycles through the colors of placed scoops.
var scoopPalette = []core.Color{
	core.ColorBrightCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorBrightGreen,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorBlue,
}

// Game implements the platform game contract for the equation stack game.
type Game struct {
	cfg     session.Config
	runtime core.RuntimeConfig

	sess *session.Session
	dt   float64

	paused    bool
	frameSel  int
	answerSel int

	scoops      []scoop
	banner      string
	bannerColor core.Color
	bannerTicks int
	tick        int
}

// New creates a game with the given session tuning. The configuration is
// validated here so Reset can never fail.
func New(cfg session.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the identifier used for score storage and logging.
func (g *Game) ID() string {
	return "scoopstack"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Scoop Stack"
}

// Reset initializes or restarts the game with a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1.0 / float64(g.runtime.TickRate)

	sess, err := session.New(g.cfg, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		// Unreachable: New validated the config.
		panic(fmt.Sprintf("game: config invalidated after construction: %v", err))
	}
	g.sess = sess
	g.sess.Start()

	g.paused = false
	g.frameSel = 0
	g.answerSel = 0
	g.scoops = g.scoops[:0]
	g.banner = ""
	g.bannerTicks = 0
	g.tick = 0
}

// Step advances the game by one fixed tick. Submissions from input are
// resolved first, then the session advances by the tick delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	g.moveSelection(in)

	if in.Has(core.ActionConfirm) {
		g.submitSelected()
	}

	if !g.gameOver() {
		g.consumeEvents(g.sess.Tick(g.dt))
	}
	g.clampSelection()

	return core.StepResult{State: g.State()}
}

// moveSelection updates the frame/answer cursor from this tick's input.
func (g *Game) moveSelection(in core.InputFrame) {
	frames := g.sess.Frames()
	if len(frames) == 0 {
		return
	}

	if in.Has(core.ActionUp) && g.frameSel > 0 {
		g.frameSel--
		g.answerSel = 0
	}
	if in.Has(core.ActionDown) && g.frameSel < len(frames)-1 {
		g.frameSel++
		g.answerSel = 0
	}

	count := len(frames[g.frameSel].Answers)
	if in.Has(core.ActionLeft) {
		g.answerSel = (g.answerSel + count - 1) % count
	}
	if in.Has(core.ActionRight) {
		g.answerSel = (g.answerSel + 1) % count
	}
}

// submitSelected resolves the current cursor as an answer submission.
func (g *Game) submitSelected() {
	frames := g.sess.Frames()
	if g.frameSel >= len(frames) {
		return
	}
	frame := frames[g.frameSel]
	if g.answerSel >= len(frame.Answers) {
		return
	}
	g.consumeEvents(g.sess.Submit(frame.ID, frame.Answers[g.answerSel]))
}

// consumeEvents turns session events into presentational state: the scoop
// stack and transient banners.
func (g *Game) consumeEvents(events []session.Event) {
	for _, e := range events {
		switch e.Kind {
		case session.EventScoopPlaced:
			g.scoops = append(g.scoops, scoop{
				giant: e.Frame.Giant,
				color: scoopPalette[len(g.scoops)%len(scoopPalette)],
			})
		case session.EventSprintStarted:
			g.showBanner("Sprint!", core.ColorBrightRed)
		case session.EventMilestone:
			g.showBanner(fmt.Sprintf("%d points!", g.sess.Score()), core.ColorBrightYellow)
		case session.EventGiantSolved:
			g.showBanner(e.Message, core.ColorBrightYellow)
		}
	}
}

func (g *Game) showBanner(text string, c core.Color) {
	g.banner = text
	g.bannerColor = c
	g.bannerTicks = int(bannerSeconds * float64(g.runtime.TickRate))
}

// clampSelection keeps the cursor valid after frames come and go.
func (g *Game) clampSelection() {
	frames := g.sess.Frames()
	if len(frames) == 0 {
		g.frameSel = 0
		g.answerSel = 0
		return
	}
	if g.frameSel >= len(frames) {
		g.frameSel = len(frames) - 1
		g.answerSel = 0
	}
	if count := len(frames[g.frameSel].Answers); g.answerSel >= count {
		g.answerSel = 0
	}
}

func (g *Game) gameOver() bool {
	st := g.sess.State()
	return st == session.StateWon || st == session.StateLost
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.gameOver(),
		Won:      g.sess.State() == session.StateWon,
		Reason:   g.sess.Reason(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying state machine for the platform HUD.
func (g *Game) Session() *session.Session {
	return g.sess
}

// formatAnswer renders an answer candidate for the sidebar.
func formatAnswer(v float64) string {
	return equation.FormatValue(v)
}
