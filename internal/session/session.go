package session

import (
	"math/rand"

	"scoopstack/internal/equation"
)

// State is the top-level session state. Exactly one of Running, Won, Lost
// holds while the game is live; Won and Lost are terminal.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reasons surfaced to the player.
const (
	ReasonOverflow    = "too many unsolved equations"
	ReasonWrongAnswer = "wrong answer"
	ReasonWin         = "maximum height reached"
)

// Session owns all game state: score, placement cadence, the sprint
// sub-machine, giant probability, and the ledger of outstanding frames.
// It is single-threaded by contract: callers drain Submit calls first,
// then invoke Tick once per fixed step.
type Session struct {
	cfg Config
	rng *rand.Rand

	state  State
	reason string

	score     int
	interval  float64
	clock     float64
	lastScoop float64
	lastRamp  float64

	sprint      sprintState
	sprintCount int
	giantProb   float64

	nextFrameID int
	ledger      Ledger
}

// New creates a session in the Idle state. The configuration is validated
// here so that no invalid value is ever discovered mid-tick. The random
// source is the single stream behind every draw the session makes, which
// keeps a run fully deterministic for a given seed.
func New(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, rng: rng, state: StateIdle}, nil
}

// Start transitions Idle (or a terminal state, for restarts) to Running and
// resets all session state to initial values. The first scoop is placed on
// the first tick.
func (s *Session) Start() {
	s.state = StateRunning
	s.reason = ""
	s.score = 0
	s.interval = s.cfg.InitialInterval
	s.clock = 0
	// Backdating the placement timer makes the first scoop land immediately.
	s.lastScoop = -s.cfg.InitialInterval
	s.lastRamp = 0
	s.sprint.reset()
	s.sprintCount = 0
	s.giantProb = 0
	s.nextFrameID = 0
	s.ledger.Clear()
}

// Config returns the tuning the session was built with.
func (s *Session) Config() Config { return s.cfg }

// State returns the current top-level state.
func (s *Session) State() State { return s.state }

// Reason returns the terminal reason, empty while running.
func (s *Session) Reason() string { return s.reason }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Interval returns the current scoop placement interval in seconds.
func (s *Session) Interval() float64 { return s.interval }

// Clock returns the elapsed session time in seconds.
func (s *Session) Clock() float64 { return s.clock }

// GiantProbability returns the current chance a normal placement comes out
// giant.
func (s *Session) GiantProbability() float64 { return s.giantProb }

// SprintPhase returns the current sprint sub-machine phase.
func (s *Session) SprintPhase() SprintPhase { return s.sprint.phase }

// CountdownRemaining returns the seconds left in the sprint countdown, or
// zero outside the countdown phase.
func (s *Session) CountdownRemaining() float64 {
	if s.sprint.phase != PhaseCountdown {
		return 0
	}
	left := s.cfg.CountdownSeconds - (s.clock - s.sprint.phaseStart)
	if left < 0 {
		return 0
	}
	return left
}

// Frames returns the outstanding frames in placement order.
func (s *Session) Frames() []*Frame { return s.ledger.Frames() }

// Pressure returns the ledger's total unit cost.
func (s *Session) Pressure() int { return s.ledger.TotalUnits() }

// RemainingUnits returns the free capacity shown in the HUD.
func (s *Session) RemainingUnits() int {
	return s.cfg.CapacityUnits - s.ledger.TotalUnits()
}

// Invincible reports whether the debug override is active.
func (s *Session) Invincible() bool { return s.cfg.Invincible }

// Tick advances the session by dt seconds of real time. It must be called
// once per fixed step while Running; calls in any other state are no-ops.
// The order is fixed: overflow check, normal placement, sprint phases,
// difficulty ramp.
func (s *Session) Tick(dt float64) []Event {
	if s.state != StateRunning {
		return nil
	}
	s.clock += dt

	var events []Event

	// Overflow loses the session before anything else happens this tick.
	if !s.cfg.Invincible && s.ledger.TotalUnits() > s.cfg.CapacityUnits {
		s.lose(ReasonOverflow, &events)
		return events
	}

	if !s.sprint.active() && s.clock-s.lastScoop >= s.interval {
		s.lastScoop = s.clock
		s.place(false, &events)
		s.maybeStartSprint(&events)
	}

	if s.sprint.active() {
		s.runSprint(&events)
	}

	if s.clock-s.lastRamp >= s.cfg.RampEvery {
		s.lastRamp = s.clock
		s.interval *= 1 - s.cfg.RampPercent/100
		if s.interval < s.cfg.MinInterval {
			s.interval = s.cfg.MinInterval
		}
	}

	return events
}

// Submit resolves a player's answer for the frame with the given ID.
// A correct submission advances the score, removes the frame, and may emit
// milestone/celebration/win events. Anything else (wrong value, value not
// among the frame's candidates, unknown frame) loses the session with the
// wrong-answer reason. Submissions outside Running are ignored.
func (s *Session) Submit(frameID int, value float64) []Event {
	if s.state != StateRunning {
		return nil
	}

	var events []Event

	frame := s.ledger.Find(frameID)
	correct := frame != nil && frame.HasAnswer(value) && frame.Check(value)
	if s.cfg.Invincible && frame != nil {
		correct = true
	}
	if !correct {
		if s.cfg.Invincible {
			// Practice mode never loses; an unknown frame is ignored.
			return events
		}
		s.lose(ReasonWrongAnswer, &events)
		return events
	}

	s.score++
	s.ledger.Remove(frame)

	s.maybeStartSprint(&events)

	if s.score >= 50 && s.giantProb < s.cfg.GiantBaseProbability {
		s.giantProb = s.cfg.GiantBaseProbability
	}

	if s.score%10 == 0 {
		events = append(events, Event{Kind: EventMilestone})
	}

	if frame.Giant {
		events = append(events, Event{
			Kind:    EventGiantSolved,
			Frame:   frame,
			Message: encouragements[s.rng.Intn(len(encouragements))],
		})
	}

	if s.score >= s.cfg.WinScore {
		s.state = StateWon
		s.reason = ReasonWin
		events = append(events, Event{Kind: EventWon, Message: ReasonWin})
		return events
	}

	// Auto-refill: never leave the player staring at an empty sidebar.
	if !s.sprint.active() && s.ledger.Len() == 0 {
		s.place(false, &events)
	}

	return events
}

// maybeStartSprint rolls for a sprint when the score's last digit is 5.
// A score at or past the win threshold never starts one: the run is about
// to end and the sprint would be stillborn.
func (s *Session) maybeStartSprint(events *[]Event) {
	if s.sprint.active() || s.score%10 != 5 || s.score >= s.cfg.WinScore {
		return
	}
	if s.rng.Float64() >= s.cfg.SprintProbability {
		return
	}

	s.sprintCount++
	if s.sprintCount >= s.cfg.GiantSprintThreshold {
		s.giantProb = min(s.cfg.GiantMaxProbability, s.giantProb+s.cfg.GiantProbabilityStep)
	}

	s.sprint = sprintState{span: sprintSpanIntervals * s.interval}
	s.sprint.enter(PhaseLead, s.clock)
	*events = append(*events, Event{Kind: EventSprintStarted})
}

// runSprint advances the sprint sub-machine by one tick.
func (s *Session) runSprint(events *[]Event) {
	elapsed := s.clock - s.sprint.phaseStart

	switch s.sprint.phase {
	case PhaseLead:
		if s.ledger.Len() == 0 || elapsed > leadBudgetFraction*s.sprint.span {
			s.sprint.enter(PhaseBurst, s.clock)
		}

	case PhaseBurst:
		// Spread the burst placements evenly over the burst budget.
		budget := burstBudgetFraction * s.sprint.span
		frac := 1.0
		if budget > 0 {
			frac = min(elapsed/budget, 1.0)
		}
		needed := int(frac * float64(s.cfg.BurstCount))
		for s.sprint.placed < needed && s.sprint.placed < s.cfg.BurstCount {
			s.place(false, events)
			s.sprint.placed++
		}
		if s.sprint.placed >= s.cfg.BurstCount {
			s.sprint.enter(PhaseGiant, s.clock)
		}

	case PhaseGiant:
		s.place(true, events)
		s.sprint.enter(PhaseCountdown, s.clock)

	case PhaseCountdown:
		if elapsed > s.cfg.CountdownSeconds {
			s.sprint.enter(PhaseCooldown, s.clock)
		}

	case PhaseCooldown:
		s.sprint.reset()
		s.lastScoop = s.clock
	}
}

// place generates an equation and appends its frame to the ledger. A
// non-forced placement may come out giant once enough sprints have run.
func (s *Session) place(giant bool, events *[]Event) {
	if !giant && s.sprintCount >= s.cfg.GiantSprintThreshold && s.rng.Float64() < s.giantProb {
		giant = true
	}

	eq := equation.Generate(s.rng, s.score, giant)
	frame := &Frame{
		ID:       s.nextFrameID,
		Text:     eq.Text,
		Solution: eq.Solution,
		Answers:  eq.Answers,
		Giant:    eq.Giant,
	}
	s.nextFrameID++
	s.ledger.Add(frame)
	*events = append(*events, Event{Kind: EventScoopPlaced, Frame: frame})
}

// lose transitions to Lost with the given reason. Once terminal, no further
// placements or score mutations occur.
func (s *Session) lose(reason string, events *[]Event) {
	s.state = StateLost
	s.reason = reason
	*events = append(*events, Event{Kind: EventLost, Message: reason})
}
