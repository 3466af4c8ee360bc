package session

// SprintPhase is the explicit state of the sprint sub-machine. The sprint
// accelerates placement: a lead-in wait, a burst of normal equations, one
// giant equation, a presentational countdown, then back to normal cadence.
type SprintPhase int

const (
	PhaseInactive SprintPhase = iota
	PhaseLead
	PhaseBurst
	PhaseGiant
	PhaseCountdown
	PhaseCooldown
)

// String returns a human-readable name for the phase.
func (p SprintPhase) String() string {
	switch p {
	case PhaseInactive:
		return "Inactive"
	case PhaseLead:
		return "Lead"
	case PhaseBurst:
		return "Burst"
	case PhaseGiant:
		return "Giant"
	case PhaseCountdown:
		return "Countdown"
	case PhaseCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// Sprint time budgets are fractions of the sprint span, which is five
// placement intervals measured at sprint start.
const (
	sprintSpanIntervals = 5.0
	leadBudgetFraction  = 1.85
	burstBudgetFraction = 0.10
)

// sprintState tracks the sub-machine while a sprint runs. phaseStart is a
// session-clock timestamp; all waits are elapsed-time comparisons, never
// blocking calls.
type sprintState struct {
	phase      SprintPhase
	phaseStart float64
	span       float64
	placed     int
}

func (s *sprintState) active() bool {
	return s.phase != PhaseInactive
}

func (s *sprintState) enter(phase SprintPhase, now float64) {
	s.phase = phase
	s.phaseStart = now
}

func (s *sprintState) reset() {
	*s = sprintState{}
}
