package session

// EventKind identifies a discrete signal emitted by Tick or Submit.
// Presentation and audio collaborators consume these; the session itself
// never renders or plays anything.
type EventKind int

const (
	// EventScoopPlaced fires for every new frame added to the ledger.
	EventScoopPlaced EventKind = iota

	// EventSprintStarted fires when a sprint begins.
	EventSprintStarted

	// EventMilestone fires when the score reaches a positive multiple of 10.
	EventMilestone

	// EventGiantSolved fires when a giant frame is answered correctly.
	EventGiantSolved

	// EventWon fires once when the session transitions to Won.
	EventWon

	// EventLost fires once when the session transitions to Lost.
	EventLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoopPlaced:
		return "ScoopPlaced"
	case EventSprintStarted:
		return "SprintStarted"
	case EventMilestone:
		return "Milestone"
	case EventGiantSolved:
		return "GiantSolved"
	case EventWon:
		return "Won"
	case EventLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Event is one discrete signal with optional context.
type Event struct {
	Kind EventKind

	// Frame is set on EventScoopPlaced and EventGiantSolved.
	Frame *Frame

	// Message carries the encouragement text on EventGiantSolved and the
	// terminal reason on EventWon/EventLost.
	Message string
}

// encouragements is the pool of messages shown when a giant is solved.
var encouragements = []string{"Great job!", "Amazing!", "Well done!"}
