package session

import (
	"math"

	"scoopstack/internal/equation"
)

// Frame is one outstanding equation in the ledger: the puzzle, its answer
// candidates, and a unit cost of 1 (normal) or 2 (giant).
type Frame struct {
	ID       int
	Text     string
	Solution float64
	Answers  []float64
	Giant    bool
}

// Units returns the capacity cost of the frame.
func (f *Frame) Units() int {
	if f.Giant {
		return 2
	}
	return 1
}

// HasAnswer reports whether the value is one of the frame's candidates.
func (f *Frame) HasAnswer(value float64) bool {
	for _, a := range f.Answers {
		if math.Abs(a-value) < equation.Epsilon {
			return true
		}
	}
	return false
}

// Check reports whether the value matches the frame's solution.
func (f *Frame) Check(value float64) bool {
	return math.Abs(value-f.Solution) < equation.Epsilon
}

// Ledger is the ordered collection of outstanding frames. Insertion order
// is visual order in the sidebar.
type Ledger struct {
	frames []*Frame
}

// Add appends a frame to the ledger.
func (l *Ledger) Add(f *Frame) {
	l.frames = append(l.frames, f)
}

// Remove deletes the first frame with a matching identity. Removing a
// frame that is not present is a silent no-op.
func (l *Ledger) Remove(f *Frame) {
	for i, cur := range l.frames {
		if cur == f {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
}

// Find returns the frame with the given ID, or nil.
func (l *Ledger) Find(id int) *Frame {
	for _, f := range l.frames {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Frames returns the frames in insertion order. The slice is shared;
// callers must not mutate it.
func (l *Ledger) Frames() []*Frame {
	return l.frames
}

// Len returns the number of outstanding frames.
func (l *Ledger) Len() int {
	return len(l.frames)
}

// TotalUnits returns the ledger pressure: the sum of unit costs across all
// outstanding frames. Never negative.
func (l *Ledger) TotalUnits() int {
	total := 0
	for _, f := range l.frames {
		total += f.Units()
	}
	return total
}

// Clear drops all frames.
func (l *Ledger) Clear() {
	l.frames = l.frames[:0]
}
