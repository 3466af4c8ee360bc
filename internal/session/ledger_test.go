package session

import "testing"

func TestLedgerAddRemove(t *testing.T) {
	var l Ledger

	f1 := &Frame{ID: 1, Solution: 2, Answers: []float64{2, -2, 3, -3}}
	f2 := &Frame{ID: 2, Solution: -1, Answers: []float64{-1, 1, 2, -2}, Giant: true}

	l.Add(f1)
	l.Add(f2)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", l.Len())
	}
	if l.TotalUnits() != 3 {
		t.Errorf("TotalUnits() = %d, expected 3 (normal=1 + giant=2)", l.TotalUnits())
	}

	l.Remove(f1)
	if l.Len() != 1 {
		t.Errorf("Len() after remove = %d, expected 1", l.Len())
	}
	if l.TotalUnits() != 2 {
		t.Errorf("TotalUnits() after remove = %d, expected 2", l.TotalUnits())
	}
}

func TestLedgerRemoveAbsentIsNoOp(t *testing.T) {
	var l Ledger

	kept := &Frame{ID: 1}
	absent := &Frame{ID: 2}

	l.Add(kept)
	l.Remove(absent)
	l.Remove(absent) // twice, still fine

	if l.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 after removing absent frame", l.Len())
	}
	if l.Frames()[0] != kept {
		t.Error("Remaining frame changed after no-op removal")
	}
}

func TestLedgerPressureNeverNegative(t *testing.T) {
	var l Ledger

	if l.TotalUnits() != 0 {
		t.Errorf("Empty ledger TotalUnits() = %d, expected 0", l.TotalUnits())
	}

	f := &Frame{ID: 1}
	l.Add(f)
	l.Remove(f)
	l.Remove(f)

	if l.TotalUnits() < 0 {
		t.Errorf("TotalUnits() = %d, must never be negative", l.TotalUnits())
	}
}

func TestLedgerFind(t *testing.T) {
	var l Ledger

	f := &Frame{ID: 7}
	l.Add(f)

	if got := l.Find(7); got != f {
		t.Error("Find(7) did not return the added frame")
	}
	if got := l.Find(8); got != nil {
		t.Error("Find(8) should return nil for unknown ID")
	}
}

func TestFrameUnits(t *testing.T) {
	normal := &Frame{}
	giant := &Frame{Giant: true}

	if normal.Units() != 1 {
		t.Errorf("Normal frame Units() = %d, expected 1", normal.Units())
	}
	if giant.Units() != 2 {
		t.Errorf("Giant frame Units() = %d, expected 2", giant.Units())
	}
}

func TestFrameAnswers(t *testing.T) {
	f := &Frame{Solution: 2.5, Answers: []float64{2.5, -2.5, 3.5, -1.5}}

	if !f.HasAnswer(2.5) || !f.HasAnswer(-1.5) {
		t.Error("HasAnswer should find listed candidates")
	}
	if f.HasAnswer(4.0) {
		t.Error("HasAnswer should reject unlisted values")
	}
	if !f.Check(2.5) {
		t.Error("Check should accept the solution")
	}
	if f.Check(-2.5) {
		t.Error("Check should reject the negated solution")
	}
}
