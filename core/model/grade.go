package model

import "fmt"

// AnswerLog records every committed edge in commit order. It is the only
// input to grading.
type AnswerLog struct {
	entries []Edge
}

func (l *AnswerLog) Append(e Edge) { l.entries = append(l.entries, e) }

func (l *AnswerLog) Len() int { return len(l.entries) }

func (l *AnswerLog) Entries() []Edge { return append([]Edge(nil), l.entries...) }

func (l *AnswerLog) Reset() { l.entries = nil }

// Remap rewrites entries the same way EdgeSet.Remap does.
func (l *AnswerLog) Remap(f func(Anchor) (Anchor, bool)) {
	out := l.entries[:0]
	for _, e := range l.entries {
		a, okA := f(e.A)
		b, okB := f(e.B)
		if okA && okB {
			out = append(out, NewEdge(a, b))
		}
	}
	l.entries = out
}

type Status int

const (
	// StatusIncomplete means fewer answers than items were given; no tallies
	// are computed.
	StatusIncomplete Status = iota
	StatusGraded
)

func (s Status) String() string {
	if s == StatusGraded {
		return "graded"
	}
	return "incomplete"
}

type Result struct {
	Status  Status
	Correct int
	Wrong   int
}

// Message is the text shown to the player for r.
func (r Result) Message() string {
	if r.Status == StatusIncomplete {
		return "Answer all questions"
	}
	return fmt.Sprintf("Correct: %d  Wrong: %d", r.Correct, r.Wrong)
}

// Grade tallies the log against the hidden pairing. It never mutates the log.
func Grade(log *AnswerLog, expected int) Result {
	if log.Len() < expected {
		return Result{Status: StatusIncomplete}
	}
	res := Result{Status: StatusGraded}
	for _, e := range log.entries {
		if e.Correct() {
			res.Correct++
		} else {
			res.Wrong++
		}
	}
	return res
}
