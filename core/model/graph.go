package model

import (
	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

// Edge connects two anchors. NewEdge orders the endpoints by ascending x so
// the left-column anchor is always A.
type Edge struct{ A, B Anchor }

func NewEdge(p, q Anchor) Edge {
	if q.X < p.X {
		p, q = q, p
	}
	return Edge{A: p, B: q}
}

// Touches reports whether a is an endpoint of e.
func (e Edge) Touches(a Anchor) bool { return e.A.SameNode(a) || e.B.SameNode(a) }

// Correct reports whether both endpoints belong to the same pair.
func (e Edge) Correct() bool { return e.A.ID == e.B.ID }

// EdgesEqual compares two canonical edges endpoint by endpoint.
func EdgesEqual(e1, e2 Edge) bool {
	return e1.A.SameNode(e2.A) && e1.B.SameNode(e2.B)
}

// EdgeSet is a partial matching: every anchor is an endpoint of at most one
// edge. Edges are only ever appended; Reset drops them all.
type EdgeSet struct {
	edges   []Edge
	version uint64
	logger  *game_log.Logger
}

func NewEdgeSet(logger *game_log.Logger) *EdgeSet {
	return &EdgeSet{logger: logger.Tagged("GRAPH")}
}

// TryAdd appends e in canonical order unless one of its endpoints is already
// matched. It reports whether the edge was added.
func (s *EdgeSet) TryAdd(e Edge) bool {
	e = NewEdge(e.A, e.B)
	for _, o := range s.edges {
		if o.Touches(e.A) || o.Touches(e.B) {
			s.logger.Debugf("Rejected edge %d(%s) -> %d(%s): endpoint already matched",
				e.A.ID, e.A.Side, e.B.ID, e.B.Side)
			return false
		}
	}
	s.edges = append(s.edges, e)
	s.version++
	s.logger.Debugf("Added edge %d(%s) -> %d(%s), %d total",
		e.A.ID, e.A.Side, e.B.ID, e.B.Side, len(s.edges))
	return true
}

// Contains reports whether an edge equal to e is present. The argument may
// be given in either endpoint order.
func (s *EdgeSet) Contains(e Edge) bool {
	e = NewEdge(e.A, e.B)
	for _, o := range s.edges {
		if EdgesEqual(o, e) {
			return true
		}
	}
	return false
}

// Matched reports whether a is an endpoint of any edge.
func (s *EdgeSet) Matched(a Anchor) bool {
	for _, o := range s.edges {
		if o.Touches(a) {
			return true
		}
	}
	return false
}

// Edges returns a copy of the committed edges in insertion order.
func (s *EdgeSet) Edges() []Edge { return append([]Edge(nil), s.edges...) }

func (s *EdgeSet) Len() int { return len(s.edges) }

// Version increases on every mutation.
func (s *EdgeSet) Version() uint64 { return s.version }

func (s *EdgeSet) Reset() {
	s.edges = nil
	s.version++
	s.logger.Debugf("Cleared edge set")
}

// Remap rewrites every endpoint through f. Edges whose endpoints can no
// longer be resolved are dropped.
func (s *EdgeSet) Remap(f func(Anchor) (Anchor, bool)) {
	out := s.edges[:0]
	for _, e := range s.edges {
		a, okA := f(e.A)
		b, okB := f(e.B)
		if !okA || !okB {
			s.logger.Warnf("Dropped edge %d -> %d during remap", e.A.ID, e.B.ID)
			continue
		}
		out = append(out, NewEdge(a, b))
	}
	s.edges = out
	s.version++
}
