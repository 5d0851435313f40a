package model

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(os.Stdout, game_log.LevelError)
}

func fourByFour() []Anchor {
	items := []Item{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	return LayoutAnchors(items, items, 125, 235)
}

func anchorOf(t *testing.T, anchors []Anchor, id ItemID, side Side) Anchor {
	t.Helper()
	a, ok := FindAnchor(anchors, id, side)
	require.True(t, ok, "anchor %d/%s missing", id, side)
	return a
}

func TestNewEdgeCanonicalOrder(t *testing.T) {
	anchors := fourByFour()
	l := anchorOf(t, anchors, 1, SideLeft)
	r := anchorOf(t, anchors, 2, SideRight)

	assert.Equal(t, NewEdge(l, r), NewEdge(r, l))
	assert.Equal(t, SideLeft, NewEdge(r, l).A.Side)
	assert.True(t, EdgesEqual(NewEdge(l, r), NewEdge(r, l)))
}

func TestTryAddOrderIndependent(t *testing.T) {
	anchors := fourByFour()
	l := anchorOf(t, anchors, 3, SideLeft)
	r := anchorOf(t, anchors, 1, SideRight)

	forward := NewEdgeSet(testLogger)
	backward := NewEdgeSet(testLogger)
	require.True(t, forward.TryAdd(Edge{A: l, B: r}))
	require.True(t, backward.TryAdd(Edge{A: r, B: l}))
	assert.Equal(t, forward.Edges(), backward.Edges())
	assert.True(t, forward.Contains(Edge{A: r, B: l}))
}

func TestTryAddRejectsMatchedEndpoint(t *testing.T) {
	anchors := fourByFour()
	s := NewEdgeSet(testLogger)
	l1 := anchorOf(t, anchors, 1, SideLeft)
	r2 := anchorOf(t, anchors, 2, SideRight)
	require.True(t, s.TryAdd(NewEdge(l1, r2)))
	v := s.Version()

	for _, other := range anchors {
		if other.Side == SideLeft {
			continue
		}
		assert.False(t, s.TryAdd(NewEdge(l1, other)), "second edge on left 1 via right %d", other.ID)
	}
	for _, other := range anchors {
		if other.Side == SideRight {
			continue
		}
		assert.False(t, s.TryAdd(NewEdge(other, r2)), "second edge on right 2 via left %d", other.ID)
	}
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, v, s.Version(), "rejections must not mutate")
}

func TestTryAddBuildsFullMatching(t *testing.T) {
	anchors := fourByFour()
	s := NewEdgeSet(testLogger)
	for id := ItemID(1); id <= 4; id++ {
		require.True(t, s.TryAdd(NewEdge(anchorOf(t, anchors, id, SideLeft), anchorOf(t, anchors, 5-id, SideRight))))
	}
	assert.Equal(t, 4, s.Len())
	for _, a := range anchors {
		assert.True(t, s.Matched(a))
	}
}

func TestContains(t *testing.T) {
	anchors := fourByFour()
	s := NewEdgeSet(testLogger)
	e := NewEdge(anchorOf(t, anchors, 1, SideLeft), anchorOf(t, anchors, 1, SideRight))
	assert.False(t, s.Contains(e))
	s.TryAdd(e)
	assert.True(t, s.Contains(e))
	assert.False(t, s.Contains(NewEdge(anchorOf(t, anchors, 2, SideLeft), anchorOf(t, anchors, 1, SideRight))))
}

func TestResetAndVersion(t *testing.T) {
	anchors := fourByFour()
	s := NewEdgeSet(testLogger)
	v0 := s.Version()
	s.TryAdd(NewEdge(anchors[0], anchors[4]))
	v1 := s.Version()
	assert.Greater(t, v1, v0)
	s.Reset()
	assert.Zero(t, s.Len())
	assert.Greater(t, s.Version(), v1)
	assert.True(t, s.TryAdd(NewEdge(anchors[0], anchors[4])), "anchor free again after reset")
}

func TestRemapMovesEdges(t *testing.T) {
	items := []Item{{ID: 1}, {ID: 2}}
	small := LayoutAnchors(items, items, 125, 235)
	big := LayoutAnchors(items, items, 250, 470)

	s := NewEdgeSet(testLogger)
	s.TryAdd(NewEdge(anchorOf(t, small, 1, SideLeft), anchorOf(t, small, 2, SideRight)))
	s.Remap(func(a Anchor) (Anchor, bool) { return FindAnchor(big, a.ID, a.Side) })

	require.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(NewEdge(anchorOf(t, big, 1, SideLeft), anchorOf(t, big, 2, SideRight))))

	s.Remap(func(Anchor) (Anchor, bool) { return Anchor{}, false })
	assert.Zero(t, s.Len())
}

func TestEdgesReturnsCopy(t *testing.T) {
	anchors := fourByFour()
	s := NewEdgeSet(testLogger)
	s.TryAdd(NewEdge(anchors[0], anchors[4]))
	edges := s.Edges()
	edges[0] = Edge{}
	assert.True(t, s.Contains(NewEdge(anchors[0], anchors[4])))
}

func TestNilLoggerIsSafe(t *testing.T) {
	anchors := fourByFour()
	s := NewEdgeSet(nil)
	assert.True(t, s.TryAdd(NewEdge(anchors[0], anchors[4])))
	assert.False(t, s.TryAdd(NewEdge(anchors[0], anchors[5])))
}
