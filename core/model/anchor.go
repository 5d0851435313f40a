package model

// ItemID identifies a matchable pair. A left item and a right item belong
// together when their IDs are equal.
type ItemID int

type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Point is a position on the drawing surface.
type Point struct{ X, Y float64 }

// Item is one entry of a column. Left items carry a label, right items an
// image reference.
type Item struct {
	ID    ItemID
	Label string
	Image string
}

// Anchor is the connection point drawn for one item. Two anchors are the
// same anchor when their coordinates are equal.
type Anchor struct {
	ID   ItemID
	Side Side
	X, Y float64
}

func (a Anchor) Point() Point { return Point{a.X, a.Y} }

// SameNode reports coordinate identity.
func (a Anchor) SameNode(b Anchor) bool { return a.X == b.X && a.Y == b.Y }

const (
	// AnchorRadius is the drawn radius of an anchor and the grab radius.
	AnchorRadius = 15.0
	// IntentRadius is the snap threshold used while dragging and on release.
	IntentRadius = AnchorRadius * 1.5
	// Margin is the horizontal distance of each column from its surface edge.
	Margin = AnchorRadius * 1.5
)

// LayoutAnchors places the left column at x=Margin and the right column at
// x=width-Margin. The i-th of N items sits in the middle of the i-th of N
// equal row bands. Left anchors come first in the result.
func LayoutAnchors(left, right []Item, width, height float64) []Anchor {
	anchors := make([]Anchor, 0, len(left)+len(right))
	anchors = appendColumn(anchors, left, SideLeft, Margin, height)
	anchors = appendColumn(anchors, right, SideRight, width-Margin, height)
	return anchors
}

func appendColumn(dst []Anchor, items []Item, side Side, x, height float64) []Anchor {
	if len(items) == 0 {
		return dst
	}
	row := height / float64(len(items))
	for i, it := range items {
		dst = append(dst, Anchor{
			ID:   it.ID,
			Side: side,
			X:    x,
			Y:    float64(i)*row + row/2,
		})
	}
	return dst
}

// NearestAnchor returns the first anchor whose horizontal and vertical
// distances from p are both strictly below threshold.
func NearestAnchor(anchors []Anchor, p Point, threshold float64) (Anchor, bool) {
	for _, a := range anchors {
		if abs(p.X-a.X) < threshold && abs(p.Y-a.Y) < threshold {
			return a, true
		}
	}
	return Anchor{}, false
}

// FindAnchor looks an anchor up by item ID and side.
func FindAnchor(anchors []Anchor, id ItemID, side Side) (Anchor, bool) {
	for _, a := range anchors {
		if a.ID == id && a.Side == side {
			return a, true
		}
	}
	return Anchor{}, false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
