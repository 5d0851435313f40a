package engine

import (
	"github.com/google/uuid"

	"github.com/ingyamilmolinar/matchup/core/model"
	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

// Drag is the state of the gesture in progress. Active is meaningful only
// when HasActive is set; a press that misses every anchor still sets
// Dragging.
type Drag struct {
	Active    model.Anchor
	HasActive bool
	Pointer   model.Point
	Dragging  bool
}

// Outcome tells the host what a released gesture did.
type Outcome int

const (
	// OutcomeNone: the gesture had no anchor to start from.
	OutcomeNone Outcome = iota
	// OutcomeIgnored: no eligible target under the release point.
	OutcomeIgnored
	// OutcomeCommitted: a new edge was added and logged.
	OutcomeCommitted
	// OutcomeConflict: the target was valid but an endpoint was already matched.
	OutcomeConflict
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeCommitted:
		return "committed"
	case OutcomeConflict:
		return "conflict"
	default:
		return "none"
	}
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithShuffle sets the function used to order each column on reset. The
// default keeps the given order.
func WithShuffle(f func([]model.Item) []model.Item) Option {
	return func(e *Engine) { e.shuffle = f }
}

func WithTheme(t Theme) Option {
	return func(e *Engine) { e.theme = t }
}

// Engine owns the layout, the matching, the answer log and the drag state of
// one play-through. All methods must be called from the same goroutine.
type Engine struct {
	logger  *game_log.Logger
	shuffle func([]model.Item) []model.Item
	theme   Theme

	poolLeft, poolRight []model.Item
	left, right         []model.Item
	width, height       float64
	anchors             []model.Anchor

	edges   *model.EdgeSet
	answers model.AnswerLog
	drag    Drag
	round   uuid.UUID
}

// New builds an engine for the given columns on a width×height surface and
// starts the first round.
func New(logger *game_log.Logger, left, right []model.Item, width, height float64, opts ...Option) *Engine {
	e := &Engine{
		logger:    logger.Tagged("ENGINE"),
		shuffle:   func(items []model.Item) []model.Item { return append([]model.Item(nil), items...) },
		theme:     DefaultTheme(),
		poolLeft:  append([]model.Item(nil), left...),
		poolRight: append([]model.Item(nil), right...),
		width:     width,
		height:    height,
		edges:     model.NewEdgeSet(logger),
	}
	for _, o := range opts {
		o(e)
	}
	e.Reset()
	return e
}

/* ───────────────────────── gestures ───────────────────────── */

// GestureStart opens a drag from the anchor under p, if any.
func (e *Engine) GestureStart(p model.Point) {
	a, ok := model.NearestAnchor(e.anchors, p, model.AnchorRadius)
	e.drag = Drag{Active: a, HasActive: ok, Pointer: p, Dragging: true}
	if ok {
		e.logger.Debugf("Gesture start at (%.1f,%.1f) on anchor %d(%s)", p.X, p.Y, a.ID, a.Side)
	} else {
		e.logger.Debugf("Gesture start at (%.1f,%.1f) missed all anchors", p.X, p.Y)
	}
}

// GestureMove only records the pointer.
func (e *Engine) GestureMove(p model.Point) {
	e.drag.Pointer = p
}

// GestureEnd closes the drag and commits an edge when the release point is
// over an anchor of the other column.
func (e *Engine) GestureEnd(p model.Point) Outcome {
	from, hasFrom := e.drag.Active, e.drag.HasActive
	e.drag = Drag{}
	if !hasFrom {
		return OutcomeNone
	}
	target, ok := e.target(from, p)
	if !ok {
		e.logger.Debugf("Gesture end at (%.1f,%.1f): no target for anchor %d(%s)", p.X, p.Y, from.ID, from.Side)
		return OutcomeIgnored
	}
	edge := model.NewEdge(from, target)
	if !e.edges.TryAdd(edge) {
		e.logger.Debugf("Gesture end: %d -> %d conflicts with an existing match", edge.A.ID, edge.B.ID)
		return OutcomeConflict
	}
	e.answers.Append(edge)
	e.logger.Infof("Round %s: connected %d -> %d (%d/%d)", e.round, edge.A.ID, edge.B.ID, e.answers.Len(), e.Expected())
	return OutcomeCommitted
}

// target resolves the anchor a drag from `from` would land on at p.
func (e *Engine) target(from model.Anchor, p model.Point) (model.Anchor, bool) {
	t, ok := model.NearestAnchor(e.anchors, p, model.IntentRadius)
	if !ok || t.SameNode(from) || t.Side == from.Side {
		return model.Anchor{}, false
	}
	return t, true
}

/* ───────────────────────── round control ───────────────────────── */

// Grade scores the answer log against the number of items.
func (e *Engine) Grade() model.Result {
	res := model.Grade(&e.answers, e.Expected())
	e.logger.Infof("Round %s graded: %s correct=%d wrong=%d", e.round, res.Status, res.Correct, res.Wrong)
	return res
}

// Reset starts a new round: new column order, empty matching and log.
func (e *Engine) Reset() {
	e.edges.Reset()
	e.answers.Reset()
	e.drag = Drag{}
	e.left = e.shuffle(e.poolLeft)
	e.right = e.shuffle(e.poolRight)
	e.anchors = model.LayoutAnchors(e.left, e.right, e.width, e.height)
	e.round = uuid.New()
	e.logger.Infof("Round %s started with %d items", e.round, len(e.left))
}

// SetItems replaces the columns and starts a new round.
func (e *Engine) SetItems(left, right []model.Item) {
	e.poolLeft = append([]model.Item(nil), left...)
	e.poolRight = append([]model.Item(nil), right...)
	e.Reset()
}

// Resize lays the anchors out for a new surface size. Committed edges, the
// answer log and an active drag follow their anchors.
func (e *Engine) Resize(width, height float64) {
	if width == e.width && height == e.height {
		return
	}
	e.width, e.height = width, height
	e.anchors = model.LayoutAnchors(e.left, e.right, width, height)
	relocate := func(a model.Anchor) (model.Anchor, bool) {
		return model.FindAnchor(e.anchors, a.ID, a.Side)
	}
	e.edges.Remap(relocate)
	e.answers.Remap(relocate)
	if e.drag.HasActive {
		e.drag.Active, e.drag.HasActive = relocate(e.drag.Active)
	}
	e.logger.Debugf("Resized surface to %.0fx%.0f", width, height)
}

/* ───────────────────────── accessors ───────────────────────── */

func (e *Engine) Anchors() []model.Anchor { return append([]model.Anchor(nil), e.anchors...) }

func (e *Engine) Edges() []model.Edge { return e.edges.Edges() }

// EdgesVersion changes whenever the matching changes.
func (e *Engine) EdgesVersion() uint64 { return e.edges.Version() }

func (e *Engine) Answers() []model.Edge { return e.answers.Entries() }

func (e *Engine) Drag() Drag { return e.drag }

// Columns returns the items in display order.
func (e *Engine) Columns() (left, right []model.Item) {
	return append([]model.Item(nil), e.left...), append([]model.Item(nil), e.right...)
}

// Expected is the number of connections a complete answer has.
func (e *Engine) Expected() int { return len(e.left) }

func (e *Engine) Size() (width, height float64) { return e.width, e.height }

// Round identifies the current play-through.
func (e *Engine) Round() string { return e.round.String() }
