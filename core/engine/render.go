package engine

import (
	"image/color"

	"github.com/ingyamilmolinar/matchup/core/model"
)

// Canvas is the immediate-mode surface a frame is drawn onto. Coordinates
// are surface-local.
type Canvas interface {
	Clear()
	Line(from, to model.Point, style LineStyle)
	Circle(center model.Point, radius float64, fill color.Color)
}

// LineStyle describes a stroke. A non-empty Dash alternates on and off
// lengths.
type LineStyle struct {
	Color color.Color
	Width float64
	Dash  []float64
}

type Theme struct {
	Edge         LineStyle
	Preview      LineStyle
	Anchor       color.Color
	ActiveAnchor color.Color
}

func DefaultTheme() Theme {
	return Theme{
		Edge:         LineStyle{Color: color.Black, Width: 2},
		Preview:      LineStyle{Color: color.RGBA{255, 0, 0, 255}, Width: 2, Dash: []float64{3, 3}},
		Anchor:       color.RGBA{169, 169, 169, 255},
		ActiveAnchor: color.Black,
	}
}

// Render draws the current frame: committed edges, then anchors, then the
// drag preview.
func (e *Engine) Render(c Canvas) {
	c.Clear()

	for _, edge := range e.edges.Edges() {
		c.Line(edge.A.Point(), edge.B.Point(), e.theme.Edge)
	}

	for _, a := range e.anchors {
		fill := e.theme.Anchor
		if e.drag.HasActive && a.SameNode(e.drag.Active) {
			fill = e.theme.ActiveAnchor
		}
		c.Circle(a.Point(), model.AnchorRadius, fill)
	}

	if from, to, ok := e.Preview(); ok {
		c.Line(from, to, e.theme.Preview)
	}
}

// Preview returns the drag-preview segment. The end snaps to any anchor
// within the intent radius, otherwise it follows the pointer. Whether the
// release would commit is decided only by GestureEnd.
func (e *Engine) Preview() (from, to model.Point, ok bool) {
	if !e.drag.Dragging || !e.drag.HasActive {
		return model.Point{}, model.Point{}, false
	}
	to = e.drag.Pointer
	if t, snapped := model.NearestAnchor(e.anchors, e.drag.Pointer, model.IntentRadius); snapped {
		to = t.Point()
	}
	return e.drag.Active.Point(), to, true
}
