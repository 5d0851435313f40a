package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	touchIDs             = ebiten.AppendTouchIDs
	touchPosition        = ebiten.TouchPosition
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	touches func([]ebiten.TouchID) []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldTouches := touchIDs
	oldTouchPos := touchPosition
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	touchIDs = touches
	touchPosition = touchPos
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		touchIDs = oldTouches
		touchPosition = oldTouchPos
	}
}

type pointerKind int

const (
	pointerNone pointerKind = iota
	pointerPress
	pointerMove
	pointerRelease
)

type pointerEvent struct {
	kind pointerKind
	x, y int
}

// pointer turns per-frame mouse and touch state into press, move and release
// events. Only one contact is followed at a time; the first touch wins over
// the mouse and later touches are ignored until it lifts.
type pointer struct {
	down    bool
	touch   bool
	touchID ebiten.TouchID
	x, y    int
	ids     []ebiten.TouchID
}

func (p *pointer) poll() pointerEvent {
	p.ids = touchIDs(p.ids[:0])

	switch {
	case p.down && p.touch:
		for _, id := range p.ids {
			if id == p.touchID {
				return p.moveTo(touchPosition(id))
			}
		}
		// the tracked finger lifted; release where it was last seen
		p.down = false
		return pointerEvent{kind: pointerRelease, x: p.x, y: p.y}

	case p.down:
		x, y := cursorPosition()
		if !isMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.down = false
			p.x, p.y = x, y
			return pointerEvent{kind: pointerRelease, x: x, y: y}
		}
		return p.moveTo(x, y)
	}

	if len(p.ids) > 0 {
		p.down, p.touch, p.touchID = true, true, p.ids[0]
		p.x, p.y = touchPosition(p.touchID)
		return pointerEvent{kind: pointerPress, x: p.x, y: p.y}
	}
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.down, p.touch = true, false
		p.x, p.y = cursorPosition()
		return pointerEvent{kind: pointerPress, x: p.x, y: p.y}
	}
	return pointerEvent{}
}

func (p *pointer) moveTo(x, y int) pointerEvent {
	if x == p.x && y == p.y {
		return pointerEvent{}
	}
	p.x, p.y = x, y
	return pointerEvent{kind: pointerMove, x: x, y: y}
}
