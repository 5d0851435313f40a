//go:build test

package ui

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/core/model"
	game_log "github.com/ingyamilmolinar/matchup/internal/log"
	"github.com/ingyamilmolinar/matchup/internal/pairs"
)

var testLogger = game_log.New(io.Discard, game_log.LevelDebug)

type recordingPlayer struct{ played []string }

func (p *recordingPlayer) Play(name string) { p.played = append(p.played, name) }

// newTestGame builds a game over the default pairs without shuffling.
func newTestGame(t *testing.T) (*Game, *recordingPlayer) {
	t.Helper()
	left, right := pairs.Columns(pairs.Default())
	eng := engine.New(testLogger, left, right, SurfaceW, SurfaceH)
	p := &recordingPlayer{}
	return New(testLogger, eng, p), p
}

// screenPoint converts an anchor to window coordinates.
func screenPoint(g *Game, a model.Anchor) (int, int) {
	return g.surface.Min.X + int(a.X), g.surface.Min.Y + int(a.Y)
}

func anchorAt(t *testing.T, g *Game, id model.ItemID, side model.Side) model.Anchor {
	t.Helper()
	a, ok := model.FindAnchor(g.eng.Anchors(), id, side)
	if !ok {
		t.Fatalf("no %s anchor for item %d", side, id)
	}
	return a
}

// mouseFrame runs one Update with the mouse at (x,y).
func mouseFrame(g *Game, x, y int, down bool) {
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func(b ebiten.MouseButton) bool { return down && b == ebiten.MouseButtonLeft },
		func(ids []ebiten.TouchID) []ebiten.TouchID { return ids },
		func(ebiten.TouchID) (int, int) { return 0, 0 },
	)
	defer restore()
	_ = g.Update()
}

// drag presses at (x1,y1), moves to (x2,y2) and releases there.
func drag(g *Game, x1, y1, x2, y2 int) {
	mouseFrame(g, x1, y1, true)
	mouseFrame(g, (x1+x2)/2, (y1+y2)/2, true)
	mouseFrame(g, x2, y2, true)
	mouseFrame(g, x2, y2, false)
}

// click simulates a mouse click at (x,y) and releases it on the next frame.
func click(g *Game, x, y int) {
	mouseFrame(g, x, y, true)
	mouseFrame(g, x, y, false)
}

func connect(t *testing.T, g *Game, leftID, rightID model.ItemID) {
	t.Helper()
	x1, y1 := screenPoint(g, anchorAt(t, g, leftID, model.SideLeft))
	x2, y2 := screenPoint(g, anchorAt(t, g, rightID, model.SideRight))
	drag(g, x1, y1, x2, y2)
}

func clickButton(g *Game, b *Button) {
	r := b.Rect()
	click(g, r.Min.X+1, r.Min.Y+1)
}

type drawCall struct {
	kind string
	x, y float64
	c    color.Color
	text string
}

// captureDraws swaps every drawing primitive for a recorder so Draw can run
// without a graphics device.
func captureDraws(t *testing.T) *[]drawCall {
	t.Helper()
	var calls []drawCall
	oldRect, oldButton, oldLine, oldCircle, oldText, oldImage := drawRect, drawButton, strokeLine, fillCircle, drawText, drawImage
	drawRect = func(_ *ebiten.Image, r image.Rectangle, c color.Color, _ bool) {
		calls = append(calls, drawCall{kind: "rect", x: float64(r.Min.X), y: float64(r.Min.Y), c: c})
	}
	drawButton = func(_ *ebiten.Image, r image.Rectangle, fill, _ color.Color, _ bool) {
		calls = append(calls, drawCall{kind: "button", x: float64(r.Min.X), y: float64(r.Min.Y), c: fill})
	}
	strokeLine = func(_ *ebiten.Image, x1, y1, _, _, _ float64, c color.Color) {
		calls = append(calls, drawCall{kind: "line", x: x1, y: y1, c: c})
	}
	fillCircle = func(_ *ebiten.Image, cx, cy, _ float64, c color.Color) {
		calls = append(calls, drawCall{kind: "circle", x: cx, y: cy, c: c})
	}
	drawText = func(_ *ebiten.Image, s string, x, y int) {
		calls = append(calls, drawCall{kind: "text", x: float64(x), y: float64(y), text: s})
	}
	drawImage = func(_, _ *ebiten.Image, r image.Rectangle) {
		calls = append(calls, drawCall{kind: "image", x: float64(r.Min.X), y: float64(r.Min.Y)})
	}
	t.Cleanup(func() {
		drawRect, drawButton, strokeLine, fillCircle, drawText, drawImage = oldRect, oldButton, oldLine, oldCircle, oldText, oldImage
	})
	return &calls
}
