package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/core/model"
)

const (
	debugCharW = 6
	debugCharH = 16
)

// drawRect draws a rectangle. It is defined as a variable so tests can
// override it to capture draw calls.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

// drawButton renders a filled rectangle with a border. It can be overridden in tests.
var drawButton = func(dst *ebiten.Image, r image.Rectangle, fill, border color.Color, pressed bool) {
	fc := fill
	if pressed {
		if c, ok := fill.(color.RGBA); ok {
			fc = color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
		}
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fc, false)
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, border, false)
}

var strokeLine = func(dst *ebiten.Image, x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

var fillCircle = func(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

var drawText = ebitenutil.DebugPrintAt

// drawImage scales img to fit r, keeping its aspect ratio.
var drawImage = func(dst, img *ebiten.Image, r image.Rectangle) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	s := math.Min(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(
		float64(r.Min.X)+(float64(r.Dx())-float64(b.Dx())*s)/2,
		float64(r.Min.Y)+(float64(r.Dy())-float64(b.Dy())*s)/2,
	)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}

// textAt centres s inside r using the debug font metrics.
func textAt(dst *ebiten.Image, s string, r image.Rectangle) {
	w := debugCharW * len([]rune(s))
	drawText(dst, s, r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-debugCharH)/2)
}

// surfaceCanvas adapts the screen to engine.Canvas. Engine coordinates are
// surface-local, so every primitive is shifted by the surface origin.
type surfaceCanvas struct {
	dst    *ebiten.Image
	bounds image.Rectangle
	bg     color.Color
}

func (c *surfaceCanvas) Clear() {
	drawRect(c.dst, c.bounds, c.bg, true)
}

func (c *surfaceCanvas) Line(from, to model.Point, s engine.LineStyle) {
	ox, oy := float64(c.bounds.Min.X), float64(c.bounds.Min.Y)
	x1, y1, x2, y2 := ox+from.X, oy+from.Y, ox+to.X, oy+to.Y
	if len(s.Dash) == 0 {
		strokeLine(c.dst, x1, y1, x2, y2, s.Width, s.Color)
		return
	}
	for _, seg := range dashSegments(x1, y1, x2, y2, s.Dash) {
		strokeLine(c.dst, seg[0], seg[1], seg[2], seg[3], s.Width, s.Color)
	}
}

func (c *surfaceCanvas) Circle(center model.Point, r float64, fill color.Color) {
	fillCircle(c.dst, float64(c.bounds.Min.X)+center.X, float64(c.bounds.Min.Y)+center.Y, r, fill)
}

// dashSegments splits a line into the "on" pieces of an on/off dash
// pattern. The pattern repeats from the start of the line.
func dashSegments(x1, y1, x2, y2 float64, dash []float64) [][4]float64 {
	length := math.Hypot(x2-x1, y2-y1)
	total := 0.0
	for _, d := range dash {
		total += d
	}
	if length == 0 || total <= 0 {
		return [][4]float64{{x1, y1, x2, y2}}
	}
	ux, uy := (x2-x1)/length, (y2-y1)/length

	var segs [][4]float64
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := dash[i%len(dash)]
		end := math.Min(pos+d, length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [4]float64{x1 + ux*pos, y1 + uy*pos, x1 + ux*end, y1 + uy*end})
		}
		pos += d
	}
	return segs
}
