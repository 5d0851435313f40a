// Package snapshot renders a board off-screen to PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/core/model"
)

// Canvas implements engine.Canvas on a gg context. Drawing is confined to
// the surface rectangle starting at (X, Y).
type Canvas struct {
	dc         *gg.Context
	X, Y       float64
	W, H       float64
	Background color.Color
}

func NewCanvas(dc *gg.Context, x, y, w, h float64, bg color.Color) *Canvas {
	return &Canvas{dc: dc, X: x, Y: y, W: w, H: h, Background: bg}
}

func (c *Canvas) Clear() {
	c.dc.SetColor(c.Background)
	c.dc.DrawRectangle(c.X, c.Y, c.W, c.H)
	c.dc.Fill()
}

func (c *Canvas) Line(from, to model.Point, s engine.LineStyle) {
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.SetDash(s.Dash...)
	c.dc.DrawLine(c.X+from.X, c.Y+from.Y, c.X+to.X, c.Y+to.Y)
	c.dc.Stroke()
	c.dc.SetDash()
}

func (c *Canvas) Circle(center model.Point, r float64, fill color.Color) {
	c.dc.SetColor(fill)
	c.dc.DrawCircle(c.X+center.X, c.Y+center.Y, r)
	c.dc.Fill()
}

// Options control the board around the drawing surface.
type Options struct {
	ColumnWidth float64
	FooterH     float64
	Background  color.Color
	Surface     color.Color
	Text        color.Color
	Footer      string
}

func DefaultOptions() Options {
	return Options{
		ColumnWidth: 110,
		FooterH:     24,
		Background:  color.White,
		Surface:     color.RGBA{245, 245, 245, 255},
		Text:        color.Black,
	}
}

// Render draws the labels, the surface with the engine's current frame and
// an optional footer line.
func Render(e *engine.Engine, opt Options) image.Image {
	sw, sh := e.Size()
	w := int(opt.ColumnWidth*2 + sw)
	h := int(sh + opt.FooterH)
	dc := gg.NewContext(w, h)
	dc.SetColor(opt.Background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	left, right := e.Columns()
	drawColumn(dc, opt, left, 0, sh, func(it model.Item) string { return it.Label })
	drawColumn(dc, opt, right, opt.ColumnWidth+sw, sh, func(it model.Item) string { return filepath.Base(it.Image) })

	e.Render(NewCanvas(dc, opt.ColumnWidth, 0, sw, sh, opt.Surface))

	if opt.Footer != "" {
		dc.SetColor(opt.Text)
		dc.DrawStringAnchored(opt.Footer, float64(w)/2, sh+opt.FooterH/2, 0.5, 0.5)
	}
	return dc.Image()
}

func drawColumn(dc *gg.Context, opt Options, items []model.Item, x, height float64, text func(model.Item) string) {
	if len(items) == 0 {
		return
	}
	row := height / float64(len(items))
	dc.SetColor(opt.Text)
	for i, it := range items {
		s := truncate(text(it), int(opt.ColumnWidth/7)-1)
		dc.DrawStringAnchored(s, x+opt.ColumnWidth/2, float64(i)*row+row/2, 0.5, 0.5)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// WritePNG renders e and encodes the image to w.
func WritePNG(w io.Writer, e *engine.Engine, opt Options) error {
	dc := gg.NewContextForImage(Render(e, opt))
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders e into the file at path.
func SavePNG(path string, e *engine.Engine, opt Options) error {
	dc := gg.NewContextForImage(Render(e, opt))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
