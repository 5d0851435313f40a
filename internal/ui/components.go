package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonStyle defines the look of a push button.
type ButtonStyle struct {
	Fill   color.Color
	Border color.Color
}

// Draw renders the button rectangle using the global drawButton primitive.
func (s ButtonStyle) Draw(dst *ebiten.Image, r image.Rectangle, pressed bool) {
	drawButton(dst, r, s.Fill, s.Border, pressed)
}

// Button is a clickable rectangle with a text label. OnClick fires when a
// press that started inside the button is released inside it.
type Button struct {
	r       image.Rectangle
	Text    string
	Style   ButtonStyle
	OnClick func()
	pressed bool
}

// NewButton constructs a button with the given label, style, and optional click handler.
func NewButton(text string, style ButtonStyle, onClick func()) *Button {
	return &Button{Text: text, Style: style, OnClick: onClick}
}

// Rect returns the button's bounds.
func (b *Button) Rect() image.Rectangle { return b.r }

// SetRect sets the button's bounds.
func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Pressed reports whether a press is currently held on the button.
func (b *Button) Pressed() bool { return b.pressed }

// Press arms the button when (x,y) is inside it.
func (b *Button) Press(x, y int) bool {
	b.pressed = pt(x, y, b.r)
	return b.pressed
}

// Release disarms the button and fires OnClick when (x,y) is still inside.
func (b *Button) Release(x, y int) bool {
	fire := b.pressed && pt(x, y, b.r)
	b.pressed = false
	if fire && b.OnClick != nil {
		b.OnClick()
	}
	return fire
}

// Draw renders the button and its label.
func (b *Button) Draw(dst *ebiten.Image) {
	b.Style.Draw(dst, b.r, b.pressed)
	textAt(dst, b.Text, b.r)
}
