package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/core/model"
	"github.com/ingyamilmolinar/matchup/internal/audio"
	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

// Logical screen geometry. The drawing surface sits between the two item
// columns; buttons and the result line share the footer.
const (
	SurfaceW = 125
	SurfaceH = 235

	columnW = 110
	topPad  = 10
	footerH = 70
	buttonW = 90
	buttonH = 24
)

// Sounder plays a named feedback tone.
type Sounder interface {
	Play(name string)
}

type Action int

const (
	ActionReset Action = iota
	ActionSubmit
)

// Game hosts one matching round inside ebiten. All engine calls happen on
// the ebiten update goroutine; other goroutines queue Actions instead.
type Game struct {
	logger *game_log.Logger
	eng    *engine.Engine
	player Sounder
	images *imageCache

	ptr     pointer
	gesture bool
	version uint64
	scale   float64

	surface   image.Rectangle
	resetBtn  *Button
	submitBtn *Button

	actions chan Action
	message string
	result  model.Result

	// OnResult is called after every grading, on the update goroutine.
	OnResult func(model.Result)
}

func New(logger *game_log.Logger, eng *engine.Engine, player Sounder) *Game {
	g := &Game{
		logger:  logger.Tagged("UI"),
		eng:     eng,
		player:  player,
		actions: make(chan Action, 8),
		scale:   1,
	}
	g.images = newImageCache(g.logger)
	g.resetBtn = NewButton("Reset", ButtonStyle{Fill: colResetButton, Border: colButtonBorder}, g.Reset)
	g.submitBtn = NewButton("Submit", ButtonStyle{Fill: colSubmitButton, Border: colButtonBorder}, g.Submit)
	g.relayout()
	g.initJS()
	return g
}

func (g *Game) relayout() {
	w, h := g.eng.Size()
	g.surface = image.Rect(columnW, topPad, columnW+int(w), topPad+int(h))

	sw, _ := g.ScreenSize()
	y := g.surface.Max.Y + 10
	gap := (sw - 2*buttonW) / 3
	g.resetBtn.SetRect(image.Rect(gap, y, gap+buttonW, y+buttonH))
	g.submitBtn.SetRect(image.Rect(2*gap+buttonW, y, 2*gap+2*buttonW, y+buttonH))
}

// ScreenSize returns the logical size of the whole board.
func (g *Game) ScreenSize() (int, int) {
	return 2*columnW + g.surface.Dx(), g.surface.Max.Y + footerH
}

// SetScale sets how many window pixels make one logical pixel.
func (g *Game) SetScale(s float64) {
	if s > 0 {
		g.scale = s
	}
}

// Layout grows the drawing surface with the window. The surface never
// shrinks below SurfaceW×SurfaceH; committed lines follow their anchors.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	lw := int(float64(outsideWidth) / g.scale)
	lh := int(float64(outsideHeight) / g.scale)
	w := max(SurfaceW, lw-2*columnW)
	h := max(SurfaceH, lh-topPad-footerH)
	if cw, ch := g.eng.Size(); float64(w) != cw || float64(h) != ch {
		g.eng.Resize(float64(w), float64(h))
		g.relayout()
	}
	return g.ScreenSize()
}

// Queue schedules an action for the next Update. It never blocks; actions
// beyond the queue capacity are dropped.
func (g *Game) Queue(a Action) {
	select {
	case g.actions <- a:
	default:
		g.logger.Warnf("action queue full, dropping %d", a)
	}
}

func (g *Game) Update() error {
	g.drainActions()

	ev := g.ptr.poll()
	switch ev.kind {
	case pointerPress:
		g.press(ev.x, ev.y)
	case pointerMove:
		if g.gesture {
			g.eng.GestureMove(g.local(ev.x, ev.y))
		}
	case pointerRelease:
		g.release(ev.x, ev.y)
	}
	if v := g.eng.EdgesVersion(); v != g.version {
		g.version = v
		g.logger.Debugf("edges changed: %d/%d matched", len(g.eng.Edges()), g.eng.Expected())
	}
	g.reportStateJS()
	return nil
}

func (g *Game) drainActions() {
	for {
		select {
		case a := <-g.actions:
			switch a {
			case ActionReset:
				g.Reset()
			case ActionSubmit:
				g.Submit()
			}
		default:
			return
		}
	}
}

func (g *Game) press(x, y int) {
	if g.resetBtn.Press(x, y) || g.submitBtn.Press(x, y) {
		return
	}
	if !pt(x, y, g.surface) {
		return
	}
	g.gesture = true
	g.eng.GestureStart(g.local(x, y))
	if d := g.eng.Drag(); d.HasActive {
		g.logger.Debugf("drag from %s anchor %d", d.Active.Side, d.Active.ID)
	}
}

func (g *Game) release(x, y int) {
	if g.gesture {
		g.gesture = false
		switch out := g.eng.GestureEnd(g.local(x, y)); out {
		case engine.OutcomeCommitted:
			g.play(audio.Connect)
		case engine.OutcomeConflict:
			g.play(audio.Reject)
		}
		return
	}
	g.resetBtn.Release(x, y)
	g.submitBtn.Release(x, y)
}

func (g *Game) local(x, y int) model.Point {
	return model.Point{X: float64(x - g.surface.Min.X), Y: float64(y - g.surface.Min.Y)}
}

func (g *Game) play(name string) {
	if g.player != nil {
		g.player.Play(name)
	}
}

// Reset starts a new round and clears the result line.
func (g *Game) Reset() {
	g.gesture = false
	g.eng.Reset()
	g.message = ""
	g.result = model.Result{}
	g.logger.Infof("round %s started", g.eng.Round())
}

// Submit grades the current answers and shows the outcome.
func (g *Game) Submit() {
	g.result = g.eng.Grade()
	g.message = g.result.Message()
	if g.result.Status == model.StatusGraded {
		g.play(audio.Graded)
	}
	if g.OnResult != nil {
		g.OnResult(g.result)
	}
}

// Message returns the text of the result line.
func (g *Game) Message() string { return g.message }

func (g *Game) Draw(screen *ebiten.Image) {
	sw, sh := g.ScreenSize()
	drawRect(screen, image.Rect(0, 0, sw, sh), colBackground, true)

	left, right := g.eng.Columns()
	g.drawColumn(screen, left, 0, func(dst *ebiten.Image, it model.Item, r image.Rectangle) {
		textAt(dst, it.Label, r)
	})
	g.drawColumn(screen, right, g.surface.Max.X, func(dst *ebiten.Image, it model.Item, r image.Rectangle) {
		if img, ok := g.images.get(it.Image); ok {
			drawImage(dst, img, r.Inset(4))
			return
		}
		label := it.Label
		if it.Image != "" {
			label = imageLabel(it.Image)
		}
		textAt(dst, label, r)
	})

	g.eng.Render(&surfaceCanvas{dst: screen, bounds: g.surface, bg: colSurface})

	g.resetBtn.Draw(screen)
	g.submitBtn.Draw(screen)

	if g.message != "" {
		y := g.resetBtn.Rect().Max.Y + 8
		col := colMessageWarn
		if g.result.Status == model.StatusGraded {
			col = colMessageOK
		}
		drawRect(screen, image.Rect(8, y+4, 14, y+debugCharH-4), col, true)
		textAt(screen, g.message, image.Rect(0, y, sw, y+debugCharH))
	}
}

func (g *Game) drawColumn(dst *ebiten.Image, items []model.Item, x int, cell func(*ebiten.Image, model.Item, image.Rectangle)) {
	col := image.Rect(x, g.surface.Min.Y, x+columnW, g.surface.Max.Y)
	drawRect(dst, col, colColumnLine, false)
	if len(items) == 0 {
		return
	}
	row := float64(g.surface.Dy()) / float64(len(items))
	for i, it := range items {
		y0 := g.surface.Min.Y + int(float64(i)*row)
		y1 := g.surface.Min.Y + int(float64(i+1)*row)
		cell(dst, it, image.Rect(x, y0, x+columnW, y1))
	}
}
