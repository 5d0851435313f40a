package snapshot

import (
	"bytes"
	"image/png"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/matchup/core/engine"
	"github.com/ingyamilmolinar/matchup/core/model"
	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

func sameRowEngine(t *testing.T) *engine.Engine {
	t.Helper()
	items := []model.Item{{ID: 1, Label: "Apple", Image: "img/apple.png"}, {ID: 2, Label: "Banana", Image: "img/banana.png"}}
	return engine.New(game_log.New(io.Discard, game_log.LevelNone), items, items, 125, 235)
}

func brightness(t *testing.T, e *engine.Engine, x, y int) uint32 {
	t.Helper()
	img := Render(e, DefaultOptions())
	r, g, b, _ := img.At(x, y).RGBA()
	return (r + g + b) / 3 >> 8
}

func TestRenderDrawsAnchors(t *testing.T) {
	e := sameRowEngine(t)
	a := e.Anchors()[0]
	img := Render(e, DefaultOptions())

	r, g, b, _ := img.At(int(110+a.X), int(a.Y)).RGBA()
	assert.InDelta(t, 169, r>>8, 2)
	assert.InDelta(t, 169, g>>8, 2)
	assert.InDelta(t, 169, b>>8, 2)

	assert.Equal(t, 110*2+125, img.Bounds().Dx())
	assert.Equal(t, 235+24, img.Bounds().Dy())
}

func TestRenderDrawsCommittedEdge(t *testing.T) {
	e := sameRowEngine(t)
	l, _ := model.FindAnchor(e.Anchors(), 1, model.SideLeft)
	r, _ := model.FindAnchor(e.Anchors(), 1, model.SideRight)

	mid := int(110 + (l.X+r.X)/2)
	before := brightness(t, e, mid, int(l.Y))

	e.GestureStart(l.Point())
	require.Equal(t, engine.OutcomeCommitted, e.GestureEnd(r.Point()))
	after := brightness(t, e, mid, int(l.Y))

	assert.Greater(t, before, uint32(200))
	assert.Less(t, after, uint32(64))
}

func TestSavePNG(t *testing.T) {
	e := sameRowEngine(t)
	path := filepath.Join(t.TempDir(), "board.png")
	opt := DefaultOptions()
	opt.Footer = e.Grade().Message()
	require.NoError(t, SavePNG(path, e, opt))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, e, opt))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 345, img.Bounds().Dx())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "x", truncate("x", 0))
}
