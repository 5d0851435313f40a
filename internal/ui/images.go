package ui

import (
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

// loadImage reads an image from disk. Overridden in tests.
var loadImage = func(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// imageCache loads right-column pictures once per path. Remote references
// and files that fail to load are remembered as missing so the column falls
// back to the file's base name.
type imageCache struct {
	logger *game_log.Logger
	images map[string]*ebiten.Image
}

func newImageCache(logger *game_log.Logger) *imageCache {
	return &imageCache{logger: logger, images: map[string]*ebiten.Image{}}
}

func (c *imageCache) get(path string) (*ebiten.Image, bool) {
	if img, ok := c.images[path]; ok {
		return img, img != nil
	}
	var img *ebiten.Image
	switch {
	case path == "":
	case strings.Contains(path, "://"):
		c.logger.Debugf("image %s is remote, showing its name", path)
	default:
		var err error
		img, err = loadImage(path)
		if err != nil {
			c.logger.Warnf("load image %s: %v", path, err)
			img = nil
		}
	}
	c.images[path] = img
	return img, img != nil
}

// imageLabel is the text shown when an item's picture is unavailable.
func imageLabel(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return filepath.Base(path)
}
