//go:build !fyne

package ui

// RunFynePanel is a no-op in builds without the fyne tag.
func RunFynePanel(g *Game) {
	g.logger.Warnf("control panel not built in; rebuild with -tags fyne")
}

