//go:build js && !test

package ui

import "syscall/js"

// initJS exposes round controls to the hosting page.
func (g *Game) initJS() {
	js.Global().Set("matchupReset", js.FuncOf(func(js.Value, []js.Value) any {
		g.Queue(ActionReset)
		return nil
	}))
	js.Global().Set("matchupSubmit", js.FuncOf(func(js.Value, []js.Value) any {
		g.Queue(ActionSubmit)
		return nil
	}))
}

// reportStateJS publishes the edge count and result line for browser tests.
func (g *Game) reportStateJS() {
	js.Global().Set("__edges", js.ValueOf(len(g.eng.Edges())))
	js.Global().Set("__message", js.ValueOf(g.message))
}
