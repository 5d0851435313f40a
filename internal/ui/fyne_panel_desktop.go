//go:build fyne

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ingyamilmolinar/matchup/core/model"
)

// RunFynePanel launches a control window implemented with Fyne. Buttons
// queue actions for the game loop; results come back through OnResult.
func RunFynePanel(g *Game) {
	status := binding.NewString()
	_ = status.Set("Match every item, then submit")

	results := make(chan model.Result, 4)
	g.OnResult = func(r model.Result) {
		select {
		case results <- r:
		default:
		}
	}

	go func() {
		a := app.NewWithID("matchup.controls")
		w := a.NewWindow("Controls")

		go func() {
			for r := range results {
				msg := r.Message()
				fyne.Do(func() {
					_ = status.Set(msg)
					dialog.ShowInformation("Result", msg, w)
				})
			}
		}()

		resetBtn := widget.NewButton("Reset", func() {
			g.Queue(ActionReset)
			_ = status.Set("New round")
		})
		submitBtn := widget.NewButton("Submit", func() { g.Queue(ActionSubmit) })

		w.SetContent(container.NewVBox(resetBtn, submitBtn, widget.NewLabelWithData(status)))
		w.ShowAndRun()
	}()
}
