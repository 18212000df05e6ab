// Package ui implements the Gio-based interactive editor: a control
// panel driving the parameter store and a live viewport rendering the
// assembled scene. The event loop is the single writer of the store;
// every frame reads the latest immutable snapshot.
package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/platecad/platecad/pkg/plate"
)

// Run launches the Gio UI and blocks until the window closes.
func Run(store *plate.Store) error {
	if store == nil {
		store = plate.NewStore()
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("platecad"), app.Size(unit.Dp(1100), unit.Dp(640)))
		editor := New(w, store)
		if err := editor.Run(); err != nil {
			log.Printf("ui: %v", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
