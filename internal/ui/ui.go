// Package ui is the Gio front end of the room editor: a canvas bound to an
// editor.Controller plus the catalog, room and log panels around it.
package ui

import (
	"os"

	"gioui.org/app"

	"github.com/OpenTraceLab/OpenTraceRoom/internal/logger"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
)

// Options configures the editor window.
type Options struct {
	Editor *editor.Controller
	Log    *logger.Logger

	// Window size in dp.
	Width, Height int
	// Size in pixels of exported PNG previews.
	PreviewWidth, PreviewHeight int
}

// Run launches the Gio UI and blocks until the window closes.
func Run(opts Options) error {
	go func() {
		w := new(app.Window)
		ui := New(w, opts)
		if err := ui.Run(); err != nil {
			ui.log.Errorf("ui: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
