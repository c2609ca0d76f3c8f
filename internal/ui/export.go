package ui

import (
	"errors"
	"fmt"
	"image"
	"io"

	"gioui.org/x/explorer"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/preview"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

type exportKind int

const (
	exportPlan exportKind = iota
	exportIsometric
)

func (k exportKind) String() string {
	if k == exportPlan {
		return "plan"
	}
	return "3D preview"
}

func (k exportKind) fileName() string {
	if k == exportPlan {
		return "room-plan.png"
	}
	return "room-preview.png"
}

// renderExport writes one PNG of the given kind.
func renderExport(w io.Writer, kind exportKind, f editor.Frame, p scene.Preview, size image.Point) error {
	switch kind {
	case exportPlan:
		return preview.RenderPlan(w, f, size.X, size.Y)
	case exportIsometric:
		return preview.RenderIsometric(w, p, size.X, size.Y)
	}
	return fmt.Errorf("unknown export kind %d", int(kind))
}

// exportPNG snapshots the scene on the UI goroutine, then asks for a
// destination and renders in the background.
func (a *App) exportPNG(kind exportKind) {
	if a.state.Busy() {
		return
	}
	frame := a.ed.Frame()
	snap := a.ed.Preview()
	size := a.previewSize

	a.state.SetBusy(true)
	a.state.SetError(nil)
	a.state.SetStatus("Exporting " + kind.String())
	go func() {
		defer a.state.SetBusy(false)
		defer a.invalidate()

		file, err := a.explorer.CreateFile(kind.fileName())
		if err != nil {
			if errors.Is(err, explorer.ErrUserDecline) {
				a.state.SetStatus("Ready")
				return
			}
			a.exportFailed(kind, err)
			return
		}
		err = renderExport(file, kind, frame, snap, size)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			a.exportFailed(kind, err)
			return
		}
		a.state.SetStatus("Ready")
		a.Logf("[EXPORT] %s written (%dx%d)", kind, size.X, size.Y)
	}()
}

func (a *App) exportFailed(kind exportKind, err error) {
	a.state.SetError(err)
	a.state.SetStatus("Export failed")
	a.Logf("[ERROR] %s export failed: %v", kind, err)
}
