package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/preview"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/script"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

const dbTimeout = 10 * time.Second

// loadCatalog picks the configured catalog source: the s-expression file,
// then the SQLite store, then the built-in catalog.
func loadCatalog() (*catalog.Catalog, error) {
	switch {
	case cfg.Catalog.File != "":
		log.Debugf("catalog from file %s", cfg.Catalog.File)
		return catalog.LoadFile(cfg.Catalog.File)
	case cfg.Catalog.DB != "":
		log.Debugf("catalog from database %s", cfg.Catalog.DB)
		return loadCatalogDB(cfg.Catalog.DB)
	}
	return catalog.Default(), nil
}

func loadCatalogDB(path string) (*catalog.Catalog, error) {
	db, err := catalog.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	return catalog.NewSQLStore(db).Load(ctx)
}

// newEditor builds a controller from the loaded config.
func newEditor() (*editor.Controller, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	room, err := cfg.SceneRoom()
	if err != nil {
		return nil, fmt.Errorf("room config: %w", err)
	}
	return editor.New(cat, room,
		editor.WithLogger(log.Zap()),
		editor.WithHistoryLimit(cfg.Editor.HistoryLimit),
		editor.WithGrid(cfg.Editor.GridSize, cfg.Editor.Snap),
	), nil
}

// replayFile parses a gesture script and runs it against ed.
func replayFile(ed *editor.Controller, path string) (*script.Runner, error) {
	p, err := script.NewParser()
	if err != nil {
		return nil, err
	}
	s, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	r := script.NewRunner(ed, log.Zap())
	if err := r.Run(s); err != nil {
		return r, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func printScene(w io.Writer, ed *editor.Controller) {
	sc := ed.Scene()
	room := sc.Room
	abbr := room.Unit.Abbrev()
	fmt.Fprintf(w, "Room: %.2f x %.2f x %.2f %s (walls %s, floor %s, ceiling %s)\n",
		room.Width, room.Length, room.Height, abbr,
		scene.Hex(room.Walls), scene.Hex(room.Floor), scene.Hex(room.Ceiling))
	fmt.Fprintf(w, "Items: %d\n", sc.Len())
	if sc.Len() > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  #\tName\tPosition\tSize (cm)\tRotation\tColor\t")
		for i, it := range sc.Items() {
			mark := ""
			if it.ID == sc.SelectedID() {
				mark = "*"
			}
			fmt.Fprintf(tw, "  %d%s\t%s\t(%.0f, %.0f)\t%.0fx%.0f\t%.1f°\t%s\t\n",
				i, mark, it.Name, it.Pos.X, it.Pos.Y, it.Size.W, it.Size.H, it.Rotation, scene.Hex(it.Color))
		}
		tw.Flush()
	}
	if info := ed.InfoText(); info != "" {
		fmt.Fprintln(w, info)
	}
	undo, redo := ed.History().Depth()
	fmt.Fprintf(w, "History: %d undo, %d redo\n", undo, redo)
}

func writePlan(path string, ed *editor.Controller) error {
	return writePNG(path, func(w io.Writer) error {
		return preview.RenderPlan(w, ed.Frame(), cfg.Preview.Width, cfg.Preview.Height)
	})
}

func writeIsometric(path string, ed *editor.Controller) error {
	return writePNG(path, func(w io.Writer) error {
		return preview.RenderIsometric(w, ed.Preview(), cfg.Preview.Width, cfg.Preview.Height)
	})
}

func writePNG(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Infof("wrote %s", path)
	return nil
}
