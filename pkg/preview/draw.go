// Package preview renders layouts to PNG: a top-down plan and a simple
// isometric room view with one box per item.
package preview

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
)

const padding = 50.0

// ErrBadSize is returned for non-positive image dimensions.
var ErrBadSize = errors.New("preview: image size must be positive")

var (
	black     = color.NRGBA{A: 0xff}
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridColor = color.NRGBA{R: 200, G: 200, B: 200, A: 0xff}
	selColor  = color.NRGBA{B: 0xff, A: 0xff}
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
)

// face returns the label font or nil when it cannot be loaded.
func face(size float64) text.Face {
	fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err == nil {
			fontSource = src
		}
	})
	if fontSource == nil {
		return nil
	}
	return fontSource.Face(size)
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	return nil
}

// polygon traces pts as the current path.
func polygon(dc *gg.Context, pts []geom.Vec, closed bool) {
	dc.ClearPath()
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	if closed {
		dc.ClosePath()
	}
}

// fillStroke fills and outlines a closed polygon.
func fillStroke(dc *gg.Context, pts []geom.Vec, fill, stroke color.Color, width float64) error {
	polygon(dc, pts, true)
	dc.SetColor(fill)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetColor(stroke)
	dc.SetLineWidth(width)
	return dc.Stroke()
}

func line(dc *gg.Context, a, b geom.Vec) error {
	dc.ClearPath()
	dc.MoveTo(a.X, a.Y)
	dc.LineTo(b.X, b.Y)
	return dc.Stroke()
}

// shade scales the RGB channels of c by f, clamped to 255.
func shade(c color.NRGBA, f float64) color.NRGBA {
	ch := func(v uint8) uint8 {
		x := float64(v) * f
		if x > 255 {
			x = 255
		}
		return uint8(x)
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
