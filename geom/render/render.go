package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-figures/geom/shape"
	"github.com/cwbudde/algo-figures/internal/logging"
)

// ErrNoFigures is returned when there is nothing to draw.
var ErrNoFigures = errors.New("render: no figures")

// fill colours per kind; unknown kinds use the polygon entry.
var palette = map[string][3]float64{
	"triangle": {0.95, 0.55, 0.25},
	"square":   {0.30, 0.60, 0.90},
	"octagon":  {0.45, 0.75, 0.40},
	"polygon":  {0.70, 0.55, 0.85},
}

var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Render draws figs as a contact sheet and writes it to w as PNG.
func Render(w io.Writer, figs []shape.Figure[float64], opts ...Option) error {
	img, err := Draw(figs, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// Draw rasterises figs into an RGBA image.
func Draw(figs []shape.Figure[float64], opts ...Option) (*image.RGBA, error) {
	if len(figs) == 0 {
		return nil, ErrNoFigures
	}
	cfg := ApplyOptions(opts...)
	cols, rows := grid(len(figs))
	width, height := cols*cfg.CellSize, rows*cfg.CellSize

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(cfg.LineWidth)

	for i, f := range figs {
		x0 := float64((i % cols) * cfg.CellSize)
		y0 := float64((i / cols) * cfg.CellSize)
		if err := drawFigure(dc, f, x0, y0, cfg); err != nil {
			return nil, fmt.Errorf("render: figure %d (%s): %w", i, f.Kind(), err)
		}
	}

	src := dc.Image()
	dst := image.NewRGBA(src.Bounds())
	xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)

	if cfg.Labels {
		if err := drawLabels(dst, figs, cols, cfg); err != nil {
			return nil, err
		}
	}
	if logging.Debug() {
		logging.Logger().Debug("render: sheet", "figures", len(figs), "width", width, "height", height)
	}
	return dst, nil
}

// grid returns the smallest near-square layout holding n cells.
func grid(n int) (cols, rows int) {
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

func drawFigure(dc *gg.Context, f shape.Figure[float64], x0, y0 float64, cfg Config) error {
	verts := f.Vertices()
	if len(verts) == 0 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}

	avail := float64(cfg.CellSize - 2*cfg.Margin)
	if cfg.Labels {
		avail -= labelSize(cfg)
	}
	scale := 1.0
	if ext := math.Max(maxX-minX, maxY-minY); ext > 0 {
		scale = avail / ext
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	ox := x0 + float64(cfg.Margin) + avail/2
	oy := y0 + float64(cfg.Margin) + avail/2

	path := func() {
		for i, v := range verts {
			px := ox + (v.X-cx)*scale
			py := oy - (v.Y-cy)*scale
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
	}

	rgb, ok := palette[f.Kind()]
	if !ok {
		rgb = palette["polygon"]
	}
	path()
	dc.SetRGB(rgb[0], rgb[1], rgb[2])
	if err := dc.Fill(); err != nil {
		return err
	}
	path()
	dc.SetRGB(0.1, 0.1, 0.1)
	return dc.Stroke()
}

func labelSize(cfg Config) float64 {
	return math.Max(8, float64(cfg.CellSize)/10)
}

func drawLabels(dst *image.RGBA, figs []shape.Figure[float64], cols int, cfg Config) error {
	parsed, err := regularFont()
	if err != nil {
		return fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    labelSize(cfg),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("render: font face: %w", err)
	}
	defer func() { _ = face.Close() }()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for i, f := range figs {
		x := (i%cols)*cfg.CellSize + cfg.Margin
		y := (i/cols+1)*cfg.CellSize - cfg.Margin/2 - 1
		d.Dot = fixed.P(x, y)
		d.DrawString(fmt.Sprintf("%d %s", i, f.Kind()))
	}
	return nil
}
