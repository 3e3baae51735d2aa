package continent

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/wanderdeck/wanderdeck/internal/assets"
)

// FallbackColor fills shapes whose name is absent from the color mapping
// and the mapping carries no "default" entry.
const FallbackColor = "#CCCCCC"

// Options configures an extraction run.
type Options struct {
	// OutDir receives one <name>_outline.png per shape group.
	OutDir string

	// Size is the bounding square of each output raster in pixels; the
	// shape is fitted into it preserving aspect ratio.
	Size int

	// Colors maps shape names to hex fill colors. Names without shapes
	// are ignored; shapes without an entry use the "default" entry.
	Colors map[string]string

	// Transparent leaves the background alpha at zero instead of white.
	Transparent bool
}

// Result reports what an extraction run produced. Write failures abort
// the affected file only; the run carries on with the remaining shapes.
type Result struct {
	Written []string
	Failed  map[string]error
}

// Extract rasterizes every shape group of the embedded map into OutDir.
func Extract(opts Options) (*Result, error) {
	shapes, err := LoadMap()
	if err != nil {
		return nil, err
	}
	if err := assets.EnsureDir(opts.OutDir); err != nil {
		return nil, err
	}

	res := &Result{Failed: make(map[string]error)}
	for i := range shapes {
		shape := &shapes[i]
		img := Rasterize(shape, opts.Size, fillColor(opts.Colors, shape.Name), opts.Transparent)

		path := filepath.Join(opts.OutDir, shape.Name+"_outline.png")
		if err := writePNG(img, path); err != nil {
			res.Failed[shape.Name] = err
			continue
		}
		res.Written = append(res.Written, path)
	}
	return res, nil
}

// fillColor resolves the fill for a shape name: mapping entry, then the
// mapping's "default", then the built-in fallback grey.
func fillColor(colors map[string]string, name string) color.NRGBA {
	hex, ok := colors[name]
	if !ok {
		hex, ok = colors["default"]
	}
	if !ok {
		hex = FallbackColor
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(FallbackColor)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Rasterize fills the shape's polygons with fill on a size×size canvas,
// scaled to fit with a small margin.
func Rasterize(shape *Shape, size int, fill color.NRGBA, transparent bool) *image.NRGBA {
	minX, minY, maxX, maxY := shape.Bounds()
	w := maxX - minX
	h := maxY - minY
	if w <= 0 || h <= 0 {
		return imaging.New(size, size, background(transparent))
	}

	// 4% margin on each side keeps the silhouette off the canvas edge.
	margin := float64(size) * 0.04
	avail := float64(size) - 2*margin
	scale := avail / w
	if s := avail / h; s < scale {
		scale = s
	}
	offX := margin + (avail-w*scale)/2
	offY := margin + (avail-h*scale)/2

	ras := vector.NewRasterizer(size, size)
	for _, poly := range shape.Polygons {
		for i, p := range poly {
			x := float32((p.X-minX)*scale + offX)
			y := float32((p.Y-minY)*scale + offY)
			if i == 0 {
				ras.MoveTo(x, y)
			} else {
				ras.LineTo(x, y)
			}
		}
		ras.ClosePath()
	}

	dst := imaging.New(size, size, background(transparent))
	ras.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
	return dst
}

func background(transparent bool) color.NRGBA {
	if transparent {
		return color.NRGBA{}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return &assets.WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &assets.WriteError{Path: path, Err: err}
	}
	return nil
}
