package palette

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// RenderOptions controls swatch image layout.
type RenderOptions struct {
	// Columns is the number of swatches per row.
	Columns int
	// SwatchSize is the edge length of each swatch in pixels.
	SwatchSize int
}

// DefaultRenderOptions matches the 32-column picker grid.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Columns: 32, SwatchSize: 16}
}

// Image renders the palette as a grid of square swatches. Cells past the
// last colour in the final row are left transparent.
func (p *Palette) Image(opts RenderOptions) (image.Image, error) {
	if opts.Columns < 1 || opts.SwatchSize < 1 {
		return nil, fmt.Errorf("invalid render options: columns=%d swatch=%d", opts.Columns, opts.SwatchSize)
	}
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("cannot render empty palette")
	}

	rows := (len(p.Colors) + opts.Columns - 1) / opts.Columns

	// One pixel per swatch, then scale up.
	small := image.NewNRGBA(image.Rect(0, 0, opts.Columns, rows))
	for i, c := range p.Colors {
		small.Set(i%opts.Columns, i/opts.Columns, c)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, opts.Columns*opts.SwatchSize, rows*opts.SwatchSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)
	return dst, nil
}

// WritePNG renders the palette and encodes it as PNG to w.
func (p *Palette) WritePNG(w io.Writer, opts RenderOptions) error {
	img, err := p.Image(opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode palette image: %w", err)
	}
	return nil
}

// IndexAt maps a pixel position in a rendered palette image back to the
// colour index, or -1 when the position is outside any swatch.
func (p *Palette) IndexAt(x, y int, opts RenderOptions) int {
	if opts.Columns < 1 || opts.SwatchSize < 1 || x < 0 || y < 0 {
		return -1
	}
	col := x / opts.SwatchSize
	row := y / opts.SwatchSize
	if col >= opts.Columns {
		return -1
	}
	idx := row*opts.Columns + col
	if idx >= len(p.Colors) {
		return -1
	}
	return idx
}
