// Package graphics rasterizes SVG documents into square images.
package graphics

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// DefaultRenderer is the renderer name used when none is chosen.
const DefaultRenderer = "canvas"

// Renderer rasterizes an SVG document into a size x size image.
// Documents that are not square are scaled to fit and centered on a
// transparent background.
type Renderer interface {
	Render(svg []byte, size int) (image.Image, error)
}

var renderers = map[string]Renderer{
	"canvas": CanvasRenderer{},
	"oksvg":  OksvgRenderer{},
}

// Lookup returns the renderer registered under name.
func Lookup(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer '%s', must be one of %v", name, RendererNames())
	}
	return r, nil
}

// RendererNames returns the registered renderer names, sorted.
func RendererNames() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CanvasRenderer renders with tdewolff/canvas.
type CanvasRenderer struct{}

// Render draws svg so that its longer side spans size pixels.
func (CanvasRenderer) Render(svg []byte, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be greater than 0")
	}
	if _, err := ParseDocument(svg); err != nil {
		return nil, err
	}
	c, err := canvas.ParseSVG(bytes.NewReader(svg))
	if err != nil {
		return nil, err
	}
	if c.W <= 0 || c.H <= 0 {
		return nil, fmt.Errorf("svg document has no size")
	}

	// longer side of the document maps to size pixels
	dpmm := float64(size) / max(c.W, c.H)
	img := rasterizer.Draw(c, canvas.DPMM(dpmm), canvas.DefaultColorSpace)

	return fitSquare(img, size), nil
}

// OksvgRenderer renders with srwiley/oksvg and srwiley/rasterx.
type OksvgRenderer struct{}

// Render draws svg aspect-fit and centered in a size x size image.
func (OksvgRenderer) Render(svg []byte, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be greater than 0")
	}
	doc, err := ParseDocument(svg)
	if err != nil {
		return nil, err
	}
	// oksvg has no viewport for percentages; size from the viewBox instead
	if doc.RelativeSize() {
		if !doc.HasViewBox {
			return nil, fmt.Errorf("svg with percentage width or height needs a viewBox")
		}
		svg = stripRootSize(svg)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, err
	}
	if doc.HasViewBox {
		icon.ViewBox.X, icon.ViewBox.Y = doc.ViewBox.X, doc.ViewBox.Y
		icon.ViewBox.W, icon.ViewBox.H = doc.ViewBox.W, doc.ViewBox.H
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	sizeFloat := float64(size)
	scale := sizeFloat / max(w, h)
	outW := w * scale
	outH := h * scale
	icon.SetTarget((sizeFloat-outW)/2, (sizeFloat-outH)/2, outW, outH)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// fitSquare pads img to size x size, cropping first if rounding made it larger.
func fitSquare(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	if b.Dx() > size || b.Dy() > size {
		img = imaging.CropCenter(img, min(b.Dx(), size), min(b.Dy(), size))
	}
	return imaging.PasteCenter(imaging.New(size, size, color.Transparent), img)
}
