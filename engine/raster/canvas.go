// Package raster draws anti-aliased vector shapes onto transparent RGBA
// canvases.
package raster

import (
	"image"
	"image/color"
)

// Layer is one shape and the colour it is filled (or stroked) with.
type Layer struct {
	Shape Shape
	Color color.Color
}

// Canvas is a transparent RGBA image that shapes are composited onto with
// source-over blending, back to front.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a fully transparent canvas of w x h pixels.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Fill composites a single shape.
func (c *Canvas) Fill(s Shape, col color.Color) {
	s.rasterize(c.img, col)
}

// Draw composites layers in order; later layers paint over earlier ones.
func (c *Canvas) Draw(layers ...Layer) {
	for _, l := range layers {
		c.Fill(l.Shape, l.Color)
	}
}

// Silhouette paints the union of shapes in a single flat colour. Coverage
// is accumulated into a mask first so overlapping shapes never stack
// alpha, and fully covered pixels are replaced by col rather than blended
// with what lies beneath.
func (c *Canvas) Silhouette(col color.Color, shapes ...Shape) {
	b := c.img.Bounds()
	mask := image.NewAlpha(b)
	for _, s := range shapes {
		s.rasterize(mask, color.Opaque)
	}
	paint := color.RGBAModel.Convert(col).(color.RGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := mask.AlphaAt(x, y).A
			if m == 0 {
				continue
			}
			c.img.SetRGBA(x, y, mix(c.img.RGBAAt(x, y), paint, m))
		}
	}
}

// mix interpolates premultiplied colours: m=0 keeps dst, m=255 yields src.
func mix(dst, src color.RGBA, m uint8) color.RGBA {
	lerp := func(d, s uint8) uint8 {
		return uint8((int(d)*(255-int(m)) + int(s)*int(m) + 127) / 255)
	}
	return color.RGBA{lerp(dst.R, src.R), lerp(dst.G, src.G), lerp(dst.B, src.B), lerp(dst.A, src.A)}
}

// UnionBounds returns the smallest rectangle containing every shape.
func UnionBounds(shapes ...Shape) image.Rectangle {
	var r image.Rectangle
	for _, s := range shapes {
		r = r.Union(s.Bounds())
	}
	return r
}

// Shapes extracts the shapes of a layer list.
func Shapes(layers []Layer) []Shape {
	out := make([]Shape, len(layers))
	for i, l := range layers {
		out[i] = l.Shape
	}
	return out
}
