package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Shape is anything that can be rasterized onto a canvas.
type Shape interface {
	// Bounds returns the pixel rectangle the shape may touch.
	Bounds() image.Rectangle
	rasterize(dst draw.Image, c color.Color)
}

// Polygon is an implicitly closed list of vertices.
type Polygon []image.Point

func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	return r
}

func (p Polygon) rasterize(dst draw.Image, c color.Color) {
	if len(p) < 3 {
		return
	}
	z := newRasterizer(dst)
	z.MoveTo(float32(p[0].X), float32(p[0].Y))
	for _, pt := range p[1:] {
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	Box image.Rectangle
}

// R builds a Rect from x, y, width and height.
func R(x, y, w, h int) Rect { return Rect{Box: image.Rect(x, y, x+w, y+h)} }

func (r Rect) Bounds() image.Rectangle { return r.Box }

func (r Rect) rasterize(dst draw.Image, c color.Color) {
	b := r.Box.Canon()
	z := newRasterizer(dst)
	z.MoveTo(float32(b.Min.X), float32(b.Min.Y))
	z.LineTo(float32(b.Max.X), float32(b.Min.Y))
	z.LineTo(float32(b.Max.X), float32(b.Max.Y))
	z.LineTo(float32(b.Min.X), float32(b.Max.Y))
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// Ellipse is the ellipse inscribed in Box.
type Ellipse struct {
	Box image.Rectangle
}

// E builds an Ellipse from its bounding box x, y, width and height.
func E(x, y, w, h int) Ellipse { return Ellipse{Box: image.Rect(x, y, x+w, y+h)} }

func (e Ellipse) Bounds() image.Rectangle { return e.Box }

func (e Ellipse) rasterize(dst draw.Image, c color.Color) {
	b := e.Box.Canon()
	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	f := newFiller(dst, b)
	if f == nil {
		return
	}
	rasterx.AddEllipse(cx, cy, float64(b.Dx())/2, float64(b.Dy())/2, 0, f)
	f.SetColor(c)
	f.Draw()
}

// RoundRect is a rectangle with circular corners of the given radius.
type RoundRect struct {
	Box    image.Rectangle
	Radius float64
}

func (r RoundRect) Bounds() image.Rectangle { return r.Box }

func (r RoundRect) rasterize(dst draw.Image, c color.Color) {
	b := r.Box.Canon()
	rad := math.Min(r.Radius, float64(min(b.Dx(), b.Dy()))/2)
	f := newFiller(dst, b)
	if f == nil {
		return
	}
	rasterx.AddRoundRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y),
		rad, rad, 0, rasterx.RoundGap, f)
	f.SetColor(c)
	f.Draw()
}

// Line is a straight stroke with round caps.
type Line struct {
	From, To image.Point
	Width    float64
}

func (l Line) Bounds() image.Rectangle {
	pad := int(math.Ceil(l.Width / 2))
	return image.Rectangle{Min: l.From, Max: l.To}.Canon().Inset(-pad)
}

func (l Line) rasterize(dst draw.Image, c color.Color) {
	sc := newScanner(dst, l.Bounds())
	if sc == nil {
		return
	}
	b := dst.Bounds()
	s := rasterx.NewStroker(b.Dx(), b.Dy(), sc)
	s.SetStroke(fixed.Int26_6(l.Width*64), fixed.I(4), rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	s.Start(toFixed(l.From))
	s.Line(toFixed(l.To))
	s.Stop(false)
	s.SetColor(c)
	s.Draw()
}

func newRasterizer(dst draw.Image) *vector.Rasterizer {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

// newScanner returns a scanner that paints only inside clip, or nil when
// clip misses dst. rasterx arcs overshoot their box by a fraction of a pixel.
func newScanner(dst draw.Image, clip image.Rectangle) *rasterx.ScannerGV {
	b := dst.Bounds()
	clip = clip.Intersect(b)
	if clip.Empty() {
		return nil
	}
	sc := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	sc.SetClip(clip)
	return sc
}

func newFiller(dst draw.Image, clip image.Rectangle) *rasterx.Filler {
	sc := newScanner(dst, clip)
	if sc == nil {
		return nil
	}
	b := dst.Bounds()
	return rasterx.NewFiller(b.Dx(), b.Dy(), sc)
}

func toFixed(p image.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}

// Mirror reflects points horizontally about the vertical line x = centerX.
func Mirror(pts Polygon, centerX int) Polygon {
	out := make(Polygon, len(pts))
	for i, p := range pts {
		out[i] = image.Pt(2*centerX-p.X, p.Y)
	}
	return out
}

// MirrorBox reflects a rectangle horizontally about x = centerX.
func MirrorBox(r image.Rectangle, centerX int) image.Rectangle {
	return image.Rect(2*centerX-r.Max.X, r.Min.Y, 2*centerX-r.Min.X, r.Max.Y)
}
