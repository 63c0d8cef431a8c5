package sprites

import (
	"image"
	"image/color"

	"github.com/1siamBot/sprite-forge/engine/raster"
)

var missilePalette = struct {
	body, nose, fin, exhaust, stripe, highlight color.NRGBA
}{
	body:      color.NRGBA{196, 200, 210, 255},
	nose:      color.NRGBA{214, 58, 46, 255},
	fin:       color.NRGBA{160, 40, 36, 255},
	exhaust:   color.NRGBA{255, 168, 48, 255},
	stripe:    color.NRGBA{58, 60, 70, 255},
	highlight: color.NRGBA{255, 255, 255, 110},
}

// Missile is the shape table of the missile sprite, nose pointing up.
type Missile struct {
	Body      raster.Polygon
	Nose      raster.Polygon
	LeftFin   raster.Polygon
	RightFin  raster.Polygon
	Exhaust   raster.Ellipse
	Stripes   [2]raster.Rect
	Highlight raster.Ellipse
}

// MissileGeometry lays the missile out on a w x h canvas. Vertical
// positions hang off fixed top and bottom margins.
func MissileGeometry(w, h int) Missile {
	cx, _ := center(w, h)
	top, bottom := 14, h-14

	m := Missile{
		Body: raster.Polygon{
			{cx - 5, top}, {cx + 5, top}, {cx + 6, bottom}, {cx - 6, bottom},
		},
		Nose: raster.Polygon{
			{cx, 4}, {cx + 5, top}, {cx - 5, top},
		},
		RightFin: raster.Polygon{
			{cx + 6, bottom - 12}, {cx + 14, bottom + 4}, {cx + 6, bottom},
		},
		Exhaust: raster.E(cx-4, bottom-2, 8, 8),
		Stripes: [2]raster.Rect{
			raster.R(cx-5, top+8, 10, 3),
			raster.R(cx-6, bottom-10, 12, 3),
		},
		Highlight: raster.E(cx-3, top+4, 2, 14),
	}
	m.LeftFin = raster.Mirror(m.RightFin, cx)
	return m
}

func (m Missile) layers() []raster.Layer {
	p := missilePalette
	return []raster.Layer{
		{Shape: m.Body, Color: p.body},
		{Shape: m.Nose, Color: p.nose},
		{Shape: m.LeftFin, Color: p.fin},
		{Shape: m.RightFin, Color: p.fin},
		{Shape: m.Exhaust, Color: p.exhaust},
		{Shape: m.Stripes[0], Color: p.stripe},
		{Shape: m.Stripes[1], Color: p.stripe},
		{Shape: m.Highlight, Color: p.highlight},
	}
}

func (m Missile) silhouette() []raster.Shape {
	return []raster.Shape{m.Body, m.Nose, m.LeftFin, m.RightFin}
}

// RenderMissile draws the missile sprite.
func RenderMissile(w, h int) *image.RGBA {
	return paint(MissileGeometry(w, h).layers(), w, h)
}

// RenderMissileShadow draws the missile's flat drop shadow.
func RenderMissileShadow(w, h int) *image.RGBA {
	c := raster.NewCanvas(w, h)
	c.Silhouette(shadowBody, MissileGeometry(w, h).silhouette()...)
	return c.Image()
}
