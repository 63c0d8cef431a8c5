package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{200, 10, 10, 0xff}

func TestNewCanvasIsTransparent(t *testing.T) {
	c := NewCanvas(20, 10)
	require.Equal(t, image.Rect(0, 0, 20, 10), c.Bounds())
	for _, v := range c.Image().Pix {
		require.Zero(t, v)
	}
}

func TestPolygonFillsInterior(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Fill(Polygon{{2, 2}, {12, 2}, {12, 12}, {2, 12}}, red)

	img := c.Image()
	assert.Equal(t, color.RGBA{200, 10, 10, 255}, img.RGBAAt(7, 7))
	assert.Zero(t, img.RGBAAt(0, 0).A)
	assert.Zero(t, img.RGBAAt(14, 14).A)
}

func TestDegeneratePolygonDrawsNothing(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Fill(Polygon{{1, 1}, {6, 6}}, red)
	for _, v := range c.Image().Pix {
		require.Zero(t, v)
	}
}

func TestRectFill(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Fill(R(4, 5, 6, 3), red)

	img := c.Image()
	assert.Equal(t, color.RGBA{200, 10, 10, 255}, img.RGBAAt(4, 5))
	assert.Equal(t, color.RGBA{200, 10, 10, 255}, img.RGBAAt(9, 7))
	assert.Zero(t, img.RGBAAt(10, 7).A)
	assert.Zero(t, img.RGBAAt(4, 8).A)
}

func TestEllipseStaysInsideBox(t *testing.T) {
	c := NewCanvas(16, 16)
	e := E(4, 4, 8, 8)
	c.Fill(e, red)

	img := c.Image()
	assert.Equal(t, color.RGBA{200, 10, 10, 255}, img.RGBAAt(7, 7))
	// the box corner lies outside the inscribed circle
	assert.Zero(t, img.RGBAAt(4, 4).A)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if !image.Pt(x, y).In(e.Bounds()) {
				require.Zerof(t, img.RGBAAt(x, y).A, "pixel %d,%d", x, y)
			}
		}
	}
}

func TestRoundRectCorners(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Fill(RoundRect{Box: image.Rect(2, 2, 14, 14), Radius: 4}, red)

	img := c.Image()
	assert.Equal(t, color.RGBA{200, 10, 10, 255}, img.RGBAAt(8, 8))
	assert.Zero(t, img.RGBAAt(2, 2).A)
	assert.Zero(t, img.RGBAAt(13, 13).A)
}

func TestLineStroke(t *testing.T) {
	c := NewCanvas(16, 16)
	l := Line{From: image.Pt(2, 8), To: image.Pt(14, 8), Width: 4}
	c.Fill(l, red)

	img := c.Image()
	assert.Equal(t, color.RGBA{200, 10, 10, 255}, img.RGBAAt(8, 8))
	assert.Zero(t, img.RGBAAt(8, 2).A)
	assert.Zero(t, img.RGBAAt(8, 13).A)
	assert.Equal(t, image.Rect(0, 6, 16, 10), l.Bounds())
}

func countOutside(img *image.RGBA, r image.Rectangle) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !image.Pt(x, y).In(r) && img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestCurvedShapesStayInsideBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"small ellipse", E(3, 5, 6, 8)},
		{"wide ellipse", E(10, 10, 108, 108)},
		{"thin ellipse", E(57, 106, 6, 8)},
		{"odd ellipse", E(7, 20, 13, 5)},
		{"round rect", RoundRect{Box: image.Rect(9, 30, 70, 41), Radius: 5}},
		{"pill", RoundRect{Box: image.Rect(20, 60, 100, 66), Radius: 10}},
		{"diagonal line", Line{From: image.Pt(30, 90), To: image.Pt(90, 110), Width: 1.5}},
		{"thick line", Line{From: image.Pt(64, 26), To: image.Pt(64, 102), Width: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(128, 128)
			c.Fill(tt.shape, red)
			assert.Zero(t, countOutside(c.Image(), tt.shape.Bounds()))
		})
	}
}

func TestShapeOffCanvasDrawsNothing(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Fill(E(20, 20, 8, 8), red)
	c.Fill(RoundRect{Box: image.Rect(-10, -10, -2, -2), Radius: 2}, red)
	assert.Zero(t, countOutside(c.Image(), image.Rectangle{}))
}

func TestDrawIsSourceOver(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Draw(
		Layer{R(0, 0, 8, 8), color.NRGBA{255, 0, 0, 255}},
		Layer{R(0, 0, 8, 8), color.NRGBA{255, 255, 255, 128}},
	)

	px := c.Image().RGBAAt(3, 3)
	assert.EqualValues(t, 255, px.A)
	assert.EqualValues(t, 255, px.R)
	assert.InDelta(t, 128, int(px.G), 2)
	assert.InDelta(t, 128, int(px.B), 2)
}

func TestSilhouetteDoesNotStackAlpha(t *testing.T) {
	c := NewCanvas(16, 16)
	shadow := color.NRGBA{0, 0, 0, 80}
	c.Silhouette(shadow, R(0, 0, 10, 10), R(5, 5, 10, 10))

	img := c.Image()
	assert.Equal(t, color.RGBA{0, 0, 0, 80}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 80}, img.RGBAAt(7, 7))
	assert.Equal(t, color.RGBA{0, 0, 0, 80}, img.RGBAAt(12, 12))
	assert.Zero(t, img.RGBAAt(14, 2).A)
}

func TestSilhouetteReplacesWhatIsBeneath(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Silhouette(color.NRGBA{0, 0, 0, 40}, R(0, 0, 16, 16))
	c.Silhouette(color.NRGBA{0, 0, 0, 80}, R(4, 4, 8, 8))

	img := c.Image()
	assert.Equal(t, color.RGBA{0, 0, 0, 40}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 80}, img.RGBAAt(6, 6))
}

func TestMix(t *testing.T) {
	d := color.RGBA{10, 20, 30, 40}
	s := color.RGBA{0, 0, 0, 80}
	assert.Equal(t, d, mix(d, s, 0))
	assert.Equal(t, s, mix(d, s, 255))
}

func TestMirror(t *testing.T) {
	right := Polygon{{72, 50}, {118, 80}, {118, 88}, {72, 82}}
	left := Mirror(right, 64)
	assert.Equal(t, Polygon{{56, 50}, {10, 80}, {10, 88}, {56, 82}}, left)
	assert.Equal(t, right, Mirror(left, 64))

	box := image.Rect(94, 72, 102, 78)
	assert.Equal(t, image.Rect(26, 72, 34, 78), MirrorBox(box, 64))
}

func TestUnionBounds(t *testing.T) {
	r := UnionBounds(
		Polygon{{3, 4}, {9, 1}, {6, 8}},
		E(10, 10, 4, 2),
	)
	assert.Equal(t, image.Rect(3, 1, 14, 12), r)

	layers := []Layer{{Shape: R(0, 0, 1, 1)}, {Shape: E(1, 1, 2, 2)}}
	assert.Len(t, Shapes(layers), 2)
}
