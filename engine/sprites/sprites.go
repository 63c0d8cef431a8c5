// Package sprites holds the procedural aircraft sprites: their geometry
// tables, palettes and the rendering routine for each one.
package sprites

import (
	"image"
	"image/color"

	"github.com/1siamBot/sprite-forge/engine/raster"
)

// OutputDir is where the generator writes the sprite PNGs.
const OutputDir = "sprites"

const (
	// ShadowAlpha is the alpha of every fully covered shadow body pixel.
	ShadowAlpha = 80
	// RotorShadowAlpha is the alpha of the helicopter's rotor-disc shadow.
	RotorShadowAlpha = 40
)

var (
	shadowBody  = color.NRGBA{0, 0, 0, ShadowAlpha}
	shadowRotor = color.NRGBA{0, 0, 0, RotorShadowAlpha}
)

// RenderFunc draws a sprite onto a fresh w x h canvas.
type RenderFunc func(w, h int) *image.RGBA

// Spec names one sprite file and how to draw it.
type Spec struct {
	Name   string
	Width  int
	Height int
	Render RenderFunc
	// Shadow marks the drop-shadow variants.
	Shadow bool
}

// Specs is the fixed set of sprites, in generation order.
var Specs = []Spec{
	{Name: "missile", Width: 64, Height: 64, Render: RenderMissile},
	{Name: "plane", Width: 128, Height: 128, Render: RenderPlane},
	{Name: "helicopter", Width: 128, Height: 128, Render: RenderHelicopter},
	{Name: "missile_shadow", Width: 64, Height: 64, Render: RenderMissileShadow, Shadow: true},
	{Name: "plane_shadow", Width: 128, Height: 128, Render: RenderPlaneShadow, Shadow: true},
	{Name: "helicopter_shadow", Width: 128, Height: 128, Render: RenderHelicopterShadow, Shadow: true},
}

// FileName returns the PNG file name for the spec.
func (s Spec) FileName() string { return s.Name + ".png" }

// Image renders the spec at its fixed size.
func (s Spec) Image() *image.RGBA { return s.Render(s.Width, s.Height) }

func paint(layers []raster.Layer, w, h int) *image.RGBA {
	c := raster.NewCanvas(w, h)
	c.Draw(layers...)
	return c.Image()
}

func center(w, h int) (int, int) { return w / 2, h / 2 }
