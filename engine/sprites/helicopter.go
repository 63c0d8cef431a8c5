package sprites

import (
	"image"
	"image/color"

	"github.com/1siamBot/sprite-forge/engine/raster"
)

var heliPalette = struct {
	disc, blade, tip, hub, hubCap color.NRGBA
	hull, hullDark, hullLight     color.NRGBA
	accent, glass, frame, glint   color.NRGBA
	sensor, vent, exhaust, glow   color.NRGBA
	skid                          color.NRGBA
}{
	disc:      color.NRGBA{36, 36, 40, 48},
	blade:     color.NRGBA{34, 34, 36, 255},
	tip:       color.NRGBA{226, 204, 64, 255},
	hub:       color.NRGBA{58, 60, 62, 255},
	hubCap:    color.NRGBA{124, 126, 130, 255},
	hull:      color.NRGBA{78, 98, 62, 255},
	hullDark:  color.NRGBA{52, 66, 42, 255},
	hullLight: color.NRGBA{104, 124, 84, 255},
	accent:    color.NRGBA{196, 62, 42, 255},
	glass:     color.NRGBA{88, 158, 198, 220},
	frame:     color.NRGBA{40, 50, 36, 255},
	glint:     color.NRGBA{222, 240, 255, 120},
	sensor:    color.NRGBA{22, 22, 26, 255},
	vent:      color.NRGBA{34, 44, 30, 255},
	exhaust:   color.NRGBA{40, 40, 42, 255},
	glow:      color.NRGBA{232, 122, 42, 255},
	skid:      color.NRGBA{46, 46, 48, 255},
}

// Stroke widths. Each landing-gear member kind gets its own.
const (
	skidWidth      = 3
	strutWidth     = 2
	connectorWidth = 1.5
	bladeWidth     = 4
	tailBladeWidth = 2
	frameWidth     = 1
)

// Helicopter is the shape table of the helicopter sprite seen from above,
// tail toward the left edge and nose toward the right.
type Helicopter struct {
	RotorDisc     raster.Ellipse
	Blades        [2]raster.Line
	BladeTips     [4]raster.Ellipse
	TailBoom      raster.RoundRect
	BoomAccents   [3]raster.Rect
	TailMount     raster.Rect
	TailBlades    [2]raster.Line
	TailHub       raster.Ellipse
	Fuselage      raster.Polygon
	LowerBody     raster.Polygon
	Cockpit       raster.Polygon
	CockpitFrame  [5]raster.Line
	CockpitGlint  raster.Ellipse
	NoseSensor    raster.Ellipse
	EngineHousing raster.Polygon
	Vents         [4]raster.Rect
	Exhaust       [2]raster.Ellipse
	Skids         [2]raster.Line
	Struts        [3]raster.Line
	Connectors    [2]raster.Line
	Hub           [2]raster.Ellipse
}

// HelicopterGeometry lays the helicopter out on a w x h canvas. The tail
// assembly hangs off the left edge, everything else off the centre.
func HelicopterGeometry(w, h int) Helicopter {
	cx, cy := center(w, h)
	const (
		discR  = 54
		bladeR = 38 // per axis; the tips land just inside the disc
		tailX  = 8  // tail rotor centre, from the left edge
	)
	line := func(x0, y0, x1, y1 int, width float64) raster.Line {
		return raster.Line{From: image.Pt(x0, y0), To: image.Pt(x1, y1), Width: width}
	}

	hc := Helicopter{
		RotorDisc: raster.E(cx-discR, cy-discR, 2*discR, 2*discR),
		Blades: [2]raster.Line{
			line(cx-bladeR, cy-bladeR, cx+bladeR, cy+bladeR, bladeWidth),
			line(cx-bladeR, cy+bladeR, cx+bladeR, cy-bladeR, bladeWidth),
		},
		TailBoom: raster.RoundRect{Box: image.Rect(tailX-2, cy-4, cx-8, cy+4), Radius: 4},
		BoomAccents: [3]raster.Rect{
			raster.R(18, cy-3, 3, 6),
			raster.R(28, cy-3, 3, 6),
			raster.R(38, cy-3, 3, 6),
		},
		TailMount: raster.R(tailX-2, cy-7, 5, 14),
		TailBlades: [2]raster.Line{
			line(tailX-7, cy-7, tailX+7, cy+7, tailBladeWidth),
			line(tailX-7, cy+7, tailX+7, cy-7, tailBladeWidth),
		},
		TailHub: raster.E(tailX-3, cy-3, 6, 6),
		Fuselage: raster.Polygon{
			{cx - 16, cy - 6}, {cx - 4, cy - 14}, {cx + 16, cy - 17}, {cx + 32, cy - 14},
			{cx + 42, cy - 8}, {cx + 46, cy},
			{cx + 42, cy + 8}, {cx + 32, cy + 14}, {cx + 16, cy + 17}, {cx - 4, cy + 14},
			{cx - 16, cy + 6},
		},
		LowerBody: raster.Polygon{
			{cx - 8, cy + 6}, {cx + 32, cy + 6}, {cx + 38, cy + 12}, {cx + 16, cy + 16}, {cx - 4, cy + 13},
		},
		Cockpit: raster.Polygon{
			{cx + 26, cy - 11}, {cx + 36, cy - 10}, {cx + 43, cy - 5}, {cx + 45, cy},
			{cx + 43, cy + 5}, {cx + 36, cy + 10}, {cx + 26, cy + 11}, {cx + 24, cy},
		},
		CockpitFrame: [5]raster.Line{
			line(cx+30, cy-10, cx+30, cy+10, frameWidth),
			line(cx+37, cy-9, cx+37, cy+9, frameWidth),
			line(cx+25, cy, cx+44, cy, frameWidth),
			line(cx+37, cy-9, cx+43, cy-4, frameWidth),
			line(cx+37, cy+9, cx+43, cy+4, frameWidth),
		},
		CockpitGlint: raster.E(cx+31, cy-8, 8, 5),
		NoseSensor:   raster.E(cx+44, cy-3, 6, 6),
		EngineHousing: raster.Polygon{
			{cx - 12, cy - 8}, {cx + 14, cy - 8}, {cx + 20, cy - 4},
			{cx + 20, cy + 4}, {cx + 14, cy + 8}, {cx - 12, cy + 8},
		},
		Vents: [4]raster.Rect{
			raster.R(cx+9, cy-6, 2, 4),
			raster.R(cx+13, cy-6, 2, 4),
			raster.R(cx+9, cy+2, 2, 4),
			raster.R(cx+13, cy+2, 2, 4),
		},
		Exhaust: [2]raster.Ellipse{
			raster.E(cx-18, cy-5, 8, 10),
			raster.E(cx-16, cy-3, 4, 6),
		},
		Skids: [2]raster.Line{
			line(cx-14, cy-20, cx+34, cy-20, skidWidth),
			line(cx-14, cy+20, cx+34, cy+20, skidWidth),
		},
		Struts: [3]raster.Line{
			line(cx-8, cy-20, cx-8, cy+20, strutWidth),
			line(cx+6, cy-20, cx+6, cy+20, strutWidth),
			line(cx+20, cy-20, cx+20, cy+20, strutWidth),
		},
		Connectors: [2]raster.Line{
			line(cx+34, cy-20, cx+38, cy-24, connectorWidth),
			line(cx+34, cy+20, cx+38, cy+24, connectorWidth),
		},
		Hub: [2]raster.Ellipse{
			raster.E(cx-6, cy-6, 12, 12),
			raster.E(cx-3, cy-3, 6, 6),
		},
	}
	for i, end := range []image.Point{
		{cx - bladeR, cy - bladeR}, {cx + bladeR, cy + bladeR},
		{cx - bladeR, cy + bladeR}, {cx + bladeR, cy - bladeR},
	} {
		hc.BladeTips[i] = raster.E(end.X-3, end.Y-3, 6, 6)
	}
	return hc
}

func (hc Helicopter) layers() []raster.Layer {
	c := heliPalette
	var ls []raster.Layer
	add := func(col color.Color, shapes ...raster.Shape) {
		for _, s := range shapes {
			ls = append(ls, raster.Layer{Shape: s, Color: col})
		}
	}

	add(c.disc, hc.RotorDisc)
	add(c.blade, hc.Blades[0], hc.Blades[1])
	add(c.tip, hc.BladeTips[0], hc.BladeTips[1], hc.BladeTips[2], hc.BladeTips[3])

	add(c.hullDark, hc.TailBoom)
	add(c.accent, hc.BoomAccents[0], hc.BoomAccents[1], hc.BoomAccents[2])
	add(c.hullDark, hc.TailMount)
	add(c.blade, hc.TailBlades[0], hc.TailBlades[1])
	add(c.hub, hc.TailHub)

	add(c.hull, hc.Fuselage)
	add(c.hullDark, hc.LowerBody)
	add(c.glass, hc.Cockpit)
	add(c.frame, hc.CockpitFrame[0], hc.CockpitFrame[1], hc.CockpitFrame[2], hc.CockpitFrame[3], hc.CockpitFrame[4])
	add(c.glint, hc.CockpitGlint)
	add(c.sensor, hc.NoseSensor)

	add(c.hullLight, hc.EngineHousing)
	add(c.vent, hc.Vents[0], hc.Vents[1], hc.Vents[2], hc.Vents[3])
	add(c.exhaust, hc.Exhaust[0])
	add(c.glow, hc.Exhaust[1])

	add(c.skid, hc.Skids[0], hc.Skids[1])
	add(c.skid, hc.Struts[0], hc.Struts[1], hc.Struts[2])
	add(c.skid, hc.Connectors[0], hc.Connectors[1])

	add(c.hub, hc.Hub[0])
	add(c.hubCap, hc.Hub[1])
	return ls
}

func (hc Helicopter) silhouette() []raster.Shape {
	return []raster.Shape{hc.TailBoom, hc.Fuselage, hc.LowerBody, hc.Cockpit, hc.EngineHousing}
}

// RenderHelicopter draws the helicopter sprite.
func RenderHelicopter(w, h int) *image.RGBA {
	return paint(HelicopterGeometry(w, h).layers(), w, h)
}

// RenderHelicopterShadow draws the helicopter's drop shadow: a faint
// rotor-disc ellipse under a darker body silhouette.
func RenderHelicopterShadow(w, h int) *image.RGBA {
	hc := HelicopterGeometry(w, h)
	c := raster.NewCanvas(w, h)
	c.Silhouette(shadowRotor, hc.RotorDisc)
	c.Silhouette(shadowBody, hc.silhouette()...)
	return c.Image()
}
