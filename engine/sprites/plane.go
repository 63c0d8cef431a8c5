package sprites

import (
	"image"
	"image/color"

	"github.com/1siamBot/sprite-forge/engine/raster"
)

var planePalette = struct {
	hullDark, hull, hullLight color.NRGBA
	glass, glint              color.NRGBA
	nose                      color.NRGBA
	housing, glow, intake     color.NRGBA
	panel, marking            color.NRGBA
}{
	hullDark:  color.NRGBA{72, 82, 96, 255},
	hull:      color.NRGBA{112, 126, 142, 255},
	hullLight: color.NRGBA{150, 164, 180, 255},
	glass:     color.NRGBA{58, 138, 198, 255},
	glint:     color.NRGBA{205, 232, 255, 120},
	nose:      color.NRGBA{60, 64, 74, 255},
	housing:   color.NRGBA{48, 48, 54, 255},
	glow:      color.NRGBA{255, 140, 40, 255},
	intake:    color.NRGBA{28, 30, 34, 255},
	panel:     color.NRGBA{84, 94, 108, 255},
	marking:   color.NRGBA{196, 48, 48, 255},
}

// Plane is the shape table of the jet sprite, nose pointing up. Paired
// parts are exact mirror images about the vertical centre line.
type Plane struct {
	Fuselage        raster.Polygon
	Canopy          raster.Polygon
	CanopyGlint     raster.Ellipse
	Nose            raster.Polygon
	LeftWing        raster.Polygon
	RightWing       raster.Polygon
	LeftWingtip     raster.Polygon
	RightWingtip    raster.Polygon
	LeftStabilizer  raster.Polygon
	RightStabilizer raster.Polygon
	// Exhausts are housing/glow pairs, left then right.
	Exhausts     [2][2]raster.Ellipse
	Intakes      [2]raster.Ellipse
	PanelLines   [3]raster.Line
	WingMarkings [2]raster.Rect
}

// PlaneGeometry lays the plane out on a w x h canvas.
func PlaneGeometry(w, h int) Plane {
	cx, cy := center(w, h)

	p := Plane{
		Fuselage: raster.Polygon{
			{cx, cy - 46},
			{cx + 4, cy - 40}, {cx + 7, cy - 28}, {cx + 8, cy - 2}, {cx + 7, cy + 28}, {cx + 5, cy + 46},
			{cx - 5, cy + 46}, {cx - 7, cy + 28}, {cx - 8, cy - 2}, {cx - 7, cy - 28}, {cx - 4, cy - 40},
		},
		Canopy: raster.Polygon{
			{cx, cy - 36},
			{cx + 3, cy - 32}, {cx + 4, cy - 24}, {cx + 3, cy - 16},
			{cx - 3, cy - 16}, {cx - 4, cy - 24}, {cx - 3, cy - 32},
		},
		CanopyGlint: raster.E(cx-2, cy-33, 3, 8),
		Nose: raster.Polygon{
			{cx, cy - 56}, {cx + 4, cy - 40}, {cx - 4, cy - 40},
		},
		RightWing: raster.Polygon{
			{cx + 8, cy - 14}, {cx + 54, cy + 16}, {cx + 54, cy + 24}, {cx + 8, cy + 18},
		},
		RightWingtip: raster.Polygon{
			{cx + 54, cy + 16}, {cx + 58, cy + 26}, {cx + 54, cy + 24},
		},
		RightStabilizer: raster.Polygon{
			{cx + 6, cy + 32}, {cx + 26, cy + 46}, {cx + 26, cy + 52}, {cx + 5, cy + 46},
		},
		PanelLines: [3]raster.Line{
			{From: image.Pt(cx, cy-14), To: image.Pt(cx, cy+36), Width: 1},
			{From: image.Pt(cx-6, cy-2), To: image.Pt(cx+6, cy-2), Width: 1},
			{From: image.Pt(cx-6, cy+24), To: image.Pt(cx+6, cy+24), Width: 1},
		},
	}
	p.LeftWing = raster.Mirror(p.RightWing, cx)
	p.LeftWingtip = raster.Mirror(p.RightWingtip, cx)
	p.LeftStabilizer = raster.Mirror(p.RightStabilizer, cx)

	housing := image.Rect(cx+1, cy+42, cx+7, cy+50)
	glow := image.Rect(cx+2, cy+45, cx+6, cy+50)
	intake := image.Rect(cx+7, cy-20, cx+11, cy-12)
	marking := image.Rect(cx+30, cy+8, cx+38, cy+14)

	p.Exhausts = [2][2]raster.Ellipse{
		{{Box: raster.MirrorBox(housing, cx)}, {Box: raster.MirrorBox(glow, cx)}},
		{{Box: housing}, {Box: glow}},
	}
	p.Intakes = [2]raster.Ellipse{{Box: raster.MirrorBox(intake, cx)}, {Box: intake}}
	p.WingMarkings = [2]raster.Rect{{Box: raster.MirrorBox(marking, cx)}, {Box: marking}}
	return p
}

func (p Plane) layers() []raster.Layer {
	c := planePalette
	layers := []raster.Layer{
		{Shape: p.Fuselage, Color: c.hull},
		{Shape: p.Canopy, Color: c.glass},
		{Shape: p.CanopyGlint, Color: c.glint},
		{Shape: p.Nose, Color: c.nose},
		{Shape: p.LeftWing, Color: c.hullLight},
		{Shape: p.RightWing, Color: c.hullLight},
		{Shape: p.LeftWingtip, Color: c.hullDark},
		{Shape: p.RightWingtip, Color: c.hullDark},
		{Shape: p.LeftStabilizer, Color: c.hullDark},
		{Shape: p.RightStabilizer, Color: c.hullDark},
	}
	for _, e := range p.Exhausts {
		layers = append(layers,
			raster.Layer{Shape: e[0], Color: c.housing},
			raster.Layer{Shape: e[1], Color: c.glow},
		)
	}
	for _, in := range p.Intakes {
		layers = append(layers, raster.Layer{Shape: in, Color: c.intake})
	}
	for _, l := range p.PanelLines {
		layers = append(layers, raster.Layer{Shape: l, Color: c.panel})
	}
	for _, m := range p.WingMarkings {
		layers = append(layers, raster.Layer{Shape: m, Color: c.marking})
	}
	return layers
}

func (p Plane) silhouette() []raster.Shape {
	return []raster.Shape{
		p.Fuselage, p.Canopy, p.Nose,
		p.LeftWing, p.RightWing,
		p.LeftStabilizer, p.RightStabilizer,
	}
}

// RenderPlane draws the jet sprite.
func RenderPlane(w, h int) *image.RGBA {
	return paint(PlaneGeometry(w, h).layers(), w, h)
}

// RenderPlaneShadow draws the jet's flat drop shadow.
func RenderPlaneShadow(w, h int) *image.RGBA {
	c := raster.NewCanvas(w, h)
	c.Silhouette(shadowBody, PlaneGeometry(w, h).silhouette()...)
	return c.Image()
}
