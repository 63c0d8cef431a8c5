// Package preview lays rendered sprites out on an inspection sheet for the
// viewer.
package preview

import (
	"image"
	"image/color"

	"github.com/1siamBot/sprite-forge/engine/sprites"
	xdraw "golang.org/x/image/draw"
)

const (
	// Padding is the gap around every sprite slot, in sheet pixels.
	Padding = 4
	// CheckerSize is the side of one checkerboard square.
	CheckerSize = 8
)

var (
	checkerLight = color.RGBA{92, 92, 104, 255}
	checkerDark  = color.RGBA{64, 64, 74, 255}
)

// Cell is one sprite to place on the sheet.
type Cell struct {
	Name   string
	Image  image.Image
	Shadow bool
}

// Rendered draws every spec in memory.
func Rendered(specs []sprites.Spec) []Cell {
	cells := make([]Cell, len(specs))
	for i, s := range specs {
		cells[i] = Cell{Name: s.Name, Image: s.Image(), Shadow: s.Shadow}
	}
	return cells
}

// Sheet is the composed inspection image plus where each sprite landed.
type Sheet struct {
	Image *image.RGBA
	Slots map[string]image.Rectangle
	Cell  int // side of one grid cell
}

// BuildSheet puts sprites on row 0 and shadows on row 1, each upscaled by
// scale with nearest-neighbour sampling and centred in a square cell. With
// checker set, cells get a checkerboard backdrop so transparency shows.
func BuildSheet(cells []Cell, scale int, checker bool) *Sheet {
	scale = max(scale, 1)
	maxDim := 0
	perRow := [2]int{}
	for _, c := range cells {
		b := c.Image.Bounds()
		maxDim = max(maxDim, b.Dx(), b.Dy())
		perRow[row(c)]++
	}
	cols := max(perRow[0], perRow[1], 1)
	rows := 1
	if perRow[1] > 0 {
		rows = 2
	}

	cell := maxDim*scale + 2*Padding
	sh := &Sheet{
		Image: image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell)),
		Slots: make(map[string]image.Rectangle, len(cells)),
		Cell:  cell,
	}

	next := [2]int{}
	for _, c := range cells {
		r := row(c)
		col := next[r]
		next[r]++

		origin := image.Pt(col*cell, r*cell)
		if checker {
			fillChecker(sh.Image, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cell, cell))}.Inset(Padding/2))
		}
		b := c.Image.Bounds()
		w, h := b.Dx()*scale, b.Dy()*scale
		at := origin.Add(image.Pt((cell-w)/2, (cell-h)/2))
		slot := image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}
		xdraw.NearestNeighbor.Scale(sh.Image, slot, c.Image, b, xdraw.Over, nil)
		sh.Slots[c.Name] = slot
	}
	return sh
}

func row(c Cell) int {
	if c.Shadow {
		return 1
	}
	return 0
}

func fillChecker(dst *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y += CheckerSize {
		for x := r.Min.X; x < r.Max.X; x += CheckerSize {
			c := checkerLight
			if ((x-r.Min.X)/CheckerSize+(y-r.Min.Y)/CheckerSize)%2 == 1 {
				c = checkerDark
			}
			sq := image.Rect(x, y, x+CheckerSize, y+CheckerSize).Intersect(r)
			xdraw.Draw(dst, sq, image.NewUniform(c), image.Point{}, xdraw.Src)
		}
	}
}
