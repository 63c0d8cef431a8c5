package main

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/sprite-forge/engine/input"
	"github.com/1siamBot/sprite-forge/engine/preview"
	"github.com/1siamBot/sprite-forge/engine/sprites"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	sheetScale   = 2
)

var log = logrus.New()

type Viewer struct {
	camera *preview.Camera
	input  *input.State

	sheet    *preview.Sheet
	sheetImg *ebiten.Image
	checker  bool
	fromDisk bool
	source   string
}

func NewViewer() *Viewer {
	v := &Viewer{
		camera:  preview.NewCamera(ScreenWidth, ScreenHeight),
		input:   input.NewState(),
		checker: true,
	}
	v.rebuild()
	v.camera.Fit(v.sheet.Image.Bounds().Dx(), v.sheet.Image.Bounds().Dy())
	return v
}

// rebuild re-renders the sheet, either from the in-memory sprite routines
// or from the PNGs the generator left in sprites/.
func (v *Viewer) rebuild() {
	cells := preview.Rendered(sprites.Specs)
	v.source = "memory"
	if v.fromDisk {
		loaded, err := preview.LoadDir(sprites.OutputDir, sprites.Specs)
		if err != nil {
			log.WithError(err).Warn("cannot load generated sprites, showing in-memory render")
			v.fromDisk = false
		} else {
			cells = loaded
			v.source = sprites.OutputDir + "/"
		}
	}

	v.sheet = preview.BuildSheet(cells, sheetScale, v.checker)
	if v.sheetImg != nil {
		v.sheetImg.Deallocate()
	}
	v.sheetImg = ebiten.NewImageFromImage(v.sheet.Image)
	log.WithFields(logrus.Fields{
		"source":  v.source,
		"sprites": len(cells),
		"checker": v.checker,
	}).Info("sheet rebuilt")
}

func (v *Viewer) Update() error {
	v.input.Update()

	if v.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	speed := v.camera.Speed / 60.0
	v.camera.Pan(v.input.PanX*speed, v.input.PanY*speed)
	if v.input.Dragging {
		v.camera.Pan(float64(-v.input.MouseDX), float64(-v.input.MouseDY))
	}
	if v.input.ScrollY != 0 {
		v.camera.ZoomAt(v.input.ScrollY*0.25, v.input.MouseX, v.input.MouseY)
	}

	if v.input.IsKeyJustPressed(ebiten.KeyG) {
		v.checker = !v.checker
		v.rebuild()
	}
	if v.input.IsKeyJustPressed(ebiten.KeyL) {
		v.fromDisk = !v.fromDisk
		v.rebuild()
	}
	if v.input.IsKeyJustPressed(ebiten.KeyR) {
		v.rebuild()
	}
	if v.input.IsKeyJustPressed(ebiten.KeyF) {
		b := v.sheet.Image.Bounds()
		v.camera.Fit(b.Dx(), b.Dy())
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	scale, tx, ty := v.camera.Transform()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx, ty)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(v.sheetImg, op)

	for _, s := range sprites.Specs {
		slot, ok := v.sheet.Slots[s.Name]
		if !ok {
			continue
		}
		sx, sy := v.camera.WorldToScreen(float64(slot.Min.X), float64(slot.Max.Y))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %dx%d", s.Name, s.Width, s.Height), int(sx), int(sy)+2)
	}

	info := fmt.Sprintf("Sprite Preview | source:%s zoom:%.2f | [WASD]Pan [Drag]Pan [Scroll]Zoom [F]Fit [G]Checker [L]Disk/Memory [R]Reload [Esc]Quit",
		v.source, v.camera.Zoom)
	ebitenutil.DebugPrintAt(screen, info, 5, ScreenHeight-20)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Sprite Preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewViewer()); err != nil {
		log.Fatal(err)
	}
}
