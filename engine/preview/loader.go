package preview

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/1siamBot/sprite-forge/engine/sprites"
	"github.com/pkg/errors"
)

// LoadDir decodes the generated PNG for every spec from dir, so the viewer
// can show exactly what is on disk.
func LoadDir(dir string, specs []sprites.Spec) ([]Cell, error) {
	cells := make([]Cell, 0, len(specs))
	for _, s := range specs {
		img, err := loadFromFile(filepath.Join(dir, s.FileName()))
		if err != nil {
			return nil, err
		}
		if b := img.Bounds(); b.Dx() != s.Width || b.Dy() != s.Height {
			return nil, errors.Errorf("%s is %dx%d, want %dx%d", s.FileName(), b.Dx(), b.Dy(), s.Width, s.Height)
		}
		cells = append(cells, Cell{Name: s.Name, Image: img, Shadow: s.Shadow})
	}
	return cells, nil
}

func loadFromFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open sprite")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode sprite %s", path)
	}
	return img, nil
}
