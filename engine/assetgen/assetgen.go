// Package assetgen renders the sprite table and writes it to disk as PNGs.
package assetgen

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/1siamBot/sprite-forge/engine/sprites"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Generator writes every spec in Specs to Dir. A nil Log reports through
// NewLogger.
type Generator struct {
	Dir   string
	Specs []sprites.Spec
	Log   *logrus.Logger
}

// New returns a generator for the fixed sprite table.
func New(dir string, log *logrus.Logger) *Generator {
	return &Generator{Dir: dir, Specs: sprites.Specs, Log: log}
}

// NewLogger returns the text logger the generator reports through.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// Result describes one written file.
type Result struct {
	Spec sprites.Spec
	Path string
	Size int
}

// Run creates the output directory, renders and encodes every sprite, then
// writes the files in table order. Nothing is written if the directory
// cannot be created; files written before a later failure stay on disk.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	log := g.Log
	if log == nil {
		log = NewLogger()
	}
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", g.Dir)
	}

	encoded, err := g.encodeAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(g.Specs))
	for i, s := range g.Specs {
		path := filepath.Join(g.Dir, s.FileName())
		if err := os.WriteFile(path, encoded[i], 0644); err != nil {
			return results, errors.Wrapf(err, "write %s", path)
		}
		log.WithFields(logrus.Fields{
			"sprite": s.Name,
			"size":   fmt.Sprintf("%dx%d", s.Width, s.Height),
			"bytes":  len(encoded[i]),
		}).Infof("wrote %s", path)
		results = append(results, Result{Spec: s, Path: path, Size: len(encoded[i])})
	}
	log.Infof("generated %d sprites in %s", len(results), g.Dir)
	return results, nil
}

// encodeAll renders and PNG-encodes the specs concurrently. Each spec owns
// its own canvas and buffer.
func (g *Generator) encodeAll(ctx context.Context) ([][]byte, error) {
	out := make([][]byte, len(g.Specs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, s := range g.Specs {
		i, s := i, s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := Encode(s)
			if err != nil {
				return err
			}
			out[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode renders one spec and returns its PNG bytes.
func Encode(s sprites.Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, s.Image()); err != nil {
		return nil, errors.Wrapf(err, "encode %s", s.Name)
	}
	return buf.Bytes(), nil
}
