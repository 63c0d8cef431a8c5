package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/1siamBot/sprite-forge/engine/sprites"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestRunWritesSprites(t *testing.T) {
	chdir(t, t.TempDir())

	var stderr bytes.Buffer
	assert.Equal(t, 0, run(&stderr))
	assert.Empty(t, stderr.String())
	for _, s := range sprites.Specs {
		assert.FileExists(t, filepath.Join(sprites.OutputDir, s.FileName()))
	}
}

func TestRunReportsFailureWithTrace(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(sprites.OutputDir, []byte("occupied"), 0644))

	var stderr bytes.Buffer
	assert.Equal(t, 1, run(&stderr))

	out := stderr.String()
	assert.Contains(t, out, "sprite generation failed: create output directory sprites")
	// the wrapped stack names the frame that wrapped the error
	assert.Contains(t, out, "assetgen.(*Generator).Run")
	assert.Contains(t, out, "assetgen.go:")

	matches, err := filepath.Glob("*.png")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
