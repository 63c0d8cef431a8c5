// Command generate_sprites renders the aircraft sprites into sprites/.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/sprite-forge/engine/assetgen"
	"github.com/1siamBot/sprite-forge/engine/sprites"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run generates every sprite into sprites/ and returns the exit code.
func run(stderr io.Writer) int {
	log := assetgen.NewLogger()
	if _, err := assetgen.New(sprites.OutputDir, log).Run(context.Background()); err != nil {
		// %+v carries the stack recorded where the error was wrapped
		fmt.Fprintf(stderr, "sprite generation failed: %v\n%+v\n", err, err)
		return 1
	}
	return 0
}
