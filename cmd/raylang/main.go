// raylang renders a scene file to an image.
//
// Usage:
//
//	raylang <scene-file>
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kestrelwing/raylang/pkg/render"
	"github.com/kestrelwing/raylang/pkg/sceneio"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <scene-file>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(scenePath string) error {
	raw, err := sceneio.Load(scenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	prepStart := time.Now()
	prepared, err := raw.Prepare(sceneio.LoadMesh(filepath.Dir(scenePath)))
	if err != nil {
		return fmt.Errorf("prepare scene: %w", err)
	}
	prepTime := time.Since(prepStart)

	renderStart := time.Now()
	img := render.Render(prepared)
	renderTime := time.Since(renderStart)

	if err := img.SavePNG(prepared.Image); err != nil {
		return fmt.Errorf("write image %q: %w", prepared.Image, err)
	}

	fmt.Printf("prepared in %s, rendered in %s\n", prepTime, renderTime)
	fmt.Printf("wrote %s\n", prepared.Image)
	return nil
}
