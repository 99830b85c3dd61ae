// Command ggrender drives the gg raster engine from a JSON command
// script and writes the resulting surface to a PNG or BMP file, for
// golden-image regression testing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/gg"
)

func main() {
	var (
		script = flag.String("script", "", "path to JSON command script")
		output = flag.String("output", "out.png", "output image path (.png or .bmp)")
	)
	flag.Parse()

	if *script == "" {
		log.Fatal("ggrender: -script is required")
	}

	if err := run(*script, *output); err != nil {
		log.Fatalf("ggrender: %v", err)
	}
}

func run(scriptPath, outputPath string) error {
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	var doc scriptDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("script: width and height must be positive")
	}

	ctx, err := gg.NewContext(doc.Width, doc.Height)
	if err != nil {
		return fmt.Errorf("new context: %w", err)
	}

	parser := hexColorParser{}
	for i, cmd := range doc.Commands {
		if err := apply(ctx, cmd, parser); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
	}

	return writeSurface(ctx.Surface(), outputPath)
}

func writeSurface(s *gg.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode(f, s)
	default:
		return png.Encode(f, s)
	}
}
