package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRendersFillRectScript(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.json")
	outputPath := filepath.Join(dir, "out.png")

	script := `{
		"width": 4,
		"height": 4,
		"commands": [
			{"op": "setFillStyle", "color": "#ff0000"},
			{"op": "fillRect", "args": [0, 0, 4, 4]}
		]
	}`
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o644))

	require.NoError(t, run(scriptPath, outputPath))

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())

	r, g, b, a := img.At(1, 1).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0), b)
	require.Equal(t, uint32(0xffff), a)
}

func TestRunRejectsUnknownOp(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.json")
	script := `{"width": 2, "height": 2, "commands": [{"op": "doTheThing"}]}`
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o644))

	err := run(scriptPath, filepath.Join(dir, "out.png"))
	require.Error(t, err)
}

func TestRunRejectsInvalidDimensions(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.json")
	script := `{"width": 0, "height": 2, "commands": []}`
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o644))

	err := run(scriptPath, filepath.Join(dir, "out.png"))
	require.Error(t, err)
}
