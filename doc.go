// Package gg provides a deterministic, software-only 2D raster engine
// with a Canvas-style immediate-mode drawing API.
//
// # Overview
//
// Given identical drawing command sequences, gg produces bit-identical
// pixel buffers on every platform and build — suitable for golden-image
// regression testing, server-side rendering, and reproducible
// screenshots. There is no anti-aliasing, no GPU path, and no font
// rendering: output is binary coverage from a scanline polygon filler,
// the only softening effect being the documented sub-pixel stroke
// opacity rule.
//
// # Quick Start
//
//	dc, err := gg.NewContext(512, 512)
//	if err != nil {
//		// handle invalid dimensions
//	}
//	dc.SetFillStyle(255, 0, 0, 255)
//	dc.BeginPath()
//	dc.Arc(256, 256, 100, 0, 2*math.Pi, false)
//	dc.Fill(gg.FillRuleNonZero)
//
// # Architecture
//
//   - Public API: Context, Path, Matrix, Color, Surface, Image
//   - internal/pathflatten: curve/arc flattening at fixed tolerance
//   - internal/raster: scanline polygon filler and composition
//   - internal/stroke: stroke body/join/cap polygon generation
//   - internal/clip: 1-bit stencil clip mask
//   - internal/imgproc: drawImage source validation/normalization
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, angles
// in radians with 0 pointing right.
//
// # Concurrency
//
// A Context is exclusively owned by its calling goroutine for the
// duration of any draw call; concurrent drawing into one Surface is
// undefined. Separate Surface/Context pairs may be driven from separate
// goroutines freely — the pure geometry packages (pathflatten, raster,
// stroke) hold no shared mutable state.
package gg
