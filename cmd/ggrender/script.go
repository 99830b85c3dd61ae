package main

import (
	"fmt"

	"github.com/gogpu/gg"
)

// scriptDoc is the top-level JSON command script: a surface size plus an
// ordered list of Context operations to replay.
type scriptDoc struct {
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Commands []command `json:"commands"`
}

// command is one operation in a script. Args is interpreted according
// to Op; unused fields for a given Op are ignored.
type command struct {
	Op    string    `json:"op"`
	Args  []float64 `json:"args"`
	Color string    `json:"color"`
	Rule  string    `json:"rule"`
	Join  string    `json:"join"`
	Cap   string    `json:"cap"`
	Image *imageArg `json:"image"`
}

// imageArg carries an inline image block for drawImage commands, per
// the core's {width,height,data} input format.
type imageArg struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Data   []uint8 `json:"data"`
}

func apply(ctx *gg.Context, c command, parser ColorParser) error {
	a := c.Args
	switch c.Op {
	case "save":
		ctx.Save()
	case "restore":
		ctx.Restore()
	case "setTransform":
		if len(a) != 6 {
			return fmt.Errorf("setTransform wants 6 args, got %d", len(a))
		}
		ctx.SetTransform(a[0], a[1], a[2], a[3], a[4], a[5])
	case "transform":
		if len(a) != 6 {
			return fmt.Errorf("transform wants 6 args, got %d", len(a))
		}
		ctx.Transform(a[0], a[1], a[2], a[3], a[4], a[5])
	case "resetTransform":
		ctx.ResetTransform()
	case "translate":
		if len(a) != 2 {
			return fmt.Errorf("translate wants 2 args, got %d", len(a))
		}
		ctx.Translate(a[0], a[1])
	case "scale":
		if len(a) != 2 {
			return fmt.Errorf("scale wants 2 args, got %d", len(a))
		}
		ctx.ScaleBy(a[0], a[1])
	case "rotate":
		if len(a) != 1 {
			return fmt.Errorf("rotate wants 1 arg, got %d", len(a))
		}
		ctx.Rotate(a[0])
	case "setFillStyle":
		col, err := resolveColor(c.Color, parser)
		if err != nil {
			return err
		}
		ctx.SetFillStyle(col.R, col.G, col.B, col.A)
	case "setStrokeStyle":
		col, err := resolveColor(c.Color, parser)
		if err != nil {
			return err
		}
		ctx.SetStrokeStyle(col.R, col.G, col.B, col.A)
	case "setGlobalAlpha":
		if len(a) != 1 {
			return fmt.Errorf("setGlobalAlpha wants 1 arg, got %d", len(a))
		}
		ctx.SetGlobalAlpha(a[0])
	case "setGlobalCompositeOperation":
		op, err := parseComposite(c.Rule)
		if err != nil {
			return err
		}
		return ctx.SetGlobalCompositeOperation(op)
	case "setLineWidth":
		if len(a) != 1 {
			return fmt.Errorf("setLineWidth wants 1 arg, got %d", len(a))
		}
		return ctx.SetLineWidth(a[0])
	case "setLineJoin":
		j, err := parseLineJoin(c.Join)
		if err != nil {
			return err
		}
		return ctx.SetLineJoin(j)
	case "setLineCap":
		cp, err := parseLineCap(c.Cap)
		if err != nil {
			return err
		}
		return ctx.SetLineCap(cp)
	case "setMiterLimit":
		if len(a) != 1 {
			return fmt.Errorf("setMiterLimit wants 1 arg, got %d", len(a))
		}
		return ctx.SetMiterLimit(a[0])
	case "beginPath":
		ctx.BeginPath()
	case "moveTo":
		if len(a) != 2 {
			return fmt.Errorf("moveTo wants 2 args, got %d", len(a))
		}
		return ctx.MoveTo(a[0], a[1])
	case "lineTo":
		if len(a) != 2 {
			return fmt.Errorf("lineTo wants 2 args, got %d", len(a))
		}
		return ctx.LineTo(a[0], a[1])
	case "quadraticCurveTo":
		if len(a) != 4 {
			return fmt.Errorf("quadraticCurveTo wants 4 args, got %d", len(a))
		}
		return ctx.QuadraticCurveTo(a[0], a[1], a[2], a[3])
	case "bezierCurveTo":
		if len(a) != 6 {
			return fmt.Errorf("bezierCurveTo wants 6 args, got %d", len(a))
		}
		return ctx.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
	case "rect":
		if len(a) != 4 {
			return fmt.Errorf("rect wants 4 args, got %d", len(a))
		}
		return ctx.Rect(a[0], a[1], a[2], a[3])
	case "arc":
		if len(a) != 6 {
			return fmt.Errorf("arc wants 6 args (cx,cy,r,a0,a1,ccw), got %d", len(a))
		}
		return ctx.Arc(a[0], a[1], a[2], a[3], a[4], a[5] != 0)
	case "ellipse":
		if len(a) != 8 {
			return fmt.Errorf("ellipse wants 8 args, got %d", len(a))
		}
		return ctx.Ellipse(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7] != 0)
	case "closePath":
		ctx.ClosePath()
	case "fillRect":
		if len(a) != 4 {
			return fmt.Errorf("fillRect wants 4 args, got %d", len(a))
		}
		ctx.FillRect(a[0], a[1], a[2], a[3])
	case "strokeRect":
		if len(a) != 4 {
			return fmt.Errorf("strokeRect wants 4 args, got %d", len(a))
		}
		ctx.StrokeRect(a[0], a[1], a[2], a[3])
	case "clearRect":
		if len(a) != 4 {
			return fmt.Errorf("clearRect wants 4 args, got %d", len(a))
		}
		ctx.ClearRect(a[0], a[1], a[2], a[3])
	case "fill":
		rule, err := parseFillRule(c.Rule)
		if err != nil {
			return err
		}
		ctx.Fill(rule)
	case "stroke":
		ctx.Stroke()
	case "clip":
		rule, err := parseFillRule(c.Rule)
		if err != nil {
			return err
		}
		ctx.Clip(rule)
	case "drawImage":
		return applyDrawImage(ctx, c)
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
	return nil
}

func applyDrawImage(ctx *gg.Context, c command) error {
	if c.Image == nil {
		return fmt.Errorf("drawImage requires an \"image\" field")
	}
	src, err := gg.NewImage(c.Image.Width, c.Image.Height, c.Image.Data)
	if err != nil {
		return fmt.Errorf("decode inline image: %w", err)
	}
	a := c.Args
	switch len(a) {
	case 2:
		return ctx.DrawImageAt(src, a[0], a[1])
	case 4:
		return ctx.DrawImage(src, a[0], a[1], a[2], a[3])
	case 8:
		return ctx.DrawImageRect(src, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
	default:
		return fmt.Errorf("drawImage wants 2, 4, or 8 args, got %d", len(a))
	}
}

func parseFillRule(s string) (gg.FillRule, error) {
	switch s {
	case "", "nonzero":
		return gg.FillRuleNonZero, nil
	case "evenodd":
		return gg.FillRuleEvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseComposite(s string) (gg.CompositeOperation, error) {
	switch s {
	case "", "source-over":
		return gg.CompositeSourceOver, nil
	case "copy":
		return gg.CompositeCopy, nil
	default:
		return 0, fmt.Errorf("unknown composite operation %q", s)
	}
}

func parseLineJoin(s string) (gg.LineJoin, error) {
	switch s {
	case "", "miter":
		return gg.LineJoinMiter, nil
	case "round":
		return gg.LineJoinRound, nil
	case "bevel":
		return gg.LineJoinBevel, nil
	default:
		return 0, fmt.Errorf("unknown line join %q", s)
	}
}

func parseLineCap(s string) (gg.LineCap, error) {
	switch s {
	case "", "butt":
		return gg.LineCapButt, nil
	case "round":
		return gg.LineCapRound, nil
	case "square":
		return gg.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown line cap %q", s)
	}
}

func resolveColor(s string, parser ColorParser) (gg.Color, error) {
	if s == "" {
		return gg.Color{A: 255}, nil
	}
	return parser.ParseColor(s)
}
