package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/render"
)

// Graphviz output formats accepted by [RenderGraphviz].
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ToDOT converts a scene to Graphviz DOT. Node positions are pinned in
// points with y flipped to Graphviz's upward axis, and consecutive items are
// joined by edges closing the ring.
func ToDOT(s render.Scene) string {
	var buf bytes.Buffer
	buf.WriteString("graph ring {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, fixedsize=true, width=0.5];\n")
	buf.WriteString("\n")

	for _, it := range s.Items {
		label := it.Label
		if label == "" {
			label = fmt.Sprintf("%d°", it.Angle)
		}
		attrs := fmt.Sprintf("label=%q, pos=\"%.2f,%.2f!\"", label, it.X, s.Height-it.Y)
		if it.Entering {
			attrs += ", style=\"filled,dashed\""
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(it), attrs)
	}

	if n := len(s.Items); n > 1 {
		buf.WriteString("\n")
		for i, it := range s.Items {
			next := s.Items[(i+1)%n]
			if n == 2 && i == 1 {
				break
			}
			fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(it), nodeID(next))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(it render.Item) string {
	return fmt.Sprintf("item%d", it.Index)
}

// RenderGraphviz renders the scene through Graphviz in the given format.
func RenderGraphviz(ctx context.Context, s render.Scene, format string) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graphviz format: %s", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(s)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
