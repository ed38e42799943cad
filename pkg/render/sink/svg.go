package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/ringlayout/pkg/render"
)

const itemInteractionCSS = `
    .ring-guide { fill: none; stroke: #c8c8c8; stroke-dasharray: 4 4; }
    .ring-node circle { fill: #ffffff; stroke: #333333; stroke-width: 2; transition: stroke-width 0.2s ease; }
    .ring-node:hover circle { stroke-width: 4; }
    .ring-node text { font-family: sans-serif; font-size: 12px; text-anchor: middle; dominant-baseline: central; }
    .ring-node.entering { animation: ring-enter 0.4s ease-out both; }
    @keyframes ring-enter { from { opacity: 0; } to { opacity: 1; } }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	nodeRadius float64
	guide      bool
	angles     bool
}

// WithNodeRadius sets the radius of item circles (default 18).
func WithNodeRadius(r float64) SVGOption { return func(s *svgRenderer) { s.nodeRadius = r } }

// WithoutGuide omits the dashed ring outline.
func WithoutGuide() SVGOption { return func(s *svgRenderer) { s.guide = false } }

// WithAngles labels each item with its angle instead of its text.
func WithAngles() SVGOption { return func(s *svgRenderer) { s.angles = true } }

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(s render.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{nodeRadius: 18, guide: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", itemInteractionCSS)

	if r.guide {
		fmt.Fprintf(&buf, `  <circle class="ring-guide" cx="%.2f" cy="%.2f" r="%.2f"/>`+"\n",
			s.CenterX, s.CenterY, s.Radius)
	}
	for _, it := range s.Items {
		r.renderItem(&buf, it)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderItem(buf *bytes.Buffer, it render.Item) {
	class := "ring-node"
	if it.Entering {
		class += " entering"
	}
	label := it.Label
	if r.angles || label == "" {
		label = fmt.Sprintf("%d°", it.Angle)
	}
	fmt.Fprintf(buf, `  <g id="item-%s" class="%s" data-index="%d" data-angle="%d" transform="translate(%.2f %.2f)">`+"\n",
		escapeXML(it.ID), class, it.Index, it.Angle, it.X, it.Y)
	fmt.Fprintf(buf, `    <circle r="%.1f"/>`+"\n", r.nodeRadius)
	fmt.Fprintf(buf, "    <text>%s</text>\n", escapeXML(label))
	buf.WriteString("  </g>\n")
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
