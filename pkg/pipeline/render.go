package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/render/sink"
)

// Render produces the requested formats from a scene.
func Render(ctx context.Context, s render.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s, svgOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(s)
		case FormatDOT:
			data = []byte(sink.ToDOT(s))
		case FormatPNG:
			data, err = sink.RenderGraphviz(ctx, s, sink.FormatPNG)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithNodeRadius(opts.NodeSize)}
	if opts.NoGuide {
		svgOpts = append(svgOpts, sink.WithoutGuide())
	}
	if opts.Angles {
		svgOpts = append(svgOpts, sink.WithAngles())
	}
	return svgOpts
}
