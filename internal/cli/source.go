package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// ringSource builds a ring from a description file, or from flags when no
// file is given.
type ringSource struct {
	count      int
	seed       string
	gap        float64
	radius     string
	size       float64
	alignFirst bool
	transform  bool
	skipOps    bool
}

func (s *ringSource) register(cmd *cobra.Command, count int) {
	s.count = count
	cmd.Flags().IntVarP(&s.count, "count", "n", s.count, "number of items (without a file)")
	cmd.Flags().StringVar(&s.seed, "seed", "0", "angle seed in degrees or \"random\" (without a file)")
	cmd.Flags().Float64Var(&s.gap, "gap", 0, "spread gap in degrees (without a file)")
	cmd.Flags().StringVar(&s.radius, "radius", "100px", "ring radius (without a file)")
	cmd.Flags().Float64Var(&s.size, "size", 300, "container width and height (without a file)")
	cmd.Flags().BoolVar(&s.alignFirst, "align-first", true, "place the first item on the seed (without a file)")
	cmd.Flags().BoolVar(&s.transform, "transform", false, "force the computed transform strategy")
	cmd.Flags().BoolVar(&s.skipOps, "skip-ops", false, "ignore the file's [[op]] script")
}

// file returns the description to build, loading path when it is set.
func (s *ringSource) file(path string) (*config.File, error) {
	if path != "" {
		return config.Load(path)
	}
	f := &config.File{
		Container: config.Container{Width: s.size, Height: s.size},
		Ring: config.Ring{
			Radius:     s.radius,
			AngleSeed:  s.seed,
			SpreadGap:  s.gap,
			AlignFirst: &s.alignFirst,
		},
	}
	for i := range max(s.count, 0) {
		f.Items = append(f.Items, config.Item{Label: strconv.Itoa(i + 1)})
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// build constructs the live ring and applies the file's script.
func (s *ringSource) build(ctx context.Context, path string) (*config.File, *surface.Document, *ring.Layout, error) {
	logger := loggerFromContext(ctx)
	f, err := s.file(path)
	if err != nil {
		return nil, nil, nil, err
	}
	doc, l, err := pipeline.Build(f, pipeline.Options{Logger: logger, ForceTransform: s.transform})
	if err != nil {
		return nil, nil, nil, err
	}
	if !s.skipOps {
		if _, err := pipeline.ApplyOps(doc, l, f.Ops, logger); err != nil {
			return nil, nil, nil, err
		}
	}
	return f, doc, l, nil
}

// fileArg returns the optional positional file argument.
func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
