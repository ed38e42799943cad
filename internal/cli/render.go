package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		flags      cacheFlags
	)
	opts := pipeline.Options{NodeSize: pipeline.DefaultNodeSize}

	cmd := &cobra.Command{
		Use:   "render [ring.toml]",
		Short: "Render a ring description to SVG, JSON, DOT or PNG",
		Long: `Render a ring description file.

The file's items are laid out on the ring, its [[op]] script is applied in
order, and the resulting arrangement is written in each requested format.
Items added by the script are still entering unless --settle is given.

Rendered artifacts are cached locally, or in Redis with --cache-url.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "comma-separated output formats ("+strings.Join(pipeline.FormatNames(), ", ")+"; default svg)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().BoolVar(&opts.SkipOps, "skip-ops", false, "ignore the file's [[op]] script")
	cmd.Flags().BoolVar(&opts.Settle, "settle", false, "complete pending entrance effects before rendering")
	cmd.Flags().BoolVar(&opts.ForceTransform, "transform", false, "force the computed transform strategy")
	cmd.Flags().BoolVar(&opts.NoGuide, "no-guide", false, "omit the ring outline (svg)")
	cmd.Flags().BoolVar(&opts.Angles, "angles", false, "label items with their angle (svg)")
	cmd.Flags().Float64Var(&opts.NodeSize, "node-size", opts.NodeSize, "item circle radius (svg)")
	flags.register(cmd)

	return cmd
}

// runRender loads the description and renders it through the cached runner.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, flags cacheFlags) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	file, err := config.Load(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger

	spinner := newSpinner(ctx, os.Stderr, "Rendering ring...")
	spinner.Start()

	result, err := runner.Execute(ctx, file, opts)
	if err != nil {
		spinner.Fail("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if output != "-" {
		printStats(result.Stats.Items, result.Layout.Strategy().Name(), result.CacheInfo.RenderHit)
	}
	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	}); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))
	return nil
}

// artifactWriteParams groups what writeArtifacts needs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes each format next to the input, to the output path, or
// to stdout when output is "-" and a single format was requested.
func writeArtifacts(p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return fmt.Errorf("stdout output requires exactly one format")
		}
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		path := base + "." + format
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}
		if err := os.WriteFile(path, p.artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .json, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
