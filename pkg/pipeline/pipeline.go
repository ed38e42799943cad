// Package pipeline turns ring description files into rendered artifacts.
//
// The pipeline has two stages:
//
//  1. Build: create the host document and container from a [config.File],
//     construct the ring layout and apply the file's scripted operations
//  2. Render: snapshot the layout and produce each requested format
//
// Both the render command and the preview server go through [Runner], which
// caches rendered artifacts keyed by the hash of the scene.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, file, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// =============================================================================
// Formats
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatPNG:  true,
}

// DefaultNodeSize is the radius of item circles in SVG output.
const DefaultNodeSize = 18.0

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Formats to render. Empty means svg.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// SkipOps ignores the file's [[op]] script.
	SkipOps bool `json:"skip_ops,omitempty"`

	// Settle completes every pending entrance effect before the snapshot.
	Settle bool `json:"settle,omitempty"`

	// ForceTransform overrides the file and always uses computed transforms.
	ForceTransform bool `json:"force_transform,omitempty"`

	// SVG options
	NoGuide  bool    `json:"no_guide,omitempty"`
	Angles   bool    `json:"angles,omitempty"`
	NodeSize float64 `json:"node_size,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.NodeSize == 0 {
		o.NodeSize = DefaultNodeSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the requested formats.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.NodeSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "node size must be positive")
	}
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		NoGuide:  o.NoGuide,
		Angles:   o.Angles,
		NodeSize: o.NodeSize,
	}
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for name := range ValidFormats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document and Layout are the live ring the scene was taken from.
	Document *surface.Document
	Layout   *ring.Layout

	// Scene is the snapshot that was rendered.
	Scene render.Scene

	// SceneHash is the content hash of the scene's JSON form.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Items      int
	Ops        int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}
