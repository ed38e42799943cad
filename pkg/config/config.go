// Package config loads ring description files.
//
// A description is a TOML document naming the host capabilities, the
// container, the ring options, the initial items and an optional script of
// operations applied after construction:
//
//	[container]
//	width = 400
//	height = 400
//
//	[ring]
//	radius = "8em"
//	angle_seed = -90
//	spread_gap = 30
//
//	[[item]]
//	label = "alpha"
//
//	[[op]]
//	kind = "push"
//	label = "late"
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// Operation kinds accepted in [[op]] tables.
const (
	OpPush   = "push"
	OpPop    = "pop"
	OpInsert = "insert"
	OpRemove = "remove"
)

// File is a parsed ring description.
type File struct {
	Host      Host      `toml:"host"`
	Container Container `toml:"container"`
	Ring      Ring      `toml:"ring"`
	Items     []Item    `toml:"item"`
	Ops       []Op      `toml:"op"`
}

// Host describes the simulated rendering surface.
type Host struct {
	// CustomProperties reports whether the host resolves custom properties.
	// Unset means true.
	CustomProperties *bool `toml:"custom_properties"`
}

// Container is the element the ring is laid out in.
type Container struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Class  string  `toml:"class"`
}

// Ring holds the layout options.
type Ring struct {
	Radius         any     `toml:"radius"`
	AngleSeed      any     `toml:"angle_seed"`
	SpreadGap      float64 `toml:"spread_gap"`
	AlignFirst     *bool   `toml:"align_first"`
	ForceTransform bool    `toml:"force_transform"`
	Class          string  `toml:"class"`
}

// Item is an initial ring member.
type Item struct {
	Label  string  `toml:"label"`
	Class  string  `toml:"class"`
	Height float64 `toml:"height"`
}

// Op is a scripted structural change.
type Op struct {
	Kind  string `toml:"kind"`
	Index *int   `toml:"index"`
	Label string `toml:"label"`
	Class string `toml:"class"`
}

// Load reads and validates the description at path.
func Load(path string) (*File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "ring file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse ring file")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the description for values the layout cannot use.
// Unusable spread gaps and angle seeds are not errors; the layout degrades
// them with a warning.
func (f *File) Validate() error {
	c := f.Container
	if c.Width < 0 || c.Height < 0 || math.IsNaN(c.Width) || math.IsNaN(c.Height) {
		return errors.New(errors.ErrCodeInvalidConfig, "container size must be non-negative")
	}
	if c.Class != "" {
		if err := errors.ValidateClassName(c.Class); err != nil {
			return err
		}
	}
	if f.Ring.Class != "" {
		if err := errors.ValidateClassName(f.Ring.Class); err != nil {
			return err
		}
	}
	if f.Ring.Radius != nil {
		if _, err := ring.ParseLength(f.Ring.Radius); err != nil {
			return err
		}
	}

	for i, it := range f.Items {
		if err := validateMember(it.Label, it.Class); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if it.Height < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "item %d: height must be non-negative", i)
		}
	}

	for i, op := range f.Ops {
		switch op.Kind {
		case OpPush, OpPop, OpRemove:
		case OpInsert:
			if op.Index == nil {
				return errors.New(errors.ErrCodeInvalidConfig, "op %d: insert requires an index", i)
			}
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "op %d: unknown kind %q", i, op.Kind)
		}
		if err := validateMember(op.Label, op.Class); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	return nil
}

func validateMember(label, class string) error {
	if err := errors.ValidateLabel(label); err != nil {
		return err
	}
	if class != "" {
		return errors.ValidateClassName(class)
	}
	return nil
}

// Capabilities returns the host capabilities the description asks for.
func (f *File) Capabilities() surface.Capabilities {
	custom := true
	if f.Host.CustomProperties != nil {
		custom = *f.Host.CustomProperties
	}
	return surface.Capabilities{CustomProperties: custom}
}

// NewDocument creates a host document with the described capabilities.
func (f *File) NewDocument() *surface.Document {
	return surface.NewDocument(f.Capabilities())
}

// Build creates the container under doc's body and one element per item.
// Item elements are children of the container, in file order.
func (f *File) Build(doc *surface.Document) (*surface.Element, []*surface.Element, error) {
	body := doc.Body()
	if body == nil {
		return nil, nil, errors.EnvironmentUnavailable("document has no body")
	}

	container := doc.CreateElement("div")
	container.SetSize(f.Container.Width, f.Container.Height)
	if f.Container.Class != "" {
		container.AddClass(f.Container.Class)
	}
	body.AppendChild(container)

	els := make([]*surface.Element, 0, len(f.Items))
	for _, it := range f.Items {
		el := NewElement(doc, it.Label, it.Class)
		el.SetSize(0, it.Height)
		container.AppendChild(el)
		els = append(els, el)
	}
	return container, els, nil
}

// NewElement creates a detached item element.
func NewElement(doc *surface.Document, label, class string) *surface.Element {
	el := doc.CreateElement("div")
	el.SetText(label)
	if class != "" {
		el.AddClass(class)
	}
	return el
}

// RingOptions converts the [ring] table to layout options. An unparseable
// angle seed falls back to 0° with a warning. Validate has already rejected
// bad radii.
func (f *File) RingOptions(logger *log.Logger) ring.Options {
	if logger == nil {
		logger = log.Default()
	}
	opts := ring.DefaultOptions()
	opts.Logger = logger
	opts.SpreadGap = f.Ring.SpreadGap
	opts.ForceComputedTransform = f.Ring.ForceTransform
	if f.Container.Class != "" {
		opts.ContainerClass = f.Container.Class
	}
	if f.Ring.Class != "" {
		opts.PresentationClass = f.Ring.Class
	}
	if f.Ring.AlignFirst != nil {
		opts.AlignFirstItemAtSeed = *f.Ring.AlignFirst
	}
	if f.Ring.Radius != nil {
		if r, err := ring.ParseLength(f.Ring.Radius); err == nil {
			opts.Radius = r
		}
	}
	if f.Ring.AngleSeed != nil {
		seed, err := parseSeed(f.Ring.AngleSeed)
		if err != nil {
			logger.Warn("ignoring angle seed", "seed", f.Ring.AngleSeed, "err", err)
		} else {
			opts.AngleSeed = seed
		}
	}
	return opts
}

func parseSeed(v any) (ring.AngleSeed, error) {
	switch x := v.(type) {
	case int64:
		return ring.Seed(float64(x)), nil
	case float64:
		return ring.Seed(x), nil
	case string:
		return ring.ParseSeed(x)
	default:
		return ring.AngleSeed{}, errors.New(errors.ErrCodeInvalidInput, "unsupported angle seed type %T", v)
	}
}

// Encode renders f back to TOML.
func (f *File) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RandomSeed reports whether the description asks for a random angle seed.
func (f *File) RandomSeed() bool {
	s, ok := f.Ring.AngleSeed.(string)
	if !ok {
		return false
	}
	seed, err := ring.ParseSeed(s)
	return err == nil && seed.IsRandom()
}

// FormatIndex renders an op index for log output.
func (o Op) FormatIndex() string {
	if o.Index == nil {
		return "end"
	}
	return strconv.Itoa(*o.Index)
}
