package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// Build creates the host document described by f and lays its items out on
// a ring. The file's scripted operations are not applied.
func Build(f *config.File, opts Options) (*surface.Document, *ring.Layout, error) {
	opts.SetDefaults()

	doc := f.NewDocument()
	container, els, err := f.Build(doc)
	if err != nil {
		return nil, nil, err
	}

	ringOpts := f.RingOptions(opts.Logger)
	if opts.ForceTransform {
		ringOpts.ForceComputedTransform = true
	}
	l, err := ring.New(container, els, ringOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("build ring: %w", err)
	}
	return doc, l, nil
}

// ApplyOps runs a script of structural changes against l. New elements are
// created in doc. It returns the number of operations that changed the ring;
// removals on an empty ring are skipped.
func ApplyOps(doc *surface.Document, l *ring.Layout, ops []config.Op, logger *log.Logger) (int, error) {
	if logger == nil {
		logger = log.Default()
	}

	applied := 0
	for i, op := range ops {
		index := ring.End
		if op.Index != nil {
			index = *op.Index
		}

		switch op.Kind {
		case config.OpPush:
			l.Push(config.NewElement(doc, op.Label, op.Class))
		case config.OpInsert:
			l.Insert(config.NewElement(doc, op.Label, op.Class), index)
		case config.OpPop, config.OpRemove:
			if op.Kind == config.OpPop {
				index = ring.End
			}
			if l.Remove(index) == nil {
				logger.Debug("skipping removal from empty ring", "op", i)
				continue
			}
		default:
			return applied, errors.New(errors.ErrCodeInvalidConfig, "op %d: unknown kind %q", i, op.Kind)
		}

		applied++
		logger.Debug("applied op", "op", i, "kind", op.Kind, "index", op.FormatIndex(), "items", l.Len())
	}
	return applied, nil
}

// Settle reports completion of every pending entrance effect in l.
func Settle(l *ring.Layout) int {
	n := 0
	for _, it := range l.Items() {
		if it.Entering() {
			it.Element().Dispatch(surface.EventAnimationEnd)
			n++
		}
	}
	return n
}
