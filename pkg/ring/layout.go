package ring

import (
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/observability"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// End is an index past the last item; Insert(el, End) appends and
// Remove(End) removes the last item.
const End = math.MaxInt

// Layout arranges elements around a circle inside a container.
type Layout struct {
	container *surface.Element
	opts      Options
	seed      float64
	ring      *ringContext
	items     []*Item
	logger    *log.Logger
}

// New builds a layout over elements, which the caller has already selected
// from the container. The container is tagged with the ring class and each
// element becomes an item without an entrance effect. The radius is
// published on the container by the chosen strategy.
//
// New returns an ENVIRONMENT_UNAVAILABLE error if container is nil or its
// document has no body.
func New(container *surface.Element, elements []*surface.Element, opts Options) (*Layout, error) {
	if container == nil {
		return nil, errors.EnvironmentUnavailable("no container element")
	}
	opts.normalize()

	probe := opts.Probe
	if probe == nil {
		probe = ProbeFor(container.Document())
	}
	strategy, err := selectStrategy(opts.ForceComputedTransform, probe)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		container: container,
		opts:      opts,
		seed:      opts.AngleSeed.resolve(opts.Rand),
		ring:      &ringContext{radius: opts.Radius, strategy: strategy},
		logger:    opts.Logger,
	}
	container.AddClass(opts.ContainerClass)
	strategy.PublishRadius(container, opts.Radius)

	elements = slices.DeleteFunc(slices.Clone(elements), func(el *surface.Element) bool { return el == nil })
	info := l.ComputeAngleInfo(len(elements))
	l.items = make([]*Item, len(elements))
	for i, el := range elements {
		angle := l.SlotAngle(i, info)
		l.items[i] = newItem(el, float64(angle), l.ring, l.itemOptions(ItemOptions{}))
	}

	l.logger.Debug("built ring layout",
		"items", len(l.items),
		"strategy", strategy.Name(),
		"radius", opts.Radius.String(),
		"seed", l.seed)
	return l, nil
}

// ComputeAngleInfo returns the distribution for n items with this layout's
// seed and gap.
func (l *Layout) ComputeAngleInfo(n int) AngleInfo {
	return ComputeAngleInfo(n, l.seed, l.opts.SpreadGap)
}

// SlotAngle returns the angle of slot index under info.
func (l *Layout) SlotAngle(index int, info AngleInfo) int {
	return SlotAngle(index, info, l.opts.AlignFirstItemAtSeed)
}

// RefreshAngles recomputes the distribution for the current count and
// reapplies every slot angle in order.
func (l *Layout) RefreshAngles() {
	l.RefreshAnglesWith(l.ComputeAngleInfo(len(l.items)))
}

// RefreshAnglesWith reapplies slot angles using a precomputed distribution.
func (l *Layout) RefreshAnglesWith(info AngleInfo) {
	start := time.Now()
	for i, it := range l.items {
		it.SetAngle(float64(l.SlotAngle(i, info)))
	}
	observability.Layout().OnRefresh(len(l.items), time.Since(start))
}

// Insert places el at index, clamped to [0, Len()], and re-lays out every
// item for the new count. The element is attached to the tree immediately
// before the element currently at index, or appended to the container.
// The new item runs the entrance effect.
func (l *Layout) Insert(el *surface.Element, index int) *Item {
	return l.InsertWith(el, index, ItemOptions{AnimateCreation: true})
}

// InsertWith is Insert with per-item presentation. An empty
// PresentationClass uses the layout's item class.
func (l *Layout) InsertWith(el *surface.Element, index int, opts ItemOptions) *Item {
	if el == nil {
		return nil
	}
	index = clamp(index, 0, len(l.items))
	info := l.ComputeAngleInfo(len(l.items) + 1)
	angle := l.SlotAngle(index, info)
	it := newItem(el, float64(angle), l.ring, l.itemOptions(opts))

	l.attach(el, index)
	l.items = slices.Insert(l.items, index, it)
	l.RefreshAnglesWith(info)

	l.logger.Debug("inserted ring item", "index", index, "items", len(l.items), "angle", it.Angle())
	observability.Layout().OnInsert(index, len(l.items))
	return it
}

// Push appends el.
func (l *Layout) Push(el *surface.Element) *Item {
	return l.Insert(el, End)
}

// Remove detaches the element at index, clamped to [0, Len()-1], re-lays
// out the remaining items and hands the element back to the caller.
// It returns nil when the layout is empty.
func (l *Layout) Remove(index int) *surface.Element {
	if len(l.items) == 0 {
		return nil
	}
	index = clamp(index, 0, len(l.items)-1)
	it := l.items[index]

	it.settle()
	it.el.Remove()
	l.items = slices.Delete(l.items, index, index+1)
	l.RefreshAngles()

	l.logger.Debug("removed ring item", "index", index, "items", len(l.items))
	observability.Layout().OnRemove(index, len(l.items))
	return it.el
}

// Pop removes the last element.
func (l *Layout) Pop() *surface.Element {
	return l.Remove(End)
}

// attach inserts el before the sibling currently at index. The sibling's
// own parent is used since selected elements need not be direct children.
func (l *Layout) attach(el *surface.Element, index int) {
	if index < len(l.items) {
		ref := l.items[index].el
		if parent := ref.Parent(); parent != nil {
			parent.InsertBefore(el, ref)
			return
		}
	}
	l.container.AppendChild(el)
}

func (l *Layout) itemOptions(opts ItemOptions) ItemOptions {
	if opts.PresentationClass == "" {
		opts.PresentationClass = l.opts.PresentationClass
	}
	return opts
}

// =============================================================================
// Accessors
// =============================================================================

// Len returns the number of items.
func (l *Layout) Len() int { return len(l.items) }

// Items returns the items in slot order.
func (l *Layout) Items() []*Item { return slices.Clone(l.items) }

// Item returns the item at index, clamped like Remove. It returns nil when
// the layout is empty.
func (l *Layout) Item(index int) *Item {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[clamp(index, 0, len(l.items)-1)]
}

// Angles returns the current angle of every item in slot order.
func (l *Layout) Angles() []int {
	out := make([]int, len(l.items))
	for i, it := range l.items {
		out[i] = it.Angle()
	}
	return out
}

// Info returns the distribution for the current count.
func (l *Layout) Info() AngleInfo { return l.ComputeAngleInfo(len(l.items)) }

// Seed returns the resolved starting angle. Random seeds are rolled once in
// New and never re-rolled.
func (l *Layout) Seed() float64 { return l.seed }

// Radius returns the ring radius.
func (l *Layout) Radius() Length { return l.ring.radius }

// Strategy returns the rendering strategy chosen at construction.
func (l *Layout) Strategy() Strategy { return l.ring.strategy }

// Container returns the container element.
func (l *Layout) Container() *surface.Element { return l.container }

// Options returns the normalised options.
func (l *Layout) Options() Options { return l.opts }

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
