package ring

import (
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// EnteringSuffix is appended to an item's presentation class to form the
// marker class present while the entrance effect runs.
const EnteringSuffix = "--entering"

// ItemOptions overrides per-item presentation.
type ItemOptions struct {
	// PresentationClass tags the element. Empty uses the layout's item class.
	PresentationClass string

	// AnimateCreation marks the element as entering until the host reports
	// the effect finished.
	AnimateCreation bool
}

// ringContext is the read-only view an item has of its layout.
type ringContext struct {
	radius   Length
	strategy Strategy
}

// Item is one element positioned on a ring. The element is owned by the
// caller; the item only mutates its presentation.
type Item struct {
	el    *surface.Element
	angle int
	ring  *ringContext

	class    string
	entering bool
	hook     surface.ListenerID
}

func newItem(el *surface.Element, angle float64, ring *ringContext, opts ItemOptions) *Item {
	it := &Item{el: el, ring: ring, class: opts.PresentationClass}
	el.AddClass(it.class)
	it.SetAngle(angle)
	if opts.AnimateCreation {
		it.entering = true
		el.AddClass(it.EnteringClass())
		it.hook = el.AddEventListener(surface.EventAnimationEnd, it.finishEntrance)
	}
	return it
}

// SetAngle stores angle truncated toward zero and renders it with the
// layout's strategy.
func (it *Item) SetAngle(angle float64) {
	it.angle = int(angle)
	it.ring.strategy.PlaceItem(it.el, it.angle, it.ring.radius)
}

// Angle returns the last angle applied, in whole degrees.
func (it *Item) Angle() int { return it.angle }

// Element returns the positioned element.
func (it *Item) Element() *surface.Element { return it.el }

// Class returns the presentation class.
func (it *Item) Class() string { return it.class }

// EnteringClass returns the marker class used during the entrance effect.
func (it *Item) EnteringClass() string { return it.class + EnteringSuffix }

// Entering reports whether the entrance effect is still pending.
func (it *Item) Entering() bool { return it.entering }

// finishEntrance is the one-shot completion hook.
func (it *Item) finishEntrance(surface.Event) {
	it.settle()
}

// settle clears the entering marker and deregisters the completion hook.
// It is a no-op once the entrance has finished.
func (it *Item) settle() {
	if !it.entering {
		return
	}
	it.entering = false
	it.el.RemoveClass(it.EnteringClass())
	it.el.RemoveEventListener(surface.EventAnimationEnd, it.hook)
}
