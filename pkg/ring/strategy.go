package ring

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/ringlayout/pkg/surface"
)

// Presentation value names published by the declarative strategy.
const (
	AngleProperty  = "--ring-angle"
	RadiusProperty = "--ring-radius"
)

// Strategy renders item positions onto elements.
type Strategy interface {
	// Name identifies the strategy in logs and rendered output.
	Name() string

	// PlaceItem positions el at angle degrees on a ring of the given radius.
	PlaceItem(el *surface.Element, angle int, radius Length)

	// PublishRadius applies the ring radius to the container.
	PublishRadius(container *surface.Element, radius Length)
}

// Declarative publishes angle and radius as custom properties and leaves the
// transform to host styling.
type Declarative struct{}

// Name returns "declarative".
func (Declarative) Name() string { return "declarative" }

// PlaceItem sets --ring-angle on el.
func (Declarative) PlaceItem(el *surface.Element, angle int, _ Length) {
	el.SetStyle(AngleProperty, strconv.Itoa(angle)+"deg")
}

// PublishRadius sets --ring-radius on the container.
func (Declarative) PublishRadius(container *surface.Element, radius Length) {
	container.SetStyle(RadiusProperty, radius.String())
}

// ComputedTransform writes a literal transform on every item.
type ComputedTransform struct{}

// Name returns "transform".
func (ComputedTransform) Name() string { return "transform" }

// PlaceItem sets the transform of el; see [Transform].
func (ComputedTransform) PlaceItem(el *surface.Element, angle int, radius Length) {
	el.SetStyle("transform", Transform(angle, radius))
}

// PublishRadius pads the container by half its height minus the radius so
// the ring stays inside it. This is an approximation for hosts without
// custom property support, not a general centering rule. Radii in units
// other than pixels are combined with calc().
func (ComputedTransform) PublishRadius(container *surface.Element, radius Length) {
	half := container.Height() / 2
	if radius.IsPixels() {
		container.SetStyle("padding", Px(half-radius.Value).String())
		return
	}
	container.SetStyle("padding", fmt.Sprintf("calc(%s - %s)", Px(half), radius))
}

// Transform returns the computed positioning formula: recentre on the
// anchor, rotate by angle, translate out by radius, then counter-rotate so
// the element stays upright.
func Transform(angle int, radius Length) string {
	return fmt.Sprintf("translate(-50%%, -50%%) rotate(%ddeg) translate(%s) rotate(%ddeg)",
		angle, radius, -angle)
}

// selectStrategy queries probe unless forced to the computed transform.
func selectStrategy(forceTransform bool, probe *Probe) (Strategy, error) {
	if forceTransform {
		return ComputedTransform{}, nil
	}
	ok, err := probe.SupportsDeclarative()
	if err != nil {
		return nil, err
	}
	if ok {
		return Declarative{}, nil
	}
	return ComputedTransform{}, nil
}
