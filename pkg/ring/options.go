package ring

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Default presentation classes.
const (
	// DefaultClass tags item elements.
	DefaultClass = "ring-item"

	// DefaultContainerClass tags the ring container, which carries the
	// published radius.
	DefaultContainerClass = "ring-service"
)

// Options configures a [Layout].
type Options struct {
	// ContainerClass tags the container element in New.
	ContainerClass string

	// PresentationClass tags item elements unless [ItemOptions] overrides it.
	PresentationClass string

	// Radius of the ring. Use [Px] or [ParseLength].
	Radius Length

	// AngleSeed is the starting angle, fixed or random.
	AngleSeed AngleSeed

	// SpreadGap reserves degrees of empty arc at the seed. Values outside
	// [0, 360) are treated as 0.
	SpreadGap float64

	// AlignFirstItemAtSeed places the first item exactly on the seed when no
	// gap is in effect instead of half a slot past it.
	AlignFirstItemAtSeed bool

	// ForceComputedTransform bypasses the declarative strategy even when the
	// host supports it.
	ForceComputedTransform bool

	// Probe overrides the process-wide capability probe for the host.
	Probe *Probe

	// Rand is the source for random seeds. Nil uses math/rand/v2.
	Rand *rand.Rand

	// Logger receives debug output. Nil uses log.Default().
	Logger *log.Logger
}

// DefaultOptions returns a 100px ring starting at 0° with the first item on
// the seed.
func DefaultOptions() Options {
	return Options{
		ContainerClass:       DefaultContainerClass,
		PresentationClass:    DefaultClass,
		Radius:               Px(100),
		AngleSeed:            Seed(0),
		AlignFirstItemAtSeed: true,
	}
}

// normalize fills defaults and neutralises unusable distribution values.
func (o *Options) normalize() {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.ContainerClass == "" {
		o.ContainerClass = DefaultContainerClass
	}
	if o.PresentationClass == "" {
		o.PresentationClass = DefaultClass
	}
	if o.Radius.Unit == "" {
		o.Radius.Unit = "px"
	}
	if math.IsNaN(o.SpreadGap) || o.SpreadGap < 0 || o.SpreadGap >= 360 {
		o.Logger.Warn("ignoring spread gap outside [0, 360)", "gap", o.SpreadGap)
		o.SpreadGap = 0
	}
	if s := o.AngleSeed; !s.random && (math.IsNaN(s.degrees) || math.IsInf(s.degrees, 0)) {
		o.Logger.Warn("ignoring non-finite angle seed", "seed", s.degrees)
		o.AngleSeed = Seed(0)
	}
}
