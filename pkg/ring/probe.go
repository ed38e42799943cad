package ring

import (
	"sync"

	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

const (
	probeProperty = "--ring-probe"
	probeMarker   = "42px"
)

// Host is the surface a [Probe] attaches its throwaway element to.
// [*surface.Document] implements it.
type Host interface {
	Body() *surface.Element
	CreateElement(tag string) *surface.Element
}

// Probe reports whether a host resolves custom properties. The check runs
// at most once; the result, including any error, is cached.
type Probe struct {
	host Host

	once      sync.Once
	supported bool
	err       error
}

// NewProbe creates an unevaluated probe for host.
func NewProbe(host Host) *Probe {
	return &Probe{host: host}
}

// SupportsDeclarative reports whether the host honours the declarative
// positioning mechanism. It returns an ENVIRONMENT_UNAVAILABLE error when the
// host or its body is absent.
func (p *Probe) SupportsDeclarative() (bool, error) {
	p.once.Do(p.detect)
	return p.supported, p.err
}

// detect attaches a probe element carrying a marker custom property and a
// rule that consumes it, reads back the resolved value and detaches it.
func (p *Probe) detect() {
	if p.host == nil {
		p.err = errors.EnvironmentUnavailable("no host surface")
		return
	}
	body := p.host.Body()
	if body == nil {
		p.err = errors.EnvironmentUnavailable("host surface has no body")
		return
	}

	el := p.host.CreateElement("div")
	el.SetStyle(probeProperty, probeMarker)
	el.SetStyle("width", "var("+probeProperty+")")
	body.AppendChild(el)
	defer el.Remove()

	p.supported = el.ComputedStyle("width") == probeMarker
}

// attacher is a host that can keep values for its own lifetime.
// [*surface.Document] implements it.
type attacher interface {
	Attachment(key any, create func() any) any
}

type probeKey struct{}

// ProbeFor returns the probe kept on host, creating it on first use, so each
// host is probed at most once. The probe is released together with the host.
// Hosts that cannot keep attachments get a fresh probe on every call. A nil
// host gets a probe that reports ENVIRONMENT_UNAVAILABLE.
func ProbeFor(host Host) *Probe {
	if host == nil {
		return NewProbe(nil)
	}
	if d, ok := host.(*surface.Document); ok && d == nil {
		return NewProbe(nil)
	}
	a, ok := host.(attacher)
	if !ok {
		return NewProbe(host)
	}
	return a.Attachment(probeKey{}, func() any { return NewProbe(host) }).(*Probe)
}
