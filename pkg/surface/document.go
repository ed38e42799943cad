package surface

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// idNamespace seeds element IDs. Documents that create elements in the same
// order assign the same IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("ringlayout.surface"))

// Capabilities describes what the host surface supports.
type Capabilities struct {
	// CustomProperties reports whether var() references are resolved.
	CustomProperties bool
}

// Document is a host surface with a single body element.
type Document struct {
	caps Capabilities
	body *Element
	seq  int

	attachMu sync.Mutex
	attached map[any]any
}

// NewDocument creates a document with an empty body.
func NewDocument(caps Capabilities) *Document {
	d := &Document{caps: caps}
	d.body = d.CreateElement("body")
	return d
}

// Capabilities returns the host capabilities of d.
func (d *Document) Capabilities() Capabilities {
	if d == nil {
		return Capabilities{}
	}
	return d.caps
}

// Body returns the root element, or nil if the document is nil or closed.
func (d *Document) Body() *Element {
	if d == nil {
		return nil
	}
	return d.body
}

// Close unloads the document. Body returns nil afterwards and elements
// created earlier are no longer connected.
func (d *Document) Close() {
	if d == nil || d.body == nil {
		return
	}
	d.body.doc = nil
	d.body = nil
}

// Attachment returns the value stored on d under key, calling create to
// make it on first use. Values live exactly as long as the document. It
// returns nil for a nil document.
func (d *Document) Attachment(key any, create func() any) any {
	if d == nil {
		return nil
	}
	d.attachMu.Lock()
	defer d.attachMu.Unlock()
	if v, ok := d.attached[key]; ok {
		return v
	}
	if d.attached == nil {
		d.attached = make(map[any]any)
	}
	v := create()
	d.attached[key] = v
	return v
}

// CreateElement creates a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	d.seq++
	return &Element{
		id:    uuid.NewSHA1(idNamespace, []byte(strconv.Itoa(d.seq))).String(),
		tag:   strings.ToLower(tag),
		doc:   d,
		style: make(map[string]string),
	}
}

// QuerySelectorAll returns the descendants of root matching selector in
// document order. Supported selectors are "*", a tag name, ".class" and
// "tag.class". Multiple classes may be chained (".a.b").
func (d *Document) QuerySelectorAll(root *Element, selector string) []*Element {
	if root == nil {
		return nil
	}
	m := parseSelector(selector)
	var out []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		for _, c := range e.children {
			if m.matches(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

type selector struct {
	tag     string
	classes []string
}

func parseSelector(s string) selector {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	sel := selector{tag: strings.ToLower(parts[0])}
	if sel.tag == "*" {
		sel.tag = ""
	}
	for _, c := range parts[1:] {
		if c != "" {
			sel.classes = append(sel.classes, c)
		}
	}
	return sel
}

func (s selector) matches(e *Element) bool {
	if s.tag != "" && s.tag != e.tag {
		return false
	}
	for _, c := range s.classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}
