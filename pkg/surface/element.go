package surface

import (
	"maps"
	"slices"
	"strings"
)

// Element is a node in a document tree.
type Element struct {
	id       string
	tag      string
	doc      *Document
	parent   *Element
	children []*Element

	classes []string
	style   map[string]string
	text    string
	width   float64
	height  float64

	listeners    map[string][]listener
	nextListener ListenerID
}

// ID returns the identifier assigned at creation. IDs are unique within a
// document.
func (e *Element) ID() string { return e.id }

// Tag returns the lower-cased tag name.
func (e *Element) Tag() string { return e.tag }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Text returns the text content.
func (e *Element) Text() string { return e.text }

// SetText sets the text content.
func (e *Element) SetText(s string) { e.text = s }

// Width returns the measured on-screen width.
func (e *Element) Width() float64 { return e.width }

// Height returns the measured on-screen height.
func (e *Element) Height() float64 { return e.height }

// SetSize sets the measured on-screen size.
func (e *Element) SetSize(width, height float64) {
	e.width = width
	e.height = height
}

// =============================================================================
// Classes
// =============================================================================

// AddClass adds name to the class list if not already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes name from the class list.
func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// =============================================================================
// Styles
// =============================================================================

// SetStyle sets an inline presentation value. Names starting with "--" are
// custom properties.
func (e *Element) SetStyle(name, value string) {
	e.style[name] = value
}

// RemoveStyle removes an inline presentation value.
func (e *Element) RemoveStyle(name string) {
	delete(e.style, name)
}

// Style returns the inline value for name as written.
func (e *Element) Style(name string) string {
	return e.style[name]
}

// StyleNames returns the names of all inline values in sorted order.
func (e *Element) StyleNames() []string {
	return slices.Sorted(maps.Keys(e.style))
}

// ComputedStyle returns the resolved value for name.
//
// Only connected elements resolve styles; detached elements return "".
// Custom properties inherit from ancestors and var() references are
// substituted when the document supports custom properties. Otherwise
// custom properties resolve to "" and so does any value referencing them.
func (e *Element) ComputedStyle(name string) string {
	if !e.IsConnected() {
		return ""
	}
	custom := e.doc.Capabilities().CustomProperties
	if isCustomProperty(name) {
		if !custom {
			return ""
		}
		return e.lookupCustom(name)
	}
	v := e.style[name]
	if !strings.Contains(v, "var(") {
		return v
	}
	if !custom {
		return ""
	}
	return e.substituteVars(v)
}

func isCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--")
}

func (e *Element) lookupCustom(name string) string {
	for n := e; n != nil; n = n.parent {
		if v, ok := n.style[name]; ok {
			return v
		}
	}
	return ""
}

// substituteVars replaces var(--name) and var(--name, fallback) references.
// An unresolvable reference without fallback invalidates the whole value.
func (e *Element) substituteVars(v string) string {
	var b strings.Builder
	for {
		i := strings.Index(v, "var(")
		if i < 0 {
			b.WriteString(v)
			return b.String()
		}
		j := strings.IndexByte(v[i:], ')')
		if j < 0 {
			return ""
		}
		b.WriteString(v[:i])
		ref := v[i+len("var(") : i+j]
		name, fallback, hasFallback := strings.Cut(ref, ",")
		resolved := e.lookupCustom(strings.TrimSpace(name))
		if resolved == "" {
			if !hasFallback {
				return ""
			}
			resolved = strings.TrimSpace(fallback)
		}
		b.WriteString(resolved)
		v = v[i+j+1:]
	}
}

// =============================================================================
// Tree
// =============================================================================

// Parent returns the parent element, or nil if detached.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// IsConnected reports whether e is reachable from its document body.
func (e *Element) IsConnected() bool {
	if e.doc == nil {
		return false
	}
	body := e.doc.Body()
	for n := e; n != nil; n = n.parent {
		if n == body {
			return true
		}
	}
	return false
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	e.InsertBefore(child, nil)
}

// InsertBefore attaches child immediately before ref. A nil ref, or a ref
// that is not a child of e, appends.
func (e *Element) InsertBefore(child, ref *Element) {
	if child == nil || child == e {
		return
	}
	child.Remove()
	child.parent = e
	if i := slices.Index(e.children, ref); ref != nil && i >= 0 {
		e.children = slices.Insert(e.children, i, child)
		return
	}
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. It reports whether child was present.
func (e *Element) RemoveChild(child *Element) bool {
	i := slices.Index(e.children, child)
	if i < 0 {
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.parent = nil
	return true
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Index returns the position of e among its siblings, or -1.
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	return slices.Index(e.parent.children, e)
}
