package surface

import "slices"

// EventAnimationEnd is dispatched when an element finishes a visual effect.
const EventAnimationEnd = "animationend"

// Event is a notification delivered to element listeners.
type Event struct {
	Type   string
	Target *Element
}

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func(Event)
}

// AddEventListener registers fn for events of the given type and returns a
// handle for [Element.RemoveEventListener].
func (e *Element) AddEventListener(typ string, fn func(Event)) ListenerID {
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.nextListener++
	id := e.nextListener
	e.listeners[typ] = append(e.listeners[typ], listener{id: id, fn: fn})
	return id
}

// RemoveEventListener deregisters a listener. It reports whether the
// listener was registered.
func (e *Element) RemoveEventListener(typ string, id ListenerID) bool {
	ls := e.listeners[typ]
	i := slices.IndexFunc(ls, func(l listener) bool { return l.id == id })
	if i < 0 {
		return false
	}
	e.listeners[typ] = slices.Delete(ls, i, i+1)
	if len(e.listeners[typ]) == 0 {
		delete(e.listeners, typ)
	}
	return true
}

// ListenerCount returns the number of listeners registered for typ.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

// Dispatch delivers an event of the given type to every listener registered
// at the time of the call and returns how many were invoked. Listeners may
// deregister themselves during delivery.
func (e *Element) Dispatch(typ string) int {
	ls := slices.Clone(e.listeners[typ])
	ev := Event{Type: typ, Target: e}
	for _, l := range ls {
		l.fn(ev)
	}
	return len(ls)
}
