package dom

import (
	"sync"
)

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// Event is one dispatched occurrence. Pointer-derived events carry viewport
// coordinates in X and Y; other events leave them zero.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	X, Y          float64

	phase            EventPhase
	bubbles          bool
	cancelable       bool
	stopPropagation  bool
	stopImmediate    bool
	defaultPrevented bool
	inPassive        bool
}

// NewEvent creates a bubbling, cancelable event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, bubbles: true, cancelable: true}
}

// NewPointerEvent creates a bubbling, cancelable event carrying a pointer
// position in viewport coordinates.
func NewPointerEvent(eventType string, x, y float64) *Event {
	ev := NewEvent(eventType)
	ev.X = x
	ev.Y = y
	return ev
}

// Phase returns the current dispatch phase.
func (ev *Event) Phase() EventPhase {
	return ev.phase
}

// Bubbles reports whether the event bubbles to ancestors.
func (ev *Event) Bubbles() bool {
	return ev.bubbles
}

// StopPropagation prevents the event from reaching further elements.
// Remaining listeners on the current element still run.
func (ev *Event) StopPropagation() {
	ev.stopPropagation = true
}

// StopImmediatePropagation prevents any further listener from running.
func (ev *Event) StopImmediatePropagation() {
	ev.stopPropagation = true
	ev.stopImmediate = true
}

// PreventDefault marks the event's default action as cancelled. It is a
// no-op for non-cancelable events and inside passive listeners.
func (ev *Event) PreventDefault() {
	if ev.cancelable && !ev.inPassive {
		ev.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// ListenerID identifies a registered listener for removal.
type ListenerID int

// listenerOptions mirror the addEventListener option set.
type listenerOptions struct {
	capture bool
	once    bool
	passive bool
}

// ListenerOption configures a listener registration.
type ListenerOption func(*listenerOptions)

// Listener registration options. Capture runs the listener on the way down
// the tree instead of the way up; Once removes it after its first call;
// Passive declares that it never calls PreventDefault.
var (
	Capture ListenerOption = func(o *listenerOptions) { o.capture = true }
	Once    ListenerOption = func(o *listenerOptions) { o.once = true }
	Passive ListenerOption = func(o *listenerOptions) { o.passive = true }
)

// eventListener is one registered listener.
type eventListener struct {
	id      ListenerID
	fn      func(*Event)
	options listenerOptions
}

// eventTarget manages the listeners of one element.
type eventTarget struct {
	mu        sync.RWMutex
	listeners map[string][]eventListener
	nextID    ListenerID
}

func newEventTarget() *eventTarget {
	return &eventTarget{listeners: make(map[string][]eventListener)}
}

func (et *eventTarget) add(eventType string, fn func(*Event), opts ...ListenerOption) ListenerID {
	var options listenerOptions
	for _, opt := range opts {
		opt(&options)
	}

	et.mu.Lock()
	defer et.mu.Unlock()

	et.nextID++
	id := et.nextID
	et.listeners[eventType] = append(et.listeners[eventType], eventListener{
		id:      id,
		fn:      fn,
		options: options,
	})
	return id
}

func (et *eventTarget) remove(eventType string, id ListenerID) {
	et.mu.Lock()
	defer et.mu.Unlock()

	listeners := et.listeners[eventType]
	for i, l := range listeners {
		if l.id == id {
			et.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

func (et *eventTarget) removeByID(id ListenerID) {
	et.mu.Lock()
	defer et.mu.Unlock()

	for eventType, listeners := range et.listeners {
		for i, l := range listeners {
			if l.id == id {
				et.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				return
			}
		}
	}
}

func (et *eventTarget) hasListeners(eventType string) bool {
	et.mu.RLock()
	defer et.mu.RUnlock()
	return len(et.listeners[eventType]) > 0
}

// dispatch runs the listeners registered for ev.Type that match the given
// phase. Listeners are invoked on a snapshot so they may add or remove
// listeners freely.
func (et *eventTarget) dispatch(ev *Event, phase EventPhase) {
	et.mu.RLock()
	listeners := make([]eventListener, len(et.listeners[ev.Type]))
	copy(listeners, et.listeners[ev.Type])
	et.mu.RUnlock()

	var toRemove []ListenerID

	for _, l := range listeners {
		if phase == EventPhaseCapturing && !l.options.capture {
			continue
		}
		if phase == EventPhaseBubbling && l.options.capture {
			continue
		}

		if l.options.once {
			toRemove = append(toRemove, l.id)
		}

		ev.inPassive = l.options.passive
		l.fn(ev)
		ev.inPassive = false

		if ev.stopImmediate {
			break
		}
	}

	for _, id := range toRemove {
		et.remove(ev.Type, id)
	}
}

// AddEventListener registers a listener and returns an id usable with
// RemoveEventListener.
func (e *Element) AddEventListener(eventType string, fn func(*Event), opts ...ListenerOption) ListenerID {
	return e.AsNode().elementData.events.add(eventType, fn, opts...)
}

// RemoveEventListener unregisters a listener. Unknown ids are ignored.
func (e *Element) RemoveEventListener(eventType string, id ListenerID) {
	e.AsNode().elementData.events.remove(eventType, id)
}

// HasEventListeners reports whether any listener is registered for the type.
func (e *Element) HasEventListeners(eventType string) bool {
	return e.AsNode().elementData.events.hasListeners(eventType)
}

// DispatchEvent dispatches the event with e as its target: capture phase
// from the root down, the target phase, then the bubble phase back up for
// bubbling events. It returns false if a listener prevented the default
// action.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e

	// Ancestor chain from the root down to the target's parent.
	var path []*Element
	for cur := e.AsNode().ParentElement(); cur != nil; cur = cur.AsNode().ParentElement() {
		path = append([]*Element{cur}, path...)
	}

	ev.phase = EventPhaseCapturing
	for _, el := range path {
		ev.CurrentTarget = el
		el.AsNode().elementData.events.dispatch(ev, EventPhaseCapturing)
		if ev.stopPropagation {
			ev.phase = EventPhaseNone
			ev.CurrentTarget = nil
			return !ev.defaultPrevented
		}
	}

	ev.phase = EventPhaseAtTarget
	ev.CurrentTarget = e
	e.AsNode().elementData.events.dispatch(ev, EventPhaseAtTarget)

	if ev.bubbles && !ev.stopPropagation {
		ev.phase = EventPhaseBubbling
		for i := len(path) - 1; i >= 0; i-- {
			ev.CurrentTarget = path[i]
			path[i].AsNode().elementData.events.dispatch(ev, EventPhaseBubbling)
			if ev.stopPropagation {
				break
			}
		}
	}

	ev.phase = EventPhaseNone
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

// Click dispatches a bubbling click event at the element's measured center.
func (e *Element) Click() bool {
	center := e.BoundingRect().Center()
	return e.DispatchEvent(NewPointerEvent("click", center.X, center.Y))
}
