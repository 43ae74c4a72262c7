// Package gesture implements the swipe-to-dismiss interaction for sheets.
//
// A handler is a two-state machine: idle until a pointer goes down on the
// tracked node, tracking until the pointer lifts or the gesture is
// cancelled. While tracking it translates the node with the pointer,
// applying rubber-band resistance to upward drags. On release it either
// commits the dismissal, animating the node off-screen before firing the
// callback, or springs the node back to rest.
package gesture

import (
	"strconv"
	"sync"
	"time"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/sched"
)

// DismissingAttr marks a node whose removal sequence has begun. Whichever
// path starts the exit first sets it; everyone else checks before setting
// so it is applied exactly once.
const DismissingAttr = "data-dismissing"

const springEasing = "cubic-bezier(0.32, 0.72, 0, 1)"

type handlerState int

const (
	stateIdle handlerState = iota
	stateTracking
)

// SwipeDismiss tracks vertical drags on one node and dismisses it when a
// drag commits.
type SwipeDismiss struct {
	node      *dom.Element
	mark      *dom.Element
	sched     *sched.Scheduler
	onDismiss func()
	cfg       Config

	mu          sync.Mutex
	state       handlerState
	touch       *TouchState
	listeners   []listenerRef
	springTimer int
	attached    bool
}

type listenerRef struct {
	eventType string
	id        dom.ListenerID
}

// Option configures a handler at construction.
type Option func(*SwipeDismiss)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(h *SwipeDismiss) { h.cfg = cfg }
}

// WithMarkTarget redirects the dismissing marker to another element,
// typically the tracked node's presentation root.
func WithMarkTarget(el *dom.Element) Option {
	return func(h *SwipeDismiss) { h.mark = el }
}

// NewSwipeDismiss builds a handler for node. onDismiss fires once the
// commit animation has run; cancelled drags never fire it.
func NewSwipeDismiss(node *dom.Element, scheduler *sched.Scheduler, onDismiss func(), opts ...Option) *SwipeDismiss {
	h := &SwipeDismiss{
		node:      node,
		mark:      node,
		sched:     scheduler,
		onDismiss: onDismiss,
		cfg:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Attach registers the pointer listeners on the node. Attaching twice is
// a no-op.
func (h *SwipeDismiss) Attach() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.attached || h.node == nil {
		return
	}
	h.attached = true
	h.listen("pointerdown", h.handleDown)
	h.listen("pointermove", h.handleMove)
	h.listen("pointerup", h.handleUp)
	h.listen("pointercancel", h.handleCancel)
}

func (h *SwipeDismiss) listen(eventType string, fn func(*dom.Event)) {
	id := h.node.AddEventListener(eventType, fn)
	h.listeners = append(h.listeners, listenerRef{eventType: eventType, id: id})
}

// Detach removes every registered listener and cancels any pending settle
// callback. Detaching twice is a no-op.
func (h *SwipeDismiss) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.attached {
		return
	}
	h.attached = false
	for _, ref := range h.listeners {
		h.node.RemoveEventListener(ref.eventType, ref.id)
	}
	h.listeners = nil
	h.state = stateIdle
	h.touch = nil
	if h.springTimer != 0 {
		h.sched.Cancel(h.springTimer)
		h.springTimer = 0
	}
}

// Tracking reports whether a drag is in progress.
func (h *SwipeDismiss) Tracking() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == stateTracking
}

func (h *SwipeDismiss) now() time.Time {
	return h.sched.Clock().Now()
}

func (h *SwipeDismiss) handleDown(ev *dom.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != stateIdle || h.springTimer != 0 {
		return
	}
	height := h.node.BoundingRect().Height
	if height <= 0 {
		height = h.cfg.FallbackHeight
	}
	now := h.now()
	h.state = stateTracking
	h.touch = &TouchState{
		StartY:       ev.Y,
		CurrentY:     ev.Y,
		PreviousY:    ev.Y,
		StartTime:    now,
		CurrentTime:  now,
		PreviousTime: now,
		SheetHeight:  height,
	}
	// Follow the finger directly while tracking.
	h.node.Style().SetProperty("transition", "none")
}

func (h *SwipeDismiss) handleMove(ev *dom.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != stateTracking {
		return
	}
	t := h.touch
	t.PreviousY = t.CurrentY
	t.PreviousTime = t.CurrentTime
	t.CurrentY = ev.Y
	t.CurrentTime = h.now()

	translation := t.Translation()
	if translation < 0 {
		translation = rubberBand(translation, h.cfg)
	}
	h.node.Style().SetProperty("transform", translateY(translation))
}

func (h *SwipeDismiss) handleUp(ev *dom.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != stateTracking {
		return
	}
	t := h.touch
	h.state = stateIdle
	h.touch = nil

	if shouldDismiss(t, h.cfg) {
		h.commit(t)
	} else {
		h.snapBack()
	}
}

func (h *SwipeDismiss) handleCancel(ev *dom.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != stateTracking {
		return
	}
	h.state = stateIdle
	h.touch = nil
	h.snapBack()
}

// commit animates the node off-screen and schedules the dismissal
// callback for when the animation lands.
func (h *SwipeDismiss) commit(t *TouchState) {
	h.node.Style().SetProperty("transition", springTransition(h.cfg.SpringDuration))
	h.node.Style().SetProperty("transform", translateY(t.SheetHeight))
	if !h.mark.HasAttribute(DismissingAttr) {
		h.mark.SetAttribute(DismissingAttr, "")
	}
	h.springTimer = h.sched.AfterFunc(h.cfg.SpringDuration, func() {
		h.mu.Lock()
		h.springTimer = 0
		fn := h.onDismiss
		h.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

func (h *SwipeDismiss) snapBack() {
	h.node.Style().SetProperty("transition", springTransition(h.cfg.SpringDuration))
	h.node.Style().SetProperty("transform", translateY(0))
}

func translateY(v float64) string {
	return "translateY(" + strconv.FormatFloat(v, 'f', -1, 64) + "px)"
}

func springTransition(d time.Duration) string {
	return "transform " + strconv.Itoa(int(d.Milliseconds())) + "ms " + springEasing
}
