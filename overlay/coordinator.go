package overlay

import (
	"fmt"
	"log"
	"sync"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/sched"
)

// entryState tracks one presentation through its lifecycle. Presenting is
// synchronous, so entries are born presented; they leave the active set
// only after the exit animation completes.
type entryState int

const (
	statePresented entryState = iota
	stateDismissing
	stateRemoved
)

// Entry is one active overlay record. Its identity, presentation, and
// z-index are fixed at presentation time; only its lifecycle state moves.
type Entry struct {
	id           ID
	presentation Presentation
	content      Content
	zIndex       int

	state       entryState
	onDismiss   func()
	source      *dom.Element
	root        *dom.Element
	backdrop    *dom.Element
	panel       *dom.Element
	detachSwipe func()
	enterTimer  int
	exitTimer   int
}

// ID returns the entry's stable identifier.
func (e *Entry) ID() ID { return e.id }

// Presentation returns the presentation the entry was created with.
func (e *Entry) Presentation() Presentation { return e.presentation }

// Kind returns the entry's presentation kind.
func (e *Entry) Kind() Kind { return KindOf(e.presentation) }

// Content returns the opaque content payload.
func (e *Entry) Content() Content { return e.content }

// ZIndex returns the stacking order assigned at presentation time.
func (e *Entry) ZIndex() int { return e.zIndex }

// Root returns the entry's attached fragment root.
func (e *Entry) Root() *dom.Element { return e.root }

// Panel returns the kind-specific panel inside the fragment.
func (e *Entry) Panel() *dom.Element { return e.panel }

// Backdrop returns the entry's backdrop element, nil for kinds without one.
func (e *Entry) Backdrop() *dom.Element { return e.backdrop }

// Dismissing reports whether the entry's exit sequence has started.
func (e *Entry) Dismissing() bool { return e.state == stateDismissing }

// ContentRenderer turns an opaque content payload into a render-tree
// fragment. The engine never interprets the payload itself.
type ContentRenderer func(doc *dom.Document, content Content) *dom.Node

// defaultContentRenderer handles the payload shapes the engine can wrap
// without interpreting: prebuilt fragments and plain strings.
func defaultContentRenderer(doc *dom.Document, content Content) *dom.Node {
	switch v := content.(type) {
	case nil:
		return nil
	case *dom.Element:
		return v.AsNode()
	case *dom.Node:
		return v
	case string:
		return doc.CreateText(v)
	default:
		return doc.CreateText(fmt.Sprint(v))
	}
}

// Coordinator owns the list of active presentations, assigns their stacking
// order, builds and attaches their fragments, and sequences dismissal. All
// timed work runs through its scheduler, which the embedding event loop
// pumps.
type Coordinator struct {
	mu     sync.Mutex
	doc    *dom.Document
	sched  *sched.Scheduler
	logger *log.Logger
	render ContentRenderer
	zBase  int

	entries    []*Entry
	nextSerial int
	zCounter   int
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger directs coordinator diagnostics to the given logger. Without
// it the coordinator is silent.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// WithContentRenderer injects the rendering capability for content
// payloads.
func WithContentRenderer(r ContentRenderer) Option {
	return func(c *Coordinator) {
		if r != nil {
			c.render = r
		}
	}
}

// WithZIndexBase sets the z-index the first presentation stacks above.
func WithZIndexBase(base int) Option {
	return func(c *Coordinator) { c.zBase = base }
}

// New creates a Coordinator over the given document and scheduler. A nil
// document gets a default 800x600 one; a nil scheduler gets a system-clock
// scheduler.
func New(doc *dom.Document, scheduler *sched.Scheduler, opts ...Option) *Coordinator {
	if doc == nil {
		doc = dom.NewDocument(geom.Sz(800, 600))
	}
	if scheduler == nil {
		scheduler = sched.New(nil)
	}
	c := &Coordinator{
		doc:    doc,
		sched:  scheduler,
		render: defaultContentRenderer,
		zBase:  1000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Doc returns the document overlays attach to.
func (c *Coordinator) Doc() *dom.Document { return c.doc }

// Scheduler returns the scheduler sequencing timed work.
func (c *Coordinator) Scheduler() *sched.Scheduler { return c.sched }

func (c *Coordinator) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// PresentOption configures one presentation.
type PresentOption func(*Entry)

// WithOnDismiss registers a callback that runs after the entry is removed.
func WithOnDismiss(fn func()) PresentOption {
	return func(e *Entry) { e.onDismiss = fn }
}

// WithSource records the element that triggered the presentation. Source
// anchors resolve against it.
func WithSource(el *dom.Element) PresentOption {
	return func(e *Entry) { e.source = el }
}

// Present creates an entry for the presentation, renders its fragment, and
// attaches it to the document. Later presentations stack strictly above
// earlier ones. It returns the entry's id.
func (c *Coordinator) Present(p Presentation, content Content, opts ...PresentOption) ID {
	c.mu.Lock()
	c.nextSerial++
	c.zCounter++
	e := &Entry{
		id:           ID(fmt.Sprintf("scrim-%d", c.nextSerial)),
		presentation: p,
		content:      content,
		zIndex:       c.zBase + c.zCounter,
		state:        statePresented,
	}
	for _, opt := range opts {
		opt(e)
	}
	c.entries = append(c.entries, e)
	c.mu.Unlock()

	root := c.renderEntry(e)
	c.doc.Root().AppendChild(root.AsNode())

	c.logf("present %s kind=%s z=%d", e.id, e.Kind(), e.zIndex)
	return e.id
}

// Dismiss starts the exit sequence for the entry: the dismissing marker is
// set, the exit timer runs, and only then is the node detached and the
// entry removed. Dismissing an unknown or already-dismissing id is a no-op.
func (c *Coordinator) Dismiss(id ID) {
	c.mu.Lock()
	e := c.findLocked(id)
	if e == nil || e.state != statePresented {
		c.mu.Unlock()
		return
	}
	e.state = stateDismissing
	if e.enterTimer != 0 {
		c.sched.Cancel(e.enterTimer)
		e.enterTimer = 0
	}
	c.mu.Unlock()

	c.beginExit(e)
}

// beginExit marks the fragment and schedules completion after the exit
// transition's duration.
func (c *Coordinator) beginExit(e *Entry) {
	if e.root != nil {
		if !e.root.HasAttribute(attrDismissing) {
			e.root.SetAttribute(attrDismissing, "")
		}
		e.root.Classes().Remove(classOpen)
	}

	d := exitTiming(e.Kind()).Duration
	id := c.sched.AfterFunc(d, func() { c.completeExit(e) })

	c.mu.Lock()
	e.exitTimer = id
	c.mu.Unlock()

	c.logf("dismiss %s kind=%s wait=%s", e.id, e.Kind(), d)
}

// completeExit detaches the fragment, removes the entry from the active
// set, and runs the dismiss callback.
func (c *Coordinator) completeExit(e *Entry) {
	c.mu.Lock()
	if e.state != stateDismissing {
		c.mu.Unlock()
		return
	}
	e.state = stateRemoved
	for i, cur := range c.entries {
		if cur == e {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	detach := e.detachSwipe
	e.detachSwipe = nil
	onDismiss := e.onDismiss
	root := e.root
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
	if root != nil {
		root.RemoveAttribute("open")
		root.Remove()
	}
	if onDismiss != nil {
		onDismiss()
	}

	c.logf("removed %s", e.id)
}

// Remove abandons an entry immediately: pending timers are cancelled and
// the fragment is detached with no exit animation. The dismiss callback
// still runs. Removing an unknown id is a no-op.
func (c *Coordinator) Remove(id ID) {
	c.mu.Lock()
	e := c.findLocked(id)
	if e == nil {
		c.mu.Unlock()
		return
	}
	if e.enterTimer != 0 {
		c.sched.Cancel(e.enterTimer)
		e.enterTimer = 0
	}
	if e.exitTimer != 0 {
		c.sched.Cancel(e.exitTimer)
		e.exitTimer = 0
	}
	e.state = stateDismissing
	c.mu.Unlock()

	c.completeExit(e)
}

// DismissTopmost dismisses the highest-stacked entry that permits indirect
// dismissal, the way the Escape key closes the front overlay. Alerts,
// full-screen covers, and sheets with interactive dismissal disabled are
// skipped. It reports whether anything was dismissed.
func (c *Coordinator) DismissTopmost() bool {
	c.mu.Lock()
	var top *Entry
	for _, e := range c.entries {
		if e.state != statePresented || !indirectlyDismissible(e.presentation) {
			continue
		}
		if top == nil || e.zIndex > top.zIndex {
			top = e
		}
	}
	c.mu.Unlock()

	if top == nil {
		return false
	}
	c.Dismiss(top.id)
	return true
}

// indirectlyDismissible reports whether a presentation may be dismissed
// without choosing an action: by backdrop click or the Escape key.
func indirectlyDismissible(p Presentation) bool {
	switch v := p.(type) {
	case Alert:
		return false
	case FullScreenCover:
		return false
	case Sheet:
		return !v.InteractiveDismissDisabled
	}
	return true
}

// Active returns a snapshot of the active entries in presentation order,
// including entries whose exit sequence is still running.
func (c *Coordinator) Active() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]*Entry, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}

// ActiveCount returns the number of active entries.
func (c *Coordinator) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lookup returns the active entry with the given id, or nil.
func (c *Coordinator) Lookup(id ID) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(id)
}

func (c *Coordinator) findLocked(id ID) *Entry {
	for _, e := range c.entries {
		if e.id == id {
			return e
		}
	}
	return nil
}

// AnimatePresentation is the post-attachment hook that starts the entrance
// transition: one scheduler tick later the open marker class is applied, so
// the attachment layer has rendered the initial state to transition from.
func (c *Coordinator) AnimatePresentation(id ID) {
	c.mu.Lock()
	e := c.findLocked(id)
	if e == nil || e.state != statePresented || e.root == nil || e.enterTimer != 0 {
		c.mu.Unlock()
		return
	}
	root := e.root
	timerID := c.sched.AfterFunc(presentTickDelay, func() {
		c.mu.Lock()
		open := e.state == statePresented
		if open {
			e.enterTimer = 0
		}
		c.mu.Unlock()
		if open {
			root.Classes().Add(classOpen)
		}
	})
	e.enterTimer = timerID
	c.mu.Unlock()
}
