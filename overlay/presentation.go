// Package overlay implements the modal presentation engine: the coordinator
// that owns active presentations, the renderers that build their render-tree
// fragments, popover placement, and the timed dismiss sequencing. Fragments
// are plain dom trees; displaying them is the attachment layer's job.
package overlay

import (
	"github.com/scrimui/scrim/geom"
)

// ID identifies one active presentation for the lifetime of its overlay.
type ID string

// Kind discriminates the presentation variants.
type Kind int

const (
	KindSheet Kind = iota
	KindAlert
	KindPopover
	KindFullScreenCover
	KindConfirmationDialog
)

// String returns the kind's CSS class suffix.
func (k Kind) String() string {
	switch k {
	case KindSheet:
		return "sheet"
	case KindAlert:
		return "alert"
	case KindPopover:
		return "popover"
	case KindFullScreenCover:
		return "fullscreen"
	case KindConfirmationDialog:
		return "confirmation"
	}
	return "unknown"
}

// Presentation describes what kind of overlay to present and its
// type-specific configuration. The variants are sealed.
type Presentation interface {
	presentationKind() Kind // sealed marker
}

// Sheet is a bottom sheet. Detents limit its height; the first detent is
// the active one. Interactive dismissal covers both the swipe gesture and
// backdrop clicks.
type Sheet struct {
	Detents                    []Detent
	InteractiveDismissDisabled bool
}

func (Sheet) presentationKind() Kind { return KindSheet }

// Alert is a centered alert with a title, an optional message, and action
// buttons. Alerts never dismiss from the backdrop; a button must be chosen.
type Alert struct {
	Title   string
	Message string
	Buttons []Button
}

func (Alert) presentationKind() Kind { return KindAlert }

// Popover is a box anchored to on-screen geometry, placed by the collision
// algorithm starting from PreferredEdge.
type Popover struct {
	Anchor        Anchor
	PreferredEdge geom.Edge
}

func (Popover) presentationKind() Kind { return KindPopover }

// FullScreenCover fills the entire viewport.
type FullScreenCover struct{}

func (FullScreenCover) presentationKind() Kind { return KindFullScreenCover }

// ConfirmationDialog is a bottom-anchored stack of actions. Its cancel
// button, when present, always renders last.
type ConfirmationDialog struct {
	Title        string
	TitleVisible bool
	Buttons      []Button
}

func (ConfirmationDialog) presentationKind() Kind { return KindConfirmationDialog }

// KindOf returns the kind of a presentation.
func KindOf(p Presentation) Kind {
	return p.presentationKind()
}

// Role adjusts a button's visual emphasis and tab order. It never changes
// dismissal semantics: every button dismisses after its action runs.
type Role int

const (
	RoleNone Role = iota
	RoleCancel
	RoleDestructive
)

// String returns the role's CSS class suffix, empty for RoleNone.
func (r Role) String() string {
	switch r {
	case RoleCancel:
		return "cancel"
	case RoleDestructive:
		return "destructive"
	}
	return ""
}

// Button is one action in an alert or confirmation dialog. A nil Action
// just dismisses.
type Button struct {
	Label  string
	Role   Role
	Action func()
}

// DefaultAcknowledgementLabel labels the button synthesized for an alert or
// confirmation dialog presented with no buttons at all.
const DefaultAcknowledgementLabel = "OK"

// Content is the opaque renderable payload of a presentation. The engine
// never inspects it; a ContentRenderer turns it into a fragment.
type Content any
