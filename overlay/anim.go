package overlay

import (
	"time"
)

// Timing pairs a transition duration with its CSS easing. The dismiss
// sequencer waits exactly the duration the attachment layer applies to the
// exit transition; the two read from this same table so they cannot drift.
type Timing struct {
	Duration time.Duration
	Easing   string
}

// The shared timing table.
var (
	// TimingStandard is the default entrance and exit transition.
	TimingStandard = Timing{Duration: 300 * time.Millisecond, Easing: "ease"}
	// TimingFast suits small surfaces like alerts and popovers.
	TimingFast = Timing{Duration: 200 * time.Millisecond, Easing: "ease-out"}
	// TimingBackdrop fades the backdrop.
	TimingBackdrop = Timing{Duration: 250 * time.Millisecond, Easing: "ease"}
	// TimingSpring drives sheet travel: gesture snap-back and commit.
	TimingSpring = Timing{Duration: 300 * time.Millisecond, Easing: "cubic-bezier(0.32, 0.72, 0, 1)"}
)

// presentTickDelay is the scheduler delay before the open marker is applied,
// giving the attachment layer one pump to render the initial state so the
// entrance transition has something to transition from.
const presentTickDelay = 16 * time.Millisecond

// exitTiming returns the exit transition timing for a presentation kind.
func exitTiming(k Kind) Timing {
	switch k {
	case KindAlert, KindPopover:
		return TimingFast
	case KindSheet:
		return TimingSpring
	}
	return TimingStandard
}
