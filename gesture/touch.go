package gesture

import (
	"math"
	"time"
)

// Config is the tuning for one swipe handler. All distances are in CSS
// pixels, velocities in pixels per millisecond.
type Config struct {
	// DismissThreshold is the fraction of the sheet height a drag must
	// pass for release to commit the dismissal.
	DismissThreshold float64

	// VelocityThreshold is the downward release velocity above which the
	// dismissal commits regardless of distance.
	VelocityThreshold float64

	// RubberBandFactor scales the resistance applied to upward drags.
	RubberBandFactor float64

	// MaxRubberBandDistance controls how quickly upward resistance
	// saturates.
	MaxRubberBandDistance float64

	// SpringDuration is how long the settle animation runs, for commits
	// and snap-backs alike.
	SpringDuration time.Duration

	// FallbackHeight substitutes for the sheet height when the tracked
	// node has no measured extent.
	FallbackHeight float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DismissThreshold:      0.3,
		VelocityThreshold:     0.5,
		RubberBandFactor:      0.15,
		MaxRubberBandDistance: 50,
		SpringDuration:        300 * time.Millisecond,
		FallbackHeight:        400,
	}
}

// TouchState is the live record of one tracked drag. The two most recent
// samples drive the velocity estimate.
type TouchState struct {
	StartY       float64
	CurrentY     float64
	PreviousY    float64
	StartTime    time.Time
	CurrentTime  time.Time
	PreviousTime time.Time

	// SheetHeight is the tracked node's height at the moment the drag
	// began. Thresholds are proportional to it.
	SheetHeight float64
}

// Translation is the raw downward displacement since the drag began.
// Upward drags yield negative values.
func (t *TouchState) Translation() float64 {
	return t.CurrentY - t.StartY
}

// Velocity is the drag velocity in pixels per millisecond, estimated from
// the two most recent samples. A zero-duration interval yields zero
// rather than infinity.
func (t *TouchState) Velocity() float64 {
	dt := t.CurrentTime.Sub(t.PreviousTime)
	if dt <= 0 {
		return 0
	}
	ms := float64(dt) / float64(time.Millisecond)
	return (t.CurrentY - t.PreviousY) / ms
}

// shouldDismiss decides a release: a drag past the distance threshold or
// a fast downward flick commits, anything else snaps back.
func shouldDismiss(t *TouchState, cfg Config) bool {
	return t.Translation() > t.SheetHeight*cfg.DismissThreshold ||
		t.Velocity() > cfg.VelocityThreshold
}

// rubberBand damps an upward overscroll. The raw displacement t is
// negative; the damped result stays negative, grows with the drag, and
// saturates instead of following the finger.
func rubberBand(t float64, cfg Config) float64 {
	return t * cfg.RubberBandFactor * (1 - math.Exp(t/cfg.MaxRubberBandDistance))
}
