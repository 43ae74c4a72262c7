package overlay

// Detent is a resolvable height preset for a sheet. Given the maximum
// extent available to the sheet it resolves to a concrete height; the sheet
// renderer derives a max-height fraction from it, clamped so a sheet never
// fully occludes the viewport.
type Detent struct {
	fraction float64
	height   float64
}

// maxDetentFraction caps how much of the available extent any detent may
// claim.
const maxDetentFraction = 0.9

// Standard detents.
var (
	// DetentMedium is half the available extent.
	DetentMedium = Detent{fraction: 0.5}
	// DetentLarge is the full available extent, subject to the cap.
	DetentLarge = Detent{fraction: 1.0}
)

// DetentFraction is a detent at the given fraction of the available extent.
func DetentFraction(f float64) Detent {
	return Detent{fraction: f}
}

// DetentHeight is a detent at a fixed height in pixels.
func DetentHeight(h float64) Detent {
	return Detent{height: h}
}

// Resolve returns the concrete height for the given maximum extent.
func (d Detent) Resolve(maxExtent float64) float64 {
	if d.height > 0 {
		return d.height
	}
	return d.fraction * maxExtent
}

// Fraction returns the detent's share of the given extent, clamped to
// [0, maxDetentFraction].
func (d Detent) Fraction(maxExtent float64) float64 {
	if maxExtent <= 0 {
		return maxDetentFraction
	}
	f := d.Resolve(maxExtent) / maxExtent
	if f < 0 {
		return 0
	}
	if f > maxDetentFraction {
		return maxDetentFraction
	}
	return f
}

// activeDetent picks the detent that governs a sheet's height: the first
// configured detent, or large when none were supplied.
func activeDetent(detents []Detent) Detent {
	if len(detents) == 0 {
		return DetentLarge
	}
	return detents[0]
}
