package gaussbeam

import "math"

// Beam holds the physical parameters of one Gaussian beam plus the cached
// Rayleigh length derived from them. All lengths share one unit system
// (SI meters recommended).
//
// Preconditions: wavelength > 0 and waistRadius > 0. They are not checked;
// violating them yields Inf/NaN from the downstream arithmetic instead of a
// distinct error.
type Beam struct {
	wavelength    float64 // λ: wavelength
	waistRadius   float64 // w0: beam radius at the waist
	waistPosition float64 // z0: axial coordinate of the waist

	// Derived, kept consistent by the setters. Reads never recompute.
	rayleighLength float64
}

// New creates a beam with its waist at z = 0.
func New(wavelength, waistRadius float64) *Beam {
	return NewAt(wavelength, waistRadius, 0)
}

// NewAt creates a beam with its waist at the given axial position.
// The Rayleigh length is computed and cached before the beam is returned.
func NewAt(wavelength, waistRadius, waistPosition float64) *Beam {
	b := &Beam{
		wavelength:    wavelength,
		waistRadius:   waistRadius,
		waistPosition: waistPosition,
	}
	b.recomputeRayleighLength()
	return b
}

// recomputeRayleighLength refreshes the cache from the current parameters:
//
//	zR = π·w0² / λ
//
// Called by every setter regardless of which parameter changed. There is no
// dependency tracking: the waist-position setter triggers it too, which is
// idempotent since z0 does not appear in the formula.
func (b *Beam) recomputeRayleighLength() {
	b.rayleighLength = math.Pi * b.waistRadius * b.waistRadius / b.wavelength
}

// Wavelength returns λ.
func (b *Beam) Wavelength() float64 { return b.wavelength }

// WaistRadius returns w0.
func (b *Beam) WaistRadius() float64 { return b.waistRadius }

// WaistPosition returns z0.
func (b *Beam) WaistPosition() float64 { return b.waistPosition }

// RayleighLength returns the cached zR = π·w0²/λ. The cache is refreshed by
// the setters, never on read.
func (b *Beam) RayleighLength() float64 { return b.rayleighLength }

// SetWavelength replaces λ and recomputes the Rayleigh length.
func (b *Beam) SetWavelength(wavelength float64) {
	b.wavelength = wavelength
	b.recomputeRayleighLength()
}

// SetWaistRadius replaces w0 and recomputes the Rayleigh length.
func (b *Beam) SetWaistRadius(waistRadius float64) {
	b.waistRadius = waistRadius
	b.recomputeRayleighLength()
}

// SetWaistPosition replaces z0. The Rayleigh length is recomputed as well;
// its value cannot change, but the setters share one uniform contract.
func (b *Beam) SetWaistPosition(waistPosition float64) {
	b.waistPosition = waistPosition
	b.recomputeRayleighLength()
}

// BeamRadius returns the beam radius at axial position z:
//
//	w(z) = w0·√(1 + ((z−z0)/zR)²)
//
// The minimum w0 occurs exactly at z = z0; the radius is symmetric about z0
// and non-decreasing in |z − z0|.
func (b *Beam) BeamRadius(z float64) float64 {
	u := (z - b.waistPosition) / b.rayleighLength
	return b.waistRadius * math.Sqrt(1+u*u)
}

// ApertureTransmittedPower returns the power transmitted through a centered
// circular aperture of radius apertureRadius placed at axial position z:
//
//	P = P_in·(1 − exp(−2·r²/w(z)²))
//
// The aperture clips the Gaussian irradiance profile: the result is 0 at
// r = 0, increases monotonically with r, and approaches incidentPower as
// r → ∞.
func (b *Beam) ApertureTransmittedPower(incidentPower, apertureRadius, z float64) float64 {
	w := b.BeamRadius(z)
	return incidentPower * (1 - math.Exp(-2*apertureRadius*apertureRadius/(w*w)))
}
