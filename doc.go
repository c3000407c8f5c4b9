// Package gaussbeam models the propagation of a Gaussian laser beam along
// its optical axis and derives the secondary quantities an optics engineer
// needs for design calculations: beam radius at a position, power through a
// centered circular aperture, and coupling efficiency into a single-mode
// fiber (directly or through a focusing lens).
//
// # The Model
//
// A beam is described by three parameters (wavelength λ, waist radius w0,
// waist position z0) plus one derived quantity, the Rayleigh length:
//
//	zR = π·w0² / λ
//
// zR is the axial distance from the waist at which the beam radius grows by
// a factor of √2. Everything else is a closed-form function of these four
// values:
//
//	w(z)    = w0·√(1 + ((z−z0)/zR)²)          beam radius at z
//	P(r, z) = P_in·(1 − exp(−2·r²/w(z)²))     power through aperture r
//	η(m, w) = 4 / ((m/w + w/m)²)              fiber coupling (symmetric)
//	w_f     = 4·λ·f / (π·w_in)                focused waist behind lens f
//
// The Rayleigh length is cached on the Beam and recomputed by every
// parameter setter, so reads never recompute and can never observe a stale
// value.
//
// # Quick Start
//
// Size an aperture and estimate fiber-coupling loss for a 1550 nm beam:
//
//	beam := gaussbeam.New(1550e-9, 5e-6) // waist at z = 0
//
//	fmt.Printf("Rayleigh length: %.3g m\n", beam.RayleighLength())
//	fmt.Printf("Radius at 1 mm:  %.3g m\n", beam.BeamRadius(1e-3))
//
//	// Power through a 10 µm aperture at the waist
//	p := beam.ApertureTransmittedPower(1.0, 10e-6, 0)
//
//	// Coupling into SMF-28 (MFD 10.4 µm) through an f = 2 mm lens
//	eta := beam.FiberCouplingEfficiencyViaLens(10.4e-6, 2e-3)
//
// # Units
//
// All lengths use one self-consistent unit system (the formulas are
// unit-homogeneous; SI meters recommended). Power is in whatever unit the
// caller supplies for the incident power; efficiencies and transmission
// fractions are dimensionless.
//
// # Properties
//
// Guarantees the model maintains:
//
//   - Rayleigh invariant: zR = π·w0²/λ after construction and after every
//     setter call
//   - Waist minimum: BeamRadius(z0) = w0 exactly; w(z) is symmetric about
//     z0 and non-decreasing in |z − z0|
//   - Aperture limits: transmitted power is 0 at r = 0, monotonically
//     increasing in r, and approaches P_in as r → ∞
//   - Unity coupling: η = 1 exactly when both incident waists equal the
//     mode field diameter
//   - Lens composition: coupling via a lens equals the direct formula
//     evaluated at the focused waist (pure composition, no independent logic)
//
// # Caveats
//
// Parameters are not validated: zero or negative wavelength or waist
// propagates as Inf/NaN through the arithmetic rather than failing with a
// distinct error. The coupling formulas ignore facet reflection; a real
// uncoated fiber facet loses an additional ~8% not modeled here. Beam
// instances are not synchronized: callers sharing one across goroutines
// must serialize setter calls against reads themselves.
package gaussbeam
