package gaussbeam

import "math"

// FiberCouplingEfficiency returns the theoretical coupling efficiency of a
// rotationally symmetric Gaussian beam of waist radius waist into a
// single-mode fiber with the given mode field diameter. Shorthand for
// FiberCouplingEfficiencyXY with equal waists.
func FiberCouplingEfficiency(modeFieldDiameter, waist float64) float64 {
	return FiberCouplingEfficiencyXY(modeFieldDiameter, waist, waist)
}

// FiberCouplingEfficiencyXY returns the overlap-integral coupling efficiency
// between a Gaussian free-space beam with independent transverse waists
// waistX, waistY and the fundamental mode of a single-mode fiber:
//
//	η = 4 / ((m/wx + wx/m)·(m/wy + wy/m))
//
// η lies in (0, 1] and equals 1 only when both waists match the mode field
// diameter exactly. Facet reflection is ignored: an uncoated facet loses an
// additional ~8% on top of this figure.
//
// The formula is stateless; it reads no Beam parameters.
func FiberCouplingEfficiencyXY(modeFieldDiameter, waistX, waistY float64) float64 {
	mx := modeFieldDiameter/waistX + waistX/modeFieldDiameter
	my := modeFieldDiameter/waistY + waistY/modeFieldDiameter
	return 4 / (mx * my)
}

// FocusedWaistRadius returns the diffraction-limited waist an ideal thin
// lens of the given focal length produces from an incident Gaussian beam:
//
//	w_f = 4·λ·f / (π·w_in)
func FocusedWaistRadius(wavelength, focalLength, incidentWaist float64) float64 {
	return 4 * wavelength * focalLength / (math.Pi * incidentWaist)
}

// FiberCouplingEfficiencyViaLens returns the coupling efficiency into a
// fiber of the given mode field diameter when the beam is focused by an
// ideal thin lens of the given focal length. The incident waist is the
// beam's own waist radius; use FiberCouplingEfficiencyViaLensFrom to supply
// a different one.
func (b *Beam) FiberCouplingEfficiencyViaLens(modeFieldDiameter, focalLength float64) float64 {
	return b.FiberCouplingEfficiencyViaLensFrom(modeFieldDiameter, focalLength, b.waistRadius)
}

// FiberCouplingEfficiencyViaLensFrom is FiberCouplingEfficiencyViaLens with
// an explicit incident waist. Pure composition: the focused waist from
// FocusedWaistRadius (at the beam's wavelength) is fed to the symmetric
// coupling formula, so the result always equals calling
// FiberCouplingEfficiency with that focused waist directly.
func (b *Beam) FiberCouplingEfficiencyViaLensFrom(modeFieldDiameter, focalLength, incidentWaist float64) float64 {
	focused := FocusedWaistRadius(b.wavelength, focalLength, incidentWaist)
	return FiberCouplingEfficiency(modeFieldDiameter, focused)
}
