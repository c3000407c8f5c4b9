package gaussbeam

import "testing"

// The formulas sit in design-loop hot paths (parameter sweeps, optimizers),
// so keep an eye on their cost. All of them should be a handful of
// floating-point ops with zero allocations.

var sink float64

func BenchmarkBeamRadius(b *testing.B) {
	beam := New(testWavelength, testWaistRadius)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = beam.BeamRadius(1e-4)
	}
}

func BenchmarkApertureTransmittedPower(b *testing.B) {
	beam := New(testWavelength, testWaistRadius)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = beam.ApertureTransmittedPower(1.0, 1e-5, 1e-4)
	}
}

func BenchmarkFiberCouplingEfficiencyViaLens(b *testing.B) {
	beam := New(testWavelength, 1e-3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = beam.FiberCouplingEfficiencyViaLens(testMFD, 2e-3)
	}
}

func BenchmarkSetWaistRadius(b *testing.B) {
	beam := New(testWavelength, testWaistRadius)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		beam.SetWaistRadius(testWaistRadius)
	}
	sink = beam.RayleighLength()
}
