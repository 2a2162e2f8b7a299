package animate

import "math"

// PhaseAt resolves the shared clock against one avatar's cycle. It is a
// pure function: identical inputs always return identical results, no
// matter how many frames were dropped in between.
//
// The cycle is four segments laid end to end: forward walk, dwell at the
// far end, backward walk, dwell at the start. A zero dwell duration makes
// both dwell segments empty; the interval comparisons below then skip
// straight from forward to backward without ever selecting a zero-width
// segment or dividing by zero.
//
// cfg must have passed Validate; PhaseAt itself never fails.
func PhaseAt(elapsed, offset float64, cfg CycleConfig) PhaseSample {
	cycle := cfg.CycleSeconds()
	raw := math.Mod(elapsed+offset, cycle)
	if raw < 0 {
		raw += cycle
	}

	f := cfg.ForwardSeconds
	d := cfg.DwellSeconds

	switch {
	case raw < f:
		return PhaseSample{Phase: PhaseForward, LocalT: raw / f}
	case raw < f+d:
		return PhaseSample{Phase: PhaseDwellEnd, LocalT: 1}
	case raw < 2*f+d:
		return PhaseSample{Phase: PhaseBackward, LocalT: 1 - (raw-f-d)/f}
	default:
		return PhaseSample{Phase: PhaseDwellStart, LocalT: 0}
	}
}
