package animate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Walk-sway tuning. Sway is a gentle lean at half the bob rate; it reads
// as weight shifting from foot to foot.
const (
	swayFreqFactor = 0.5
	swayAmpDeg     = 2.5

	// headingStep is the curve-parameter step used to find the direction
	// of travel.
	headingStep = 1e-3
)

// SamplePose produces the full avatar pose for one frame: position on the
// curve, a unit heading in the direction of travel, and the secondary walk
// motion. elapsed is the same shared clock value passed to PhaseAt.
//
// While the avatar dwells at either end, VerticalOffset and Roll are
// exactly zero so the walk motion visibly stops with the walk itself.
func SamplePose(curve *Curve, ps PhaseSample, cfg CycleConfig, elapsed float64) Pose {
	pose := Pose{
		Position: curve.Evaluate(ps.LocalT),
		Heading:  headingAt(curve, ps.LocalT, ps.Phase == PhaseBackward),
	}

	if ps.Phase.Moving() && cfg.BobAmplitude > 0 {
		w := 2 * math.Pi * cfg.BobFrequency * (elapsed + cfg.OffsetSeconds)
		pose.VerticalOffset = cfg.BobAmplitude * math.Sin(w)
		pose.Roll = degToRad(swayAmpDeg) * math.Sin(swayFreqFactor*w)
	}

	return pose
}

// headingAt returns a unit vector pointing in the direction of travel at
// curve parameter t. Walking backward travels toward decreasing t, so the
// lookahead flips; at either endpoint the probe steps inside the clamp so
// the direction stays well defined while dwelling.
func headingAt(curve *Curve, t float64, backward bool) mgl64.Vec3 {
	step := headingStep
	if backward {
		step = -step
	}

	ahead := t + step
	if ahead > 1 || ahead < 0 {
		// Dwelling at an endpoint: keep the arrival direction.
		return unitOr(curve.Evaluate(t).Sub(curve.Evaluate(t-step)), mgl64.Vec3{0, 0, 1})
	}
	return unitOr(curve.Evaluate(ahead).Sub(curve.Evaluate(t)), mgl64.Vec3{0, 0, 1})
}

// unitOr normalizes v, falling back when the direction is degenerate.
func unitOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < 1e-12 {
		return fallback
	}
	return v.Normalize()
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
