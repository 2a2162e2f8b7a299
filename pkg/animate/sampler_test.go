package animate

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func buildTestPath(t *testing.T) *Curve {
	t.Helper()
	c, err := BuildCurve([]mgl64.Vec3{{0, 0, 0}, {5, 0, 0}})
	if err != nil {
		t.Fatalf("BuildCurve failed: %v", err)
	}
	return c
}

func TestSamplePose_ForwardMidpoint(t *testing.T) {
	curve := buildTestPath(t)
	cfg := testCycle

	ps := PhaseAt(4, 0, cfg)
	pose := SamplePose(curve, ps, cfg, 4)

	if !vecClose(pose.Position, mgl64.Vec3{2.5, 0, 0}, 1e-9) {
		t.Errorf("position = %v, want (2.5, 0, 0)", pose.Position)
	}
	if !vecClose(pose.Heading, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("heading = %v, want +X travel direction", pose.Heading)
	}
}

func TestSamplePose_BackwardHeadingFollowsTravel(t *testing.T) {
	curve := buildTestPath(t)
	cfg := testCycle

	// elapsed 15 is halfway back: localT 0.5, moving toward decreasing t.
	ps := PhaseAt(15, 0, cfg)
	pose := SamplePose(curve, ps, cfg, 15)

	if !vecClose(pose.Position, mgl64.Vec3{2.5, 0, 0}, 1e-9) {
		t.Errorf("position = %v, want (2.5, 0, 0)", pose.Position)
	}
	if !vecClose(pose.Heading, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("heading = %v, want -X travel direction", pose.Heading)
	}
}

func TestSamplePose_StartsAtFirstWaypoint(t *testing.T) {
	curve := buildTestPath(t)

	cfg := testCycle
	ps := PhaseAt(0, 0, cfg)
	pose := SamplePose(curve, ps, cfg, 0)
	if pose.Position != curve.Start() {
		t.Errorf("position at elapsed 0 = %v, want first waypoint %v", pose.Position, curve.Start())
	}

	// With an offset, the cycle start lands where (elapsed+offset) wraps to 0.
	cfg.OffsetSeconds = 6
	elapsed := cfg.CycleSeconds() - cfg.OffsetSeconds
	ps = PhaseAt(elapsed, cfg.OffsetSeconds, cfg)
	pose = SamplePose(curve, ps, cfg, elapsed)
	if pose.Position != curve.Start() {
		t.Errorf("offset cycle start position = %v, want %v", pose.Position, curve.Start())
	}
}

func TestSamplePose_DwellPinsPositionAndKillsBob(t *testing.T) {
	curve := buildTestPath(t)
	cfg := testCycle
	cfg.BobAmplitude = 0.12
	cfg.BobFrequency = 1.7

	// Entire dwell-end window: pinned at the last waypoint, zero bob, zero roll.
	for elapsed := 8.0; elapsed < 11.0; elapsed += 0.375 {
		ps := PhaseAt(elapsed, 0, cfg)
		pose := SamplePose(curve, ps, cfg, elapsed)

		if pose.Position != curve.End() {
			t.Errorf("elapsed %g: position = %v, want pinned at %v", elapsed, pose.Position, curve.End())
		}
		if pose.VerticalOffset != 0 {
			t.Errorf("elapsed %g: vertical offset = %v, want exactly 0 while dwelling", elapsed, pose.VerticalOffset)
		}
		if pose.Roll != 0 {
			t.Errorf("elapsed %g: roll = %v, want exactly 0 while dwelling", elapsed, pose.Roll)
		}
	}
}

func TestSamplePose_BobWhileMoving(t *testing.T) {
	curve := buildTestPath(t)
	cfg := testCycle
	cfg.BobAmplitude = 0.12
	cfg.BobFrequency = 0.9

	sawBob := false
	sawRoll := false
	for elapsed := 0.1; elapsed < 8.0; elapsed += 0.3 {
		ps := PhaseAt(elapsed, 0, cfg)
		pose := SamplePose(curve, ps, cfg, elapsed)

		if math.Abs(pose.VerticalOffset) > cfg.BobAmplitude+1e-12 {
			t.Errorf("elapsed %g: vertical offset %v exceeds amplitude %v", elapsed, pose.VerticalOffset, cfg.BobAmplitude)
		}
		if pose.VerticalOffset != 0 {
			sawBob = true
		}
		if pose.Roll != 0 {
			sawRoll = true
		}
	}
	if !sawBob {
		t.Error("no vertical bob observed during forward walk")
	}
	if !sawRoll {
		t.Error("no roll sway observed during forward walk")
	}
}

func TestSamplePose_ZeroAmplitudeDisablesSecondaryMotion(t *testing.T) {
	curve := buildTestPath(t)
	cfg := testCycle
	cfg.BobFrequency = 2.0 // frequency set but amplitude zero

	for elapsed := 0.1; elapsed < 8.0; elapsed += 0.7 {
		ps := PhaseAt(elapsed, 0, cfg)
		pose := SamplePose(curve, ps, cfg, elapsed)
		if pose.VerticalOffset != 0 || pose.Roll != 0 {
			t.Errorf("elapsed %g: secondary motion %v/%v with zero amplitude", elapsed, pose.VerticalOffset, pose.Roll)
		}
	}
}

func TestSamplePose_OffsetShiftsTrajectory(t *testing.T) {
	curve := buildTestPath(t)

	base := testCycle
	base.BobAmplitude = 0.05
	base.BobFrequency = 1.1

	shifted := base
	shifted.OffsetSeconds = 7.25

	// Same trajectory, phase-shifted by the offset.
	for _, elapsed := range []float64{0, 2.5, 9, 13.75, 20} {
		a := SamplePose(curve, PhaseAt(elapsed, shifted.OffsetSeconds, shifted), shifted, elapsed)
		b := SamplePose(curve, PhaseAt(elapsed+shifted.OffsetSeconds, 0, base), base, elapsed+shifted.OffsetSeconds)

		if !vecClose(a.Position, b.Position, 1e-12) {
			t.Errorf("elapsed %g: position %v != shifted position %v", elapsed, a.Position, b.Position)
		}
		if math.Abs(a.VerticalOffset-b.VerticalOffset) > 1e-12 {
			t.Errorf("elapsed %g: bob %v != shifted bob %v", elapsed, a.VerticalOffset, b.VerticalOffset)
		}
	}
}

func TestSamplePose_HeadingIsUnitLength(t *testing.T) {
	c, err := BuildCurve([]mgl64.Vec3{{0, 0, 0}, {2, 0, 3}, {5, 1, 3}, {7, 1, 0}})
	if err != nil {
		t.Fatalf("BuildCurve failed: %v", err)
	}
	cfg := testCycle

	for elapsed := 0.0; elapsed < cfg.CycleSeconds(); elapsed += 0.5 {
		ps := PhaseAt(elapsed, 0, cfg)
		pose := SamplePose(c, ps, cfg, elapsed)
		if math.Abs(pose.Heading.Len()-1) > 1e-9 {
			t.Errorf("elapsed %g (%v): heading length %v, want 1", elapsed, ps.Phase, pose.Heading.Len())
		}
	}
}
