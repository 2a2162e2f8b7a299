// Package animate computes avatar movement along authored office paths.
//
// Every output is a pure function of elapsed wall-clock time, a per-entity
// offset, and immutable configuration. Nothing in this package accumulates
// per-frame deltas, so variable frame rates and dropped frames can never
// cause positional drift, and any number of avatars can share one clock
// without coordination.
package animate

import "github.com/go-gl/mathgl/mgl64"

// Phase is one segment of a movement cycle. It is recomputed from elapsed
// time on every query and never stored.
type Phase int

const (
	// PhaseForward means the avatar is walking start -> end.
	PhaseForward Phase = iota

	// PhaseDwellEnd means the avatar is paused at the far end of the path.
	// This is the only phase during which the dialog bubble shows.
	PhaseDwellEnd

	// PhaseBackward means the avatar is walking end -> start.
	PhaseBackward

	// PhaseDwellStart means the avatar is paused at the path origin.
	PhaseDwellStart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseForward:
		return "forward"
	case PhaseDwellEnd:
		return "dwell-end"
	case PhaseBackward:
		return "backward"
	case PhaseDwellStart:
		return "dwell-start"
	default:
		return "unknown"
	}
}

// Moving reports whether the avatar is actually translating along the path
// during this phase. Secondary walk motion applies only while moving.
func (p Phase) Moving() bool {
	return p == PhaseForward || p == PhaseBackward
}

// CycleConfig describes one avatar's movement cycle. Immutable once built;
// validate with Validate before first use.
type CycleConfig struct {
	// ForwardSeconds is how long the start -> end walk takes. The return
	// walk takes the same time (the cycle is symmetric).
	ForwardSeconds float64

	// DwellSeconds is how long the avatar pauses at each end of the path.
	DwellSeconds float64

	// OffsetSeconds shifts this avatar's cycle against the shared clock so
	// identical cycles do not move in lockstep.
	OffsetSeconds float64

	// BobAmplitude is the peak vertical walk-bob displacement in world
	// units. Zero disables all secondary walk motion.
	BobAmplitude float64

	// BobFrequency is the walk-bob rate in cycles per second.
	BobFrequency float64
}

// CycleSeconds returns the full cycle period: forward + dwell + backward + dwell.
func (c CycleConfig) CycleSeconds() float64 {
	return 2*c.ForwardSeconds + 2*c.DwellSeconds
}

// Validate checks the configuration. All validation happens here, at
// construction time; the per-frame functions assume a valid config and
// never fail.
func (c CycleConfig) Validate() error {
	if c.ForwardSeconds <= 0 {
		return configErrorf("forward duration must be positive, got %g", c.ForwardSeconds)
	}
	if c.DwellSeconds < 0 {
		return configErrorf("dwell duration must not be negative, got %g", c.DwellSeconds)
	}
	if c.OffsetSeconds < 0 {
		return configErrorf("offset must not be negative, got %g", c.OffsetSeconds)
	}
	if c.BobAmplitude < 0 {
		return configErrorf("bob amplitude must not be negative, got %g", c.BobAmplitude)
	}
	if c.BobFrequency < 0 {
		return configErrorf("bob frequency must not be negative, got %g", c.BobFrequency)
	}
	return nil
}

// PhaseSample is the result of resolving the shared clock against one
// avatar's cycle: which segment it is in and how far along the path it is.
type PhaseSample struct {
	// Phase is the cycle segment at the queried instant.
	Phase Phase

	// LocalT is the curve parameter in [0, 1]: 0 at the first waypoint,
	// 1 at the last. Pinned to 1 during PhaseDwellEnd and 0 during
	// PhaseDwellStart.
	LocalT float64
}

// Pose is the fully derived placement of an avatar for one frame. It is
// recomputed every tick and never retained.
type Pose struct {
	// Position is the avatar's location on the path.
	Position mgl64.Vec3 `json:"position"`

	// Heading is a unit vector pointing in the direction of travel.
	Heading mgl64.Vec3 `json:"heading"`

	// VerticalOffset is the walk-bob displacement to add to Position.Y().
	// Exactly zero while dwelling.
	VerticalOffset float64 `json:"vertical_offset"`

	// Roll is the walk-sway lean in radians. Exactly zero while dwelling.
	Roll float64 `json:"roll"`
}

// DialogState says whether an avatar's caption bubble should be drawn.
type DialogState struct {
	// Visible is true only while the avatar dwells at the far end of its
	// path, so the caption and the pause can never drift apart.
	Visible bool `json:"visible"`

	// Label is the caption text. Always populated; Visible gates drawing.
	Label string `json:"label"`
}
