package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ambientworks/go-officeanim/pkg/animate"
)

// Entity is one animated avatar: an immutable path curve, cycle config,
// and caption. Where the avatar is at any instant is a pure function of
// the shared clock, so Entity carries no simulation state and is safe to
// evaluate from any goroutine.
type Entity struct {
	name  string
	label string
	curve *animate.Curve
	cfg   animate.CycleConfig
}

// NewEntity builds and validates an avatar. All configuration errors
// surface here, at setup time; once an Entity exists its evaluation can
// never fail.
func NewEntity(name, label string, waypoints []mgl64.Vec3, cfg animate.CycleConfig) (*Entity, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	curve, err := animate.BuildCurve(waypoints)
	if err != nil {
		return nil, err
	}
	return &Entity{name: name, label: label, curve: curve, cfg: cfg}, nil
}

// Name returns the avatar's scene identifier.
func (e *Entity) Name() string { return e.name }

// Label returns the avatar's dwell caption.
func (e *Entity) Label() string { return e.label }

// Config returns the avatar's cycle configuration.
func (e *Entity) Config() animate.CycleConfig { return e.cfg }

// Waypoints returns the avatar's authored path.
func (e *Entity) Waypoints() []mgl64.Vec3 { return e.curve.Waypoints() }

// At evaluates the avatar for one frame of the shared clock.
func (e *Entity) At(elapsed float64) (animate.Pose, animate.DialogState) {
	ps := animate.PhaseAt(elapsed, e.cfg.OffsetSeconds, e.cfg)
	pose := animate.SamplePose(e.curve, ps, e.cfg, elapsed)
	dialog := animate.VisibilityAt(ps.Phase, e.label)
	return pose, dialog
}

// FrameAt evaluates the avatar into the wire Frame shape.
func (e *Entity) FrameAt(elapsed float64) Frame {
	ps := animate.PhaseAt(elapsed, e.cfg.OffsetSeconds, e.cfg)
	return Frame{
		Entity: e.name,
		Phase:  ps.Phase.String(),
		Pose:   animate.SamplePose(e.curve, ps, e.cfg, elapsed),
		Dialog: animate.VisibilityAt(ps.Phase, e.label),
	}
}
