package animate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// centripetalAlpha is the Catmull-Rom knot parameterization exponent.
// 0.5 (centripetal) avoids the cusps and self-intersections the uniform
// parameterization produces on unevenly spaced waypoints.
const centripetalAlpha = 0.5

// Curve is an open centripetal Catmull-Rom spline through an ordered list
// of waypoints. It passes through every waypoint exactly, has continuous
// tangents at interior waypoints, and is immutable after construction.
//
// With exactly two waypoints there is no curvature freedom and the spline
// degenerates to the straight segment between them.
type Curve struct {
	waypoints []mgl64.Vec3

	// ctrl is waypoints padded with one mirrored phantom point at each end
	// so the spline is defined on the first and last real segment.
	ctrl []mgl64.Vec3
}

// BuildCurve constructs the path curve for an ordered waypoint list.
// At least two waypoints are required and consecutive waypoints must be
// distinct; violations wrap ErrConfiguration.
func BuildCurve(waypoints []mgl64.Vec3) (*Curve, error) {
	if len(waypoints) < 2 {
		return nil, configErrorf("path needs at least 2 waypoints, got %d", len(waypoints))
	}
	for i := 1; i < len(waypoints); i++ {
		if waypoints[i].Sub(waypoints[i-1]).Len() == 0 {
			return nil, configErrorf("waypoints %d and %d coincide", i-1, i)
		}
	}

	pts := make([]mgl64.Vec3, len(waypoints))
	copy(pts, waypoints)

	n := len(pts)
	ctrl := make([]mgl64.Vec3, 0, n+2)
	ctrl = append(ctrl, pts[0].Mul(2).Sub(pts[1]))
	ctrl = append(ctrl, pts...)
	ctrl = append(ctrl, pts[n-1].Mul(2).Sub(pts[n-2]))

	return &Curve{waypoints: pts, ctrl: ctrl}, nil
}

// Waypoints returns the authored waypoints.
func (c *Curve) Waypoints() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(c.waypoints))
	copy(out, c.waypoints)
	return out
}

// Start returns the first waypoint.
func (c *Curve) Start() mgl64.Vec3 { return c.waypoints[0] }

// End returns the last waypoint.
func (c *Curve) End() mgl64.Vec3 { return c.waypoints[len(c.waypoints)-1] }

// Evaluate returns the point at curve parameter t. t is clamped to [0, 1]
// so float jitter at the boundaries can never fail; Evaluate(0) is exactly
// the first waypoint and Evaluate(1) exactly the last.
func (c *Curve) Evaluate(t float64) mgl64.Vec3 {
	if t <= 0 {
		return c.waypoints[0]
	}
	if t >= 1 {
		return c.waypoints[len(c.waypoints)-1]
	}

	// Uniform split of t across the waypoint segments.
	segs := len(c.waypoints) - 1
	scaled := t * float64(segs)
	seg := int(math.Floor(scaled))
	if seg >= segs {
		seg = segs - 1
	}
	u := scaled - float64(seg)
	if u == 0 {
		return c.waypoints[seg]
	}

	return catmullRom(c.ctrl[seg], c.ctrl[seg+1], c.ctrl[seg+2], c.ctrl[seg+3], u)
}

// catmullRom evaluates one centripetal Catmull-Rom segment between p1 and
// p2 at u in (0, 1) using the Barry-Goldman pyramid.
func catmullRom(p0, p1, p2, p3 mgl64.Vec3, u float64) mgl64.Vec3 {
	t0 := 0.0
	t1 := t0 + knotInterval(p0, p1)
	t2 := t1 + knotInterval(p1, p2)
	t3 := t2 + knotInterval(p2, p3)
	t := t1 + u*(t2-t1)

	a1 := weigh(p0, p1, t0, t1, t)
	a2 := weigh(p1, p2, t1, t2, t)
	a3 := weigh(p2, p3, t2, t3, t)

	b1 := weigh(a1, a2, t0, t2, t)
	b2 := weigh(a2, a3, t1, t3, t)

	return weigh(b1, b2, t1, t2, t)
}

// weigh blends a and b linearly in knot space over [ta, tb].
func weigh(a, b mgl64.Vec3, ta, tb, t float64) mgl64.Vec3 {
	w := (t - ta) / (tb - ta)
	return a.Mul(1 - w).Add(b.Mul(w))
}

// knotInterval is the centripetal knot spacing between two control points.
// BuildCurve rejects coincident neighbors, so this is always positive.
func knotInterval(a, b mgl64.Vec3) float64 {
	return math.Pow(b.Sub(a).Len(), centripetalAlpha)
}
