package physics

import (
	"math"

	"github.com/automoto/sweepbox/geom"
)

// Drag holds the horizontal drag curve parameters.
type Drag struct {
	Exponent  float64
	Factor    float64
	Base      float64
	StopSpeed float64 // below this speed the body stops outright
}

// Integrate returns pos advanced by vel over dt.
func Integrate(pos, vel geom.Vec2, dt float64) geom.Vec2 {
	return pos.Add(vel.Scale(dt))
}

// ApplyGravity accelerates velY downward while it is below terminal.
// The result never exceeds terminal, but a velocity already above it is
// returned unchanged.
func ApplyGravity(velY, dt, gravity, terminal float64) float64 {
	if velY >= terminal {
		return velY
	}
	return math.Min(velY+gravity*dt, terminal)
}

// ApplyDrag decelerates velX toward zero without crossing it.
func ApplyDrag(velX, dt float64, d Drag) float64 {
	if velX == 0 {
		return 0
	}
	eq := math.Pow(math.Abs(velX), d.Exponent)*dt*d.Factor + d.Base
	switch {
	case velX > d.StopSpeed:
		return math.Max(velX-eq, 0)
	case velX < -d.StopSpeed:
		return math.Min(velX+eq, 0)
	}
	return 0
}
