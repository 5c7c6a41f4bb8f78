package kinematic

// This package includes the vector math used to move and aim game objects.

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a direction is requested from a vector with no length.
var ErrZeroVector = errors.New("cannot normalize a zero-length vector")

// Vector is a 2D vector in screen coordinates (y grows downward).
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing in the same direction as v.
func (v Vector) Normalize() (Vector, error) {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{}, ErrZeroVector
	}
	return Vector{X: v.X / magnitude, Y: v.Y / magnitude}, nil
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	if acceleration == 0 {
		return initialVelocity * time
	}
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// Integrate advances position by velocity over dt seconds (explicit Euler).
// Displacement can be inlined into the add, and the compiler may then fuse the
// multiply and add. The explicit conversion rounds the step first, so the
// result is position + velocity*dt rounded twice on every architecture.
func Integrate(position, velocity Vector, dt float64) Vector {
	return Vector{
		X: position.X + float64(Displacement(velocity.X, dt, 0)),
		Y: position.Y + float64(Displacement(velocity.Y, dt, 0)),
	}
}

// MapToRadius projects target onto the circle of the given radius around center,
// returning the point in world coordinates. A target equal to center has no
// direction and yields ErrZeroVector.
func MapToRadius(center, target Vector, radius float64) (Vector, error) {
	direction, err := target.Sub(center).Normalize()
	if err != nil {
		return Vector{}, err
	}
	return direction.Scale(radius).Add(center), nil
}
