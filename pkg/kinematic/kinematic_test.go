package kinematic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name     string
		position Vector
		velocity Vector
		dt       float64
	}{
		{name: "zero dt", position: NewVector(3, 4), velocity: NewVector(100, -100), dt: 0},
		{name: "one frame", position: NewVector(384, 240), velocity: NewVector(100, 0), dt: 1.0 / 60},
		{name: "long frame", position: NewVector(-5, 12.5), velocity: NewVector(-3.25, 7), dt: 2.75},
		{name: "at rest", position: NewVector(1, 1), velocity: Vector{}, dt: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Integrate(tt.position, tt.velocity, tt.dt)
			assert.Equal(t, tt.position.X+float64(tt.velocity.X*tt.dt), got.X)
			assert.Equal(t, tt.position.Y+float64(tt.velocity.Y*tt.dt), got.Y)
		})
	}
}

func TestDisplacement(t *testing.T) {
	assert.Equal(t, 5.0, Displacement(10, 0.5, 0))
	assert.InDelta(t, 10*2+0.5*-9.8*4, Displacement(10, 2, -9.8), 1e-9)
}

func TestNormalize(t *testing.T) {
	got, err := NewVector(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, got.X, 1e-12)
	assert.InDelta(t, 0.8, got.Y, 1e-12)
	assert.InDelta(t, 1.0, got.Magnitude(), 1e-12)

	_, err = Vector{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestMapToRadius(t *testing.T) {
	tests := []struct {
		name    string
		center  Vector
		target  Vector
		radius  float64
		want    Vector
		wantErr error
	}{
		{
			name:   "positive x rim",
			center: NewVector(0, 0),
			target: NewVector(10, 0),
			radius: 5,
			want:   NewVector(5, 0),
		},
		{
			name:   "target inside the radius",
			center: NewVector(100, 100),
			target: NewVector(100, 98),
			radius: 30,
			want:   NewVector(100, 70),
		},
		{
			name:    "degenerate target",
			center:  NewVector(7, 7),
			target:  NewVector(7, 7),
			radius:  30,
			wantErr: ErrZeroVector,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapToRadius(tt.center, tt.target, tt.radius)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Vector{}, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.radius, got.Sub(tt.center).Magnitude(), 1e-9)
		})
	}
}

func TestMapToRadius_diagonal(t *testing.T) {
	got, err := MapToRadius(NewVector(0, 0), NewVector(1, 1), math.Sqrt2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.X, 1e-12)
	assert.InDelta(t, 1.0, got.Y, 1e-12)
}
