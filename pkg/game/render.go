package game

import (
	"image/color"

	"github.com/cbodonnell/blaster/pkg/kinematic"
)

// Renderer is the render target objects draw themselves to.
type Renderer interface {
	FillRect(x, y, width, height float64, clr color.Color)
	StrokeRect(x, y, width, height, strokeWidth float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	StrokeCircle(cx, cy, radius, strokeWidth float64, clr color.Color)
}

// Viewport is the visible area. World coordinates are screen coordinates.
type Viewport struct {
	Width  float64
	Height float64
}

func NewViewport(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height)}
}

// Contains reports whether p lies within [0, Width] x [0, Height].
func (v Viewport) Contains(p kinematic.Vector) bool {
	return p.X >= 0 && p.X <= v.Width && p.Y >= 0 && p.Y <= v.Height
}

// Center returns the middle of the viewport.
func (v Viewport) Center() kinematic.Vector {
	return kinematic.NewVector(v.Width/2, v.Height/2)
}
