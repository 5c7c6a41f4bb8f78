package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenRenderer draws game objects to an ebiten image with the vector package.
type ScreenRenderer struct {
	target    *ebiten.Image
	antialias bool
}

func NewScreenRenderer(antialias bool) *ScreenRenderer {
	return &ScreenRenderer{antialias: antialias}
}

// SetTarget sets the image the next draw calls go to.
func (r *ScreenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

func (r *ScreenRenderer) FillRect(x, y, width, height float64, clr color.Color) {
	if r.target == nil {
		return
	}
	vector.DrawFilledRect(r.target, float32(x), float32(y), float32(width), float32(height), clr, r.antialias)
}

func (r *ScreenRenderer) StrokeRect(x, y, width, height, strokeWidth float64, clr color.Color) {
	if r.target == nil {
		return
	}
	vector.StrokeRect(r.target, float32(x), float32(y), float32(width), float32(height), float32(strokeWidth), clr, r.antialias)
}

func (r *ScreenRenderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	if r.target == nil {
		return
	}
	vector.DrawFilledCircle(r.target, float32(cx), float32(cy), float32(radius), clr, r.antialias)
}

func (r *ScreenRenderer) StrokeCircle(cx, cy, radius, strokeWidth float64, clr color.Color) {
	if r.target == nil {
		return
	}
	vector.StrokeCircle(r.target, float32(cx), float32(cy), float32(radius), float32(strokeWidth), clr, r.antialias)
}
