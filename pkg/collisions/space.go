package collisions

import (
	"github.com/cbodonnell/blaster/pkg/game/constants"
	"github.com/solarlune/resolv"
)

// NewCollisionSpace creates the spatial registry object shapes live in.
// Sizes that are not positive fall back to the default viewport.
func NewCollisionSpace(width, height int) *resolv.Space {
	if width <= 0 {
		width = constants.ViewportWidth
	}
	if height <= 0 {
		height = constants.ViewportHeight
	}
	return resolv.NewSpace(width, height, constants.CollisionCellSize, constants.CollisionCellSize)
}
