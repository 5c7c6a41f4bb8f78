package render

import (
	"fmt"

	"github.com/cbodonnell/blaster/client/fonts"
	"github.com/cbodonnell/blaster/pkg/game/constants"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const hudMargin = 8

// HUDStats is the information shown in the overlay.
type HUDStats struct {
	Objects int
	Frame   uint64
}

func (s HUDStats) String() string {
	return fmt.Sprintf("Objects: %d  Frame: %d", s.Objects, s.Frame)
}

// DrawHUD writes stats to the bottom left corner of screen.
func DrawHUD(screen *ebiten.Image, stats HUDStats) {
	t := stats.String()
	bounds := text.BoundString(fonts.TTFSmallFont, t)
	op := &ebiten.DrawImageOptions{}
	// text is drawn from its baseline
	op.GeoM.Translate(hudMargin, float64(screen.Bounds().Dy()-hudMargin-bounds.Max.Y))
	op.ColorScale.ScaleWithColor(constants.HUDColor)
	text.DrawWithOptions(screen, t, fonts.TTFSmallFont, op)
}
