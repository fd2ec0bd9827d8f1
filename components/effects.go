package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the damage flash. Tween runs from 1 to 0; the flash is
// reverted when it finishes.
type FlashData struct {
	Active bool
	Color  color.RGBA
	Tween  *gween.Tween
}

var Flash = donburi.NewComponentType[FlashData]()
