package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// VisualSink tints the renderable surfaces of an entity.
type VisualSink interface {
	SetHighlight(c color.RGBA)
	RevertHighlight()
}

type SurfacesData struct {
	Sink VisualSink
}

var Surfaces = donburi.NewComponentType[SurfacesData]()

// Surface is one renderable material colour.
type Surface struct {
	Base    color.RGBA
	Current color.RGBA
}

// SurfaceSet is a VisualSink over a fixed list of surfaces.
type SurfaceSet struct {
	Items []Surface
}

// NewSurfaceSet builds a set whose surfaces start at their base colours.
func NewSurfaceSet(bases ...color.RGBA) *SurfaceSet {
	s := &SurfaceSet{Items: make([]Surface, len(bases))}
	for i, c := range bases {
		s.Items[i] = Surface{Base: c, Current: c}
	}
	return s
}

func (s *SurfaceSet) SetHighlight(c color.RGBA) {
	for i := range s.Items {
		s.Items[i].Current = c
	}
}

func (s *SurfaceSet) RevertHighlight() {
	for i := range s.Items {
		s.Items[i].Current = s.Items[i].Base
	}
}
