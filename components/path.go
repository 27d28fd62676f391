package components

import (
	"github.com/automoto/sweepbox/geom"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PathData drives a passive body back and forth between Origin and
// Origin+Travel. The sequence yields progress in [0, 1].
type PathData struct {
	Sequence *gween.Sequence
	Origin   geom.Vec2
	Travel   geom.Vec2
}

// At returns the position for a progress value.
func (p *PathData) At(progress float64) geom.Vec2 {
	return p.Origin.Add(p.Travel.Scale(progress))
}

var Path = donburi.NewComponentType[PathData]()
