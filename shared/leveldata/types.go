// Package leveldata turns Tiled maps into plain collision data. It does not
// import ebitengine, donburi or resolv.
package leveldata

import "github.com/automoto/sweepbox/geom"

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Solids          []Rect
	Platforms       []Platform
	MovingPlatforms []MovingPlatform
	DeadZones       []Rect
	SpawnPoints     []SpawnPoint
	MapWidth        int
	MapHeight       int
}

// Rect is an axis-aligned area in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// Platform is a one-sided edge. Directions names the sides that block.
type Platform struct {
	Rect
	Directions geom.QuadSet
}

// MovingPlatform is a solid that travels DX, DY and back, each leg taking
// Duration seconds.
type MovingPlatform struct {
	Rect
	DX, DY   float64
	Duration float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
