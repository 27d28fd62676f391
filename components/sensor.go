package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SensorData lists the resolv tags an entity reacts to. Touching holds
// the objects overlapping it after the last UpdateSensors.
type SensorData struct {
	Tags     []string
	Touching []*resolv.Object
}

// Touches reports whether any touching object carries tag.
func (s *SensorData) Touches(tag string) bool {
	for _, o := range s.Touching {
		if o.HasTags(tag) {
			return true
		}
	}
	return false
}

var Sensor = donburi.NewComponentType[SensorData]()
