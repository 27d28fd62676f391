package components

import "github.com/yohamta/donburi"

// SettingsData is the runtime copy of the persisted sandbox settings.
type SettingsData struct {
	Debug    bool
	Detector string
	Dirty    bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
