package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug         bool    `json:"debug"`
	Detector      string  `json:"detector"`
	FixedTimestep float64 `json:"fixedTimestep"`
}

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sweepbox",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the runtime settings together with the
// configured timestep.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:         s.Debug,
		Detector:      s.Detector,
		FixedTimestep: cfg.Physics.FixedTimestep,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings to the global config.
// Used during startup before the scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.Enabled = saved.Debug

	physics := cfg.Physics
	if saved.Detector != "" {
		physics.Detector = saved.Detector
	}
	if saved.FixedTimestep >= 0 {
		physics.FixedTimestep = saved.FixedTimestep
	}
	if err := physics.Validate(); err != nil {
		log.Printf("Warning: Ignoring saved physics settings: %v", err)
		return
	}
	cfg.Physics = physics
}
