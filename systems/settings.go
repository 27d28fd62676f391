package systems

import (
	"log"

	"github.com/automoto/sweepbox/components"
	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/physics"
	"github.com/automoto/sweepbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug and detector toggles and saves the
// settings when they change. Runs even when paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleDetector).JustPressed {
		settings.Detector = nextDetector(settings.Detector)
		settings.Dirty = true
		applyPlayerResolver(ecs, settings.Detector)
		log.Printf("Collision detector: %s", settings.Detector)
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// applyPlayerResolver switches the players to the resolution policy that
// goes with detector.
func applyPlayerResolver(ecs *ecs.ECS, detector string) {
	resolver, err := physics.ResolverByName(detector, cfg.Physics.ContactMargin)
	if err != nil {
		log.Printf("Warning: %v, keeping the current resolver", err)
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.SolidCollider) {
			components.SolidCollider.Get(e).Resolver = resolver
		}
	})
}

// nextDetector cycles through the configured detector names.
func nextDetector(name string) string {
	for i, d := range cfg.Detectors {
		if d == name {
			return cfg.Detectors[(i+1)%len(cfg.Detectors)]
		}
	}
	return cfg.Detectors[0]
}

// GetOrCreateSettings returns the singleton Settings component, seeded
// from the global config.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:    cfg.Debug.Enabled,
			Detector: cfg.Physics.Detector,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
