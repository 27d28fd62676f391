package scenes

import (
	"sync"

	cfg "github.com/automoto/sweepbox/config"
	"github.com/automoto/sweepbox/shared/leveldata"
	"github.com/automoto/sweepbox/systems"
	"github.com/automoto/sweepbox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs one level with a controllable body.
type SandboxScene struct {
	ecs   *ecs.ECS
	name  string
	level *leveldata.CollisionData
	once  sync.Once
}

func NewSandboxScene(name string, level *leveldata.CollisionData) *SandboxScene {
	return &SandboxScene{name: name, level: level}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(cfg.Background)
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) configure() {
	s.ecs = NewSandboxECS()
	factory.CreateLevel(s.ecs, s.name, s.level)
}

// NewSandboxECS wires the sandbox systems in frame order.
func NewSandboxECS() *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Simulation, skipped while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateVelocity))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGravity))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDrag))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSensors))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeadZones))
	ecs.AddSystem(systems.UpdateDespawns)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	return ecs
}
