package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the only render layer the sandbox uses.
const Default ecs.LayerID = 0

// PhysicsConfig contains physics-related configuration values.
// Units are pixels and seconds.
type PhysicsConfig struct {
	// Kinematics
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`

	// Horizontal drag: |vx|^DragExponent * dt * DragFactor + DragBase
	DragExponent  float64 `yaml:"drag_exponent"`
	DragFactor    float64 `yaml:"drag_factor"`
	DragBase      float64 `yaml:"drag_base"`
	DragStopSpeed float64 `yaml:"drag_stop_speed"`

	// Collision
	ContactMargin float64 `yaml:"contact_margin"` // Gap left between a resolved body and its obstacle
	Detector      string  `yaml:"detector"`       // "sweep" or "corner"

	// Clock
	FixedTimestep float64 `yaml:"fixed_timestep"` // Seconds per frame, 0 uses the wall clock
	MaxDelta      float64 `yaml:"max_delta"`      // Upper bound for a wall-clock frame delta
}

// PlayerConfig contains the sandbox player's tuning.
type PlayerConfig struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CoyoteFrames int     `yaml:"coyote_frames"` // Frames a jump is still allowed after leaving the ground
}

// SpaceConfig sizes the resolv overlap space.
type SpaceConfig struct {
	Width    int
	Height   int
	CellSize int
}

// CameraConfig controls how the view follows the player.
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

type DebugConfig struct {
	Enabled bool // Draw collider outlines
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Space SpaceConfig
var Camera CameraConfig
var Debug DebugConfig

var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Background = color.RGBA{R: 20, G: 20, B: 28, A: 255}
)

// Detectors lists the accepted values for PhysicsConfig.Detector.
var Detectors = []string{"sweep", "corner"}

var (
	ErrInvalidPhysics = errors.New("invalid physics config")
	ErrInvalidPlayer  = errors.New("invalid player config")
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = DefaultPhysics()

	Player = PlayerConfig{
		MoveSpeed:    160,
		JumpSpeed:    520,
		Width:        16,
		Height:       24,
		CoyoteFrames: 6,
	}

	Space = SpaceConfig{
		Width:    1280,
		Height:   720,
		CellSize: 16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{
		Enabled: true,
	}
}

// DefaultPhysics returns the stock physics constants.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Gravity:          1600,
		TerminalVelocity: 400,

		DragExponent:  1.25,
		DragFactor:    0.1,
		DragBase:      5,
		DragStopSpeed: 10,

		ContactMargin: 1,
		Detector:      "sweep",

		FixedTimestep: 0,
		MaxDelta:      0.1,
	}
}

// Validate reports the first out-of-range value.
func (p PhysicsConfig) Validate() error {
	switch {
	case p.Gravity < 0:
		return fmt.Errorf("%w: gravity %v is negative", ErrInvalidPhysics, p.Gravity)
	case p.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity must be positive", ErrInvalidPhysics)
	case p.DragExponent <= 0:
		return fmt.Errorf("%w: drag_exponent must be positive", ErrInvalidPhysics)
	case p.DragFactor < 0 || p.DragBase < 0 || p.DragStopSpeed < 0:
		return fmt.Errorf("%w: drag terms must not be negative", ErrInvalidPhysics)
	case p.ContactMargin < 0:
		return fmt.Errorf("%w: contact_margin must not be negative", ErrInvalidPhysics)
	case p.FixedTimestep < 0:
		return fmt.Errorf("%w: fixed_timestep must not be negative", ErrInvalidPhysics)
	case p.MaxDelta <= 0:
		return fmt.Errorf("%w: max_delta must be positive", ErrInvalidPhysics)
	}
	for _, name := range Detectors {
		if p.Detector == name {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown detector %q", ErrInvalidPhysics, p.Detector)
}

func (p PlayerConfig) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalidPlayer)
	}
	if p.CoyoteFrames < 0 {
		return fmt.Errorf("%w: coyote_frames must not be negative", ErrInvalidPlayer)
	}
	return nil
}

// overrides is the YAML document shape. Missing keys keep current values.
type overrides struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
}

// Load applies YAML overrides on top of the current Physics and Player
// values. Unknown keys are rejected. Nothing is changed on error.
func Load(r io.Reader) error {
	doc := overrides{Physics: Physics, Player: Player}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := doc.Physics.Validate(); err != nil {
		return err
	}
	if err := doc.Player.Validate(); err != nil {
		return err
	}

	Physics = doc.Physics
	Player = doc.Player
	return nil
}

// LoadFile opens path and applies it with Load.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
