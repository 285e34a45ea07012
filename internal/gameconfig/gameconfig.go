package gameconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/game.yaml"

// Config holds every tunable of the client. The file is optional and may be partial;
// anything it omits keeps the value from Default().
type Config struct {
	Window     Window     `yaml:"window"`
	Logging    Logging    `yaml:"logging"`
	Storage    Storage    `yaml:"storage"`
	Backend    Backend    `yaml:"backend"`
	Player     Player     `yaml:"player"`
	Camera     Camera     `yaml:"camera"`
	Wolf       Wolf       `yaml:"wolf"`
	Locomotion Locomotion `yaml:"locomotion"`
	Scenery    Scenery    `yaml:"scenery"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Storage struct {
	Dir string `yaml:"dir"`
}

// Backend configures the REST client. An empty BaseURL runs fully offline on local defaults.
type Backend struct {
	BaseURL          string        `yaml:"base_url"`
	Timeout          time.Duration `yaml:"timeout"`
	MoveSyncInterval time.Duration `yaml:"move_sync_interval"`
}

type Player struct {
	Speed        float32 `yaml:"speed"`
	PickupRadius float32 `yaml:"pickup_radius"`
}

// Camera angles are radians. MinPolarAngle/MaxPolarAngle bound the pitch measured from +Y.
type Camera struct {
	Offset           mgl32.Vec3 `yaml:"offset,flow"`
	LookOffset       mgl32.Vec3 `yaml:"look_offset,flow"`
	MinPolarAngle    float32    `yaml:"min_polar_angle"`
	MaxPolarAngle    float32    `yaml:"max_polar_angle"`
	DefaultPitch     float32    `yaml:"default_pitch"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
}

// Wolf speeds are world units per tick; wander delays are milliseconds.
type Wolf struct {
	Spawn               mgl32.Vec3 `yaml:"spawn,flow"`
	SpawnYaw            float32    `yaml:"spawn_yaw"`
	ArenaHalfExtent     float32    `yaml:"arena_half_extent"`
	FollowTriggerRadius float32    `yaml:"follow_trigger_radius"`
	FollowStopRadius    float32    `yaml:"follow_stop_radius"`
	FollowSpeed         float32    `yaml:"follow_speed"`
	WanderSpeed         float32    `yaml:"wander_speed"`
	WanderMinMs         float64    `yaml:"wander_min_ms"`
	WanderMaxMs         float64    `yaml:"wander_max_ms"`
	IdleEpsilon         float32    `yaml:"idle_epsilon"`
}

type Locomotion struct {
	PhaseStep    float32 `yaml:"phase_step"`
	LegAmplitude float32 `yaml:"leg_amplitude"`
	ArmAmplitude float32 `yaml:"arm_amplitude"`
}

// Scenery drives the decorative ruins. Pillars appear where noise exceeds Threshold on a
// lattice of Spacing world units, never within ClearRadius of a spawn point.
type Scenery struct {
	Seed        int64   `yaml:"seed"`
	Threshold   float32 `yaml:"threshold"`
	Spacing     float32 `yaml:"spacing"`
	ClearRadius float32 `yaml:"clear_radius"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Ruins",
			TargetFPS: 60,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
			File:   "logs/game.log",
		},
		Storage: Storage{Dir: "config/prefs"},
		Backend: Backend{
			BaseURL:          "http://localhost:3000/api",
			Timeout:          3 * time.Second,
			MoveSyncInterval: 500 * time.Millisecond,
		},
		Player: Player{
			Speed:        0.1,
			PickupRadius: 2,
		},
		Camera: DefaultCamera(),
		Wolf:   DefaultWolf(),
		Locomotion: Locomotion{
			PhaseStep:    0.1,
			LegAmplitude: 0.5,
			ArmAmplitude: 0.3,
		},
		Scenery: Scenery{
			Seed:        7,
			Threshold:   0.58,
			Spacing:     6,
			ClearRadius: 6,
		},
	}
}

// DefaultCamera returns the orbit rig geometry: 5 up and 10 back, looking 1 unit above the target.
func DefaultCamera() Camera {
	return Camera{
		Offset:           mgl32.Vec3{0, 5, 10},
		LookOffset:       mgl32.Vec3{0, 1, 0},
		MinPolarAngle:    0.1,
		MaxPolarAngle:    math32.Pi/2 - 0.1,
		DefaultPitch:     math32.Pi / 4,
		MouseSensitivity: 0.005,
	}
}

// DefaultWolf returns the wolf tuning used by the shipped game.
func DefaultWolf() Wolf {
	return Wolf{
		Spawn:               mgl32.Vec3{10, 0, 10},
		ArenaHalfExtent:     45,
		FollowTriggerRadius: 15,
		FollowStopRadius:    3,
		FollowSpeed:         0.08,
		WanderSpeed:         0.03,
		WanderMinMs:         3000,
		WanderMaxMs:         8000,
		IdleEpsilon:         0.0001,
	}
}

// Load reads the config at path on top of Default(). A missing file is not an error.
// If the file is malformed or fails validation, Default() is returned with the error so the
// caller can log it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("gameconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("gameconfig: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("gameconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects geometry the controllers cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Camera.MinPolarAngle >= c.Camera.MaxPolarAngle {
		errs = append(errs, fmt.Errorf("camera: min_polar_angle %v must be below max_polar_angle %v", c.Camera.MinPolarAngle, c.Camera.MaxPolarAngle))
	}
	if c.Wolf.ArenaHalfExtent <= 0 {
		errs = append(errs, fmt.Errorf("wolf: arena_half_extent must be positive"))
	}
	if c.Wolf.FollowStopRadius < 0 || c.Wolf.FollowStopRadius >= c.Wolf.FollowTriggerRadius {
		errs = append(errs, fmt.Errorf("wolf: follow_stop_radius %v must be in [0, follow_trigger_radius %v)", c.Wolf.FollowStopRadius, c.Wolf.FollowTriggerRadius))
	}
	if c.Wolf.WanderMinMs < 0 || c.Wolf.WanderMaxMs < c.Wolf.WanderMinMs {
		errs = append(errs, fmt.Errorf("wolf: wander delay range [%v, %v] is invalid", c.Wolf.WanderMinMs, c.Wolf.WanderMaxMs))
	}
	if c.Scenery.Threshold < 0 || c.Scenery.Threshold >= 1 {
		errs = append(errs, fmt.Errorf("scenery: threshold %v must be in [0, 1)", c.Scenery.Threshold))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player: speed must not be negative"))
	}
	return errors.Join(errs...)
}

// Environment variables that override the file. An empty RUINS_BACKEND_URL means offline.
const (
	EnvBackendURL = "RUINS_BACKEND_URL"
	EnvLogLevel   = "RUINS_LOG_LEVEL"
	EnvStorageDir = "RUINS_STORAGE_DIR"
)

// ApplyEnv overrides cfg from the environment through lookup (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBackendURL); ok {
		c.Backend.BaseURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvStorageDir); ok && v != "" {
		c.Storage.Dir = v
	}
}
