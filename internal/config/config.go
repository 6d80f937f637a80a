package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/tilewalk/internal/model"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "TILEWALK_CONFIG"

// Pathfinding holds all configuration for the geometry core and the CLI.
type Pathfinding struct {
	Search Search `yaml:"search"`
	Walker Walker `yaml:"walker"`
	LOS    LOS    `yaml:"los"`

	// CLI
	LogLevel     string        `yaml:"log_level"` // debug, info, warn, error
	MapPath      string        `yaml:"map_path"`
	TileDataPath string        `yaml:"tiledata_path"`
	Tick         time.Duration `yaml:"tick"`
}

// Search holds A* search policy.
type Search struct {
	NodeBudget int `yaml:"node_budget"`
	// GoalZTolerance bounds |z - targetZ| of an accepted goal; negative ignores Z.
	GoalZTolerance int `yaml:"goal_z_tolerance"`
	// RunDistance: autowalk runs when the goal is farther than this many tiles.
	RunDistance        int  `yaml:"run_distance"`
	IgnoreStaminaCheck bool `yaml:"ignore_stamina_check"`
	SmoothDoors        bool `yaml:"smooth_doors"`
}

// Walker holds avatar step pacing.
type Walker struct {
	MaxQueuedSteps   int           `yaml:"max_queued_steps"`
	WalkDelay        time.Duration `yaml:"walk_delay"`
	RunDelay         time.Duration `yaml:"run_delay"`
	MountedWalkDelay time.Duration `yaml:"mounted_walk_delay"`
	MountedRunDelay  time.Duration `yaml:"mounted_run_delay"`
	TurnDelay        time.Duration `yaml:"turn_delay"`
}

// LOS holds line-of-sight tolerances (Z units).
type LOS struct {
	EyeHeight     int `yaml:"eye_height"`
	SteepDrop     int `yaml:"steep_drop"`
	ShallowRise   int `yaml:"shallow_rise"`
	FlatTolerance int `yaml:"flat_tolerance"`
}

// DefaultPathfinding returns config with classic client values.
func DefaultPathfinding() Pathfinding {
	return Pathfinding{
		Search: Search{
			NodeBudget:     10000,
			GoalZTolerance: 16,
			RunDistance:    14,
		},
		Walker: Walker{
			MaxQueuedSteps:   5,
			WalkDelay:        400 * time.Millisecond,
			RunDelay:         200 * time.Millisecond,
			MountedWalkDelay: 200 * time.Millisecond,
			MountedRunDelay:  100 * time.Millisecond,
			TurnDelay:        100 * time.Millisecond,
		},
		LOS: LOS{
			EyeHeight:     14,
			SteepDrop:     20,
			ShallowRise:   10,
			FlatTolerance: 8,
		},
		LogLevel:     "info",
		MapPath:      "map.yaml",
		TileDataPath: "tiledata.yaml",
		Tick:         50 * time.Millisecond,
	}
}

// WalkDelays converts the walker section to the avatar's pacing settings.
func (w Walker) WalkDelays() model.WalkDelays {
	return model.WalkDelays{
		MaxQueuedSteps: w.MaxQueuedSteps,
		Walk:           w.WalkDelay,
		Run:            w.RunDelay,
		MountedWalk:    w.MountedWalkDelay,
		MountedRun:     w.MountedRunDelay,
		Turn:           w.TurnDelay,
	}
}

// Validate rejects settings the core cannot run with.
func (c Pathfinding) Validate() error {
	if c.Search.NodeBudget <= 0 {
		return fmt.Errorf("search.node_budget must be positive, got %d", c.Search.NodeBudget)
	}
	if c.Walker.MaxQueuedSteps <= 0 {
		return fmt.Errorf("walker.max_queued_steps must be positive, got %d", c.Walker.MaxQueuedSteps)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	return nil
}

// ResolvePath returns the config path: the TILEWALK_CONFIG environment
// variable when set, otherwise fallback.
func ResolvePath(fallback string) string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return fallback
}

// LoadPathfinding loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadPathfinding(path string) (Pathfinding, error) {
	cfg := DefaultPathfinding()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
