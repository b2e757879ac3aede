package config

import (
	"github.com/yohamta/donburi/features/math"
)

// ToolTemplate holds the immutable per-variant tuning of a tool.
type ToolTemplate struct {
	Sprite   string       `yaml:"sprite"`
	Behavior BehaviorKind `yaml:"behavior"`

	Speed         float64 `yaml:"speed"`          // pixels per second
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per second
	MaxCount      int     `yaml:"max_count"`      // concurrently active instances

	// Lifetime behavior
	Lifetime      float64 `yaml:"lifetime"`       // seconds before silent expiry
	BlinkAt       float64 `yaml:"blink_at"`       // seconds after spawn the warning starts
	BlinkInterval float64 `yaml:"blink_interval"` // seconds between blink toggles

	CollectDistance float64 `yaml:"collect_distance"`
	HitboxSize      float64 `yaml:"hitbox_size"`

	// Wander behavior
	DirectionChangeInterval float64  `yaml:"direction_change_interval"`
	TurnSmoothness          float64  `yaml:"turn_smoothness"`
	AvoidObstacleDistance   float64  `yaml:"avoid_obstacle_distance"`
	AvoidObstacleRadius     float64  `yaml:"avoid_obstacle_radius"`
	ObstacleTags            []string `yaml:"obstacle_tags"`
	StayInBounds            bool     `yaml:"stay_in_bounds"`
	ReflectOnBounds         bool     `yaml:"reflect_on_bounds"`

	// MaxOverflow caps on-demand instances beyond MaxCount (0 = unbounded)
	MaxOverflow int `yaml:"max_overflow"`
}

// ToolEntry binds a variant to its template. A nil template is a
// configuration defect and is skipped by the factory.
type ToolEntry struct {
	Type     ToolType      `yaml:"type"`
	Template *ToolTemplate `yaml:"template"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// WorldConfig contains arena and spawn placement configuration
type WorldConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	CellSize   int    `yaml:"cell_size"`
	TickRate   int    `yaml:"tick_rate"`
	RandomSeed uint64 `yaml:"random_seed"` // 0 = seeded from the clock

	SpawnAreaCenter       math.Vec2 `yaml:"spawn_area_center"`
	SpawnAreaSize         math.Vec2 `yaml:"spawn_area_size"`
	MinToolDistance       float64   `yaml:"min_tool_distance"`
	MinDistanceFromPlayer float64   `yaml:"min_distance_from_player"`
	SpawnInterval         float64   `yaml:"spawn_interval"` // seconds
	SpawnAttempts         int       `yaml:"spawn_attempts"`

	PlayerStart math.Vec2 `yaml:"player_start"`
	PlayerSpeed float64   `yaml:"player_speed"`
	PlayerSize  float64   `yaml:"player_size"`

	Obstacles []Rect `yaml:"obstacles"`
}

// InventoryConfig contains inventory capacity configuration
type InventoryConfig struct {
	MaxCapacity int `yaml:"max_capacity"`
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Config is the root of the YAML file accepted by Load.
type Config struct {
	Tools     []ToolEntry     `yaml:"tools"`
	World     WorldConfig     `yaml:"world"`
	Inventory InventoryConfig `yaml:"inventory"`
	Log       LogConfig       `yaml:"log"`
}

// Global configuration instances
var Tools []ToolEntry
var World WorldConfig
var Inventory InventoryConfig
var Log LogConfig

// Template returns the configured template for t, or nil.
func Template(entries []ToolEntry, t ToolType) *ToolTemplate {
	for _, e := range entries {
		if e.Type == t {
			return e.Template
		}
	}
	return nil
}

// Current returns a copy of the global configuration.
func Current() Config {
	return Config{
		Tools:     append([]ToolEntry(nil), Tools...),
		World:     World,
		Inventory: Inventory,
		Log:       Log,
	}
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Tools: []ToolEntry{
			{Type: ToolSaw, Template: &ToolTemplate{
				Sprite:          "saw.png",
				Behavior:        BehaviorSpin,
				Speed:           0,
				RotationSpeed:   90,
				MaxCount:        5,
				CollectDistance: 18,
				HitboxSize:      16,
			}},
			{Type: ToolAxe, Template: &ToolTemplate{
				Sprite:                  "axe.png",
				Behavior:                BehaviorWander,
				Speed:                   40,
				RotationSpeed:           0,
				MaxCount:                3,
				CollectDistance:         18,
				HitboxSize:              16,
				DirectionChangeInterval: 2,
				TurnSmoothness:          6,
				AvoidObstacleDistance:   20,
				AvoidObstacleRadius:     8,
				ObstacleTags:            []string{"solid"},
				StayInBounds:            true,
				ReflectOnBounds:         true,
			}},
			{Type: ToolHammer, Template: &ToolTemplate{
				Sprite:          "hammer.png",
				Behavior:        BehaviorLifetime,
				MaxCount:        4,
				Lifetime:        10,
				BlinkAt:         7,
				BlinkInterval:   0.25,
				CollectDistance: 18,
				HitboxSize:      16,
			}},
		},
		World: WorldConfig{
			Width:    640,
			Height:   360,
			CellSize: 16,
			TickRate: 60,

			SpawnAreaCenter:       math.Vec2{X: 320, Y: 180},
			SpawnAreaSize:         math.Vec2{X: 560, Y: 300},
			MinToolDistance:       32,
			MinDistanceFromPlayer: 64,
			SpawnInterval:         1,
			SpawnAttempts:         10,

			PlayerStart: math.Vec2{X: 320, Y: 180},
			PlayerSpeed: 120,
			PlayerSize:  16,

			Obstacles: []Rect{
				{X: 160, Y: 96, W: 64, H: 32},
				{X: 416, Y: 232, W: 64, H: 32},
			},
		},
		Inventory: InventoryConfig{
			MaxCapacity: 100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Apply replaces the global configuration instances.
func Apply(c Config) {
	Tools = c.Tools
	World = c.World
	Inventory = c.Inventory
	Log = c.Log
}

func init() {
	Apply(Defaults())
}
