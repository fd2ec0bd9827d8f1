package config

import "image/color"

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name string `yaml:"name"`

	// Detection
	DetectionRange float64 `yaml:"detection_range"`
	FieldOfView    float64 `yaml:"field_of_view"` // degrees, full cone
	LoseSightTime  float64 `yaml:"lose_sight_time"`
	EyeHeight      float64 `yaml:"eye_height"`

	// Movement
	CalmSpeed         float64 `yaml:"calm_speed"`
	AlertSpeed        float64 `yaml:"alert_speed"`
	TurnSmoothing     float64 `yaml:"turn_smoothing"` // slerp factor per second
	WaypointTolerance float64 `yaml:"waypoint_tolerance"`
	MinWaitTime       float64 `yaml:"min_wait_time"`
	MaxWaitTime       float64 `yaml:"max_wait_time"`
	PatrolSearchRange float64 `yaml:"patrol_search_range"`

	// Attack
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	EscapeMargin   float64 `yaml:"escape_margin"`
	ApproachFactor float64 `yaml:"approach_factor"` // fraction of AttackRange to stand at while closing in

	// Circling
	CircleRadius            float64 `yaml:"circle_radius"`
	OrbitPointCount         int     `yaml:"orbit_point_count"`
	RebuildOrbitThreshold   float64 `yaml:"rebuild_orbit_threshold"`
	RebuildOrbitOnMove      bool    `yaml:"rebuild_orbit_on_move"`
	MinPointDistance        float64 `yaml:"min_point_distance"`
	OrbitPointSampleDist    float64 `yaml:"orbit_point_sample_distance"`
	OrbitFallbackScale      float64 `yaml:"orbit_fallback_scale"`
	OrbitMinTargetClearance float64 `yaml:"orbit_min_target_clearance"`
	OrbitReachTolerance     float64 `yaml:"orbit_reach_tolerance"`

	// Health
	MaxHealth             float64 `yaml:"max_health"`
	KnockbackRecoveryTime float64 `yaml:"knockback_recovery_time"`
	Mass                  float64 `yaml:"mass"`

	// Dimensions
	Radius float64 `yaml:"radius"`

	// Visual
	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`
}

// HealthConfig contains damage feedback configuration values
type HealthConfig struct {
	FlashDuration float64    `yaml:"flash_duration"` // seconds
	FlashColor    color.RGBA `yaml:"-"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Drag          float64 `yaml:"drag"`           // exponential damping per second for dynamic bodies
	MaxSpeed      float64 `yaml:"max_speed"`      // cap on dynamic body speed
	RestThreshold float64 `yaml:"rest_threshold"` // below this speed a dynamic body stops
	RayStep       float64 `yaml:"ray_step"`
}

// NavigationConfig contains navigation grid configuration values
type NavigationConfig struct {
	CellSize        float64 `yaml:"cell_size"`
	AgentClearance  float64 `yaml:"agent_clearance"` // cells closer than this to a wall are unwalkable
	StoppingEpsilon float64 `yaml:"stopping_epsilon"`
	SearchRadius    int     `yaml:"search_radius"` // cells searched when snapping to the grid
	AngularSpeed    float64 `yaml:"angular_speed"` // degrees per second agents turn toward their heading
}

// ArenaConfig contains arena loading configuration values
type ArenaConfig struct {
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	SpaceCellSize int     `yaml:"space_cell_size"`
	DefaultArena  string  `yaml:"default_arena"`
}

// SpawnerConfig contains enemy spawner defaults
type SpawnerConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	MaxEnemies    int     `yaml:"max_enemies"`
	EnemyType     string  `yaml:"enemy_type"`
}

// SimConfig holds general simulation configuration
type SimConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// TargetConfig describes the tracked hostile entity's collision footprint
type TargetConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// Global configuration instances
var Enemy EnemyConfig
var Health HealthConfig
var Physics PhysicsConfig
var Navigation NavigationConfig
var Arena ArenaConfig
var Spawner SpawnerConfig
var Sim SimConfig
var Target TargetConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue   = color.RGBA{R: 60, G: 100, B: 255, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// EnemyType returns the named type, falling back to the default type.
func EnemyType(name string) (EnemyTypeConfig, string) {
	if t, ok := Enemy.Types[name]; ok {
		return t, name
	}
	return Enemy.Types[Enemy.DefaultType], Enemy.DefaultType
}

func init() {
	Reset()
}

// Reset restores every configuration block to its built-in defaults.
func Reset() {
	bokoblin := EnemyTypeConfig{
		Name: "Bokoblin",

		DetectionRange: 30,
		FieldOfView:    60,
		LoseSightTime:  3,
		EyeHeight:      1,

		CalmSpeed:         3.5,
		AlertSpeed:        5,
		TurnSmoothing:     7,
		WaypointTolerance: 1,
		MinWaitTime:       1,
		MaxWaitTime:       3,
		PatrolSearchRange: 50,

		AttackRange:    2,
		AttackCooldown: 1.5,
		EscapeMargin:   1.5,
		ApproachFactor: 0.9,

		CircleRadius:            5,
		OrbitPointCount:         10,
		RebuildOrbitThreshold:   1.5,
		RebuildOrbitOnMove:      false,
		MinPointDistance:        0.5,
		OrbitPointSampleDist:    1.5,
		OrbitFallbackScale:      0.8,
		OrbitMinTargetClearance: 0.5,
		OrbitReachTolerance:     0.6,

		MaxHealth:             100,
		KnockbackRecoveryTime: 0.5,
		Mass:                  1,

		Radius: 0.4,

		TintColor: White,
	}

	blueBokoblin := bokoblin
	blueBokoblin.Name = "BlueBokoblin"
	blueBokoblin.DetectionRange = 35
	blueBokoblin.FieldOfView = 80
	blueBokoblin.AlertSpeed = 5.5
	blueBokoblin.AttackCooldown = 1.2
	blueBokoblin.MaxHealth = 160
	blueBokoblin.TintColor = Blue

	moblin := bokoblin
	moblin.Name = "Moblin"
	moblin.DetectionRange = 25
	moblin.CalmSpeed = 3
	moblin.AlertSpeed = 4.2
	moblin.TurnSmoothing = 4
	moblin.AttackRange = 3
	moblin.AttackCooldown = 2.2
	moblin.CircleRadius = 6
	moblin.MaxHealth = 220
	moblin.KnockbackRecoveryTime = 0.35
	moblin.Mass = 3
	moblin.Radius = 0.6
	moblin.TintColor = Purple

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Bokoblin":     bokoblin,
			"BlueBokoblin": blueBokoblin,
			"Moblin":       moblin,
		},
		DefaultType: "Bokoblin",
	}

	Health = HealthConfig{
		FlashDuration: 0.5,
		FlashColor:    Red,
	}

	Physics = PhysicsConfig{
		Drag:          4,
		MaxSpeed:      20,
		RestThreshold: 0.05,
		RayStep:       0.25,
	}

	Navigation = NavigationConfig{
		CellSize:        0.5,
		AgentClearance:  0.3,
		StoppingEpsilon: 0.05,
		SearchRadius:    6,
		AngularSpeed:    120,
	}

	Arena = ArenaConfig{
		PixelsPerUnit: 16,
		SpaceCellSize: 2,
		DefaultArena:  "courtyard",
	}

	Spawner = SpawnerConfig{
		SpawnInterval: 5,
		MaxEnemies:    10,
		EnemyType:     "Bokoblin",
	}

	Sim = SimConfig{
		TickRate: 60,
		Seed:     42,
	}

	Target = TargetConfig{
		Radius: 0.4,
		Speed:  4,
	}
}
