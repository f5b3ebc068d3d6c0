// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// MansionConfig contains all configuration for the ghost-hunting mansion.
type MansionConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Layout     MansionLayout    `yaml:"layout"`
	Player     MansionPlayer    `yaml:"player"`
	Ghosts     MansionGhosts    `yaml:"ghosts"`
	Tools      MansionTools     `yaml:"tools"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the size of the simulated world in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MansionLayout defines floor generation parameters.
type MansionLayout struct {
	MinFloors       int     `yaml:"min_floors"`
	MaxFloors       int     `yaml:"max_floors"`
	MinRooms        int     `yaml:"min_rooms"`
	MaxRooms        int     `yaml:"max_rooms"`
	GridW           int     `yaml:"grid_w"`
	GridH           int     `yaml:"grid_h"`
	CellSize        float64 `yaml:"cell_size"`
	ExtraEdgeFactor float64 `yaml:"extra_edge_factor"`
	GhostChance     float64 `yaml:"ghost_chance"`
	StairsRadius    float64 `yaml:"stairs_radius"`
}

// MansionPlayer defines the ghost hunter.
type MansionPlayer struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Step   float64 `yaml:"step"`   // Distance per key press
	Margin float64 `yaml:"margin"` // Closest the centre gets to a screen edge
	Size   float64 `yaml:"size"`
}

// MansionGhosts defines ghost behaviour.
type MansionGhosts struct {
	Speed      float64 `yaml:"speed"`
	Jitter     float64 `yaml:"jitter"`
	Size       float64 `yaml:"size"`
	KillRadius float64 `yaml:"kill_radius"`
}

// MansionTools defines the flashlight and the vacuum.
type MansionTools struct {
	FlashCooldown  int     `yaml:"flash_cooldown"`
	FlashReach     float64 `yaml:"flash_reach"` // Beam centre distance ahead of the player
	FlashRange     float64 `yaml:"flash_range"` // Half-size of the beam's hit box
	StunTicks      int     `yaml:"stun_ticks"`
	VacuumCooldown int     `yaml:"vacuum_cooldown"`
	VacuumRange    float64 `yaml:"vacuum_range"`
}

// ChaseConfig contains all configuration for the top-down chase game.
type ChaseConfig struct {
	Arena      ScreenConfig     `yaml:"arena"`
	Player     ChasePlayer      `yaml:"player"`
	Cars       ChaseCars        `yaml:"cars"`
	Cops       ChaseCops        `yaml:"cops"`
	Gameplay   ChaseGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ChasePlayer defines the player's car.
type ChasePlayer struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	HP     int     `yaml:"hp"`
}

// ChaseCars defines the patrolling traffic.
type ChaseCars struct {
	Count    int     `yaml:"count"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Interval int     `yaml:"interval"` // Ticks between damaging hits
}

// ChaseCops defines the pursuing police.
type ChaseCops struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerWanted float64 `yaml:"speed_per_wanted"`
	Damage         int     `yaml:"damage"`
	Interval       int     `yaml:"interval"`
}

// ChaseGameplay defines win/lose rules.
type ChaseGameplay struct {
	MaxWanted    int `yaml:"max_wanted"`
	SurviveTicks int `yaml:"survive_ticks"` // 0 means endless
}

// BricksConfig contains all configuration for the brick breaker.
type BricksConfig struct {
	Field      ScreenConfig     `yaml:"field"`
	Bricks     BricksGrid       `yaml:"bricks"`
	Paddle     BricksPaddle     `yaml:"paddle"`
	Ball       BricksBall       `yaml:"ball"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BricksGrid defines the wall of bricks.
type BricksGrid struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Gap       float64 `yaml:"gap"`
	Height    float64 `yaml:"height"`
	TopOffset float64 `yaml:"top_offset"`
}

// BricksPaddle defines the player's paddle.
type BricksPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance of the paddle top from the field bottom
	Speed  float64 `yaml:"speed"`
}

// BricksBall defines the ball.
type BricksBall struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	MaxAngle float64 `yaml:"max_angle"` // Degrees from vertical at the paddle edge
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Screen     ScreenConfig       `yaml:"screen"`
	Physics    PlatformerPhysics  `yaml:"physics"`
	Player     PlatformerPlayer   `yaml:"player"`
	Campaign   PlatformerCampaign `yaml:"campaign"`
	Boss       PlatformerBoss     `yaml:"boss"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines movement constants.
type PlatformerPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	Tile      float64 `yaml:"tile"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpSpeed float64 `yaml:"jump_speed"` // Negative is up
}

// PlatformerPlayer defines the hero.
type PlatformerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HP           int     `yaml:"hp"`
	HurtInterval int     `yaml:"hurt_interval"`
}

// PlatformerCampaign defines the level sequence.
type PlatformerCampaign struct {
	Worlds         int `yaml:"worlds"`
	LevelsPerWorld int `yaml:"levels_per_world"` // The last level of each world is a castle
	LengthScreens  int `yaml:"length_screens"`   // Level length in screen widths
}

// PlatformerBoss defines the castle boss.
type PlatformerBoss struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HP         int     `yaml:"hp"`
	Speed      float64 `yaml:"speed"`
	JumpChance float64 `yaml:"jump_chance"`
	JumpSpeed  float64 `yaml:"jump_speed"`
	LatchStomp bool    `yaml:"latch_stomp"` // Count one stomp per continuous overlap
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	CountIncrease   int     `yaml:"count_increase"`   // Extra hostiles at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
