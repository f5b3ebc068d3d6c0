package config

import "github.com/vovakirdan/vibe-arcade/internal/core"

func positive(field string, v float64) error {
	if v <= 0 {
		return core.Invalidf(field, "must be positive, got %v", v)
	}
	return nil
}

func atLeast(field string, v, lo int) error {
	if v < lo {
		return core.Invalidf(field, "must be at least %d, got %d", lo, v)
	}
	return nil
}

func probability(field string, v float64) error {
	if v < 0 || v > 1 {
		return core.Invalidf(field, "must be within [0, 1], got %v", v)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the shared difficulty block.
func (d DifficultyConfig) Validate() error {
	switch d.Progression.Type {
	case "", "none", "score", "time":
	default:
		return core.Invalidf("difficulty.progression.type", "unknown type %q", d.Progression.Type)
	}
	return probability("difficulty.initial_level", d.InitialLevel)
}

// Validate rejects mansion settings that would produce a degenerate game.
func (c *MansionConfig) Validate() error {
	l := c.Layout
	if err := firstErr(
		positive("screen.width", c.Screen.Width),
		positive("screen.height", c.Screen.Height),
		atLeast("layout.min_floors", l.MinFloors, 1),
		atLeast("layout.max_floors", l.MaxFloors, l.MinFloors),
		atLeast("layout.min_rooms", l.MinRooms, 1),
		atLeast("layout.max_rooms", l.MaxRooms, l.MinRooms),
		positive("layout.cell_size", l.CellSize),
		probability("layout.ghost_chance", l.GhostChance),
		positive("player.step", c.Player.Step),
		atLeast("tools.stun_ticks", c.Tools.StunTicks, 0),
		c.Difficulty.Validate(),
	); err != nil {
		return err
	}
	if l.MaxFloors > 1 && l.MinRooms < 3 {
		return core.Invalidf("layout.min_rooms", "need at least 3 rooms per floor to place stairs, got %d", l.MinRooms)
	}
	if 2*c.Player.Margin >= c.Screen.Width || 2*c.Player.Margin >= c.Screen.Height {
		return core.Invalidf("player.margin", "%v leaves no room on a %vx%v screen", c.Player.Margin, c.Screen.Width, c.Screen.Height)
	}
	return nil
}

// Validate rejects chase settings that would produce a degenerate game.
func (c *ChaseConfig) Validate() error {
	return firstErr(
		positive("arena.width", c.Arena.Width),
		positive("arena.height", c.Arena.Height),
		positive("player.speed", c.Player.Speed),
		atLeast("player.hp", c.Player.HP, 1),
		atLeast("cars.count", c.Cars.Count, 0),
		atLeast("cars.interval", c.Cars.Interval, 0),
		atLeast("cops.interval", c.Cops.Interval, 0),
		atLeast("gameplay.max_wanted", c.Gameplay.MaxWanted, 0),
		atLeast("gameplay.survive_ticks", c.Gameplay.SurviveTicks, 0),
		c.Difficulty.Validate(),
	)
}

// Validate rejects brick settings that would produce a degenerate game.
func (c *BricksConfig) Validate() error {
	if err := firstErr(
		positive("field.width", c.Field.Width),
		positive("field.height", c.Field.Height),
		atLeast("bricks.rows", c.Bricks.Rows, 1),
		atLeast("bricks.cols", c.Bricks.Cols, 1),
		positive("bricks.height", c.Bricks.Height),
		positive("paddle.width", c.Paddle.Width),
		positive("ball.radius", c.Ball.Radius),
		positive("ball.speed", c.Ball.Speed),
		c.Difficulty.Validate(),
	); err != nil {
		return err
	}
	if c.Ball.MaxAngle <= 0 || c.Ball.MaxAngle >= 90 {
		return core.Invalidf("ball.max_angle", "must be within (0, 90) degrees, got %v", c.Ball.MaxAngle)
	}
	if c.Bricks.Gap*float64(c.Bricks.Cols+1) >= c.Field.Width {
		return core.Invalidf("bricks.gap", "%v leaves no room for %d columns", c.Bricks.Gap, c.Bricks.Cols)
	}
	return nil
}

// Validate rejects platformer settings that would produce a degenerate game.
func (c *PlatformerConfig) Validate() error {
	return firstErr(
		positive("screen.width", c.Screen.Width),
		positive("screen.height", c.Screen.Height),
		positive("physics.tile", c.Physics.Tile),
		positive("physics.run_speed", c.Physics.RunSpeed),
		atLeast("player.hp", c.Player.HP, 1),
		atLeast("campaign.worlds", c.Campaign.Worlds, 1),
		atLeast("campaign.levels_per_world", c.Campaign.LevelsPerWorld, 1),
		atLeast("campaign.length_screens", c.Campaign.LengthScreens, 1),
		atLeast("boss.hp", c.Boss.HP, 1),
		probability("boss.jump_chance", c.Boss.JumpChance),
		c.Difficulty.Validate(),
	)
}
