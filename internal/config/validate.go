package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hugrun/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// spawnScanSteps is the grid resolution used to prove that an obstacle
// template has at least one spawn position outside both safe zones.
const spawnScanSteps = 64

// PlayerStart returns the player's top-left position at round start.
func (c HugRunConfig) PlayerStart() core.Vec2 {
	return core.Vec2{X: c.Player.X, Y: c.Canvas.Height - c.Player.BottomOffset}
}

// GoalRect returns the goal's bounding square.
func (c HugRunConfig) GoalRect() core.Rect {
	return core.NewRect(c.Canvas.Width-c.Goal.RightOffset, c.Goal.Y, c.Goal.Size, c.Goal.Size)
}

// SafeZones returns the bottom-left (start) and top-right (goal) reserved squares.
func (c HugRunConfig) SafeZones() [2]core.Rect {
	z := c.SafeZone.Size
	return [2]core.Rect{
		core.NewRect(0, c.Canvas.Height-z, z, z),
		core.NewRect(c.Canvas.Width-z, 0, z, z),
	}
}

// Validate checks that the scene can be built and simulated. Obstacle
// spawning retries without a cap at runtime, so a template that cannot be
// placed outside the safe zones must be rejected here instead.
func Validate(c HugRunConfig) error {
	w, h := c.Canvas.Width, c.Canvas.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalid, w, h)
	}

	if c.Player.Size <= 0 || c.Player.Size > w || c.Player.Size > h {
		return fmt.Errorf("%w: player size %v does not fit canvas", ErrInvalid, c.Player.Size)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player speed must be positive", ErrInvalid)
	}
	start := core.Square(c.PlayerStart(), c.Player.Size)
	if start.X < 0 || start.Y < 0 || start.Right() > w || start.Bottom() > h {
		return fmt.Errorf("%w: player start %v is off canvas", ErrInvalid, start)
	}

	if c.Goal.Size <= 0 {
		return fmt.Errorf("%w: goal size must be positive", ErrInvalid)
	}
	goal := c.GoalRect()
	if goal.X < 0 || goal.Y < 0 || goal.Right() > w || goal.Bottom() > h {
		return fmt.Errorf("%w: goal %v is off canvas", ErrInvalid, goal)
	}

	if c.SafeZone.Size < 0 || c.SafeZone.Size > w || c.SafeZone.Size > h {
		return fmt.Errorf("%w: safe zone size %v does not fit canvas", ErrInvalid, c.SafeZone.Size)
	}

	if c.Difficulty.SpeedMultiplier <= 0 {
		return fmt.Errorf("%w: speed multiplier must be positive", ErrInvalid)
	}

	zones := c.SafeZones()
	for i, o := range c.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: obstacle %d has non-positive size", ErrInvalid, i)
		}
		if o.Width > w || o.Height > h {
			return fmt.Errorf("%w: obstacle %d (%vx%v) is larger than the canvas", ErrInvalid, i, o.Width, o.Height)
		}
		if o.Speed <= 0 {
			return fmt.Errorf("%w: obstacle %d speed must be positive", ErrInvalid, i)
		}
		if !spawnable(o, w, h, zones) {
			return fmt.Errorf("%w: obstacle %d cannot spawn outside the safe zones", ErrInvalid, i)
		}
	}

	switch c.Scoring.Mode {
	case ScoringHistory:
		if c.Scoring.HistorySize < 1 {
			return fmt.Errorf("%w: history size must be at least 1", ErrInvalid)
		}
	case ScoringBest:
	default:
		return fmt.Errorf("%w: unknown scoring mode %q", ErrInvalid, c.Scoring.Mode)
	}

	if c.Input.KeyHoldMS < 0 || c.Input.FirstRepeatMS < 0 || c.Input.DragThreshold < 0 {
		return fmt.Errorf("%w: input settings must not be negative", ErrInvalid)
	}

	return nil
}

// spawnable reports whether some grid position keeps the obstacle clear of
// every zone.
func spawnable(o ObstacleTemplate, w, h float64, zones [2]core.Rect) bool {
	for i := 0; i <= spawnScanSteps; i++ {
		for j := 0; j <= spawnScanSteps; j++ {
			x := (w - o.Width) * float64(i) / spawnScanSteps
			y := (h - o.Height) * float64(j) / spawnScanSteps
			r := core.NewRect(x, y, o.Width, o.Height)
			if !r.Touches(zones[0]) && !r.Touches(zones[1]) {
				return true
			}
		}
	}
	return false
}
