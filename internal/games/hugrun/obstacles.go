package hugrun

import (
	"math/rand"

	"github.com/vovakirdan/hugrun/internal/config"
	"github.com/vovakirdan/hugrun/internal/core"
)

// Obstacle is a rectangle bouncing between two canvas edges.
type Obstacle struct {
	Pos   core.Vec2  // Top-left corner
	W, H  float64    // Size
	Speed float64    // Units per tick
	Dir   int        // +1 or -1 along the movement axis
	Color core.Color // Rendering hint only
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.Pos.X, o.Pos.Y, o.W, o.H)
}

// Vertical reports whether the obstacle moves along the y axis.
func (o Obstacle) Vertical() bool {
	return o.H > o.W
}

// Update advances the obstacle one tick. The direction flips when the leading
// edge has reached or passed the canvas boundary; the overshoot is not
// corrected, so the obstacle may sit partly off canvas for one tick.
// Returns true if the direction flipped.
func (o *Obstacle) Update(canvasW, canvasH float64) bool {
	step := o.Speed * float64(o.Dir)

	var near, far, limit float64
	if o.Vertical() {
		o.Pos.Y += step
		near, far, limit = o.Pos.Y, o.Pos.Y+o.H, canvasH
	} else {
		o.Pos.X += step
		near, far, limit = o.Pos.X, o.Pos.X+o.W, canvasW
	}

	if (o.Dir > 0 && far >= limit) || (o.Dir < 0 && near <= 0) {
		o.Dir = -o.Dir
		return true
	}
	return false
}

// ObstacleField owns the obstacle list and regenerates it every round.
type ObstacleField struct {
	obstacles []Obstacle
	templates []config.ObstacleTemplate
	speedMul  float64
	canvasW   float64
	canvasH   float64
	zones     [2]core.Rect
	rng       *rand.Rand
}

// NewObstacleField creates an empty field. Call Respawn to place obstacles.
func NewObstacleField(cfg config.HugRunConfig, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, len(cfg.Obstacles)),
		templates: cfg.Obstacles,
		speedMul:  cfg.Difficulty.SpeedMultiplier,
		canvasW:   cfg.Canvas.Width,
		canvasH:   cfg.Canvas.Height,
		zones:     cfg.SafeZones(),
		rng:       rng,
	}
}

// Respawn clears the field and places one obstacle per template at a fresh
// random position with a random initial direction.
func (f *ObstacleField) Respawn() {
	f.obstacles = f.obstacles[:0]
	for _, t := range f.templates {
		pos := RandomPosition(f.rng, t.Width, t.Height, f.canvasW, f.canvasH, f.zones)
		dir := 1
		if f.rng.Float64() < 0.5 {
			dir = -1
		}
		f.obstacles = append(f.obstacles, Obstacle{
			Pos:   pos,
			W:     t.Width,
			H:     t.Height,
			Speed: t.Speed * f.speedMul,
			Dir:   dir,
			Color: core.Color(t.Color),
		})
	}
}

// Update moves every obstacle one tick.
func (f *ObstacleField) Update() {
	for i := range f.obstacles {
		f.obstacles[i].Update(f.canvasW, f.canvasH)
	}
}

// Hits tests if the given rectangle collides with any obstacle.
func (f *ObstacleField) Hits(r core.Rect) bool {
	for _, o := range f.obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Obstacles returns the current obstacles.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// RandomPosition samples top-left corners uniformly in
// [0, canvas-size] until the rectangle touches none of the zones.
//
// The loop has no retry cap. It terminates almost surely as long as the
// free area has positive measure, which config.Validate checks before a
// scene is ever built.
func RandomPosition(rng *rand.Rand, w, h, canvasW, canvasH float64, zones [2]core.Rect) core.Vec2 {
	for {
		p := core.Vec2{
			X: rng.Float64() * (canvasW - w),
			Y: rng.Float64() * (canvasH - h),
		}
		r := core.NewRect(p.X, p.Y, w, h)
		if !r.Touches(zones[0]) && !r.Touches(zones[1]) {
			return p
		}
	}
}
