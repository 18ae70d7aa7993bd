package hugrun

import (
	"math"

	"github.com/vovakirdan/hugrun/internal/core"
)

// Mouth animation constants.
const (
	MouthStep     = 0.15        // Radians per tick
	MaxMouthAngle = math.Pi / 4 // 45 degrees
)

// Player is the avatar the user steers toward the goal.
type Player struct {
	Pos   core.Vec2 // Top-left of the bounding square
	Size  float64
	Speed float64

	MouthAngle float64 // [0, MaxMouthAngle]
	MouthDir   int     // +1 opening, -1 closing
}

// NewPlayer creates a player at the start position with a closed mouth.
func NewPlayer(start core.Vec2, size, speed float64) Player {
	return Player{
		Pos:      start,
		Size:     size,
		Speed:    speed,
		MouthDir: 1,
	}
}

// Rect returns the player's bounding square.
func (p Player) Rect() core.Rect {
	return core.Square(p.Pos, p.Size)
}

// Move applies the intent for one tick and keeps the player on canvas.
// Keyboard moves Speed per held axis. A drag moves Speed toward the target
// but is capped at the remaining distance, so the last step lands on the
// target instead of overshooting it.
// Returns whether movement input was effective this tick (drives the mouth).
func (p *Player) Move(in Intent, canvasW, canvasH float64) bool {
	maxX := canvasW - p.Size
	maxY := canvasH - p.Size
	moving := false

	if in.Mode == IntentDrag {
		dir := in.Direction(p.Pos)
		if dir != (core.Vec2{}) {
			step := math.Min(p.Speed, in.Target.Sub(p.Pos).Len())
			p.Pos = p.Pos.Add(dir.Scale(step))
			moving = true
		}
	} else {
		if in.Right && p.Pos.X+p.Speed <= maxX {
			p.Pos.X += p.Speed
		}
		if in.Left && p.Pos.X-p.Speed >= 0 {
			p.Pos.X -= p.Speed
		}
		if in.Up && p.Pos.Y-p.Speed >= 0 {
			p.Pos.Y -= p.Speed
		}
		if in.Down && p.Pos.Y+p.Speed <= maxY {
			p.Pos.Y += p.Speed
		}
		moving = in.Active()
	}

	p.Pos.X = core.ClampF(p.Pos.X, 0, maxX)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, maxY)
	return moving
}

// Animate advances the mouth one tick. While moving it chomps between closed
// and MaxMouthAngle; while idle it closes.
func (p *Player) Animate(moving bool) {
	if !moving {
		p.MouthAngle = math.Max(0, p.MouthAngle-MouthStep)
		p.MouthDir = 1
		return
	}

	p.MouthAngle += MouthStep * float64(p.MouthDir)
	if p.MouthAngle >= MaxMouthAngle || p.MouthAngle <= 0 {
		p.MouthDir = -p.MouthDir
	}
	p.MouthAngle = core.ClampF(p.MouthAngle, 0, MaxMouthAngle)
}
