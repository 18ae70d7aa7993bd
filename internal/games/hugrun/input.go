package hugrun

import "github.com/vovakirdan/hugrun/internal/core"

// IntentMode tells which input modality drives movement this tick.
type IntentMode int

const (
	IntentKeyboard IntentMode = iota
	IntentDrag
)

// Intent is the movement request for one tick. It is a value snapshot:
// events arriving after Drain do not change it.
type Intent struct {
	Mode                  IntentMode
	Up, Down, Left, Right bool

	// Target is the player's desired top-left corner in drag mode,
	// already clamped so the player stays on canvas.
	Target    core.Vec2
	Threshold float64
}

// Active reports whether any movement input is present (isMovementActive).
func (i Intent) Active() bool {
	if i.Mode == IntentDrag {
		return true
	}
	return i.Up || i.Down || i.Left || i.Right
}

// Direction returns the movement direction for a player at from.
// Keyboard gives independent unit steps per axis, so diagonals are full
// speed on both axes. Drag gives the normalized vector toward the target,
// or zero once within the threshold.
func (i Intent) Direction(from core.Vec2) core.Vec2 {
	if i.Mode == IntentDrag {
		d := i.Target.Sub(from)
		dist := d.Len()
		if dist <= i.Threshold || dist == 0 {
			return core.Vec2{}
		}
		return d.Scale(1 / dist)
	}

	var dir core.Vec2
	if i.Right {
		dir.X++
	}
	if i.Left {
		dir.X--
	}
	if i.Down {
		dir.Y++
	}
	if i.Up {
		dir.Y--
	}
	return dir
}

// Controller queues input events delivered by the platform and folds them
// into one Intent per tick.
type Controller struct {
	queue []core.Event

	up, down, left, right bool

	dragging bool
	target   core.Vec2

	canvasW    float64
	canvasH    float64
	playerSize float64
	threshold  float64
}

// NewController creates a controller for a canvas and player size.
func NewController(canvasW, canvasH, playerSize, threshold float64) *Controller {
	return &Controller{
		queue:      make([]core.Event, 0, 16),
		canvasW:    canvasW,
		canvasH:    canvasH,
		playerSize: playerSize,
		threshold:  threshold,
	}
}

// Push queues an event for the next Drain. It never touches game state.
func (c *Controller) Push(ev core.Event) {
	c.queue = append(c.queue, ev)
}

// Drain applies queued events in arrival order and returns the resulting
// intent. restart is true if any restart was requested.
func (c *Controller) Drain() (in Intent, restart bool) {
	for _, ev := range c.queue {
		switch ev.Kind {
		case core.EventKeyDown:
			if ev.Action == core.ActionRestart {
				restart = true
				continue
			}
			c.setHeld(ev.Action, true)
		case core.EventKeyUp:
			c.setHeld(ev.Action, false)
		case core.EventPointerDown, core.EventPointerMove:
			c.dragging = true
			c.target = c.clampTarget(ev.Point)
		case core.EventPointerUp:
			c.dragging = false
		case core.EventRestart:
			restart = true
		}
	}
	c.queue = c.queue[:0]

	if c.dragging {
		return Intent{Mode: IntentDrag, Target: c.target, Threshold: c.threshold}, restart
	}
	return Intent{
		Mode:  IntentKeyboard,
		Up:    c.up,
		Down:  c.down,
		Left:  c.left,
		Right: c.right,
	}, restart
}

// Release drops all held keys and ends any drag.
func (c *Controller) Release() {
	c.up, c.down, c.left, c.right = false, false, false, false
	c.dragging = false
}

func (c *Controller) setHeld(a core.Action, held bool) {
	switch a {
	case core.ActionUp:
		c.up = held
	case core.ActionDown:
		c.down = held
	case core.ActionLeft:
		c.left = held
	case core.ActionRight:
		c.right = held
	}
}

// clampTarget converts a pointer position to the player's top-left target,
// keeping the player's bounding square fully on canvas.
func (c *Controller) clampTarget(p core.Vec2) core.Vec2 {
	half := c.playerSize / 2
	return core.Vec2{
		X: core.ClampF(p.X-half, 0, c.canvasW-c.playerSize),
		Y: core.ClampF(p.Y-half, 0, c.canvasH-c.playerSize),
	}
}
