package hugrun

import (
	"math"
	"testing"

	"github.com/vovakirdan/hugrun/internal/core"
)

func newTestController() *Controller {
	return NewController(400, 400, 50, 1)
}

func TestControllerHeldKeys(t *testing.T) {
	c := newTestController()

	c.Push(core.KeyDown(core.ActionRight))
	c.Push(core.KeyDown(core.ActionUp))
	in, restart := c.Drain()

	if restart {
		t.Error("no restart was requested")
	}
	if in.Mode != IntentKeyboard || !in.Right || !in.Up || in.Left || in.Down {
		t.Errorf("unexpected intent %+v", in)
	}
	if !in.Active() {
		t.Error("held keys should make the intent active")
	}
	if dir := in.Direction(core.Vec2{}); dir != (core.Vec2{X: 1, Y: -1}) {
		t.Errorf("diagonal direction = %v, expected {1 -1} (not normalized)", dir)
	}

	// Keys stay held across ticks until released.
	in, _ = c.Drain()
	if !in.Right {
		t.Error("right should still be held")
	}

	c.Push(core.KeyUp(core.ActionRight))
	in, _ = c.Drain()
	if in.Right || !in.Up {
		t.Errorf("only right should be released, got %+v", in)
	}
}

func TestControllerIntentIsSnapshot(t *testing.T) {
	c := newTestController()
	c.Push(core.KeyDown(core.ActionLeft))
	in, _ := c.Drain()

	c.Push(core.KeyUp(core.ActionLeft))
	if !in.Left {
		t.Error("events pushed after Drain must not change the drained intent")
	}
	if next, _ := c.Drain(); next.Left {
		t.Error("release queued after Drain should apply on the next Drain")
	}
}

func TestControllerRestart(t *testing.T) {
	tests := []struct {
		name string
		ev   core.Event
	}{
		{"restart key", core.KeyDown(core.ActionRestart)},
		{"restart trigger", core.Restart()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			c.Push(tc.ev)
			if _, restart := c.Drain(); !restart {
				t.Error("restart should be requested")
			}
			if _, restart := c.Drain(); restart {
				t.Error("restart should be consumed by the first Drain")
			}
		})
	}
}

func TestControllerDragOverridesKeyboard(t *testing.T) {
	c := newTestController()
	c.Push(core.KeyDown(core.ActionRight))
	c.Push(core.PointerDown(core.Vec2{X: 200, Y: 100}))
	in, _ := c.Drain()

	if in.Mode != IntentDrag {
		t.Fatalf("drag should take precedence, got mode %v", in.Mode)
	}
	if in.Target != (core.Vec2{X: 175, Y: 75}) {
		t.Errorf("target = %v, expected pointer minus half the player size {175 75}", in.Target)
	}

	c.Push(core.PointerMove(core.Vec2{X: 300, Y: 300}))
	in, _ = c.Drain()
	if in.Target != (core.Vec2{X: 275, Y: 275}) {
		t.Errorf("target after move = %v, expected {275 275}", in.Target)
	}

	c.Push(core.PointerUp())
	in, _ = c.Drain()
	if in.Mode != IntentKeyboard || !in.Right {
		t.Errorf("after touch end the held key should drive again, got %+v", in)
	}
}

func TestControllerClampsDragTarget(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec2
		want  core.Vec2
	}{
		{"top-left corner", core.Vec2{X: 0, Y: 0}, core.Vec2{X: 0, Y: 0}},
		{"past bottom-right", core.Vec2{X: 500, Y: 450}, core.Vec2{X: 350, Y: 350}},
		{"negative", core.Vec2{X: -40, Y: 200}, core.Vec2{X: 0, Y: 175}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			c.Push(core.PointerDown(tc.point))
			in, _ := c.Drain()
			if in.Target != tc.want {
				t.Errorf("target = %v, expected %v", in.Target, tc.want)
			}
		})
	}
}

func TestDragDirection(t *testing.T) {
	in := Intent{Mode: IntentDrag, Target: core.Vec2{X: 30, Y: 40}, Threshold: 1}

	dir := in.Direction(core.Vec2{})
	if math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y-0.8) > 1e-9 {
		t.Errorf("direction = %v, expected normalized {0.6 0.8}", dir)
	}

	if dir := in.Direction(core.Vec2{X: 29.5, Y: 40}); dir != (core.Vec2{}) {
		t.Errorf("within threshold the direction should be zero, got %v", dir)
	}
}

func TestControllerRelease(t *testing.T) {
	c := newTestController()
	c.Push(core.KeyDown(core.ActionDown))
	c.Push(core.PointerDown(core.Vec2{X: 10, Y: 10}))
	c.Drain()

	c.Release()
	in, _ := c.Drain()
	if in.Active() {
		t.Errorf("Release should clear all input, got %+v", in)
	}
}
