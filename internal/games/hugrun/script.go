package hugrun

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hugrun/internal/core"
)

// ScriptStep is one entry of an input script: hold a direction, drag toward
// a point, wait, or restart.
type ScriptStep struct {
	Action core.Action // Direction to hold, ActionRestart, or ActionNone
	Drag   bool        // Drag toward Point instead of holding a key
	Point  core.Vec2   // Drag target in canvas units
	Ticks  int
}

func (s ScriptStep) press() []core.Event {
	switch {
	case s.Drag:
		return []core.Event{core.PointerDown(s.Point)}
	case s.Action == core.ActionRestart:
		return []core.Event{core.Restart()}
	case s.Action.IsDirection():
		return []core.Event{core.KeyDown(s.Action)}
	}
	return nil
}

func (s ScriptStep) release() []core.Event {
	switch {
	case s.Drag:
		return []core.Event{core.PointerUp()}
	case s.Action.IsDirection():
		return []core.Event{core.KeyUp(s.Action)}
	}
	return nil
}

// Script replays scripted input, one Advance per frame. It drives the
// headless simulator in place of a human.
type Script struct {
	steps   []ScriptStep
	idx     int
	started bool
	left    int
}

// ParseScript parses a comma-separated script such as
// "right:62,up:60,wait:10,restart,to:355:45:80".
//
//	<dir>:<ticks>      hold up|down|left|right
//	wait:<ticks>       no input
//	to:<x>:<y>:<ticks> drag toward the canvas point
//	restart            request a new round
func ParseScript(src string) (*Script, error) {
	var steps []ScriptStep
	for _, raw := range strings.Split(src, ",") {
		field := strings.TrimSpace(raw)
		if field == "" {
			continue
		}
		step, err := parseStep(field)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return &Script{steps: steps}, nil
}

func parseStep(field string) (ScriptStep, error) {
	parts := strings.Split(field, ":")
	name := strings.ToLower(parts[0])

	if name == "restart" {
		if len(parts) != 1 {
			return ScriptStep{}, fmt.Errorf("script: %q takes no arguments", field)
		}
		return ScriptStep{Action: core.ActionRestart}, nil
	}

	if name == "to" {
		if len(parts) != 4 {
			return ScriptStep{}, fmt.Errorf("script: %q: expected to:<x>:<y>:<ticks>", field)
		}
		x, errX := strconv.ParseFloat(parts[1], 64)
		y, errY := strconv.ParseFloat(parts[2], 64)
		if errX != nil || errY != nil {
			return ScriptStep{}, fmt.Errorf("script: %q: bad coordinates", field)
		}
		ticks, err := parseTicks(field, parts[3])
		if err != nil {
			return ScriptStep{}, err
		}
		return ScriptStep{Drag: true, Point: core.Vec2{X: x, Y: y}, Ticks: ticks}, nil
	}

	if len(parts) != 2 {
		return ScriptStep{}, fmt.Errorf("script: %q: expected <step>:<ticks>", field)
	}
	ticks, err := parseTicks(field, parts[1])
	if err != nil {
		return ScriptStep{}, err
	}

	var action core.Action
	switch name {
	case "up":
		action = core.ActionUp
	case "down":
		action = core.ActionDown
	case "left":
		action = core.ActionLeft
	case "right":
		action = core.ActionRight
	case "wait":
		action = core.ActionNone
	default:
		return ScriptStep{}, fmt.Errorf("script: unknown step %q", name)
	}
	return ScriptStep{Action: action, Ticks: ticks}, nil
}

func parseTicks(field, s string) (int, error) {
	ticks, err := strconv.Atoi(s)
	if err != nil || ticks < 0 {
		return 0, fmt.Errorf("script: %q: bad tick count %q", field, s)
	}
	return ticks, nil
}

// Steps returns the parsed steps.
func (s *Script) Steps() []ScriptStep {
	return s.steps
}

// Advance returns the events to push before the next Step. A step lasting
// N ticks is active for exactly N Steps.
func (s *Script) Advance() []core.Event {
	var events []core.Event
	for s.idx < len(s.steps) {
		step := s.steps[s.idx]
		if !s.started {
			events = append(events, step.press()...)
			s.started = true
			s.left = step.Ticks
		}
		if s.left > 0 {
			s.left--
			return events
		}
		events = append(events, step.release()...)
		s.idx++
		s.started = false
	}
	return events
}

// Done reports whether every step has been played.
func (s *Script) Done() bool {
	return s.idx >= len(s.steps)
}
