package hugrun

import "github.com/vovakirdan/hugrun/internal/core"

// ObstacleSnapshot is the position and direction of one obstacle.
type ObstacleSnapshot struct {
	Pos core.Vec2
	Dir int
}

// Snapshot is a comparable view of the simulation used by determinism
// tests and the headless driver's report.
type Snapshot struct {
	Tick       int
	Round      int
	Phase      core.Phase
	Player     core.Vec2
	MouthAngle float64
	Obstacles  []ObstacleSnapshot
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	obstacles := g.field.Obstacles()
	snap := Snapshot{
		Tick:       g.tickCount,
		Round:      g.rounds,
		Phase:      g.round.Phase(),
		Player:     g.player.Pos,
		MouthAngle: g.player.MouthAngle,
		Obstacles:  make([]ObstacleSnapshot, len(obstacles)),
	}
	for i, o := range obstacles {
		snap.Obstacles[i] = ObstacleSnapshot{Pos: o.Pos, Dir: o.Dir}
	}
	return snap
}
