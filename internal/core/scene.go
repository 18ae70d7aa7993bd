package core

import (
	"strconv"
	"time"
)

// Avatar is a circular sprite drawn inside its bounding square.
type Avatar struct {
	Box        Rect
	MouthAngle float64 // Half-angle of the mouth wedge in radians; 0 = closed
	Color      Color
}

// Block is a filled obstacle rectangle.
type Block struct {
	Box   Rect
	Color Color
}

// Overlay is the end-of-round message and prompt.
type Overlay struct {
	Title  string
	Prompt string
	Color  Color
}

// ScoreKind selects how completed rounds are summarized.
type ScoreKind int

const (
	ScoreHistory ScoreKind = iota // Bounded list, most recent first
	ScoreBest                     // Last time and best time
)

// ScoreSummary is the display view of the score tracker.
type ScoreSummary struct {
	Kind    ScoreKind
	Recent  []time.Duration // ScoreHistory only, rank 1 = most recent
	Last    time.Duration
	Best    time.Duration
	HasLast bool
	HasBest bool
}

// Scene is everything a renderer needs to draw one frame. Elements are listed
// in back-to-front order: obstacles, goal, player, overlay.
type Scene struct {
	CanvasW   float64
	CanvasH   float64
	Phase     Phase
	Elapsed   time.Duration
	Obstacles []Block
	Goal      Avatar
	Player    Avatar
	Overlay   *Overlay
	Scores    ScoreSummary
}

// FormatSeconds formats a duration as seconds with one decimal, e.g. "3.2s".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 1, 64) + "s"
}
