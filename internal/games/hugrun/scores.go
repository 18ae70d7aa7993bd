package hugrun

import (
	"time"

	"github.com/vovakirdan/hugrun/internal/config"
	"github.com/vovakirdan/hugrun/internal/core"
)

// ScoreTracker records completion times of won rounds.
// RecordCompletion is called once per Won transition and never on Lost.
type ScoreTracker interface {
	RecordCompletion(d time.Duration)
	Summary() core.ScoreSummary
}

// NewScoreTracker builds the tracker selected by the scoring config.
func NewScoreTracker(cfg config.ScoringConfig) ScoreTracker {
	if cfg.Mode == config.ScoringBest {
		return &BestTime{}
	}
	return NewHistory(cfg.HistorySize)
}

// History keeps the most recent completion times, newest first.
type History struct {
	entries []time.Duration
	limit   int
}

// NewHistory creates a history bounded to limit entries.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		entries: make([]time.Duration, 0, limit),
		limit:   limit,
	}
}

// RecordCompletion prepends d and drops the oldest entry beyond the limit.
func (h *History) RecordCompletion(d time.Duration) {
	h.entries = append(h.entries, 0)
	copy(h.entries[1:], h.entries)
	h.entries[0] = d
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Entries returns a copy of the history; index 0 is the most recent.
func (h *History) Entries() []time.Duration {
	out := make([]time.Duration, len(h.entries))
	copy(out, h.entries)
	return out
}

// Summary implements ScoreTracker.
func (h *History) Summary() core.ScoreSummary {
	s := core.ScoreSummary{Kind: core.ScoreHistory, Recent: h.Entries()}
	if len(h.entries) > 0 {
		s.Last = h.entries[0]
		s.HasLast = true
	}
	return s
}

// BestTime keeps the last completion time and the best one ever seen.
// Best never increases once set.
type BestTime struct {
	last    time.Duration
	best    time.Duration
	hasLast bool
	hasBest bool
}

// RecordCompletion implements ScoreTracker.
func (b *BestTime) RecordCompletion(d time.Duration) {
	b.last = d
	b.hasLast = true
	if !b.hasBest || d < b.best {
		b.best = d
		b.hasBest = true
	}
}

// Last returns the most recent completion time.
func (b *BestTime) Last() (time.Duration, bool) {
	return b.last, b.hasLast
}

// Best returns the fastest completion time.
func (b *BestTime) Best() (time.Duration, bool) {
	return b.best, b.hasBest
}

// Summary implements ScoreTracker.
func (b *BestTime) Summary() core.ScoreSummary {
	return core.ScoreSummary{
		Kind:    core.ScoreBest,
		Last:    b.last,
		Best:    b.best,
		HasLast: b.hasLast,
		HasBest: b.hasBest,
	}
}
