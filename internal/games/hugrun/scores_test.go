package hugrun

import (
	"testing"
	"time"

	"github.com/vovakirdan/hugrun/internal/config"
	"github.com/vovakirdan/hugrun/internal/core"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestBestTimeScenario(t *testing.T) {
	var b BestTime
	for _, d := range []time.Duration{ms(3200), ms(2900), ms(4000)} {
		b.RecordCompletion(d)
	}

	if last, ok := b.Last(); !ok || last != ms(4000) {
		t.Errorf("Last() = %v, %v; expected 4.0s", last, ok)
	}
	if best, ok := b.Best(); !ok || best != ms(2900) {
		t.Errorf("Best() = %v, %v; expected 2.9s", best, ok)
	}

	s := b.Summary()
	if s.Kind != core.ScoreBest || core.FormatSeconds(s.Last) != "4.0s" || core.FormatSeconds(s.Best) != "2.9s" {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestBestTimeNeverIncreases(t *testing.T) {
	var b BestTime
	if _, ok := b.Best(); ok {
		t.Fatal("empty tracker should have no best time")
	}

	times := []int{5000, 6000, 4100, 4100, 9000, 3000, 3500}
	prev := time.Duration(1<<63 - 1)
	for _, n := range times {
		b.RecordCompletion(ms(n))
		best, _ := b.Best()
		if best > prev {
			t.Fatalf("best increased from %v to %v", prev, best)
		}
		prev = best
	}
	if prev != ms(3000) {
		t.Errorf("best = %v, expected 3s", prev)
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	h := NewHistory(10)
	for i := 1; i <= 3; i++ {
		h.RecordCompletion(ms(i * 1000))
	}

	got := h.Entries()
	want := []time.Duration{ms(3000), ms(2000), ms(1000)}
	if len(got) != len(want) {
		t.Fatalf("len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(10)
	for i := 1; i <= 25; i++ {
		h.RecordCompletion(ms(i * 100))
		if n := len(h.Entries()); n > 10 {
			t.Fatalf("history grew to %d entries", n)
		}
	}

	got := h.Entries()
	if len(got) != 10 {
		t.Fatalf("len = %d, expected 10", len(got))
	}
	if got[0] != ms(2500) || got[9] != ms(1600) {
		t.Errorf("history = %v, expected the ten newest times newest first", got)
	}

	s := h.Summary()
	if !s.HasLast || s.Last != ms(2500) || len(s.Recent) != 10 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory(3)
	h.RecordCompletion(ms(100))

	got := h.Entries()
	got[0] = 0
	if h.Entries()[0] != ms(100) {
		t.Error("Entries() should not expose internal storage")
	}
}

func TestNewScoreTracker(t *testing.T) {
	tests := []struct {
		mode config.ScoringMode
		kind core.ScoreKind
	}{
		{config.ScoringHistory, core.ScoreHistory},
		{config.ScoringBest, core.ScoreBest},
		{"", core.ScoreHistory},
	}

	for _, tc := range tests {
		tr := NewScoreTracker(config.ScoringConfig{Mode: tc.mode, HistorySize: 10})
		if got := tr.Summary().Kind; got != tc.kind {
			t.Errorf("mode %q: kind = %v, expected %v", tc.mode, got, tc.kind)
		}
	}
}
