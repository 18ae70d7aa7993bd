// Package storage keeps the hall of fame of completed rounds for the
// lifetime of the process. Uses the pure-Go modernc.org/sqlite driver with
// an in-memory database; nothing is written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite database of completions.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Completion is one won round.
type Completion struct {
	ID        int64
	RoundID   string
	GameID    string
	Player    string
	Duration  time.Duration
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	Completions int
	Best        time.Duration
	Average     time.Duration
	LastPlayed  time.Time
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_completions_game_id ON completions(game_id);
		CREATE INDEX IF NOT EXISTS idx_completions_fastest ON completions(game_id, duration_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The data is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCompletion records a won round and returns it with its generated
// round ID.
func (s *Store) SaveCompletion(gameID, player string, d time.Duration) (Completion, error) {
	c := Completion{
		RoundID:   uuid.NewString(),
		GameID:    gameID,
		Player:    player,
		Duration:  d,
		CreatedAt: s.now(),
	}

	result, err := s.db.Exec(
		`INSERT INTO completions (round_id, game_id, player, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.RoundID, c.GameID, c.Player, d.Milliseconds(), c.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Completion{}, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	c.ID, err = result.LastInsertId()
	if err != nil {
		return Completion{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return c, nil
}

// TopTimes retrieves the fastest N completions for the given game.
func (s *Store) TopTimes(gameID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, player, duration_ms, created_at
		 FROM completions
		 WHERE game_id = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	return scanCompletions(rows)
}

// RecentCompletions retrieves the newest N completions for the given game.
func (s *Store) RecentCompletions(gameID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, player, duration_ms, created_at
		 FROM completions
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	return scanCompletions(rows)
}

func scanCompletions(rows *sql.Rows) ([]Completion, error) {
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var durationMS, createdAt int64
		if err := rows.Scan(&c.ID, &c.RoundID, &c.GameID, &c.Player, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Duration = time.Duration(durationMS) * time.Millisecond
		c.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CompletionByRound retrieves a completion by its round ID.
// Returns nil if the round was never recorded.
func (s *Store) CompletionByRound(roundID string) (*Completion, error) {
	var c Completion
	var durationMS, createdAt int64

	err := s.db.QueryRow(
		`SELECT id, round_id, game_id, player, duration_ms, created_at
		 FROM completions
		 WHERE round_id = ?`,
		roundID,
	).Scan(&c.ID, &c.RoundID, &c.GameID, &c.Player, &durationMS, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completion: %w", err)
	}

	c.Duration = time.Duration(durationMS) * time.Millisecond
	c.CreatedAt = time.UnixMilli(createdAt)
	return &c, nil
}

// BestTime returns the fastest completion time for the given game.
// ok is false if the game has no completions.
func (s *Store) BestTime(gameID string) (d time.Duration, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM completions WHERE game_id = ?",
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return time.Duration(best.Int64) * time.Millisecond, true, nil
}

// ClearCompletions deletes all completions for the given game.
func (s *Store) ClearCompletions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var best, last sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(duration_ms), AVG(duration_ms), MAX(created_at)
		 FROM completions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Completions, &best, &avg, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.fill(best, avg, last)
	return stats, nil
}

// GetAllGamesStats retrieves statistics for every game with completions.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MIN(duration_ms), AVG(duration_ms), MAX(created_at)
		 FROM completions
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var best, last sql.NullInt64
		var avg sql.NullFloat64
		if err := rows.Scan(&gs.GameID, &gs.Completions, &best, &avg, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.fill(best, avg, last)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func (gs *GameStats) fill(best sql.NullInt64, avg sql.NullFloat64, last sql.NullInt64) {
	if best.Valid {
		gs.Best = time.Duration(best.Int64) * time.Millisecond
	}
	if avg.Valid {
		gs.Average = time.Duration(avg.Float64 * float64(time.Millisecond))
	}
	if last.Valid {
		gs.LastPlayed = time.UnixMilli(last.Int64)
	}
}
