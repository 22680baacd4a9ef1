// internal/daily/store.go
//
// SQLite-backed results and leaderboard for the daily challenge.
// One row per (user, date), enforced by a UNIQUE constraint; repeat inserts
// are ignored so a finished day stays finished.

package daily

import (
	"context"
	"database/sql"
)

// Result is one user's finished daily round.
type Result struct {
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	WordLength   int    `json:"wordLength"`
	Difficulty   string `json:"difficulty"`
	Guesses      int    `json:"guesses"`      // letters guessed in total
	WrongGuesses int    `json:"wrongGuesses"` // budget spent
	ElapsedMs    int    `json:"elapsedMs"`
	Won          bool   `json:"won"`
}

// Store wraps the daily_results table.
type Store struct{ db *sql.DB }

// NewStore returns a Store over db.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a result for the date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a finished daily round. Respects UNIQUE(user_id, date);
// an existing row wins and the insert is silently ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO daily_results
			(user_id, date, word_length, difficulty, guesses, wrong_guesses, elapsed_ms, won)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.Date, r.WordLength, r.Difficulty, r.Guesses, r.WrongGuesses, r.ElapsedMs, won,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID       string `json:"userId"`
	Guesses      int    `json:"guesses"`
	WrongGuesses int    `json:"wrongGuesses"`
	ElapsedMs    int    `json:"elapsedMs"`
}

// Leaderboard fetches the top winners for a date, ordered by fewest wrong
// guesses, then elapsed time, then insert order. Default limit is 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, guesses, wrong_guesses, elapsed_ms
		FROM daily_results
		WHERE date=? AND won=1
		ORDER BY wrong_guesses ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Guesses, &r.WrongGuesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
