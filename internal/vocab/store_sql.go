package vocab

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLStore keeps the question bank in the vocabulary table created by db.Open.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context) (Collection, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT japanese, reading, meaning FROM vocabulary ORDER BY japanese`)
	if err != nil {
		return Collection{}, fmt.Errorf("query vocabulary: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Japanese, &e.Reading, &e.Meaning); err != nil {
			return Collection{}, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return Collection{}, err
	}
	c := NewCollection(entries)
	if c.Len() == 0 {
		return Collection{}, ErrEmpty
	}
	return c, nil
}

// Upsert writes the usable entries in one transaction and returns how many
// were written. An existing word gets its reading and meaning replaced.
func (s *SQLStore) Upsert(ctx context.Context, entries []Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().Unix()
	n := 0
	for _, e := range NewCollection(entries).entries {
		_, err := tx.ExecContext(ctx, `INSERT INTO vocabulary (japanese, reading, meaning, created_at)
			VALUES ($1,$2,$3,$4)
			ON CONFLICT (japanese) DO UPDATE SET reading=EXCLUDED.reading, meaning=EXCLUDED.meaning`,
			e.Japanese, e.Reading, e.Meaning, now)
		if err != nil {
			return 0, fmt.Errorf("upsert %q: %w", e.Japanese, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}
