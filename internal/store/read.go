package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectColumns = `
	SELECT numbers, target, solved, expression, postfix, shape, examined, run_id, created_at
	FROM solutions
`

// Get returns the record for numbers (input order) and target.
// Returns ErrNotFound if the hand has not been saved.
func (s *Store) Get(ctx context.Context, numbers [4]int64, target int64) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+`WHERE numbers = ? AND target = ?`,
		formatNumbers(numbers), target)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get solution: %w", err)
	}

	return rec, nil
}

// List returns up to limit records, newest first. A limit <= 0 returns all.
// Ties on created_at are broken by numbers, then target, for stable output.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := selectColumns + `ORDER BY created_at DESC, numbers ASC, target ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	return s.query(ctx, query, args...)
}

// ListRun returns every record written under runID, oldest first.
func (s *Store) ListRun(ctx context.Context, runID string) ([]Record, error) {
	return s.query(ctx, selectColumns+`WHERE run_id = ? ORDER BY created_at ASC, numbers ASC, target ASC`, runID)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solutions: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solutions: %w", err)
	}

	return records, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec     Record
		numbers string
		created int64
	)
	err := sc.Scan(&numbers, &rec.Target, &rec.Solved, &rec.Expression, &rec.Postfix,
		&rec.Shape, &rec.Examined, &rec.RunID, &created)
	if err != nil {
		return Record{}, err
	}

	rec.Numbers, err = parseNumbers(numbers)
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.UnixMilli(created).UTC()

	return rec, nil
}
