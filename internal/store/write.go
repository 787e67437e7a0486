package store

import (
	"context"
	"fmt"
	"time"
)

// Save inserts rec, replacing any existing row for the same numbers and
// target. A zero CreatedAt is stamped with the current time.
func (s *Store) Save(ctx context.Context, rec Record) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO solutions
		(numbers, target, solved, expression, postfix, shape, examined, run_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(numbers, target) DO UPDATE SET
			solved     = excluded.solved,
			expression = excluded.expression,
			postfix    = excluded.postfix,
			shape      = excluded.shape,
			examined   = excluded.examined,
			run_id     = excluded.run_id,
			created_at = excluded.created_at
	`,
		formatNumbers(rec.Numbers),
		rec.Target,
		rec.Solved,
		rec.Expression,
		rec.Postfix,
		rec.Shape,
		rec.Examined,
		rec.RunID,
		created.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save solution: %w", err)
	}

	return nil
}
