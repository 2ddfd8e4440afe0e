package history

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLocked is returned by Prune when another process holds the prune lock
// for longer than the context allows.
var ErrLocked = errors.New("history is locked by another process")

const pruneLockRetry = 25 * time.Millisecond

// Prune deletes the oldest entries so that at most keep remain. keep <= 0
// disables pruning. It returns the number of deleted rows.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	ctx = ensureContext(ctx)

	locked, err := s.lock.TryLockContext(ctx, pruneLockRetry)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return 0, ErrLocked
		}
		return 0, fmt.Errorf("acquire prune lock: %w", err)
	}
	if !locked {
		return 0, ErrLocked
	}
	defer func() { _ = s.lock.Unlock() }()

	res, err := s.execWithRetry(ctx,
		`DELETE FROM conversions WHERE seq NOT IN (
            SELECT seq FROM conversions ORDER BY seq DESC LIMIT ?
        )`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune conversions: %w", err)
	}
	return res.RowsAffected()
}
