package store

import (
	"context"
	"fmt"

	"github.com/abhisek/echoz/ent"
	"github.com/abhisek/echoz/ent/mistakecount"
	"github.com/abhisek/echoz/internal/mistakes"
)

// MistakeRepo is the SQLite-backed mistakes.Store.
type MistakeRepo struct {
	client *ent.Client
}

var _ mistakes.Store = (*MistakeRepo)(nil)

func (r *MistakeRepo) Count(ctx context.Context, id string) (int, error) {
	mc, err := r.client.MistakeCount.Query().
		Where(mistakecount.PromptID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query mistake count %q: %w", id, err)
	}
	return mc.Misses, nil
}

// Increment adds one miss for id, creating the row on the first miss.
func (r *MistakeRepo) Increment(ctx context.Context, id string) error {
	err := r.client.MistakeCount.Create().
		SetPromptID(id).
		SetMisses(1).
		OnConflictColumns(mistakecount.FieldPromptID).
		AddMisses(1).
		UpdateUpdatedAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment mistake count %q: %w", id, err)
	}
	return nil
}

func (r *MistakeRepo) Snapshot(ctx context.Context) (mistakes.Record, error) {
	rows, err := r.client.MistakeCount.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistake counts: %w", err)
	}
	rec := make(mistakes.Record, len(rows))
	for _, mc := range rows {
		rec[mc.PromptID] = mc.Misses
	}
	return rec, nil
}
