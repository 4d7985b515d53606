package store

import (
	"context"
	"fmt"

	"github.com/abhisek/echoz/ent"
	"github.com/abhisek/echoz/ent/roundevent"
)

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetAction(data.Action).
		SetLanguage(data.Language).
		SetCategory(data.Category).
		SetPromptsServed(data.PromptsServed).
		SetExcellentCount(data.Excellent).
		SetCloseCount(data.Close).
		SetRetryCount(data.Retry).
		SetUnscoredCount(data.Unscored).
		SetScoreGained(data.ScoreGained).
		SetTotalScore(data.TotalScore).
		SetDurationSecs(data.DurationSecs)

	if len(data.PromptIDs) > 0 {
		builder = builder.SetPromptList(data.PromptIDs)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) RoundSummaries(ctx context.Context, opts QueryOpts) ([]RoundSummaryRecord, error) {
	query := r.client.RoundEvent.Query().
		Where(roundevent.Action("end")).
		Order(ent.Desc(roundevent.FieldSequence))

	if opts.After > 0 {
		query = query.Where(roundevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(roundevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(roundevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(roundevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query round summaries: %w", err)
	}

	records := make([]RoundSummaryRecord, len(events))
	for i, e := range events {
		records[i] = RoundSummaryRecord{
			RoundID:       e.RoundID,
			Timestamp:     e.Timestamp,
			Language:      e.Language,
			Category:      e.Category,
			PromptsServed: e.PromptsServed,
			Excellent:     e.ExcellentCount,
			Close:         e.CloseCount,
			Retry:         e.RetryCount,
			Unscored:      e.UnscoredCount,
			ScoreGained:   e.ScoreGained,
			TotalScore:    e.TotalScore,
			DurationSecs:  e.DurationSecs,
		}
	}
	return records, nil
}

func (r *eventRepo) LatestScore(ctx context.Context) (int, error) {
	e, err := r.client.RoundEvent.Query().
		Where(roundevent.Action("end")).
		Order(ent.Desc(roundevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query latest score: %w", err)
	}
	return e.TotalScore, nil
}
