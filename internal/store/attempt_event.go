package store

import (
	"context"
	"fmt"

	"github.com/abhisek/echoz/ent"
	"github.com/abhisek/echoz/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetRoundID(data.RoundID).
		SetSessionID(data.SessionID).
		SetPromptID(data.PromptID).
		SetLanguage(data.Language).
		SetCategory(data.Category).
		SetExpectedText(data.ExpectedText).
		SetTranscript(data.Transcript).
		SetOutcome(data.Outcome).
		SetTier(data.Tier).
		SetSimilarity(data.Similarity).
		SetScoreDelta(data.ScoreDelta).
		SetListenedMs(data.ListenedMs).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				RoundID:      e.RoundID,
				SessionID:    e.SessionID,
				PromptID:     e.PromptID,
				Language:     e.Language,
				Category:     e.Category,
				ExpectedText: e.ExpectedText,
				Transcript:   e.Transcript,
				Outcome:      e.Outcome,
				Tier:         e.Tier,
				Similarity:   e.Similarity,
				ScoreDelta:   e.ScoreDelta,
				ListenedMs:   e.ListenedMs,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return records, nil
}

func (r *eventRepo) PromptAccuracy(ctx context.Context, promptID string) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.PromptID(promptID),
			attemptevent.Outcome(OutcomeScored),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query prompt accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	excellent := 0
	for _, e := range events {
		if e.Tier == "excellent" {
			excellent++
		}
	}
	return float64(excellent) / float64(len(events)), len(events), nil
}
