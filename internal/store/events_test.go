package store

import (
	"context"
	"testing"
)

func appendAttempt(t *testing.T, repo EventRepo, roundID, promptID, outcome, tier string) {
	t.Helper()
	err := repo.AppendAttemptEvent(context.Background(), AttemptEventData{
		RoundID:      roundID,
		SessionID:    "sess-" + promptID,
		PromptID:     promptID,
		Language:     "en-US",
		ExpectedText: "hello world",
		Transcript:   "hello word",
		Outcome:      outcome,
		Tier:         tier,
		Similarity:   0.9,
		ScoreDelta:   10,
		ListenedMs:   4200,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
}

func TestAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendAttempt(t, repo, "r1", "p1", OutcomeScored, "excellent")
	appendAttempt(t, repo, "r1", "p2", OutcomeScored, "retry")
	appendAttempt(t, repo, "r1", "p1", OutcomeCancelled, "")

	all, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d attempts, want 3", len(all))
	}
	if all[0].Outcome != OutcomeCancelled {
		t.Errorf("newest attempt outcome = %q, want cancelled", all[0].Outcome)
	}
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("attempts not ordered newest first: %d then %d", all[0].Sequence, all[1].Sequence)
	}
	if all[2].ListenedMs != 4200 || all[2].Transcript != "hello word" {
		t.Errorf("attempt fields not round-tripped: %+v", all[2].AttemptEventData)
	}

	limited, err := repo.QueryAttempts(ctx, QueryOpts{Limit: 1, Before: all[0].Sequence})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].PromptID != "p2" {
		t.Errorf("limited query = %+v, want the p2 attempt", limited)
	}
}

func TestPromptAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.PromptAccuracy(ctx, "p1")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("empty accuracy = %v over %d, want 0 over 0", acc, n)
	}

	appendAttempt(t, repo, "r1", "p1", OutcomeScored, "excellent")
	appendAttempt(t, repo, "r1", "p1", OutcomeScored, "close")
	appendAttempt(t, repo, "r1", "p1", OutcomeFailed, "")

	acc, n, err = repo.PromptAccuracy(ctx, "p1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 2 {
		t.Errorf("scored attempts = %d, want 2 (failed attempts are not scored)", n)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}
}

func TestRoundSummariesAndLatestScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	score, err := repo.LatestScore(ctx)
	if err != nil {
		t.Fatalf("latest score (empty): %v", err)
	}
	if score != 0 {
		t.Errorf("latest score = %d, want 0", score)
	}

	rounds := []RoundEventData{
		{RoundID: "r1", Action: "start", Language: "en-US", PromptIDs: []string{"p1", "p2"}},
		{RoundID: "r1", Action: "end", Language: "en-US", PromptsServed: 2, Excellent: 1, Retry: 1, ScoreGained: 8, TotalScore: 8, DurationSecs: 40},
		{RoundID: "r2", Action: "start", Language: "de-DE", PromptIDs: []string{"p3"}},
		{RoundID: "r2", Action: "end", Language: "de-DE", PromptsServed: 1, Excellent: 1, ScoreGained: 10, TotalScore: 18, DurationSecs: 12},
	}
	for _, r := range rounds {
		if err := repo.AppendRoundEvent(ctx, r); err != nil {
			t.Fatalf("append round %s/%s: %v", r.RoundID, r.Action, err)
		}
	}

	summaries, err := repo.RoundSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2 (end events only)", len(summaries))
	}
	if summaries[0].RoundID != "r2" {
		t.Errorf("newest round = %q, want r2", summaries[0].RoundID)
	}
	if got := summaries[1].Accuracy(); got != 0.5 {
		t.Errorf("r1 accuracy = %v, want 0.5", got)
	}

	score, err = repo.LatestScore(ctx)
	if err != nil {
		t.Fatalf("latest score: %v", err)
	}
	if score != 18 {
		t.Errorf("latest score = %d, want 18", score)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, model := range []string{"claude-sonnet", "claude-sonnet", "gpt-4o"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "p",
			Model:        model,
			Purpose:      "coach",
			InputTokens:  100,
			OutputTokens: 20,
			LatencyMs:    int64(100 * (i + 1)),
			Success:      true,
			RequestBody:  "req",
			ResponseBody: "resp",
		})
		if err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "req" || got.ResponseBody != "resp" {
		t.Errorf("get returned %+v", got)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("get missing = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 || byPurpose[0].AvgLatencyMs != 200 {
		t.Errorf("usage by purpose = %+v", byPurpose)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "claude-sonnet" || byModel[0].Calls != 2 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestMistakeRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.MistakeRepo()
	ctx := context.Background()

	n, err := repo.Count(ctx, "p1")
	if err != nil {
		t.Fatalf("count (missing): %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 before any miss", n)
	}

	for range 3 {
		if err := repo.Increment(ctx, "p1"); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if err := repo.Increment(ctx, "p2"); err != nil {
		t.Fatalf("increment: %v", err)
	}

	n, err = repo.Count(ctx, "p1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	rec, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if rec.Count("p1") != 3 || rec.Count("p2") != 1 || len(rec) != 2 {
		t.Errorf("snapshot = %v", rec)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	appendAttempt(t, events, "r1", "p1", OutcomeScored, "retry")
	if err := events.AppendRoundEvent(ctx, RoundEventData{RoundID: "r1", Action: "end", TotalScore: 5}); err != nil {
		t.Fatalf("append round: %v", err)
	}
	if err := events.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "p", Model: "m", Purpose: "coach", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := s.MistakeRepo().Increment(ctx, "p1"); err != nil {
		t.Fatalf("increment: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	attempts, _ := events.QueryAttempts(ctx, QueryOpts{})
	score, _ := events.LatestScore(ctx)
	rec, _ := s.MistakeRepo().Snapshot(ctx)
	llmEvents, _ := events.QueryLLMEvents(ctx, QueryOpts{})

	if len(attempts) != 0 || score != 0 || len(rec) != 0 {
		t.Errorf("after reset: %d attempts, score %d, %d mistake rows", len(attempts), score, len(rec))
	}
	if len(llmEvents) != 1 {
		t.Errorf("LLM events = %d, want 1 (kept across reset)", len(llmEvents))
	}
}
