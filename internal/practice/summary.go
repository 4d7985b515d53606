package practice

import (
	"time"

	"github.com/abhisek/echoz/internal/similarity"
)

// Summary is what the summary screen and `echoz practice` print.
type Summary struct {
	RoundID     string
	Language    string
	Category    string
	Duration    time.Duration
	Served      int
	Excellent   int
	Close       int
	Retry       int
	Unscored    int
	ScoreGained int
	TotalScore  int

	// Accuracy is the excellent share of scored attempts.
	Accuracy float64

	// MissedPromptIDs lists prompts with a close or retry attempt, in
	// first-miss order.
	MissedPromptIDs []string

	Attempts []Attempt
}

// BuildSummary tallies r.
func BuildSummary(r *Round) *Summary {
	s := &Summary{
		RoundID:     r.ID,
		Language:    r.Language,
		Category:    r.Category,
		Duration:    r.Elapsed,
		Served:      len(r.Attempts),
		ScoreGained: r.Total - r.StartTotal,
		TotalScore:  r.Total,
		Attempts:    r.Attempts,
	}

	seen := make(map[string]bool)
	for _, a := range r.Attempts {
		if !a.Scored {
			s.Unscored++
			continue
		}
		switch a.Outcome.Tier {
		case similarity.TierExcellent:
			s.Excellent++
		case similarity.TierClose:
			s.Close++
		case similarity.TierRetry:
			s.Retry++
		}
		if a.Missed() && !seen[a.Prompt.ID] {
			seen[a.Prompt.ID] = true
			s.MissedPromptIDs = append(s.MissedPromptIDs, a.Prompt.ID)
		}
	}

	if scored := s.Excellent + s.Close + s.Retry; scored > 0 {
		s.Accuracy = float64(s.Excellent) / float64(scored)
	}
	return s
}
