package similarity

// Tier buckets a similarity value for feedback and scoring.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierClose     Tier = "close"
	TierRetry     Tier = "retry"
)

// Tier thresholds. A similarity exactly on a threshold belongs to the higher tier.
const (
	ExcellentThreshold = 0.85
	CloseThreshold     = 0.60
)

// Score deltas applied by the caller for a finished attempt.
const (
	SuccessDelta = 10
	MissDelta    = -2
)

// Outcome is the derived result of scoring one finished attempt.
type Outcome struct {
	Similarity float64
	Tier       Tier
	ScoreDelta int
}

// Success reports whether the attempt counts as correct. Only excellent
// attempts do; close and retry are both recorded as misses.
func (o Outcome) Success() bool {
	return o.Tier == TierExcellent
}

// TierFor maps a similarity value to its tier.
func TierFor(similarity float64) Tier {
	switch {
	case similarity >= ExcellentThreshold:
		return TierExcellent
	case similarity >= CloseThreshold:
		return TierClose
	default:
		return TierRetry
	}
}

// Evaluate scores actual against expected and attaches the tier and delta.
func Evaluate(expected, actual string) Outcome {
	s := Score(expected, actual)
	tier := TierFor(s)
	delta := MissDelta
	if tier == TierExcellent {
		delta = SuccessDelta
	}
	return Outcome{Similarity: s, Tier: tier, ScoreDelta: delta}
}

// ApplyDelta adds delta to total, flooring the result at zero so a streak of
// misses never drives the running score negative.
func ApplyDelta(total, delta int) int {
	total += delta
	if total < 0 {
		return 0
	}
	return total
}
