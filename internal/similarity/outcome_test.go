package similarity

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		similarity float64
		want       Tier
	}{
		{1, TierExcellent},
		{0.85, TierExcellent},
		{0.849, TierClose},
		{0.60, TierClose},
		{0.59, TierRetry},
		{0, TierRetry},
	}
	for _, tt := range tests {
		if got := TierFor(tt.similarity); got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.similarity, got, tt.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	o := Evaluate("Good morning", "good morning")
	if o.Tier != TierExcellent || o.ScoreDelta != SuccessDelta || !o.Success() {
		t.Errorf("exact match: got %+v", o)
	}

	o = Evaluate("cat", "bat")
	if o.Tier != TierClose {
		t.Errorf("cat/bat tier = %q, want close", o.Tier)
	}
	if o.ScoreDelta != MissDelta || o.Success() {
		t.Errorf("close attempt should be a miss, got %+v", o)
	}

	o = Evaluate("good morning", "")
	if o.Tier != TierRetry || o.ScoreDelta != MissDelta {
		t.Errorf("empty answer: got %+v", o)
	}
}

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		total, delta, want int
	}{
		{0, SuccessDelta, 10},
		{10, MissDelta, 8},
		{1, MissDelta, 0},
		{0, MissDelta, 0},
	}
	for _, tt := range tests {
		if got := ApplyDelta(tt.total, tt.delta); got != tt.want {
			t.Errorf("ApplyDelta(%d, %d) = %d, want %d", tt.total, tt.delta, got, tt.want)
		}
	}
}
