package recording

import (
	"testing"
	"time"
)

func TestSilencePolicy(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		steps func(p *SilencePolicy) Decision
		want  Decision
	}{
		{
			name:  "interim disarms",
			steps: func(p *SilencePolicy) Decision { return p.OnInterim() },
			want:  Decision{Action: Disarm},
		},
		{
			name: "final after guard arms full window",
			steps: func(p *SilencePolicy) Decision {
				return p.OnFinal("hello", 2500*time.Millisecond)
			},
			want: Decision{Action: Arm, After: 3 * time.Second},
		},
		{
			name: "final exactly at guard arms",
			steps: func(p *SilencePolicy) Decision {
				return p.OnFinal("hello", 2*time.Second)
			},
			want: Decision{Action: Arm, After: 3 * time.Second},
		},
		{
			name: "empty final keeps",
			steps: func(p *SilencePolicy) Decision {
				return p.OnFinal("   ", 5*time.Second)
			},
			want: Decision{Action: Keep},
		},
		{
			name: "final before guard is pending",
			steps: func(p *SilencePolicy) Decision {
				return p.OnFinal("hi", time.Second)
			},
			want: Decision{Action: Keep},
		},
		{
			name: "guard arms remainder for pending final",
			steps: func(p *SilencePolicy) Decision {
				p.OnFinal("hi", 1500*time.Millisecond)
				return p.OnGuardElapsed(500 * time.Millisecond)
			},
			want: Decision{Action: Arm, After: 2500 * time.Millisecond},
		},
		{
			name: "guard remainder floors at zero",
			steps: func(p *SilencePolicy) Decision {
				p.OnFinal("hi", 100*time.Millisecond)
				return p.OnGuardElapsed(4 * time.Second)
			},
			want: Decision{Action: Arm, After: 0},
		},
		{
			name: "interim clears pending final",
			steps: func(p *SilencePolicy) Decision {
				p.OnFinal("hi", time.Second)
				p.OnInterim()
				return p.OnGuardElapsed(0)
			},
			want: Decision{Action: Keep},
		},
		{
			name:  "guard without pending final keeps",
			steps: func(p *SilencePolicy) Decision { return p.OnGuardElapsed(0) },
			want:  Decision{Action: Keep},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.steps(NewSilencePolicy(cfg))
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
