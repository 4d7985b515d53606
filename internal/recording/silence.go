package recording

import (
	"strings"
	"time"
)

// Action is what the session should do with its silence timer.
type Action int

const (
	Keep Action = iota
	Arm
	Disarm
)

// Decision is the SilencePolicy's answer to one activity signal.
type Decision struct {
	Action Action
	After  time.Duration // only meaningful for Arm
}

// SilencePolicy decides when an utterance is finished from the sequence of
// recognizer activity. It holds no timers itself; the session arms and
// disarms them according to the returned Decision.
type SilencePolicy struct {
	minDuration   time.Duration
	silenceWindow time.Duration

	// pendingFinal is set when a final fragment arrived before the
	// minimum-duration guard elapsed.
	pendingFinal bool
}

func NewSilencePolicy(cfg Config) *SilencePolicy {
	return &SilencePolicy{minDuration: cfg.MinDuration, silenceWindow: cfg.SilenceWindow}
}

// OnInterim handles an interim fragment: the speaker is still talking, so
// any armed silence timer is cancelled and a pending final is forgotten.
func (p *SilencePolicy) OnInterim() Decision {
	p.pendingFinal = false
	return Decision{Action: Disarm}
}

// OnFinal handles a final fragment. transcript is the accumulated final
// transcript including this fragment.
func (p *SilencePolicy) OnFinal(transcript string, sinceStart time.Duration) Decision {
	if strings.TrimSpace(transcript) == "" {
		return Decision{Action: Keep}
	}
	if sinceStart < p.minDuration {
		p.pendingFinal = true
		return Decision{Action: Keep}
	}
	p.pendingFinal = false
	return Decision{Action: Arm, After: p.silenceWindow}
}

// OnGuardElapsed handles the end of the minimum-duration guard. A final
// that arrived during the guard arms the silence timer for what is left of
// the window, measured from the last activity.
func (p *SilencePolicy) OnGuardElapsed(sinceActivity time.Duration) Decision {
	if !p.pendingFinal {
		return Decision{Action: Keep}
	}
	p.pendingFinal = false
	return Decision{Action: Arm, After: max(0, p.silenceWindow-sinceActivity)}
}
