package recording

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the session timing policy.
type Config struct {
	// MaxDuration force-finalizes a session that never falls silent.
	MaxDuration time.Duration `yaml:"max_duration"`
	// MinDuration is the guard before which a final fragment cannot arm
	// the silence timer.
	MinDuration time.Duration `yaml:"min_duration"`
	// SilenceWindow is how long the speaker must stay quiet after a final
	// fragment for the utterance to count as finished.
	SilenceWindow time.Duration `yaml:"silence_window"`
}

// DefaultConfig returns the standard timings: 30s max, 2s guard, 3s silence.
func DefaultConfig() Config {
	return Config{
		MaxDuration:   30 * time.Second,
		MinDuration:   2 * time.Second,
		SilenceWindow: 3 * time.Second,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.MaxDuration <= 0 {
		errs = append(errs, fmt.Errorf("max_duration must be positive, got %s", c.MaxDuration))
	}
	if c.MinDuration < 0 {
		errs = append(errs, fmt.Errorf("min_duration must not be negative, got %s", c.MinDuration))
	}
	if c.SilenceWindow <= 0 {
		errs = append(errs, fmt.Errorf("silence_window must be positive, got %s", c.SilenceWindow))
	}
	if c.MaxDuration > 0 && c.MinDuration >= c.MaxDuration {
		errs = append(errs, fmt.Errorf("min_duration (%s) must be shorter than max_duration (%s)", c.MinDuration, c.MaxDuration))
	}
	return errors.Join(errs...)
}
