package coach

import (
	"context"
	"log/slog"
	"sync"

	"github.com/abhisek/echoz/internal/llm"
	"github.com/abhisek/echoz/internal/similarity"
)

// queueSize bounds pending LLM jobs; Advise drops work beyond it.
const queueSize = 16

// Service produces feedback for missed attempts.
type Service struct {
	tipper *Tipper
	log    *slog.Logger
	done   chan struct{}

	mu      sync.RWMutex
	pending chan tipJob // nil once closed
}

type tipJob struct {
	ctx   context.Context
	req   Request
	rules *Feedback
	cb    func(*Feedback)
}

// NewService creates a coach. With a nil provider only word-level
// feedback is produced.
func NewService(provider llm.Provider, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		log:     log,
		pending: make(chan tipJob, queueSize),
		done:    make(chan struct{}),
	}
	if provider == nil {
		close(s.done)
		return s
	}
	s.tipper = NewTipper(provider, DefaultTipperConfig())
	go s.processLoop(s.pending)
	return s
}

// Advise returns word-level feedback for req immediately, or nil when the
// attempt needs none (excellent tier or nothing heard). If an LLM is
// available a tip is queued and cb receives it later on another
// goroutine; cb is not called when the LLM fails or the queue is full.
func (s *Service) Advise(ctx context.Context, req Request, cb func(*Feedback)) *Feedback {
	if req.Tier == similarity.TierExcellent || len(words(req.Heard)) == 0 {
		return nil
	}
	rules := ruleFeedback(req)
	if s.tipper == nil || cb == nil {
		return rules
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pending == nil {
		return rules
	}
	select {
	case s.pending <- tipJob{ctx: context.WithoutCancel(ctx), req: req, rules: rules, cb: cb}:
	default:
		s.log.Debug("coach queue full, dropping tip", "prompt", req.PromptID)
	}
	return rules
}

func (s *Service) processLoop(pending <-chan tipJob) {
	defer close(s.done)
	for job := range pending {
		fb, err := s.tipper.Tip(job.ctx, job.req, job.rules)
		if err != nil {
			s.log.Warn("coach tip failed", "prompt", job.req.PromptID, "err", err)
			continue
		}
		job.cb(fb)
	}
}

// Close stops accepting work and waits for queued tips to finish.
func (s *Service) Close() {
	s.mu.Lock()
	if s.pending != nil && s.tipper != nil {
		close(s.pending)
	}
	s.pending = nil
	s.mu.Unlock()
	<-s.done
}
