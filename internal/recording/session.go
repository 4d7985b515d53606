package recording

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/observe"
)

// Session records one spoken attempt at a prompt. A single goroutine owns
// all mutable session state; capability calls that may block run on their
// own goroutines and report back through the inbox.
//
// Callbacks run on that goroutine and must not block or call State.
type Session struct {
	id      string
	prompt  catalog.Prompt
	cfg     Config
	mic     Microphone
	rec     Recognizer
	clock   Clock
	log     *slog.Logger
	metrics *observe.Metrics

	started  atomic.Bool
	inbox    chan any
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	mu           sync.Mutex
	onTranscript []func(Update)
	onEnded      []func(Result)
	ended        bool
	result       Result

	// Owned by the loop goroutine.
	ctx          context.Context
	cancel       context.CancelFunc
	state        State
	policy       *SilencePolicy
	capture      CaptureHandle
	stream       RecognizerStream
	events       <-chan RecognizerEvent
	finals       []string
	interim      string
	startedAt    time.Time
	lastActivity time.Time
	listened     time.Duration
	timers       [timerCount]Timer
	gens         [timerCount]uint64
	reopening    bool
	releasing    int
	artifact     AudioArtifact
	stopEarly    bool
	fatalErr     error
}

type timerKind int

const (
	timerMax timerKind = iota
	timerGuard
	timerSilence
	timerCount
)

func (k timerKind) String() string {
	return [...]string{"max_duration", "min_duration", "silence"}[k]
}

// Loop inbox messages.
type (
	acquired struct {
		capture CaptureHandle
		stream  RecognizerStream
		err     error
	}
	reopened struct {
		stream RecognizerStream
		err    error
	}
	released struct {
		artifact    AudioArtifact
		hasArtifact bool
		err         error
	}
	timerFired struct {
		kind timerKind
		gen  uint64
		ack  chan struct{}
	}
	stateQuery struct {
		reply chan State
	}
)

// Option configures a Session or Manager.
type Option func(*settings)

type settings struct {
	cfg     Config
	clock   Clock
	log     *slog.Logger
	metrics *observe.Metrics
}

func defaultSettings() settings {
	return settings{cfg: DefaultConfig(), clock: RealClock(), log: slog.Default()}
}

// WithConfig sets the timing policy.
func WithConfig(cfg Config) Option { return func(s *settings) { s.cfg = cfg } }

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option { return func(s *settings) { s.clock = c } }

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(s *settings) { s.log = l } }

// WithMetrics enables metric recording.
func WithMetrics(m *observe.Metrics) Option { return func(s *settings) { s.metrics = m } }

// NewSession creates an Idle session for prompt.
func NewSession(prompt catalog.Prompt, mic Microphone, rec Recognizer, opts ...Option) *Session {
	st := defaultSettings()
	for _, o := range opts {
		o(&st)
	}
	id := uuid.NewString()
	return &Session{
		id:      id,
		prompt:  prompt,
		cfg:     st.cfg,
		mic:     mic,
		rec:     rec,
		clock:   st.clock,
		log:     st.log.With("session_id", id, "prompt_id", prompt.ID),
		metrics: st.metrics,
		inbox:   make(chan any),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
		policy:  NewSilencePolicy(st.cfg),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Prompt returns the prompt being attempted.
func (s *Session) Prompt() catalog.Prompt { return s.prompt }

// Start requests the microphone and begins the session. Cancelling ctx has
// the same effect as Stop. A session can be started only once.
func (s *Session) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrSessionStarted
	}
	// Handles outlive the caller's ctx until they are explicitly stopped.
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.state = AwaitingPermission
	s.metrics.SessionStarted(s.ctx)
	s.log.Debug("session starting", "language", s.prompt.Language)

	go s.acquire()
	go s.run(ctx.Done())
	return nil
}

// Stop requests a manual stop. From Listening it finalizes immediately,
// skipping the minimum-duration guard. Before listening starts it ends
// the session Cancelled. Safe to call more than once and from any goroutine.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Done is closed once the session has ended and its result is available.
func (s *Session) Done() <-chan struct{} { return s.done }

// Ended reports whether the session reached a terminal state.
func (s *Session) Ended() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Result returns the final result once the session has ended.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.ended
}

// Wait blocks until the session ends or ctx is done.
func (s *Session) Wait(ctx context.Context) (Result, error) {
	select {
	case <-s.done:
		res, _ := s.Result()
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	if !s.started.Load() {
		return Idle
	}
	q := stateQuery{reply: make(chan State, 1)}
	select {
	case s.inbox <- q:
		return <-q.reply
	case <-s.done:
		res, _ := s.Result()
		return res.State
	}
}

// OnTranscript registers cb for every interim and final fragment.
func (s *Session) OnTranscript(cb func(Update)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTranscript = append(s.onTranscript, cb)
}

// OnEnded registers cb to receive the result. It fires exactly once, and
// immediately if the session has already ended.
func (s *Session) OnEnded(cb func(Result)) {
	s.mu.Lock()
	if s.ended {
		res := s.result
		s.mu.Unlock()
		cb(res)
		return
	}
	s.onEnded = append(s.onEnded, cb)
	s.mu.Unlock()
}

func (s *Session) post(msg any) {
	select {
	case s.inbox <- msg:
	case <-s.done:
	}
}

func (s *Session) acquire() {
	capture, err := s.mic.RequestCapture(s.ctx)
	if err != nil {
		s.post(acquired{err: fmt.Errorf("request capture: %w", err)})
		return
	}
	stream, err := s.rec.Open(s.ctx, s.prompt.Language)
	if err != nil {
		if _, stopErr := capture.Stop(); stopErr != nil {
			s.log.Warn("stop capture after failed open", "err", stopErr)
		}
		s.post(acquired{err: fmt.Errorf("open recognizer for %q: %w", s.prompt.Language, err)})
		return
	}
	s.post(acquired{capture: capture, stream: stream})
}

func (s *Session) run(ctxDone <-chan struct{}) {
	stopCh := s.stopCh
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.handleStreamClosed()
			} else {
				s.handleEvent(ev)
			}
		case msg := <-s.inbox:
			s.handleMessage(msg)
		case <-stopCh:
			stopCh = nil
			s.handleStop("manual")
		case <-ctxDone:
			ctxDone = nil
			s.handleStop("context")
		}

		if s.state == Finalizing && s.releasing == 0 && s.events == nil && !s.reopening {
			s.finish()
			return
		}
		if s.state.Terminal() {
			s.finish()
			return
		}
	}
}

func (s *Session) handleMessage(msg any) {
	switch m := msg.(type) {
	case stateQuery:
		m.reply <- s.state
	case acquired:
		s.handleAcquired(m)
	case reopened:
		s.handleReopened(m)
	case released:
		s.releasing--
		if m.err != nil {
			s.log.Warn("release handles", "err", m.err)
		}
		if m.hasArtifact {
			s.artifact = m.artifact
		}
	case timerFired:
		s.handleTimer(m)
		close(m.ack)
	}
}

func (s *Session) handleAcquired(m acquired) {
	if m.err != nil {
		if s.stopEarly {
			s.state = Cancelled
			return
		}
		s.log.Warn("session could not start", "err", m.err)
		s.fatalErr = m.err
		s.state = FatalError
		return
	}

	s.capture, s.stream = m.capture, m.stream
	s.events = m.stream.Events()
	if s.stopEarly {
		s.log.Debug("grant arrived after stop, releasing")
		s.beginFinalize()
		return
	}

	now := s.clock.Now()
	s.startedAt, s.lastActivity = now, now
	s.state = Listening
	s.arm(timerMax, s.cfg.MaxDuration)
	s.arm(timerGuard, s.cfg.MinDuration)
	s.log.Debug("listening")
}

func (s *Session) handleStop(source string) {
	switch s.state {
	case AwaitingPermission:
		s.stopEarly = true
		s.cancel()
	case Listening:
		s.log.Debug("stop requested", "source", source)
		s.beginFinalize()
	}
}

func (s *Session) handleEvent(ev RecognizerEvent) {
	switch s.state {
	case Listening:
	case Finalizing:
		// Late fragments flushed by the stopping recognizer still count.
		if ev.Kind == EventFinal && s.fatalErr == nil {
			s.appendFinal(ev.Text)
		}
		return
	default:
		return
	}

	now := s.clock.Now()
	switch ev.Kind {
	case EventInterim:
		s.interim = ev.Text
		s.lastActivity = now
		s.apply(s.policy.OnInterim())
		s.emit(Update{Kind: EventInterim, Fragment: ev.Text, Transcript: s.transcript(), Interim: s.interim})

	case EventFinal:
		s.appendFinal(ev.Text)
		s.interim = ""
		s.lastActivity = now
		s.emit(Update{Kind: EventFinal, Fragment: ev.Text, Transcript: s.transcript()})
		s.apply(s.policy.OnFinal(s.transcript(), now.Sub(s.startedAt)))

	case EventError:
		if Classify(ev.Code) == Transient {
			s.log.Debug("transient recognizer error absorbed", "code", ev.Code)
			s.metrics.TransientError(s.ctx, ev.Code)
			return
		}
		s.log.Warn("fatal recognizer error", "code", ev.Code)
		s.fatalErr = &RecognizerError{Code: ev.Code}
		s.beginFinalize()
	}
}

// handleStreamClosed runs when the current stream's event channel closes.
// While listening that means the recognizer ended on its own and is
// reopened with the accumulated transcript and timers left untouched.
func (s *Session) handleStreamClosed() {
	s.events = nil
	old := s.stream
	s.stream = nil
	if s.state != Listening || s.reopening {
		return
	}

	s.reopening = true
	s.metrics.RecognizerReopened(s.ctx)
	s.log.Info("recognizer stream ended, reopening")
	go func() {
		if old != nil {
			_ = old.Stop()
		}
		ns, err := s.rec.Open(s.ctx, s.prompt.Language)
		s.post(reopened{stream: ns, err: err})
	}()
}

func (s *Session) handleReopened(m reopened) {
	s.reopening = false
	if m.err != nil {
		s.log.Warn("reopen recognizer failed", "err", m.err)
		if s.state == Listening {
			s.fatalErr = fmt.Errorf("reopen recognizer: %w", m.err)
			s.beginFinalize()
		}
		return
	}
	s.stream = m.stream
	s.events = m.stream.Events()
	if s.state != Listening {
		s.releasing++
		go func(st RecognizerStream) {
			s.post(released{err: st.Stop()})
		}(m.stream)
	}
}

func (s *Session) handleTimer(m timerFired) {
	if m.gen != s.gens[m.kind] || s.state != Listening {
		return
	}
	s.timers[m.kind] = nil

	switch m.kind {
	case timerMax:
		s.log.Debug("max duration reached")
		s.beginFinalize()
	case timerGuard:
		d := s.policy.OnGuardElapsed(s.clock.Now().Sub(s.lastActivity))
		s.apply(d)
	case timerSilence:
		if s.transcript() != "" {
			s.log.Debug("silence detected")
			s.beginFinalize()
		}
	}
}

func (s *Session) apply(d Decision) {
	switch d.Action {
	case Disarm:
		s.disarm(timerSilence)
	case Arm:
		if d.After <= 0 {
			s.disarm(timerSilence)
			if s.transcript() != "" {
				s.beginFinalize()
			}
			return
		}
		s.arm(timerSilence, d.After)
	}
}

func (s *Session) arm(kind timerKind, d time.Duration) {
	s.disarm(kind)
	gen := s.gens[kind]
	s.timers[kind] = s.clock.AfterFunc(d, func() {
		ack := make(chan struct{})
		s.post(timerFired{kind: kind, gen: gen, ack: ack})
		select {
		case <-ack:
		case <-s.done:
		}
	})
}

func (s *Session) disarm(kind timerKind) {
	s.gens[kind]++
	if t := s.timers[kind]; t != nil {
		t.Stop()
		s.timers[kind] = nil
	}
}

// beginFinalize disarms every timer and stops both handles concurrently.
// The session stays in Finalizing until the handles are released and the
// recognizer's event channel has closed.
func (s *Session) beginFinalize() {
	if s.state == Listening {
		s.listened = s.clock.Now().Sub(s.startedAt)
	}
	s.state = Finalizing
	for k := range timerCount {
		s.disarm(k)
	}

	capture, stream := s.capture, s.stream
	s.capture = nil
	if capture == nil && stream == nil {
		return
	}
	s.releasing++
	go func() {
		var (
			g           errgroup.Group
			artifact    AudioArtifact
			hasArtifact bool
		)
		if capture != nil {
			g.Go(func() error {
				a, err := capture.Stop()
				if err != nil {
					return fmt.Errorf("stop capture: %w", err)
				}
				artifact, hasArtifact = a, true
				return nil
			})
		}
		if stream != nil {
			g.Go(func() error {
				if err := stream.Stop(); err != nil {
					return fmt.Errorf("stop recognizer: %w", err)
				}
				return nil
			})
		}
		err := g.Wait()
		s.post(released{artifact: artifact, hasArtifact: hasArtifact, err: err})
	}()
}

func (s *Session) appendFinal(text string) {
	if t := strings.TrimSpace(text); t != "" {
		s.finals = append(s.finals, t)
	}
}

func (s *Session) transcript() string {
	return strings.Join(s.finals, " ")
}

func (s *Session) emit(u Update) {
	s.mu.Lock()
	cbs := s.onTranscript
	s.mu.Unlock()
	for _, cb := range cbs {
		cb(u)
	}
}

func (s *Session) finish() {
	res := Result{
		SessionID: s.id,
		Prompt:    s.prompt,
		Listened:  s.listened,
	}
	transcript := s.transcript()
	switch {
	case s.fatalErr != nil:
		res.State, res.Err = FatalError, s.fatalErr
	case s.stopEarly && s.startedAt.IsZero():
		res.State, res.Err = Cancelled, ErrCancelled
	case transcript == "":
		res.State, res.Err = Cancelled, ErrEmptyUtterance
	default:
		res.State = Scored
		res.Transcript = transcript
		res.Artifact = s.artifact
	}
	s.state = res.State
	s.cancel()

	s.log.Info("session ended", "outcome", res.State.String(), "listened", res.Listened, "err", res.Err)
	s.metrics.SessionEnded(s.ctx, res.State.String(), res.Listened)

	s.mu.Lock()
	s.ended = true
	s.result = res
	cbs := s.onEnded
	s.onEnded = nil
	s.mu.Unlock()

	close(s.done)
	for _, cb := range cbs {
		cb(res)
	}
}
