package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/echoz/internal/asr"
	"github.com/abhisek/echoz/internal/asr/scripted"
	"github.com/abhisek/echoz/internal/audio"
	"github.com/abhisek/echoz/internal/catalog"
	"github.com/abhisek/echoz/internal/coach"
	"github.com/abhisek/echoz/internal/config"
	"github.com/abhisek/echoz/internal/llm"
	"github.com/abhisek/echoz/internal/observe"
	"github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/store"
)

// scriptedWordDelay paces simulated speech so the live transcript is visible.
const scriptedWordDelay = 120 * time.Millisecond

// loadConfig resolves the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Resolve(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DB = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = config.LogLevel(v)
	}
	if v, _ := cmd.Flags().GetString("metrics-addr"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v, _ := cmd.Flags().GetBool("simulate"); v {
		cfg.ASR.Engine = config.EngineScripted
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db / config (highest
// priority), then ECHOZ_DB, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the database. Used by commands
// that only read or reset learner data.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}

// loadCatalog returns the configured prompt catalog, or the built-in one.
func loadCatalog(cfg *config.Config) ([]catalog.Prompt, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	pool, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return pool, nil
}

// openLog returns a logger writing to the configured log file.
func openLog(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.Log.File
	if path == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, "echoz.log")
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Log.Level.Level()})
	return slog.New(h), f, nil
}

// runtime holds everything a practice round needs.
type runtime struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *store.Store
	metrics  *observe.Metrics
	coach    *coach.Service
	practice *practice.Service
	recorder *recording.Manager
	pool     []catalog.Prompt

	// coachLLM reports whether LLM tips may follow the rule-based ones.
	coachLLM bool

	// typist is set in simulate mode.
	typist *scripted.Recognizer

	closers []func() error
}

// newRuntime opens the store, starts metrics, and builds the recorder and
// practice services. Close releases everything in reverse order.
func newRuntime(ctx context.Context, cmd *cobra.Command) (_ *runtime, err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	rt := &runtime{cfg: cfg}
	defer func() {
		if err != nil {
			rt.Close()
		}
	}()

	log, logFile, err := openLog(cfg)
	if err != nil {
		return nil, err
	}
	rt.log = log
	rt.closers = append(rt.closers, logFile.Close)
	slog.SetDefault(log)

	if rt.pool, err = loadCatalog(cfg); err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if rt.store, err = store.Open(dbPath); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.closers = append(rt.closers, rt.store.Close)

	if err := rt.initMetrics(ctx); err != nil {
		return nil, err
	}
	rt.initCoach(ctx)

	if err := rt.initRecorder(); err != nil {
		return nil, err
	}

	rt.practice = practice.NewService(practice.Deps{
		Mistakes:  rt.store.MistakeRepo(),
		Events:    rt.store.EventRepo(),
		Snapshots: rt.store.SnapshotRepo(),
		Coach:     rt.coach,
		Metrics:   rt.metrics,
		Logger:    log,
	})
	return rt, nil
}

func (rt *runtime) initMetrics(ctx context.Context) error {
	if rt.cfg.Metrics.Addr == "" {
		rt.metrics = observe.DefaultMetrics()
		return nil
	}
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	rt.closers = append(rt.closers, func() error {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return shutdown(sctx)
	})
	rt.metrics = observe.DefaultMetrics()

	sctx, cancel := context.WithCancel(ctx)
	rt.closers = append(rt.closers, func() error { cancel(); return nil })
	go func() {
		if err := observe.Serve(sctx, rt.cfg.Metrics.Addr, rt.log); err != nil {
			rt.log.Error("metrics server stopped", "err", err)
		}
	}()
	return nil
}

// initCoach wires the LLM coach when a provider is configured. Coaching
// is optional: any failure falls back to rule-based tips.
func (rt *runtime) initCoach(ctx context.Context) {
	llmCfg := rt.cfg.Coach
	var provider llm.Provider
	if llmCfg.Discover() {
		p, err := llm.NewProvider(ctx, llmCfg, llm.Deps{
			Events:  rt.store.EventRepo(),
			Metrics: rt.metrics,
			Logger:  rt.log,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Coaching tips will come from the built-in rules.")
		} else {
			provider = p
			rt.coachLLM = true
		}
	}
	rt.coach = coach.NewService(provider, rt.log)
	rt.closers = append(rt.closers, func() error { rt.coach.Close(); return nil })
}

func (rt *runtime) initRecorder() error {
	cfg := rt.cfg
	opts := []recording.Option{
		recording.WithConfig(cfg.Recording),
		recording.WithLogger(rt.log),
		recording.WithMetrics(rt.metrics),
	}

	if cfg.ASR.Engine == config.EngineScripted {
		rt.typist = scripted.New(scriptedWordDelay)
		mic := scripted.Microphone{SampleRate: cfg.Audio.SampleRate}
		rt.recorder = recording.NewManager(mic, rt.typist, opts...)
		return nil
	}

	if err := cfg.ASR.RequireModel(); err != nil {
		return err
	}
	mic := audio.NewMic(audio.Config{
		Device:     cfg.Audio.Device,
		SampleRate: cfg.Audio.SampleRate,
	}, audio.WithLogger(rt.log))
	rec, err := asr.NewVosk(asr.Config{
		ModelPath:  cfg.ASR.ModelPath,
		SampleRate: cfg.Audio.SampleRate,
		Language:   cfg.ASR.Language,
	}, mic.Bus(), asr.WithLogger(rt.log))
	if err != nil {
		return err
	}
	rt.closers = append(rt.closers, func() error { rec.Close(); return nil })
	rt.recorder = recording.NewManager(mic, rec, opts...)
	return nil
}

// setup returns the round settings, with flag overrides applied.
func (rt *runtime) setup(cmd *cobra.Command) practice.Setup {
	s := practice.Setup{
		Language: rt.cfg.Round.Language,
		Category: rt.cfg.Round.Category,
		Count:    rt.cfg.Round.Count,
	}
	if f := cmd.Flags().Lookup("language"); f != nil && f.Changed {
		s.Language = f.Value.String()
	}
	if f := cmd.Flags().Lookup("category"); f != nil && f.Changed {
		s.Category = f.Value.String()
	}
	if f := cmd.Flags().Lookup("count"); f != nil && f.Changed {
		s.Count, _ = cmd.Flags().GetInt("count")
	}
	return s
}

// Close releases resources in reverse order of acquisition.
func (rt *runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}
