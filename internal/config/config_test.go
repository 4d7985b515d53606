package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ECHOZ_CONFIG", "ECHOZ_DB", "ECHOZ_VOSK_MODEL", "ECHOZ_ASR_ENGINE", "ECHOZ_AUDIO_DEVICE",
		"ECHOZ_CATALOG", "ECHOZ_METRICS_ADDR", "ECHOZ_LOG_FILE", "ECHOZ_LOG_LEVEL",
		"ECHOZ_LLM_PROVIDER", "ECHOZ_ANTHROPIC_API_KEY", "ECHOZ_OPENAI_API_KEY", "ECHOZ_GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 30*time.Second, cfg.Recording.MaxDuration)
	assert.Equal(t, 2*time.Second, cfg.Recording.MinDuration)
	assert.Equal(t, 3*time.Second, cfg.Recording.SilenceWindow)
	assert.Equal(t, EngineVosk, cfg.ASR.Engine)
	assert.False(t, cfg.Coach.Enabled())
}

func TestLoadFromReader_OverlaysDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`
recording:
  silence_window: 2500ms
round:
  count: 8
  language: de-DE
asr:
  engine: scripted
coach:
  provider: mock
  openai:
    model: gpt-4.1-mini
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.Recording.SilenceWindow)
	assert.Equal(t, 30*time.Second, cfg.Recording.MaxDuration, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.Round.Count)
	assert.Equal(t, "de-DE", cfg.Round.Language)
	assert.Equal(t, EngineScripted, cfg.ASR.Engine)
	assert.Equal(t, "mock", cfg.Coach.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.Coach.OpenAI.Model)
	assert.Equal(t, "claude-haiku", cfg.Coach.Anthropic.Model)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level.Level())
	require.NoError(t, Validate(cfg))
}

func TestLoadFromReader_Empty(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromReader_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("round:\n  rounds: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rounds")
}

func TestLoadFromReader_APIKeyNotReadFromFile(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("coach:\n  openai:\n    apikey: sk-leak\n"))
	require.Error(t, err)
}

func TestValidate_JoinsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Recording.MaxDuration = 0
	cfg.Audio.SampleRate = 12345
	cfg.ASR.Engine = "whisper"
	cfg.Round.Count = 0
	cfg.Log.Level = "loud"
	cfg.Coach.Provider = "parrot"

	err := Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"recording: max_duration",
		"audio.sample_rate 12345",
		`asr.engine "whisper"`,
		"round.count 0",
		`log.level "loud"`,
		`coach: unknown LLM provider: "parrot"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ECHOZ_DB", "/tmp/echoz-test.db")
	t.Setenv("ECHOZ_VOSK_MODEL", "/models/vosk-en")
	t.Setenv("ECHOZ_LOG_LEVEL", "warn")
	t.Setenv("ECHOZ_LLM_PROVIDER", "mock")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "/tmp/echoz-test.db", cfg.DB)
	assert.Equal(t, "/models/vosk-en", cfg.ASR.ModelPath)
	assert.Equal(t, LogWarn, cfg.Log.Level)
	assert.Equal(t, "mock", cfg.Coach.Provider)
}

func TestResolve(t *testing.T) {
	t.Run("missing default path falls back to defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, path, err := Resolve("")
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, 5, cfg.Round.Count)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		clearEnv(t)
		_, _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("ECHOZ_CONFIG then env overrides", func(t *testing.T) {
		clearEnv(t)
		p := filepath.Join(t.TempDir(), "echoz.yaml")
		require.NoError(t, os.WriteFile(p, []byte("round:\n  count: 3\nlog:\n  level: error\n"), 0o644))
		t.Setenv("ECHOZ_CONFIG", p)
		t.Setenv("ECHOZ_LOG_LEVEL", "debug")

		cfg, path, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, p, path)
		assert.Equal(t, 3, cfg.Round.Count)
		assert.Equal(t, LogDebug, cfg.Log.Level)
	})

	t.Run("invalid file is reported", func(t *testing.T) {
		clearEnv(t)
		p := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(p, []byte("round:\n  count: 500\n"), 0o644))
		_, _, err := Resolve(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "round.count 500")
	})
}

func TestRequireModel(t *testing.T) {
	assert.NoError(t, ASRConfig{Engine: EngineScripted}.RequireModel())
	assert.Error(t, ASRConfig{Engine: EngineVosk}.RequireModel())

	dir := t.TempDir()
	assert.NoError(t, ASRConfig{Engine: EngineVosk, ModelPath: dir}.RequireModel())

	file := filepath.Join(dir, "model.zip")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Error(t, ASRConfig{Engine: EngineVosk, ModelPath: file}.RequireModel())
}
