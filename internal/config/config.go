// Package config loads echoz settings from an optional YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"log/slog"

	"github.com/abhisek/echoz/internal/llm"
	"github.com/abhisek/echoz/internal/recording"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to a slog level; unknown values mean info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ASR engines.
const (
	EngineVosk     = "vosk"
	EngineScripted = "scripted"
)

// Config is the full echoz configuration.
type Config struct {
	// DB is the SQLite path. Empty means the default under the data dir.
	DB string `yaml:"db"`

	Recording recording.Config `yaml:"recording"`
	Audio     AudioConfig      `yaml:"audio"`
	ASR       ASRConfig        `yaml:"asr"`
	Round     RoundConfig      `yaml:"round"`
	Catalog   CatalogConfig    `yaml:"catalog"`
	Coach     llm.Config       `yaml:"coach"`
	Log       LogConfig        `yaml:"log"`
	Metrics   MetricsConfig    `yaml:"metrics"`
}

// AudioConfig selects the capture device.
type AudioConfig struct {
	// Device is a substring of the capture device name; empty picks the
	// system default.
	Device     string `yaml:"device"`
	SampleRate int    `yaml:"sample_rate"`
}

// ASRConfig selects the recognizer.
type ASRConfig struct {
	Engine string `yaml:"engine"`

	// ModelPath is the unpacked Vosk model directory.
	ModelPath string `yaml:"model_path"`

	// Language is the model's language tag. Prompts in other languages
	// are refused; empty accepts every language.
	Language string `yaml:"language"`
}

// RoundConfig sets the defaults for a practice round.
type RoundConfig struct {
	Count    int    `yaml:"count"`
	Language string `yaml:"language"`
	Category string `yaml:"category"`
}

// CatalogConfig points at a prompt catalog. Empty Path uses the built-in one.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the log file. The TUI owns the terminal, so logs go
// to File (default: echoz.log in the data dir).
type LogConfig struct {
	Level LogLevel `yaml:"level"`
	File  string   `yaml:"file"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Recording: recording.DefaultConfig(),
		Audio:     AudioConfig{SampleRate: 16000},
		ASR:       ASRConfig{Engine: EngineVosk},
		Round:     RoundConfig{Count: 5, Language: "en-US"},
		Coach:     llm.DefaultConfig(),
		Log:       LogConfig{Level: LogInfo},
	}
}
