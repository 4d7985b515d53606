package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// supported capture rates; Vosk models are trained at 16 kHz or 8 kHz
var sampleRates = []int{8000, 16000, 22050, 44100, 48000}

// MaxRoundCount bounds round.count.
const MaxRoundCount = 50

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// Resolve finds and loads the configuration. An explicit path (flag or
// ECHOZ_CONFIG) must exist; the default path is optional. Environment
// overrides are applied and the result validated. It returns the path
// actually read, or "" when running on defaults.
func Resolve(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("ECHOZ_CONFIG"); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}

	cfg, err := Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg, path = Default(), ""
	default:
		return nil, "", err
	}

	cfg.ApplyEnv()
	if err := Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/echoz/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, "echoz", "config.yaml"), nil
}

// ApplyEnv overlays ECHOZ_* environment variables.
func (c *Config) ApplyEnv() {
	envString(&c.DB, "ECHOZ_DB")
	envString(&c.ASR.ModelPath, "ECHOZ_VOSK_MODEL")
	envString(&c.ASR.Engine, "ECHOZ_ASR_ENGINE")
	envString(&c.Audio.Device, "ECHOZ_AUDIO_DEVICE")
	envString(&c.Catalog.Path, "ECHOZ_CATALOG")
	envString(&c.Metrics.Addr, "ECHOZ_METRICS_ADDR")
	envString(&c.Log.File, "ECHOZ_LOG_FILE")
	if v := os.Getenv("ECHOZ_LOG_LEVEL"); v != "" {
		c.Log.Level = LogLevel(v)
	}
	c.Coach.ApplyEnv()
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate returns a joined error listing every problem in cfg.
func Validate(cfg *Config) error {
	var errs []error

	if err := cfg.Recording.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("recording: %w", err))
	}
	if !slices.Contains(sampleRates, cfg.Audio.SampleRate) {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d is unsupported; valid values: %v", cfg.Audio.SampleRate, sampleRates))
	}
	switch cfg.ASR.Engine {
	case EngineVosk, EngineScripted:
	default:
		errs = append(errs, fmt.Errorf("asr.engine %q is invalid; valid values: vosk, scripted", cfg.ASR.Engine))
	}
	if cfg.Round.Count < 1 || cfg.Round.Count > MaxRoundCount {
		errs = append(errs, fmt.Errorf("round.count %d is out of range [1, %d]", cfg.Round.Count, MaxRoundCount))
	}
	if !cfg.Log.Level.IsValid() {
		errs = append(errs, fmt.Errorf("log.level %q is invalid; valid values: debug, info, warn, error", cfg.Log.Level))
	}
	if err := cfg.Coach.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("coach: %w", err))
	}
	return errors.Join(errs...)
}

// RequireModel reports whether the configured engine is usable right now.
// Commands that never record skip this check.
func (a ASRConfig) RequireModel() error {
	if a.Engine != EngineVosk {
		return nil
	}
	if a.ModelPath == "" {
		return errors.New("asr.model_path (or ECHOZ_VOSK_MODEL) must point to an unpacked Vosk model; use --simulate to practice without one")
	}
	info, err := os.Stat(a.ModelPath)
	if err != nil {
		return fmt.Errorf("vosk model: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vosk model %q is not a directory", a.ModelPath)
	}
	return nil
}
