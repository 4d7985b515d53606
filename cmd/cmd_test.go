package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every path and provider lookup at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, k := range []string{
		"ECHOZ_CONFIG", "ECHOZ_DB", "ECHOZ_CATALOG", "ECHOZ_LLM_PROVIDER", "ECHOZ_ASR_ENGINE",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func TestScoreCommand(t *testing.T) {
	isolate(t)
	out := execute(t, "", "score", "Good morning", "  good MORNING ")
	assert.Contains(t, out, "similarity: 1.000")
	assert.Contains(t, out, "tier:       excellent")
	assert.Contains(t, out, "delta:      +10")
}

func TestCatalogCommand(t *testing.T) {
	isolate(t)
	out := execute(t, "", "catalog", "--language", "de-DE")
	assert.Contains(t, out, "Bis morgen.")
	assert.NotContains(t, out, "Good morning")
}

func TestPracticeSimulated(t *testing.T) {
	dir := isolate(t)
	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(
		"prompts:\n  - {id: p1, language: en-US, category: test, text: \"Nice to meet you.\"}\n"), 0o644))
	t.Setenv("ECHOZ_CATALOG", catalogPath)
	db := filepath.Join(dir, "echoz.db")

	out := execute(t, "Nice to meet you\n", "practice", "--simulate", "--db", db, "--count", "1")
	assert.Contains(t, out, "[1/1] Nice to meet you.")
	assert.Contains(t, out, "EXCELLENT")
	assert.Contains(t, out, "Score:     +10 (★ 10)")

	out = execute(t, "", "stats", "--db", db)
	assert.Contains(t, out, "Score: ★ 10")
	assert.Contains(t, out, "en-US")

	out = execute(t, "", "reset", "--yes", "--db", db)
	assert.Contains(t, out, "Learner data reset.")

	out = execute(t, "", "stats", "--db", db)
	assert.Contains(t, out, "Score: ★ 0")
	assert.Contains(t, out, "No rounds yet.")
}
