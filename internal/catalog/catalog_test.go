package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	prompts := Default()
	require.NotEmpty(t, prompts)
	require.NoError(t, Validate(prompts))
}

func TestLoad(t *testing.T) {
	src := `
prompts:
  - id: a
    language: en-US
    category: food
    text: "An apple a day."
  - id: b
    language: de-DE
    category: food
    text: "Ein Apfel."
`
	prompts, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, Prompt{ID: "a", Language: "en-US", Category: "food", Text: "An apple a day."}, prompts[0])
}

func TestLoad_UnknownField(t *testing.T) {
	src := "prompts:\n  - id: a\n    language: en-US\n    text: hi\n    colour: red\n"
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestValidate_JoinsAllErrors(t *testing.T) {
	err := Validate([]Prompt{
		{ID: "", Language: "en-US", Text: "x"},
		{ID: "dup", Language: "en-US", Text: "x"},
		{ID: "dup", Language: "", Text: ""},
	})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "prompts[0]: id is required")
	assert.Contains(t, msg, `duplicate id "dup"`)
	assert.Contains(t, msg, "prompts[2]: text is required")
	assert.Contains(t, msg, "prompts[2]: language is required")
}

func TestFilter(t *testing.T) {
	pool := []Prompt{
		{ID: "1", Language: "en-US", Category: "food"},
		{ID: "2", Language: "en-US", Category: "travel"},
		{ID: "3", Language: "de-DE", Category: "food"},
	}

	assert.Len(t, Filter(pool, "", ""), 3)
	assert.Len(t, Filter(pool, "en-US", ""), 2)
	assert.Len(t, Filter(pool, "", "food"), 2)

	got := Filter(pool, "de-DE", "food")
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	assert.Equal(t, []string{"de-DE", "en-US"}, Languages(pool))
	assert.Equal(t, []string{"food", "travel"}, Categories(pool))
}
