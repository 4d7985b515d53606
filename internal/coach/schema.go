package coach

import "github.com/abhisek/echoz/internal/llm"

// TipSchema is the structured output requested from the LLM.
var TipSchema = &llm.Schema{
	Name:        "pronunciation-tip",
	Description: "One short, concrete pronunciation tip for a language learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tip": map[string]any{
				"type":        "string",
				"description": "A single actionable sentence addressed to the learner",
			},
			"focus": map[string]any{
				"type": "string",
				"enum": []any{
					string(FocusMissingWords), string(FocusExtraWords), string(FocusVowels),
					string(FocusConsonants), string(FocusWordEndings), string(FocusRhythm), string(FocusOther),
				},
				"description": "The area the tip is about",
			},
		},
		"required":             []any{"tip", "focus"},
		"additionalProperties": false,
	},
}
