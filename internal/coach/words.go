package coach

import (
	"fmt"
	"strings"
	"unicode"
)

// words splits s into case-folded words, dropping punctuation but keeping
// in-word apostrophes and hyphens ("don't", "vis-à-vis").
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '’' && r != '-'
	})
}

// diffWords returns the expected words missing from heard and the heard
// words not in expected, matching occurrences one to one.
func diffWords(expected, heard string) (missed, extra []string) {
	want := words(expected)
	got := words(heard)

	avail := make(map[string]int, len(got))
	for _, w := range got {
		avail[w]++
	}
	for _, w := range want {
		if avail[w] > 0 {
			avail[w]--
			continue
		}
		missed = append(missed, w)
	}

	need := make(map[string]int, len(want))
	for _, w := range want {
		need[w]++
	}
	for _, w := range got {
		if need[w] > 0 {
			need[w]--
			continue
		}
		extra = append(extra, w)
	}
	return missed, extra
}

// ruleFeedback produces the synchronous tip from the word diff alone.
func ruleFeedback(req Request) *Feedback {
	missed, extra := diffWords(req.Expected, req.Heard)
	fb := &Feedback{PromptID: req.PromptID, Source: SourceRules, Missed: missed, Extra: extra}

	switch {
	case len(missed) > 0 && len(extra) > 0 && len(missed) == len(extra):
		fb.Focus = FocusOther
		fb.Tip = fmt.Sprintf("%s came out as %s. Slow down on those words.",
			quoteList(missed), quoteList(extra))
	case len(missed) > 0:
		fb.Focus = FocusMissingWords
		fb.Tip = fmt.Sprintf("Listen again for %s; they were not heard.", quoteList(missed))
	case len(extra) > 0:
		fb.Focus = FocusExtraWords
		fb.Tip = fmt.Sprintf("Drop %s and read the sentence exactly as written.", quoteList(extra))
	default:
		fb.Focus = FocusRhythm
		fb.Tip = "All the words were there. Say it once more, evenly and a little slower."
	}
	return fb
}

func quoteList(ws []string) string {
	const limit = 3
	shown := ws
	if len(shown) > limit {
		shown = shown[:limit]
	}
	q := make([]string, len(shown))
	for i, w := range shown {
		q[i] = `"` + w + `"`
	}
	out := strings.Join(q, ", ")
	if len(ws) > limit {
		out += fmt.Sprintf(" and %d more", len(ws)-limit)
	}
	return out
}
