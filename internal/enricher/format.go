package enricher

import (
	"fmt"
	"strings"

	"github.com/wxiaoyun/gre-prep/internal/dictionary"
)

// definitionsMarker is the heading the formatter emits. Its presence in
// a Details field marks the card as already enriched.
const definitionsMarker = "Definitions:"

// categories are the parts of speech definitions are grouped under, in
// their fixed display order. Entries with any other part of speech are
// dropped. A category's number in the output is its position here, so
// a noun section is numbered 2 even when no verb section precedes it.
var categories = [...]string{"Verb", "Noun", "Adjective", "Adverb"}

// definition is one formatted sense with its usage examples.
type definition struct {
	text     string
	examples []string
}

// NeedsDefinitions reports whether a Details field still lacks a
// definitions block. The marker match is case-sensitive.
func NeedsDefinitions(details string) bool {
	return !strings.Contains(details, definitionsMarker)
}

// FormatDefinitions renders the HTML block to append to a card's
// Details field. It returns "" when the result holds no usable
// definitions, i.e. none with a recognized part of speech and
// non-empty text.
func FormatDefinitions(result *dictionary.Result) string {
	if result == nil {
		return ""
	}

	sections := make(map[string][]definition, len(categories))
	for _, entry := range result.Definition {
		category, ok := categoryForPOS(entry.POS)
		if !ok {
			continue
		}
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			continue
		}

		examples := make([]string, 0, len(entry.Examples))
		for _, example := range entry.Examples {
			examples = append(examples, example.Text)
		}
		sections[category] = append(sections[category], definition{text: text, examples: examples})
	}
	if len(sections) == 0 {
		return ""
	}

	lines := []string{"<hr><div><b>" + definitionsMarker + "</b></div>"}
	for idx, category := range categories {
		defs := sections[category]
		if len(defs) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("\n<div>%d. <b>%s:</b></div>", idx+1, category))
		for defIdx, def := range defs {
			lines = append(lines, fmt.Sprintf("<div style='margin-left: 20px'>%d. %s</div>", defIdx+1, def.text))
			if len(def.examples) > 0 {
				lines = append(lines, "<div style='margin-left: 40px'><i>Examples:</i></div>")
				for exIdx, example := range def.examples {
					lines = append(lines, fmt.Sprintf("<div style='margin-left: 40px'>%d. %s</div>", exIdx+1, example))
				}
			}
		}

		// Placeholder subsections filled in by hand during review.
		lines = append(lines,
			"<div style='margin-left: 20px'>- Sentences:</div>",
			"<div style='margin-left: 20px'>- Synonyms:</div>")
	}

	return strings.Join(lines, "\n")
}

// categoryForPOS maps a dictionary part-of-speech tag to its display
// category. The tag is matched case-insensitively.
func categoryForPOS(pos string) (string, bool) {
	switch strings.ToLower(pos) {
	case "verb":
		return "Verb", true
	case "noun":
		return "Noun", true
	case "adjective":
		return "Adjective", true
	case "adverb":
		return "Adverb", true
	}
	return "", false
}
