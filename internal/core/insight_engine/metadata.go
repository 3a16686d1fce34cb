package insight_engine

import (
	"strings"

	"github.com/gecf-kip/insight/internal/models"
)

// knownSources are the publishers recognized by source detection, in priority
// order.
var knownSources = []string{"Rystad Energy", "Enerdata", "Argus", "Wood Mackenzie", "Bloomberg"}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// DetectHeading derives a document heading from the first page: the first
// non-empty line, extended with the second line unless that line looks like a
// source or a date. Falls back to the given default when page one has no
// text.
func DetectHeading(pages []models.Page, fallback string) string {
	if len(pages) == 0 || pages[0].Text == "" {
		return fallback
	}

	var lines []string
	for _, line := range strings.Split(pages[0].Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return fallback
	}

	heading := lines[0]
	if len(lines) > 1 && !isSourceLine(lines[1]) && !isDateLine(lines[1]) {
		heading += " " + lines[1]
	}
	return heading
}

// DetectSource scans the last page, then the first, for a known publisher
// name. Comparison ignores case and whitespace so "WoodMackenzie" in a footer
// still matches. Returns "Unknown" when nothing matches.
func DetectSource(pages []models.Page) string {
	if len(pages) == 0 {
		return "Unknown"
	}
	for _, text := range []string{pages[len(pages)-1].Text, pages[0].Text} {
		squashed := strings.ReplaceAll(strings.ToLower(text), " ", "")
		for _, src := range knownSources {
			if strings.Contains(squashed, strings.ReplaceAll(strings.ToLower(src), " ", "")) {
				return src
			}
		}
	}
	return "Unknown"
}

func isSourceLine(line string) bool {
	lowered := strings.ToLower(line)
	for _, src := range knownSources {
		if strings.Contains(lowered, strings.ToLower(src)) {
			return true
		}
	}
	return false
}

// isDateLine matches month names as whole words, so a title like "Dismay
// over prices" does not read as a date.
func isDateLine(line string) bool {
	words := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	for _, word := range words {
		for _, month := range monthNames {
			if word == month {
				return true
			}
		}
	}
	return false
}
