package normalize

import (
	"regexp"
	"strings"
)

// Placeholders keep claims with blank text grouped under a stable key
// instead of treating the empty string as a distinct value.
const (
	NoEditsPlaceholder = "--- NO CLAIM EDITS ---"
	NoNotesPlaceholder = "--- NO CLAIM NOTES ---"
)

var (
	lineBreaks = regexp.MustCompile(`\r\n|\r|\n`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// SanitizeEdits collapses whitespace runs to a single space and trims.
// Empty input maps to the no-edits placeholder. Case is preserved for display.
func SanitizeEdits(text string) string {
	if text == "" {
		text = NoEditsPlaceholder
	}
	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SanitizeNotes flattens line breaks to spaces, collapses whitespace runs,
// and trims. Empty input maps to the no-notes placeholder.
func SanitizeNotes(text string) string {
	if text == "" {
		text = NoNotesPlaceholder
	}
	text = lineBreaks.ReplaceAllString(text, " ")
	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Key builds the canonical upper-case lookup key for an (edits, notes) pair.
// The same key is used for rule lookup and for grouping, so every caller
// must go through this function. The pipe delimiter assumes neither field
// contains a literal pipe after sanitization.
func Key(edits, notes string) string {
	return strings.ToUpper(SanitizeEdits(edits) + "|" + SanitizeNotes(notes))
}

// KeyFromSanitized builds the key from already-sanitized display text.
func KeyFromSanitized(edits, notes string) string {
	return strings.ToUpper(edits + "|" + notes)
}
