package export

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headerStrip = regexp.MustCompile(`[^A-Za-z0-9_]`)
	sheetStrip  = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// CleanHeaders sanitizes column headers for spreadsheet output: empty
// headers are dropped, everything but alphanumerics and underscores is
// stripped, and duplicates get a numeric suffix. Returns the kept original
// headers and their cleaned forms, aligned by index.
func CleanHeaders(headers []string) (kept, cleaned []string) {
	seen := make(map[string]bool)
	for _, h := range headers {
		original := strings.TrimSpace(h)
		if original == "" {
			continue
		}
		c := headerStrip.ReplaceAllString(original, "")
		if c == "" {
			c = "UnnamedCol"
		}
		unique := c
		for n := 1; seen[unique]; n++ {
			unique = fmt.Sprintf("%s_%d", c, n)
		}
		seen[unique] = true
		kept = append(kept, original)
		cleaned = append(cleaned, unique)
	}
	return kept, cleaned
}

// sheetName strips a title down to a legal, capped sheet name.
func sheetName(title string, maxLen int) string {
	s := sheetStrip.ReplaceAllString(title, "_")
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	s = strings.Trim(s, "_")
	if s == "" {
		s = "Sheet"
	}
	return s
}
