package classify

import (
	"strconv"
	"strings"

	"github.com/gyeh/claimtriage/internal/model"
)

// AgeBucket classifies a raw age value into a fixed range. Thresholds are
// checked from largest to smallest so boundary values land in the higher
// bucket. Non-numeric input yields AgeNA.
func AgeBucket(raw string) model.AgeBucket {
	age, ok := parseAge(raw)
	if !ok {
		return model.AgeNA
	}
	switch {
	case age >= 31:
		return model.Age31Plus
	case age >= 28:
		return model.Age28to30
	case age >= 21:
		return model.Age21to27
	default:
		return model.Age0to20
	}
}

// parseAge accepts integers and spreadsheet-style decimal exports ("28.0"),
// truncating toward zero.
func parseAge(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
