package episode

import (
	"strings"
	"time"
)

// ParseDateAny normalizes the textual date encodings accepted by the
// command payload: a bare calendar date ("2025-08-29") or a full
// timestamp ("2025-08-29T18:00:00+02:00", trailing "Z" included). The
// result is always a canonical YYYY-MM-DD string. Unparseable input
// returns ok=false.
func ParseDateAny(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02"), true
	}
	return "", false
}
