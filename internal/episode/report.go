package episode

import (
	"fmt"
	"strings"
)

// QuickReport builds the copy-paste status report: one section per
// status in StatusOptions order, episodes listed with number, title, and
// release date. Statuses with no episodes are skipped; episodes carrying
// a status outside the reference set land in a trailing section so they
// are never silently dropped.
func QuickReport(episodes []Episode) string {
	buckets := make(map[string][]Episode)
	for _, e := range episodes {
		buckets[e.Status] = append(buckets[e.Status], e)
	}

	known := make(map[string]struct{}, len(StatusOptions))
	var lines []string
	for _, status := range StatusOptions {
		known[status] = struct{}{}
		lines = appendBucket(lines, status, buckets[status])
	}
	var other []Episode
	for status, group := range buckets {
		if _, ok := known[status]; !ok {
			other = append(other, group...)
		}
	}
	if len(other) > 0 {
		Sort(other)
		lines = appendBucket(lines, "Inne", other)
	}
	return strings.Join(lines, "\n")
}

func appendBucket(lines []string, status string, group []Episode) []string {
	if len(group) == 0 {
		return lines
	}
	lines = append(lines, fmt.Sprintf("**%s** (%d):", status, len(group)))
	for _, e := range group {
		release := e.ReleaseDate
		if release == "" {
			release = "-"
		}
		num := "-"
		if e.Number != nil {
			num = fmt.Sprintf("%d", *e.Number)
		}
		lines = append(lines, fmt.Sprintf("- #%s: %s — data: %s", num, e.Title, release))
	}
	return append(lines, "")
}
