package episode_test

import (
	"strings"
	"testing"

	"zamek/internal/episode"
)

func TestQuickReportBucketsByStatus(t *testing.T) {
	episodes := []episode.Episode{
		{Number: intp(3), Title: "Intro", Status: "Nagrany", ReleaseDate: "2025-09-05"},
		{Number: intp(1), Title: "Pilot", Status: "Published", ReleaseDate: "2025-08-01"},
		{Number: intp(4), Title: "Zamek", Status: "Nagrany"},
	}

	report := episode.QuickReport(episodes)

	nagrany := strings.Index(report, "**Nagrany** (2):")
	published := strings.Index(report, "**Published** (1):")
	if nagrany == -1 || published == -1 {
		t.Fatalf("missing section headers:\n%s", report)
	}
	if nagrany > published {
		t.Fatalf("sections out of status order:\n%s", report)
	}
	if !strings.Contains(report, "- #3: Intro — data: 2025-09-05") {
		t.Fatalf("missing release date line:\n%s", report)
	}
	if !strings.Contains(report, "- #4: Zamek — data: -") {
		t.Fatalf("missing placeholder for absent date:\n%s", report)
	}
	if strings.Contains(report, "Zaplanowany") {
		t.Fatalf("empty status bucket should be skipped:\n%s", report)
	}
}

func TestQuickReportKeepsUnknownStatuses(t *testing.T) {
	report := episode.QuickReport([]episode.Episode{
		{Number: intp(9), Title: "Eksperyment", Status: "Wstrzymany"},
	})
	if !strings.Contains(report, "**Inne** (1):") || !strings.Contains(report, "Eksperyment") {
		t.Fatalf("unknown status dropped:\n%s", report)
	}
}

func TestSortOrdersByNumberThenTitle(t *testing.T) {
	episodes := []episode.Episode{
		{Title: "Żart", Number: intp(2)},
		{Title: "Bez numeru"},
		{Title: "Zamek", Number: intp(2)},
		{Title: "Pilot", Number: intp(1)},
	}
	episode.Sort(episodes)

	if episodes[0].Title != "Pilot" {
		t.Fatalf("expected Pilot first, got %q", episodes[0].Title)
	}
	// Polish collation puts Z before Ż.
	if episodes[1].Title != "Zamek" || episodes[2].Title != "Żart" {
		t.Fatalf("tie-break order wrong: %q, %q", episodes[1].Title, episodes[2].Title)
	}
	if episodes[3].Title != "Bez numeru" {
		t.Fatalf("unnumbered episode should sort last, got %q", episodes[3].Title)
	}
}
