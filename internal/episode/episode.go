package episode

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Workspace property names. These must match the database column names
// one-to-one; `zamek diag` prints the live schema for comparison.
const (
	PropTitle     = "Episode Title"
	PropStatus    = "Status"
	PropRelease   = "Release Date"
	PropRecording = "Recording Date"
	PropNumber    = "Episode Number"
	PropGuest     = "Guest"
	PropTopic     = "Temat"
)

// StatusOptions is the reference set of workflow states in production
// order. The workspace schema remains the source of truth for how the
// status field is represented; this list only drives report bucketing and
// the CLI status picker.
var StatusOptions = []string{"Zaplanowany", "Szkic", "Nagrany", "Zmontowany", "Published"}

// Episode is a read-only projection of one workspace page.
type Episode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Number        *int   `json:"number,omitempty"`
	Status        string `json:"status,omitempty"`
	Topic         string `json:"topic,omitempty"`
	Guest         string `json:"guest,omitempty"`
	RecordingDate string `json:"recordingDate,omitempty"`
	ReleaseDate   string `json:"releaseDate,omitempty"`
}

// Changes captures a partial property update. Nil fields are left
// untouched on the page; a non-nil empty Guest clears the field.
type Changes struct {
	Status    *string
	Topic     *string
	Guest     *string
	Recording *string
	Release   *string
}

// IsEmpty reports whether the update would touch no fields.
func (c Changes) IsEmpty() bool {
	return c.Status == nil && c.Topic == nil && c.Guest == nil && c.Recording == nil && c.Release == nil
}

// Sort orders episodes by number ascending with unnumbered episodes last.
// Ties fall back to title order under Polish collation, the display
// locale of the product.
func Sort(episodes []Episode) {
	collator := collate.New(language.Polish)
	sort.SliceStable(episodes, func(i, j int) bool {
		a, b := episodes[i], episodes[j]
		switch {
		case a.Number == nil && b.Number == nil:
			return collator.CompareString(a.Title, b.Title) < 0
		case a.Number == nil:
			return false
		case b.Number == nil:
			return true
		case *a.Number != *b.Number:
			return *a.Number < *b.Number
		}
		return collator.CompareString(a.Title, b.Title) < 0
	})
}
