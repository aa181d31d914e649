package episode

import (
	"strconv"
	"strings"
)

// Label is a human-readable episode reference of the form
// "#<number> <title prefix>". Either component may be absent: a missing
// number matches any number, a missing prefix matches any title.
type Label struct {
	Number      *int
	TitlePrefix string
}

// ParseLabel splits a label string into its number and title prefix
// components. Only a leading "#<digits>" token is treated as a number;
// anything after the first space is the title prefix.
func ParseLabel(s string) Label {
	var label Label
	if strings.HasPrefix(s, "#") {
		token, _, _ := strings.Cut(s, " ")
		if n, err := strconv.Atoi(strings.TrimPrefix(token, "#")); err == nil {
			label.Number = &n
		}
	}
	if _, rest, ok := strings.Cut(s, " "); ok {
		label.TitlePrefix = rest
	}
	return label
}

// Matches reports whether the episode satisfies both present components.
func (l Label) Matches(e Episode) bool {
	if l.Number != nil && (e.Number == nil || *e.Number != *l.Number) {
		return false
	}
	if l.TitlePrefix != "" && !strings.HasPrefix(e.Title, l.TitlePrefix) {
		return false
	}
	return true
}

// FindByLabel returns the first episode matching the label, preserving
// collection order.
func FindByLabel(episodes []Episode, raw string) (Episode, bool) {
	label := ParseLabel(raw)
	for _, e := range episodes {
		if label.Matches(e) {
			return e, true
		}
	}
	return Episode{}, false
}

// DisplayLabel renders the canonical label for an episode, the form used
// in pickers and generated command links.
func DisplayLabel(e Episode) string {
	num := "-"
	if e.Number != nil {
		num = strconv.Itoa(*e.Number)
	}
	return "#" + num + " " + e.Title
}
