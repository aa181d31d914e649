package notion

import (
	"strings"

	"zamek/internal/episode"
)

// FieldType tags a database column's declared representation. Writes
// branch on this tag exactly once, in the builder for that tag.
type FieldType string

const (
	FieldTitle       FieldType = "title"
	FieldRichText    FieldType = "rich_text"
	FieldNumber      FieldType = "number"
	FieldSelect      FieldType = "select"
	FieldStatus      FieldType = "status"
	FieldMultiSelect FieldType = "multi_select"
	FieldPeople      FieldType = "people"
	FieldDate        FieldType = "date"
)

// Schema maps column name to declared type.
type Schema map[string]FieldType

// SchemaFromDatabase projects database metadata into a Schema.
func SchemaFromDatabase(db *Database) Schema {
	schema := make(Schema, len(db.Properties))
	for name, meta := range db.Properties {
		schema[name] = FieldType(meta.Type)
	}
	return schema
}

// Has reports whether the column exists in the database.
func (s Schema) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Write-side property builders, one per field tag.

// TitleValue shapes a title write.
func TitleValue(text string) any {
	return struct {
		Title []RichText `json:"title"`
	}{Title: writableText(text)}
}

// RichTextValue shapes a rich text write; empty text clears the field.
func RichTextValue(text string) any {
	runs := []RichText{}
	if text != "" {
		runs = writableText(text)
	}
	return struct {
		RichText []RichText `json:"rich_text"`
	}{RichText: runs}
}

// SelectValue shapes a plain select tag write.
func SelectValue(name string) any {
	return struct {
		Select SelectOption `json:"select"`
	}{Select: SelectOption{Name: name}}
}

// StatusValue shapes a status-style tag write.
func StatusValue(name string) any {
	return struct {
		Status SelectOption `json:"status"`
	}{Status: SelectOption{Name: name}}
}

// MultiSelectValue shapes a multi-value tag set write from a
// comma-separated list.
func MultiSelectValue(list string) any {
	var options []SelectOption
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			options = append(options, SelectOption{Name: part})
		}
	}
	if options == nil {
		options = []SelectOption{}
	}
	return struct {
		MultiSelect []SelectOption `json:"multi_select"`
	}{MultiSelect: options}
}

// DateStart shapes a date write with an ISO-8601 start value.
func DateStart(date string) any {
	return struct {
		Date DateValue `json:"date"`
	}{Date: DateValue{Start: date}}
}

// EpisodeFromPage projects a database row into the domain view.
func EpisodeFromPage(page Page) episode.Episode {
	e := episode.Episode{ID: page.ID}
	e.Title = pageTitle(page)
	e.Status = pageStatus(page)
	e.Topic = pageTopic(page)
	e.Guest = pageGuest(page)
	e.RecordingDate = pageDate(page, episode.PropRecording)
	e.ReleaseDate = pageDate(page, episode.PropRelease)
	if prop, ok := page.Properties[episode.PropNumber]; ok && prop.Number != nil {
		n := int(*prop.Number)
		e.Number = &n
	}
	return e
}

func pageTitle(page Page) string {
	if title := joinRichText(page.Properties[episode.PropTitle].Title); title != "" {
		return title
	}
	return "(bez tytułu)"
}

func pageStatus(page Page) string {
	prop := page.Properties[episode.PropStatus]
	option := prop.Select
	if prop.Type == string(FieldStatus) {
		option = prop.Status
	}
	if option == nil {
		return ""
	}
	return option.Name
}

func pageTopic(page Page) string {
	prop := page.Properties[episode.PropTopic]
	switch FieldType(prop.Type) {
	case FieldMultiSelect:
		names := make([]string, 0, len(prop.MultiSelect))
		for _, option := range prop.MultiSelect {
			names = append(names, option.Name)
		}
		return strings.Join(names, ", ")
	case FieldSelect:
		if prop.Select != nil {
			return prop.Select.Name
		}
	}
	return ""
}

func pageGuest(page Page) string {
	prop := page.Properties[episode.PropGuest]
	switch FieldType(prop.Type) {
	case FieldPeople:
		names := make([]string, 0, len(prop.People))
		for _, person := range prop.People {
			names = append(names, person.Name)
		}
		return strings.Join(names, ", ")
	case FieldRichText:
		return joinRichText(prop.RichText)
	}
	return ""
}

func pageDate(page Page, name string) string {
	if prop, ok := page.Properties[name]; ok && prop.Date != nil {
		return prop.Date.Start
	}
	return ""
}
