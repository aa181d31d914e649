package notion

// RichText is a single run of workspace rich text. Reads rely on
// PlainText; writes populate Text.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// TextContent is the writable body of a rich text run.
type TextContent struct {
	Content string `json:"content"`
}

// String returns the display text of the run.
func (r RichText) String() string {
	if r.PlainText != "" {
		return r.PlainText
	}
	if r.Text != nil {
		return r.Text.Content
	}
	return ""
}

// SelectOption names a select, status, or multi-select tag.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue carries an ISO-8601 start value.
type DateValue struct {
	Start string `json:"start"`
}

// Person is a people-property entry. Only the display name is read; the
// workspace requires user IDs to write this property.
type Person struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// PropertyValue is the read-side union of the property types the
// dashboard touches. Type tags which member is populated.
type PropertyValue struct {
	Type        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	Status      *SelectOption  `json:"status,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	People      []Person       `json:"people,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
}

// Page is one database row.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyMeta describes a database column.
type PropertyMeta struct {
	Type string `json:"type"`
}

// Database is the database metadata consumed for diagnostics and field
// shaping.
type Database struct {
	ID         string                  `json:"id"`
	Title      []RichText              `json:"title"`
	Properties map[string]PropertyMeta `json:"properties"`
}

// TitleText joins the database title runs.
func (d *Database) TitleText() string {
	text := joinRichText(d.Title)
	if text == "" {
		return "(bez nazwy)"
	}
	return text
}

// Block is an appendable child block. Exactly one payload member is set,
// selected by Type.
type Block struct {
	Object   string        `json:"object"`
	Type     string        `json:"type"`
	Heading3 *RichTextBody `json:"heading_3,omitempty"`
	ToDo     *ToDoBody     `json:"to_do,omitempty"`
}

// RichTextBody is the body of text-bearing blocks.
type RichTextBody struct {
	RichText []RichText `json:"rich_text"`
}

// ToDoBody is the body of a to_do block.
type ToDoBody struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
}

// HeadingBlock builds a heading_3 block.
func HeadingBlock(text string) Block {
	return Block{
		Object:   "block",
		Type:     "heading_3",
		Heading3: &RichTextBody{RichText: writableText(text)},
	}
}

// ToDoItem builds an unchecked to_do block.
func ToDoItem(text string) Block {
	return Block{
		Object: "block",
		Type:   "to_do",
		ToDo:   &ToDoBody{RichText: writableText(text), Checked: false},
	}
}

func writableText(text string) []RichText {
	return []RichText{{Type: "text", Text: &TextContent{Content: text}}}
}

func joinRichText(runs []RichText) string {
	var out string
	for _, r := range runs {
		out += r.String()
	}
	return out
}
