package command

// Supported operation tags.
const (
	OpUpdateProperties = "update_properties"
	OpAddChecklist     = "add_checklist"
)

// Command is one remote instruction. It is carried as JSON; the
// signature covers the serialized bytes, so two commands are equal
// exactly when their serialized form is byte-identical.
//
// Target resolution uses PageID directly when set, otherwise Page is
// matched as a "#<number> <title prefix>" label against the current
// collection.
type Command struct {
	Op     string            `json:"op"`
	Page   string            `json:"page,omitempty"`
	PageID string            `json:"page_id,omitempty"`
	Props  map[string]string `json:"props,omitempty"`
	Items  []string          `json:"items,omitempty"`
}

// Payload property keys understood by update_properties.
const (
	PropKeyStatus    = "Status"
	PropKeyRelease   = "Release Date"
	PropKeyRecording = "Recording Date"
	PropKeyTopic     = "Topic"
	PropKeyGuest     = "Guest"
)
