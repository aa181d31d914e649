package notion

import (
	"context"
	"errors"
	"sync"

	"zamek/internal/episode"
)

// Workspace exposes episode-level operations over one database. It
// caches the database schema after the first successful fetch; rows are
// always read fresh.
type Workspace struct {
	client     *Client
	databaseID string

	mu     sync.Mutex
	schema Schema
	meta   *Database
}

// NewWorkspace binds a client to the episode database.
func NewWorkspace(client *Client, databaseID string) (*Workspace, error) {
	if client == nil {
		return nil, errors.New("workspace client required")
	}
	if databaseID == "" {
		return nil, errors.New("workspace database id required")
	}
	return &Workspace{client: client, databaseID: databaseID}, nil
}

// Database returns the cached database metadata, fetching it on first
// use.
func (w *Workspace) Database(ctx context.Context) (*Database, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.meta != nil {
		return w.meta, nil
	}
	meta, err := w.client.RetrieveDatabase(ctx, w.databaseID)
	if err != nil {
		return nil, err
	}
	w.meta = meta
	w.schema = SchemaFromDatabase(meta)
	return meta, nil
}

func (w *Workspace) ensureSchema(ctx context.Context) (Schema, error) {
	if _, err := w.Database(ctx); err != nil {
		return nil, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.schema, nil
}

// Episodes fetches the full collection. API-side sorting by episode
// number is requested only when the column exists; ordering is then
// normalized client-side either way.
func (w *Workspace) Episodes(ctx context.Context) ([]episode.Episode, error) {
	schema, err := w.ensureSchema(ctx)
	if err != nil {
		return nil, err
	}
	sortProperty := ""
	if schema.Has(episode.PropNumber) {
		sortProperty = episode.PropNumber
	}
	pages, err := w.client.QueryDatabase(ctx, w.databaseID, sortProperty)
	if err != nil {
		return nil, err
	}
	episodes := make([]episode.Episode, 0, len(pages))
	for _, page := range pages {
		episodes = append(episodes, EpisodeFromPage(page))
	}
	episode.Sort(episodes)
	return episodes, nil
}

// GuestSkippedWarning explains why a people-typed Guest field is never
// written from free text.
const GuestSkippedWarning = "pole 'Guest' ma typ 'people' i wymaga ID użytkowników, pomijam zapis"

// UpdateProperties patches only the fields present in changes, shaped
// per the declared column types. A people-typed Guest field is skipped
// with a warning instead of being overwritten with free text. An empty
// change set performs no API call.
func (w *Workspace) UpdateProperties(ctx context.Context, pageID string, changes episode.Changes) ([]string, error) {
	schema, err := w.ensureSchema(ctx)
	if err != nil {
		return nil, err
	}

	props := make(map[string]any)
	var warnings []string

	if changes.Status != nil {
		if schema[episode.PropStatus] == FieldStatus {
			props[episode.PropStatus] = StatusValue(*changes.Status)
		} else {
			props[episode.PropStatus] = SelectValue(*changes.Status)
		}
	}
	if changes.Release != nil {
		props[episode.PropRelease] = DateStart(*changes.Release)
	}
	if changes.Recording != nil {
		props[episode.PropRecording] = DateStart(*changes.Recording)
	}
	if changes.Topic != nil && *changes.Topic != "" {
		if schema[episode.PropTopic] == FieldMultiSelect {
			props[episode.PropTopic] = MultiSelectValue(*changes.Topic)
		} else {
			props[episode.PropTopic] = SelectValue(*changes.Topic)
		}
	}
	if changes.Guest != nil {
		if schema[episode.PropGuest] == FieldPeople {
			warnings = append(warnings, GuestSkippedWarning)
		} else {
			props[episode.PropGuest] = RichTextValue(*changes.Guest)
		}
	}

	if len(props) == 0 {
		return warnings, nil
	}
	if err := w.client.UpdatePage(ctx, pageID, props); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// AppendChecklist appends the checklist heading and one unchecked to-do
// block per item, preserving input order.
func (w *Workspace) AppendChecklist(ctx context.Context, pageID string, items []string) error {
	children := make([]Block, 0, len(items)+1)
	children = append(children, HeadingBlock(episode.ChecklistHeading))
	for _, item := range items {
		children = append(children, ToDoItem(item))
	}
	return w.client.AppendBlockChildren(ctx, pageID, children)
}
