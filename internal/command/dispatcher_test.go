package command_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"zamek/internal/command"
	"zamek/internal/episode"
	"zamek/internal/notion"
)

// fakeWorkspace is the in-memory collaborator used to test dispatch
// without the workspace API.
type fakeWorkspace struct {
	episodes []episode.Episode

	updates    []recordedUpdate
	checklists []recordedChecklist
	warnings   []string
	failWith   error
}

type recordedUpdate struct {
	pageID  string
	changes episode.Changes
}

type recordedChecklist struct {
	pageID string
	items  []string
}

func (f *fakeWorkspace) Episodes(ctx context.Context) ([]episode.Episode, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.episodes, nil
}

func (f *fakeWorkspace) UpdateProperties(ctx context.Context, pageID string, changes episode.Changes) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.updates = append(f.updates, recordedUpdate{pageID: pageID, changes: changes})
	return f.warnings, nil
}

func (f *fakeWorkspace) AppendChecklist(ctx context.Context, pageID string, items []string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.checklists = append(f.checklists, recordedChecklist{pageID: pageID, items: items})
	return nil
}

func intp(n int) *int { return &n }

func newDispatcher(t *testing.T, ws *fakeWorkspace) *command.Dispatcher {
	t.Helper()
	d, err := command.NewDispatcher(ws, nil)
	if err != nil {
		t.Fatalf("NewDispatcher returned error: %v", err)
	}
	return d
}

func TestApplyUpdateResolvesLabel(t *testing.T) {
	ws := &fakeWorkspace{episodes: []episode.Episode{
		{ID: "a", Number: intp(7), Title: "Inny temat"},
		{ID: "b", Number: intp(8), Title: "Opera, Warszawa, Zamek i małe biurko"},
	}}
	d := newDispatcher(t, ws)

	result, err := d.Apply(context.Background(), command.Command{
		Op:    command.OpUpdateProperties,
		Page:  "#8 Opera",
		Props: map[string]string{"Status": "Nagrany", "Release Date": "2025-08-29T10:00:00Z"},
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !result.OK {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(ws.updates) != 1 || ws.updates[0].pageID != "b" {
		t.Fatalf("unexpected updates: %+v", ws.updates)
	}
	changes := ws.updates[0].changes
	if changes.Status == nil || *changes.Status != "Nagrany" {
		t.Fatalf("status change missing: %+v", changes)
	}
	if changes.Release == nil || *changes.Release != "2025-08-29" {
		t.Fatalf("release date not normalized: %+v", changes.Release)
	}
}

func TestApplyUpdateEmptyPropsLeavesRecordAlone(t *testing.T) {
	ws := &fakeWorkspace{episodes: []episode.Episode{{ID: "a", Number: intp(1), Title: "Intro"}}}
	d := newDispatcher(t, ws)

	result, err := d.Apply(context.Background(), command.Command{
		Op:   command.OpUpdateProperties,
		Page: "#1",
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !result.OK {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(ws.updates) != 1 || !ws.updates[0].changes.IsEmpty() {
		t.Fatalf("empty payload must produce an empty change set: %+v", ws.updates)
	}
}

func TestApplyUpdateTargetNotFound(t *testing.T) {
	ws := &fakeWorkspace{episodes: []episode.Episode{{ID: "a", Number: intp(1), Title: "Intro"}}}
	d := newDispatcher(t, ws)

	result, err := d.Apply(context.Background(), command.Command{
		Op:    command.OpUpdateProperties,
		Page:  "#9 Nieistniejący",
		Props: map[string]string{"Status": "Szkic"},
	})
	if !errors.Is(err, command.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
	if result.OK || len(ws.updates) != 0 {
		t.Fatalf("no update may happen on resolution failure: %+v", result)
	}
	if !strings.Contains(result.Message, "not found") {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestApplyOutageDuringResolutionSurfacesAPIError(t *testing.T) {
	apiErr := &notion.APIError{Status: 503, Code: "service_unavailable", Message: "Notion is down."}
	ws := &fakeWorkspace{failWith: apiErr}
	d := newDispatcher(t, ws)

	for _, cmd := range []command.Command{
		{Op: command.OpUpdateProperties, Page: "#3 Intro", Props: map[string]string{"Status": "Nagrany"}},
		{Op: command.OpAddChecklist, Page: "#3 Intro", Items: []string{"Nagranie"}},
	} {
		result, err := d.Apply(context.Background(), cmd)
		if !errors.Is(err, apiErr) {
			t.Fatalf("%s: expected the API error, got %v", cmd.Op, err)
		}
		if result.OK {
			t.Fatalf("%s: expected failure result: %+v", cmd.Op, result)
		}
		if strings.Contains(result.Message, "not found") {
			t.Fatalf("%s: outage reported as missing page: %q", cmd.Op, result.Message)
		}
		if !strings.Contains(result.Message, "service_unavailable") {
			t.Fatalf("%s: API error not surfaced: %q", cmd.Op, result.Message)
		}
	}
}

func TestApplyUpdatePrefersDirectPageID(t *testing.T) {
	ws := &fakeWorkspace{failWith: nil}
	d := newDispatcher(t, ws)

	_, err := d.Apply(context.Background(), command.Command{
		Op:     command.OpUpdateProperties,
		PageID: "direct-id",
		Props:  map[string]string{"Status": "Szkic"},
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(ws.updates) != 1 || ws.updates[0].pageID != "direct-id" {
		t.Fatalf("expected direct id dispatch, got %+v", ws.updates)
	}
}

func TestApplyChecklistRejectsEmptyItems(t *testing.T) {
	ws := &fakeWorkspace{}
	d := newDispatcher(t, ws)

	result, err := d.Apply(context.Background(), command.Command{
		Op:     command.OpAddChecklist,
		PageID: "X",
		Items:  []string{},
	})
	if !errors.Is(err, command.ErrEmptyChecklist) {
		t.Fatalf("expected ErrEmptyChecklist, got %v", err)
	}
	if result.OK || len(ws.checklists) != 0 {
		t.Fatalf("no append may happen for an empty checklist: %+v", result)
	}
}

func TestApplyChecklistAppendsInOrder(t *testing.T) {
	ws := &fakeWorkspace{episodes: []episode.Episode{{ID: "p3", Number: intp(3), Title: "Intro Episode"}}}
	d := newDispatcher(t, ws)

	items := []string{"Nagranie odcinka", "Montaż", "Publikacja"}
	result, err := d.Apply(context.Background(), command.Command{
		Op:    command.OpAddChecklist,
		Page:  "#3",
		Items: items,
	})
	if err != nil || !result.OK {
		t.Fatalf("Apply failed: %v %+v", err, result)
	}
	if len(ws.checklists) != 1 || ws.checklists[0].pageID != "p3" {
		t.Fatalf("unexpected checklist calls: %+v", ws.checklists)
	}
	for i, item := range items {
		if ws.checklists[0].items[i] != item {
			t.Fatalf("item order not preserved: %+v", ws.checklists[0].items)
		}
	}
}

func TestApplyUnknownOperation(t *testing.T) {
	d := newDispatcher(t, &fakeWorkspace{})

	result, err := d.Apply(context.Background(), command.Command{Op: "frobnicate"})
	if !errors.Is(err, command.ErrUnsupportedOperation) {
		t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
	}
	if !strings.Contains(result.Message, "frobnicate") {
		t.Fatalf("message should carry the unknown tag: %q", result.Message)
	}
}

func TestApplyUpdateSurfacesWorkspaceWarnings(t *testing.T) {
	ws := &fakeWorkspace{
		episodes: []episode.Episode{{ID: "a", Number: intp(2), Title: "Goście"}},
		warnings: []string{"pole 'Guest' ma typ 'people' i wymaga ID użytkowników, pomijam zapis"},
	}
	d := newDispatcher(t, ws)

	result, err := d.Apply(context.Background(), command.Command{
		Op:    command.OpUpdateProperties,
		Page:  "#2",
		Props: map[string]string{"Guest": "Anna Nowak"},
	})
	if err != nil || !result.OK {
		t.Fatalf("Apply failed: %v %+v", err, result)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected the guest warning to surface, got %v", result.Warnings)
	}
}

func TestEndToEndSignedLink(t *testing.T) {
	ws := &fakeWorkspace{episodes: []episode.Episode{
		{ID: "p3", Number: intp(3), Title: "Intro Episode"},
		{ID: "p4", Number: intp(4), Title: "Drugi odcinek"},
	}}
	d := newDispatcher(t, ws)
	signer, err := command.NewSigner("tajny-klucz")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	processor, err := command.NewProcessor(signer, d)
	if err != nil {
		t.Fatalf("NewProcessor returned error: %v", err)
	}

	link, err := command.BuildLink(signer, "https://zamek.example", command.Command{
		Op:    command.OpUpdateProperties,
		Page:  "#3 Intro",
		Props: map[string]string{"Status": "Nagrany"},
	})
	if err != nil {
		t.Fatalf("BuildLink returned error: %v", err)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("built link does not parse: %v", err)
	}
	token := parsed.Query().Get("cmd")
	sig := parsed.Query().Get("sig")
	if token == "" || sig == "" {
		t.Fatalf("link missing cmd/sig: %q", link)
	}

	result, err := processor.Process(context.Background(), token, sig)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !result.OK {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(ws.updates) != 1 || ws.updates[0].pageID != "p3" {
		t.Fatalf("status update did not reach record #3: %+v", ws.updates)
	}
	if ws.updates[0].changes.Status == nil || *ws.updates[0].changes.Status != "Nagrany" {
		t.Fatalf("unexpected change set: %+v", ws.updates[0].changes)
	}
}

func TestProcessRejectsBadSignature(t *testing.T) {
	ws := &fakeWorkspace{}
	d := newDispatcher(t, ws)
	signer, _ := command.NewSigner("tajny-klucz")
	processor, _ := command.NewProcessor(signer, d)

	token, err := command.Encode(command.Command{Op: command.OpAddChecklist, PageID: "X", Items: []string{"a"}})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	result, err := processor.Process(context.Background(), token, strings.Repeat("0", 64))
	if !errors.Is(err, command.ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
	if result.OK || len(ws.checklists) != 0 {
		t.Fatalf("nothing may execute on signature failure: %+v", result)
	}
}
