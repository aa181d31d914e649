package daemon

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"log/slog"

	"zamek/internal/command"
	"zamek/internal/episode"
	"zamek/internal/journal"
	"zamek/internal/notion"
	"zamek/internal/testsupport"
)

type workspaceStub struct {
	episodes   []episode.Episode
	updates    int
	checklists int
	failWith   error
}

func intp(n int) *int { return &n }

func (s *workspaceStub) Episodes(context.Context) ([]episode.Episode, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.episodes, nil
}

func (s *workspaceStub) UpdateProperties(context.Context, string, episode.Changes) ([]string, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.updates++
	return nil, nil
}

func (s *workspaceStub) AppendChecklist(context.Context, string, []string) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.checklists++
	return nil
}

func (s *workspaceStub) Database(context.Context) (*notion.Database, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &notion.Database{
		Title: []notion.RichText{{PlainText: "Podcast Zamkowy"}},
		Properties: map[string]notion.PropertyMeta{
			"Episode Title": {Type: "title"},
			"Status":        {Type: "select"},
		},
	}, nil
}

func newTestDaemon(t *testing.T, ws *workspaceStub) *Daemon {
	t.Helper()
	cfg := testsupport.NewConfig(t)

	store, err := journal.Open(cfg.Daemon.StateDir)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	d, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), ws, store)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return d
}

func TestHandleEpisodes(t *testing.T) {
	ws := &workspaceStub{episodes: []episode.Episode{{ID: "p1", Number: intp(3), Title: "Intro Episode", Status: "Szkic"}}}
	d := newTestDaemon(t, ws)

	req := httptest.NewRequest(http.MethodGet, "/api/episodes", nil)
	w := httptest.NewRecorder()
	d.server.handleEpisodes(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp struct {
		Episodes []episode.Episode `json:"episodes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Episodes) != 1 || resp.Episodes[0].Title != "Intro Episode" {
		t.Fatalf("unexpected episodes: %+v", resp.Episodes)
	}
}

func TestHandleReportIsPlainText(t *testing.T) {
	ws := &workspaceStub{episodes: []episode.Episode{{ID: "p1", Number: intp(3), Title: "Intro", Status: "Nagrany"}}}
	d := newTestDaemon(t, ws)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	w := httptest.NewRecorder()
	d.server.handleReport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("content type = %q", got)
	}
	if !strings.Contains(w.Body.String(), "**Nagrany** (1):") {
		t.Fatalf("report body missing section:\n%s", w.Body.String())
	}
}

func TestHandleSignedCommandExecutes(t *testing.T) {
	ws := &workspaceStub{episodes: []episode.Episode{{ID: "p3", Number: intp(3), Title: "Intro Episode"}}}
	d := newTestDaemon(t, ws)

	signer, err := command.NewSigner("tajny-klucz")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	link, err := command.BuildLink(signer, "http://zamekd.local/command", command.Command{
		Op:    command.OpUpdateProperties,
		Page:  "#3 Intro",
		Props: map[string]string{"Status": "Nagrany"},
	})
	if err != nil {
		t.Fatalf("BuildLink returned error: %v", err)
	}
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/command?"+parsed.RawQuery, nil)
	w := httptest.NewRecorder()
	d.server.handleSignedCommand(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if ws.updates != 1 {
		t.Fatalf("expected one update, got %d", ws.updates)
	}

	entries, err := d.journal.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("journal read: %v", err)
	}
	if len(entries) != 1 || entries[0].Source != "link" || !entries[0].OK {
		t.Fatalf("journal entry missing: %+v", entries)
	}
}

func TestHandleSignedCommandRejectsBadSignature(t *testing.T) {
	ws := &workspaceStub{}
	d := newTestDaemon(t, ws)

	token, err := command.Encode(command.Command{Op: command.OpAddChecklist, PageID: "X", Items: []string{"a"}})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/command?cmd="+token+"&sig="+strings.Repeat("0", 64), nil)
	w := httptest.NewRecorder()
	d.server.handleSignedCommand(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if ws.checklists != 0 {
		t.Fatal("command must not execute on signature failure")
	}
}

func TestHandleSignedCommandRequiresBothParams(t *testing.T) {
	d := newTestDaemon(t, &workspaceStub{})

	for _, query := range []string{"", "cmd=abc", "sig=def"} {
		req := httptest.NewRequest(http.MethodGet, "/command?"+query, nil)
		w := httptest.NewRecorder()
		d.server.handleSignedCommand(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", query, w.Code)
		}
	}
}

func TestHandleRawCommandUnknownOp(t *testing.T) {
	d := newTestDaemon(t, &workspaceStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(`{"op":"frobnicate"}`))
	w := httptest.NewRecorder()
	d.server.handleRawCommand(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "frobnicate") {
		t.Fatalf("response should carry the unknown tag: %s", w.Body.String())
	}
}

func TestHandleEpisodesSurfacesWorkspaceError(t *testing.T) {
	ws := &workspaceStub{failWith: &notion.APIError{Status: 404, Code: "object_not_found", Message: "Could not find database."}}
	d := newTestDaemon(t, ws)

	req := httptest.NewRequest(http.MethodGet, "/api/episodes", nil)
	w := httptest.NewRecorder()
	d.server.handleEpisodes(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "object_not_found") {
		t.Fatalf("error code not surfaced: %s", w.Body.String())
	}
}

func TestAuthMiddleware(t *testing.T) {
	handler := authMiddleware("sekret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/episodes", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/episodes", nil)
	req.Header.Set("Authorization", "Bearer sekret")
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with token, got %d", w.Code)
	}
}

func TestStartRejectsSecondInstance(t *testing.T) {
	ws := &workspaceStub{}
	first := newTestDaemon(t, ws)
	second, err := New(first.cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), ws, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := context.Background()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("first Start returned error: %v", err)
	}
	t.Cleanup(first.Stop)

	if err := second.Start(ctx); err == nil {
		second.Stop()
		t.Fatal("second instance should fail to acquire the lock")
	} else if !strings.Contains(err.Error(), "already running") {
		t.Fatalf("unexpected error: %v", err)
	}
}
