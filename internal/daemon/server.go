package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"log/slog"

	"zamek/internal/command"
	"zamek/internal/config"
	"zamek/internal/episode"
	"zamek/internal/journal"
	"zamek/internal/notion"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		bind:   cfg.Daemon.APIBind,
		logger: logger,
		daemon: d,
	}

	token := cfg.Daemon.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatus))
	mux.HandleFunc("/api/episodes", authMiddleware(token, srv.handleEpisodes))
	mux.HandleFunc("/api/report", authMiddleware(token, srv.handleReport))
	mux.HandleFunc("/api/schema", authMiddleware(token, srv.handleSchema))
	mux.HandleFunc("/api/journal", authMiddleware(token, srv.handleJournal))
	mux.HandleFunc("/api/command", authMiddleware(token, srv.handleRawCommand))
	mux.HandleFunc("/command", srv.handleSignedCommand)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *apiServer) start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", slog.String("error", err.Error()))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	payload := map[string]any{
		"running":  true,
		"lockFile": s.daemon.lockPath,
	}
	if s.daemon.journal != nil {
		payload["journalDB"] = s.daemon.journal.Path()
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *apiServer) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	episodes, err := s.daemon.workspace.Episodes(r.Context())
	if err != nil {
		s.writeWorkspaceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"episodes": episodes})
}

func (s *apiServer) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	episodes, err := s.daemon.workspace.Episodes(r.Context())
	if err != nil {
		s.writeWorkspaceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, episode.QuickReport(episodes))
}

func (s *apiServer) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	db, err := s.daemon.workspace.Database(r.Context())
	if err != nil {
		s.writeWorkspaceError(w, err)
		return
	}
	properties := make(map[string]string, len(db.Properties))
	for name, meta := range db.Properties {
		properties[name] = meta.Type
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"title":      db.TitleText(),
		"properties": properties,
	})
}

func (s *apiServer) handleJournal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.daemon.journal == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"entries": []journal.Entry{}})
		return
	}
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	entries, err := s.daemon.journal.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// handleRawCommand executes a pasted JSON command, the unsigned input
// path. Reachable only through the token-protected /api/ surface.
func (s *apiServer) handleRawCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 64<<10))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	cmd, err := command.Parse(string(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid command JSON")
		return
	}
	result, err := s.daemon.processor.Dispatch(r.Context(), cmd)
	s.journalCommand(r.Context(), "api", cmd, result)
	s.writeJSON(w, commandStatus(err), result)
}

// handleSignedCommand is the link entrypoint: cmd and sig are both
// required, the signature is checked before anything is decoded, and a
// mismatch is terminal.
func (s *apiServer) handleSignedCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	token := r.URL.Query().Get("cmd")
	sig := r.URL.Query().Get("sig")
	if token == "" || sig == "" {
		s.writeError(w, http.StatusBadRequest, "cmd and sig query parameters are required")
		return
	}

	result, err := s.daemon.processor.Process(r.Context(), token, sig)
	cmd, _ := command.Decode(token)
	s.journalCommand(r.Context(), "link", cmd, result)
	s.writeJSON(w, commandStatus(err), result)
}

func (s *apiServer) journalCommand(ctx context.Context, source string, cmd command.Command, result command.Result) {
	if s.daemon.journal == nil {
		return
	}
	target := cmd.Page
	if target == "" {
		target = cmd.PageID
	}
	if _, err := s.daemon.journal.Record(ctx, journal.Entry{
		Source:  source,
		Op:      cmd.Op,
		Target:  target,
		OK:      result.OK,
		Message: result.Message,
	}); err != nil {
		s.logger.Warn("journal write failed", slog.String("error", err.Error()))
	}
}

// commandStatus maps a dispatch failure class onto an HTTP status.
func commandStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, command.ErrSignatureMismatch):
		return http.StatusForbidden
	case errors.Is(err, command.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, command.ErrTargetNotFound):
		return http.StatusNotFound
	case errors.Is(err, command.ErrEmptyChecklist), errors.Is(err, command.ErrUnsupportedOperation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func (s *apiServer) writeWorkspaceError(w http.ResponseWriter, err error) {
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		s.writeError(w, http.StatusBadGateway, apiErr.Error())
		return
	}
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response", slog.String("error", err.Error()))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": strings.TrimSpace(message)})
}
