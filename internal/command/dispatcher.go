package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"zamek/internal/episode"
)

// Workspace is the external collaborator contract the dispatcher needs:
// query the collection, patch named fields on a record, append checklist
// blocks. The notion package provides the production implementation;
// tests use an in-memory fake.
type Workspace interface {
	Episodes(ctx context.Context) ([]episode.Episode, error)
	UpdateProperties(ctx context.Context, pageID string, changes episode.Changes) (warnings []string, err error)
	AppendChecklist(ctx context.Context, pageID string, items []string) error
}

// Result is the outcome of one dispatched command. Message is always
// safe to show to the user; Warnings carry field-level skips that did
// not fail the command.
type Result struct {
	OK       bool     `json:"ok"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// Dispatcher validates decoded commands and executes them against the
// workspace. It holds no mutable state; every Apply resolves its target
// against a fresh read of the collection.
type Dispatcher struct {
	workspace Workspace
	logger    *slog.Logger
}

// NewDispatcher builds a dispatcher over the given workspace.
func NewDispatcher(workspace Workspace, logger *slog.Logger) (*Dispatcher, error) {
	if workspace == nil {
		return nil, errors.New("dispatcher requires a workspace")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{workspace: workspace, logger: logger}, nil
}

// Apply executes the command. The error return carries the failure
// class for callers that branch on it; Result.Message is the
// user-facing summary either way.
func (d *Dispatcher) Apply(ctx context.Context, cmd Command) (Result, error) {
	switch cmd.Op {
	case OpUpdateProperties:
		return d.applyUpdate(ctx, cmd)
	case OpAddChecklist:
		return d.applyChecklist(ctx, cmd)
	default:
		err := fmt.Errorf("%w: %q", ErrUnsupportedOperation, cmd.Op)
		return Result{Message: err.Error()}, err
	}
}

func (d *Dispatcher) applyUpdate(ctx context.Context, cmd Command) (Result, error) {
	pageID, err := d.resolveTarget(ctx, cmd)
	if err != nil {
		return targetFailure(cmd, err), err
	}

	changes, warnings := changesFromProps(cmd.Props)
	updateWarnings, err := d.workspace.UpdateProperties(ctx, pageID, changes)
	warnings = append(warnings, updateWarnings...)
	if err != nil {
		return Result{Message: err.Error(), Warnings: warnings}, err
	}
	d.logger.Info("properties updated",
		slog.String("page_id", pageID),
		slog.Int("fields", len(cmd.Props)))
	return Result{OK: true, Message: "Properties updated.", Warnings: warnings}, nil
}

func (d *Dispatcher) applyChecklist(ctx context.Context, cmd Command) (Result, error) {
	if len(cmd.Items) == 0 {
		return Result{Message: "Checklist has no items."}, ErrEmptyChecklist
	}
	pageID, err := d.resolveTarget(ctx, cmd)
	if err != nil {
		return targetFailure(cmd, err), err
	}
	if err := d.workspace.AppendChecklist(ctx, pageID, cmd.Items); err != nil {
		return Result{Message: err.Error()}, err
	}
	d.logger.Info("checklist added",
		slog.String("page_id", pageID),
		slog.Int("items", len(cmd.Items)))
	return Result{OK: true, Message: "Checklist added."}, nil
}

// resolveTarget prefers a direct page id; otherwise it matches the label
// against a fresh read of the collection.
func (d *Dispatcher) resolveTarget(ctx context.Context, cmd Command) (string, error) {
	if cmd.PageID != "" {
		return cmd.PageID, nil
	}
	if cmd.Page == "" {
		return "", ErrTargetNotFound
	}
	episodes, err := d.workspace.Episodes(ctx)
	if err != nil {
		return "", err
	}
	match, ok := episode.FindByLabel(episodes, cmd.Page)
	if !ok {
		return "", ErrTargetNotFound
	}
	return match.ID, nil
}

func targetMessage(cmd Command) string {
	if cmd.Page == "" && cmd.PageID == "" {
		return "Episode page not found (page/page_id missing)."
	}
	return "Episode page not found (page/page_id)."
}

// targetFailure keeps the not-found wording for a genuine no-match and
// surfaces the collaborator's own error text otherwise, so an outage is
// never reported as a wrong label.
func targetFailure(cmd Command, err error) Result {
	if errors.Is(err, ErrTargetNotFound) {
		return Result{Message: targetMessage(cmd)}
	}
	return Result{Message: err.Error()}
}

// changesFromProps maps the payload into a partial update. Date values
// are normalized to canonical calendar dates; values that cannot be
// parsed as dates are skipped with a warning rather than written raw.
func changesFromProps(props map[string]string) (episode.Changes, []string) {
	var changes episode.Changes
	var warnings []string
	for key, value := range props {
		value := value
		switch key {
		case PropKeyStatus:
			changes.Status = &value
		case PropKeyTopic:
			changes.Topic = &value
		case PropKeyGuest:
			changes.Guest = &value
		case PropKeyRelease:
			if date, ok := episode.ParseDateAny(value); ok {
				changes.Release = &date
			} else {
				warnings = append(warnings, fmt.Sprintf("unparseable date for %q: %q, skipped", key, value))
			}
		case PropKeyRecording:
			if date, ok := episode.ParseDateAny(value); ok {
				changes.Recording = &date
			} else {
				warnings = append(warnings, fmt.Sprintf("unparseable date for %q: %q, skipped", key, value))
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown property %q, skipped", key))
		}
	}
	return changes, warnings
}
