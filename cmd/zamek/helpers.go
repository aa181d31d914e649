package main

import (
	"context"
	"errors"

	"zamek/internal/episode"
)

// noopWorkspace backs signature-only verification paths that never
// dispatch a command.
type noopWorkspace struct{}

func (noopWorkspace) Episodes(context.Context) ([]episode.Episode, error) {
	return nil, errors.New("workspace not available")
}

func (noopWorkspace) UpdateProperties(context.Context, string, episode.Changes) ([]string, error) {
	return nil, errors.New("workspace not available")
}

func (noopWorkspace) AppendChecklist(context.Context, string, []string) error {
	return errors.New("workspace not available")
}
