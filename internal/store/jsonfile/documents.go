// Package jsonfile implements file-backed stores for documents and their
// correspondence. Each record lives in its own JSON file named after the
// document ID.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/validate"
)

// DocumentStore reads and writes document snapshots under a directory.
type DocumentStore struct {
	dir string
}

// NewDocumentStore creates a document store rooted at dir.
func NewDocumentStore(dir string) *DocumentStore {
	return &DocumentStore{dir: dir}
}

// Load reads a document by ID. Returns document.ErrDocumentNotFound if no
// file exists for the ID.
func (s *DocumentStore) Load(ctx context.Context, id string) (document.DetailsState, error) {
	if err := validID(id); err != nil {
		return document.DetailsState{}, err
	}
	if err := ctx.Err(); err != nil {
		return document.DetailsState{}, err
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return document.DetailsState{}, fmt.Errorf("%s: %w", id, document.ErrDocumentNotFound)
		}
		return document.DetailsState{}, fmt.Errorf("read document: %w", err)
	}

	var state document.DetailsState
	if err := json.Unmarshal(data, &state); err != nil {
		return document.DetailsState{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	if state.ID == "" {
		state.ID = id
	}
	if state.Attachments == nil {
		state.Attachments = []document.Attachment{}
	}
	return state, nil
}

// Save writes a document atomically.
func (s *DocumentStore) Save(ctx context.Context, state document.DetailsState) error {
	if err := validID(state.ID); err != nil {
		return err
	}
	return writeJSONAtomic(s.path(state.ID), state)
}

func (s *DocumentStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// validID rejects IDs that cannot be used as a file name.
func validID(id string) error {
	return validate.DocumentID(id)
}

func writeJSONAtomic(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
