package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/colonyops/dossier/internal/core/messaging"
)

// LettersFile is the root JSON structure stored on disk per document.
type LettersFile struct {
	Letters []messaging.Letter `json:"letters"`
}

// LetterStore implements messaging.Store with one JSON file per document.
type LetterStore struct {
	dir string
	mu  sync.RWMutex
	now func() time.Time
}

var _ messaging.Store = (*LetterStore)(nil)

// NewLetterStore creates a letter store rooted at dir.
func NewLetterStore(dir string) *LetterStore {
	return &LetterStore{dir: dir, now: time.Now}
}

// List returns a document's letters, oldest first.
func (s *LetterStore) List(ctx context.Context, documentID string) ([]messaging.Letter, error) {
	if err := validID(documentID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load(documentID)
	if err != nil {
		return nil, err
	}
	return file.Letters, nil
}

// Add appends a letter to its document's file.
func (s *LetterStore) Add(ctx context.Context, letter messaging.Letter) (messaging.Letter, error) {
	if err := letter.Validate(); err != nil {
		return messaging.Letter{}, err
	}
	if err := validID(letter.DocumentID); err != nil {
		return messaging.Letter{}, err
	}

	if letter.ID == "" {
		letter.ID = uuid.NewString()
	}
	if letter.CreatedAt.IsZero() {
		letter.CreatedAt = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load(letter.DocumentID)
	if err != nil {
		return messaging.Letter{}, err
	}
	file.Letters = append(file.Letters, letter)

	if err := s.save(letter.DocumentID, file); err != nil {
		return messaging.Letter{}, err
	}
	return letter, nil
}

// MarkRead marks letters as read. The file is only rewritten if something changed.
func (s *LetterStore) MarkRead(ctx context.Context, documentID string, ids []string) error {
	if err := validID(documentID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load(documentID)
	if err != nil {
		return err
	}

	changed := false
	for i := range file.Letters {
		if _, ok := want[file.Letters[i].ID]; ok && !file.Letters[i].Read {
			file.Letters[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(documentID, file)
}

func (s *LetterStore) path(documentID string) string {
	return filepath.Join(s.dir, documentID+".json")
}

// load reads a document's letters file.
// Returns empty LettersFile if the file doesn't exist.
func (s *LetterStore) load(documentID string) (LettersFile, error) {
	data, err := os.ReadFile(s.path(documentID))
	if err != nil {
		if os.IsNotExist(err) {
			return LettersFile{Letters: []messaging.Letter{}}, nil
		}
		return LettersFile{}, fmt.Errorf("read letters: %w", err)
	}

	if len(data) == 0 {
		return LettersFile{Letters: []messaging.Letter{}}, nil
	}

	var file LettersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return LettersFile{}, fmt.Errorf("decode letters: %w", err)
	}
	if file.Letters == nil {
		file.Letters = []messaging.Letter{}
	}
	return file, nil
}

// save writes a document's letters file atomically.
func (s *LetterStore) save(documentID string, file LettersFile) error {
	return writeJSONAtomic(s.path(documentID), file)
}
