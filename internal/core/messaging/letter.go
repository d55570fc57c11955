// Package messaging models the correspondence attached to a document.
package messaging

import (
	"errors"
	"time"
)

// Validation errors for Letter.
var (
	ErrEmptyDocument = errors.New("document id is required")
	ErrEmptyBody     = errors.New("letter body is required")
	ErrBodyTooLarge  = errors.New("letter body exceeds maximum size")
)

// MaxBodySize is the maximum allowed letter body size in bytes (256KB).
const MaxBodySize = 256 << 10

// Letter is a single piece of correspondence about a document. Body is
// markdown.
type Letter struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Source     string    `json:"source,omitempty"`
	Sender     string    `json:"sender,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLetter creates an unread Letter for a document.
// Returns an error if validation fails.
func NewLetter(documentID, subject, body string) (Letter, error) {
	l := Letter{
		DocumentID: documentID,
		Subject:    subject,
		Body:       body,
	}
	if err := l.Validate(); err != nil {
		return Letter{}, err
	}
	return l, nil
}

// Validate checks that the letter meets all constraints.
func (l *Letter) Validate() error {
	if l.DocumentID == "" {
		return ErrEmptyDocument
	}
	if l.Body == "" {
		return ErrEmptyBody
	}
	if len(l.Body) > MaxBodySize {
		return ErrBodyTooLarge
	}
	return nil
}

// Unread returns the unread letters in their original order.
func Unread(letters []Letter) []Letter {
	var out []Letter
	for _, l := range letters {
		if !l.Read {
			out = append(out, l)
		}
	}
	return out
}

// IDs returns the IDs of letters in order.
func IDs(letters []Letter) []string {
	ids := make([]string, 0, len(letters))
	for _, l := range letters {
		ids = append(ids, l.ID)
	}
	return ids
}
