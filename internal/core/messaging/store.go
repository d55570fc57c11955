package messaging

import (
	"context"
)

// Store defines the interface for letter persistence.
type Store interface {
	// List returns the letters of a document, oldest first. Documents without
	// correspondence return an empty slice.
	List(ctx context.Context, documentID string) ([]Letter, error)

	// Add appends a letter. Missing IDs and timestamps are filled in.
	Add(ctx context.Context, letter Letter) (Letter, error)

	// MarkRead marks the given letters of a document as read. Unknown IDs
	// are ignored.
	MarkRead(ctx context.Context, documentID string, ids []string) error
}
