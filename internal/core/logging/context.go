package logging

import "context"

type contextKey string

const (
	documentIDKey contextKey = "document_id"
	commandKey    contextKey = "command"
)

// WithDocumentID adds a document ID to the context.
func WithDocumentID(ctx context.Context, documentID string) context.Context {
	return context.WithValue(ctx, documentIDKey, documentID)
}

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// GetDocumentID retrieves the document ID from the context.
// Returns empty string if not present.
func GetDocumentID(ctx context.Context) string {
	if id, ok := ctx.Value(documentIDKey).(string); ok {
		return id
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
