package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dossier/internal/core/document"
)

func TestDocumentID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid alphanumeric", "abc123", false},
		{"valid with dashes", "demo-x1y2", false},
		{"valid uuid", "0b6f3c0e-8a3e-4c4b-9d7b-1f3a2c6e5d4f", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"with spaces", "abc 123", true},
		{"with slash", "a/b", true},
		{"with backslash", `a\b`, true},
		{"dot", ".", true},
		{"dot dot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DocumentID(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "DocumentID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestDocumentID_EmptyIsSentinel(t *testing.T) {
	require.ErrorIs(t, DocumentID(""), document.ErrEmptyID)
}

func TestDocumentIDField(t *testing.T) {
	require.NoError(t, DocumentIDField("id", "doc-1"))

	err := DocumentIDField("id", "a/b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")
	assert.Contains(t, err.Error(), "invalid document id")
}
