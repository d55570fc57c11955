package messaging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLetter(t *testing.T) {
	t.Run("valid letter", func(t *testing.T) {
		l, err := NewLetter("doc-1", "Question", "Hello")
		assert.NoError(t, err)
		assert.Equal(t, "doc-1", l.DocumentID)
		assert.Equal(t, "Question", l.Subject)
		assert.False(t, l.Read)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := NewLetter("", "s", "body")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := NewLetter("doc-1", "s", "")
		assert.ErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("body at max size", func(t *testing.T) {
		l, err := NewLetter("doc-1", "", strings.Repeat("x", MaxBodySize))
		assert.NoError(t, err)
		assert.Len(t, l.Body, MaxBodySize)
	})

	t.Run("body exceeds max size", func(t *testing.T) {
		_, err := NewLetter("doc-1", "", strings.Repeat("x", MaxBodySize+1))
		assert.ErrorIs(t, err, ErrBodyTooLarge)
	})
}

func TestUnread(t *testing.T) {
	letters := []Letter{
		{ID: "1", Read: true},
		{ID: "2"},
		{ID: "3", Read: true},
		{ID: "4"},
	}

	assert.Equal(t, []string{"2", "4"}, IDs(Unread(letters)))
	assert.Empty(t, Unread(nil))
	assert.Empty(t, IDs(nil))
}
