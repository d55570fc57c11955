// Package letters renders the correspondence region of the details view
// and presents unread letters in the side overlay.
package letters

import (
	"github.com/colonyops/dossier/internal/core/messaging"
)

// Controller tracks the letters of one document and decides when they are
// presented. It contains pure data logic with no Bubble Tea dependencies.
type Controller struct {
	autoPresent bool
	docID       string
	letters     []messaging.Letter
	loaded      bool
	seenCount   int  // last view count acted on
	pending     bool // view count grew before a document's letters were loaded
	presented   []messaging.Letter
}

// NewController creates a controller. When autoPresent is false the view
// count is tracked but never opens the overlay.
func NewController(autoPresent bool) *Controller {
	return &Controller{autoPresent: autoPresent}
}

// DocumentID returns the current document.
func (c *Controller) DocumentID() string {
	return c.docID
}

// SetDocument switches to another document and drops its letters. Returns
// false when id is already current.
func (c *Controller) SetDocument(id string) bool {
	if id == c.docID {
		return false
	}
	c.docID = id
	c.letters = nil
	c.loaded = false
	c.presented = nil
	return true
}

// SetLetters replaces the loaded letters. Letters of another document are
// ignored. A pending presentation is resolved here.
func (c *Controller) SetLetters(docID string, letters []messaging.Letter) []messaging.Letter {
	if docID != c.docID {
		return nil
	}
	c.letters = append([]messaging.Letter(nil), letters...)
	c.loaded = true

	if c.pending {
		c.pending = false
		return c.present()
	}
	return nil
}

// Observe is called with the view count on every render. When the count
// has grown since the last call the letters are presented. It returns the
// letters that became presented, or nil.
func (c *Controller) Observe(viewCount int) []messaging.Letter {
	if viewCount <= c.seenCount {
		return nil
	}
	c.seenCount = viewCount

	if !c.autoPresent {
		return nil
	}
	// Growth seen before a document or its letters arrive is kept until
	// SetLetters.
	if c.docID == "" || !c.loaded {
		c.pending = true
		return nil
	}
	return c.present()
}

// present selects unread letters, or the whole history when everything has
// been read, and marks the selection read locally.
func (c *Controller) present() []messaging.Letter {
	selection := messaging.Unread(c.letters)
	if len(selection) == 0 {
		selection = c.letters
	}
	if len(selection) == 0 {
		return nil
	}

	c.presented = append([]messaging.Letter(nil), selection...)
	for i := range c.letters {
		c.letters[i].Read = true
	}
	return c.presented
}

// Presented returns the letters shown in the overlay by the last
// presentation.
func (c *Controller) Presented() []messaging.Letter {
	return c.presented
}

// Letters returns the loaded letters, oldest first.
func (c *Controller) Letters() []messaging.Letter {
	return c.letters
}

// Loaded reports whether letters for the current document were loaded.
func (c *Controller) Loaded() bool {
	return c.loaded
}

// UnreadCount returns the number of unread letters.
func (c *Controller) UnreadCount() int {
	return len(messaging.Unread(c.letters))
}

// SeenCount returns the last view count acted on.
func (c *Controller) SeenCount() int {
	return c.seenCount
}
