// Package document defines the details model shown by the details view:
// the document itself, its attachments, and the derived classifications
// used for translation lookups.
package document

import (
	"errors"
	"time"
)

var (
	ErrEmptyID          = errors.New("document id is required")
	ErrDocumentNotFound = errors.New("document not found")
)

// Status is the lifecycle state of a document.
type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusRejected   Status = "REJECTED"
	StatusCancelled  Status = "CANCELLED"
)

// IsTerminal reports whether no further transitions are expected.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusRejected || s == StatusCancelled
}

// FileState is the processing state of a single attachment.
type FileState string

const (
	FileUploaded FileState = "UPLOADED"
	FileSigning  FileState = "SIGNING"
	FileSigned   FileState = "SIGNED"
	FileError    FileState = "ERROR"
)

// Attachment is a file attached to a document.
type Attachment struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Size      uint64    `json:"size" yaml:"size"`
	FileState FileState `json:"file_state" yaml:"file_state"`
}

// AttachmentPatch is a partial attachment record. Nil fields are left
// unchanged when the patch is applied.
type AttachmentPatch struct {
	ID        string
	Name      *string
	FileState *FileState
}

// Apply returns a copy of a with the patch's non-nil fields set.
func (p AttachmentPatch) Apply(a Attachment) Attachment {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.FileState != nil {
		a.FileState = *p.FileState
	}
	return a
}

// LinkedDocument is a reference to another document.
type LinkedDocument struct {
	ID     string `json:"id" yaml:"id"`
	Number string `json:"number" yaml:"number"`
	Type   Type   `json:"type" yaml:"type"`
}

// Account is the account a document is filed against.
type Account struct {
	Number      string `json:"number" yaml:"number"`
	Description string `json:"description" yaml:"description"`
}

// DetailsState is the full document snapshot rendered by the details view.
type DetailsState struct {
	ID             string          `json:"id" yaml:"id"`
	Number         string          `json:"number" yaml:"number"`
	CreatedAt      time.Time       `json:"created_at" yaml:"created_at"`
	Type           Type            `json:"type" yaml:"type"`
	Status         Status          `json:"status" yaml:"status"`
	Account        Account         `json:"account" yaml:"account"`
	ItemCount      int             `json:"item_count" yaml:"item_count"`
	Fee            string          `json:"fee" yaml:"fee"`
	Attachments    []Attachment    `json:"attachments" yaml:"attachments"`
	LinkedDocument *LinkedDocument `json:"linked_document,omitempty" yaml:"linked_document,omitempty"`
}

// HasLinkedDocument reports whether the linked document reference is usable.
func (d DetailsState) HasLinkedDocument() bool {
	return d.LinkedDocument != nil && d.LinkedDocument.ID != ""
}

// RenderNumber formats the document number line shown in the header.
// Returns an empty string when the document has no number yet.
func RenderNumber(d DetailsState) string {
	if d.Number == "" {
		return ""
	}
	if d.CreatedAt.IsZero() {
		return "№ " + d.Number
	}
	return "№ " + d.Number + " from " + d.CreatedAt.Format("02.01.2006")
}
