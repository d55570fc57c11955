package store

import (
	"github.com/colonyops/dossier/internal/core/document"
)

// Action is a state transition applied by Dispatch.
type Action interface {
	name() string
	reduce(Snapshot) Snapshot
}

type loadStarted struct{}

// LoadStarted switches the store into the loading state. Existing data is
// kept but hidden behind placeholders by readers.
func LoadStarted() Action { return loadStarted{} }

func (loadStarted) name() string { return "load_started" }

func (loadStarted) reduce(s Snapshot) Snapshot {
	s.IsLoadingSkeleton = true
	s.IsError = false
	return s
}

type loadSucceeded struct {
	data document.DetailsState
}

// LoadSucceeded replaces the data and clears the loading and error flags.
func LoadSucceeded(data document.DetailsState) Action { return loadSucceeded{data: data} }

func (loadSucceeded) name() string { return "load_succeeded" }

func (a loadSucceeded) reduce(s Snapshot) Snapshot {
	s.Data = a.data
	s.IsLoadingSkeleton = false
	s.IsError = false
	return s
}

type loadFailed struct{}

// LoadFailed marks the store as failed. The cause is not stored; it is
// logged where the failure happened.
func LoadFailed() Action { return loadFailed{} }

func (loadFailed) name() string { return "load_failed" }

func (loadFailed) reduce(s Snapshot) Snapshot {
	s.IsError = true
	s.IsLoadingSkeleton = false
	return s
}

type updateFile struct {
	patch document.AttachmentPatch
}

// UpdateFile merges a partial attachment into the attachment with the same
// ID. Patches for unknown IDs leave the snapshot unchanged.
func UpdateFile(patch document.AttachmentPatch) Action { return updateFile{patch: patch} }

func (updateFile) name() string { return "update_file" }

func (a updateFile) reduce(s Snapshot) Snapshot {
	idx := -1
	for i, att := range s.Data.Attachments {
		if att.ID == a.patch.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	updated := a.patch.Apply(s.Data.Attachments[idx])
	if updated == s.Data.Attachments[idx] {
		return s
	}

	next := make([]document.Attachment, len(s.Data.Attachments))
	copy(next, s.Data.Attachments)
	next[idx] = updated
	s.Data.Attachments = next
	return s
}
