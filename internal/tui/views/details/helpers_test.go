package details

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/store"
	"github.com/colonyops/dossier/internal/tui/overlay"
	"github.com/colonyops/dossier/internal/tui/views/letters"
)

type recordingStore struct {
	actions []store.Action
}

func (r *recordingStore) Dispatch(a store.Action) bool {
	r.actions = append(r.actions, a)
	return true
}

func english(t *testing.T) *i18n.Catalog {
	t.Helper()
	tr, err := i18n.Load("en", "")
	require.NoError(t, err)
	return tr
}

func loadedState(status document.Status) document.DetailsState {
	return document.DetailsState{
		ID:        "doc-1",
		Number:    "1024",
		CreatedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:      document.TypeAccountStatement,
		Status:    status,
		Account:   document.Account{Number: "40817810099910004312", Description: "Current account"},
		ItemCount: 3,
		Fee:       "250.00 RUB",
		Attachments: []document.Attachment{
			{ID: "a1", Name: "statement.pdf", Size: 4096, FileState: document.FileUploaded},
		},
	}
}

func loaded(d document.DetailsState) store.Snapshot {
	return store.Snapshot{Data: d}
}

type fixture struct {
	ctrl    *Controller
	store   *recordingStore
	node    *overlay.Node
	retries int
	changes []document.DetailsState
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{store: &recordingStore{}, node: overlay.NewNode()}
	if opts.Type == "" {
		opts.Type = document.TypeAccountStatement
	}
	opts.OnRetry = func() { f.retries++ }
	f.ctrl = NewController(opts, Deps{
		Translator:       english(t),
		Store:            f.store,
		Overlay:          f.node,
		OnDocumentChange: func(d document.DetailsState) { f.changes = append(f.changes, d) },
	})
	return f
}

func (f *fixture) view(t *testing.T) View {
	t.Helper()
	lv := letters.New(nil, f.ctrl.Translator(), true)
	v := New(f.ctrl, lv, nil, DefaultKeyMap())
	v.SetSize(120, 40)
	return v
}
