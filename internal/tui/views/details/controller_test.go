package details

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/store"
)

func TestController_ServiceType(t *testing.T) {
	f := newFixture(t, Options{Type: document.TypeComplaint})
	assert.Equal(t, document.ServiceClaim, f.ctrl.ServiceType())
}

func TestController_CounterRisingEdges(t *testing.T) {
	f := newFixture(t, Options{})
	require.Equal(t, 0, f.ctrl.ViewCount())

	steps := []struct {
		answer bool
		want   int
	}{
		{false, 0},
		{true, 1},
		{true, 1},
		{false, 1},
		{false, 1},
		{true, 2},
	}
	for _, s := range steps {
		f.ctrl.SetAnswer(s.answer)
		assert.Equal(t, s.want, f.ctrl.ViewCount())
	}
}

func TestController_OpenedWithAnswer(t *testing.T) {
	f := newFixture(t, Options{Answer: true})
	assert.Equal(t, 1, f.ctrl.ViewCount())

	f.ctrl.SetAnswer(true)
	assert.Equal(t, 1, f.ctrl.ViewCount(), "steady state does not count")
}

func TestController_OpenLettersIncrements(t *testing.T) {
	f := newFixture(t, Options{})
	assert.Equal(t, 1, f.ctrl.OpenLetters())
	f.ctrl.SetAnswer(true)
	assert.Equal(t, 3, f.ctrl.OpenLetters())
}

func TestController_SnapshotIdempotence(t *testing.T) {
	f := newFixture(t, Options{Answer: true})
	snap := loaded(loadedState(document.StatusCreated))

	assert.True(t, f.ctrl.SetSnapshot(snap))
	for range 3 {
		assert.False(t, f.ctrl.SetSnapshot(snap))
		_ = f.ctrl.Plan()
		_ = f.ctrl.Actions()
	}

	assert.Empty(t, f.store.actions, "rendering never dispatches")
	assert.Equal(t, 1, f.ctrl.ViewCount(), "rendering never counts")
	assert.Len(t, f.changes, 1, "hook runs once per change")
}

func TestController_DocumentChangeHook(t *testing.T) {
	f := newFixture(t, Options{})

	f.ctrl.SetSnapshot(store.Snapshot{IsLoadingSkeleton: true})
	assert.Empty(t, f.changes, "empty id does not trigger the hook")

	d := loadedState(document.StatusCreated)
	f.ctrl.SetSnapshot(store.Snapshot{Data: d, IsLoadingSkeleton: true})
	require.Len(t, f.changes, 1)
	assert.Equal(t, "doc-1", f.changes[0].ID)

	f.ctrl.SetSnapshot(store.Snapshot{Data: d})
	assert.Len(t, f.changes, 1, "flag changes alone are not data changes")

	d.Status = document.StatusDone
	f.ctrl.SetSnapshot(store.Snapshot{Data: d})
	assert.Len(t, f.changes, 2)
}

func TestController_DefaultHookIsNoop(t *testing.T) {
	c := NewController(Options{}, Deps{Translator: english(t), Store: &recordingStore{}})
	assert.NotPanics(t, func() {
		c.SetSnapshot(loaded(loadedState(document.StatusDone)))
	})
}

func TestController_UpdateFileForwardsUnchanged(t *testing.T) {
	f := newFixture(t, Options{})
	name := "renamed.pdf"
	patch := document.AttachmentPatch{ID: "a1", Name: &name}

	f.ctrl.UpdateFile(patch)

	require.Len(t, f.store.actions, 1)
	assert.Equal(t, store.UpdateFile(patch), f.store.actions[0])
}

func TestController_RetryCallsOnRetry(t *testing.T) {
	f := newFixture(t, Options{})
	f.ctrl.Retry()
	f.ctrl.Retry()
	assert.Equal(t, 2, f.retries)

	c := NewController(Options{}, Deps{Translator: english(t)})
	assert.NotPanics(t, c.Retry, "nil callback")
}

func TestController_ActionsDispatchThroughController(t *testing.T) {
	f := newFixture(t, Options{})
	f.ctrl.SetSnapshot(loaded(loadedState(document.StatusCreated)))

	actions := f.ctrl.Actions()
	ids := make([]document.ActionID, 0, len(actions))
	for _, a := range actions {
		ids = append(ids, a.ID)
	}
	require.Equal(t, []document.ActionID{document.ActionCancel, document.ActionSign, document.ActionWriteLetter}, ids)

	actions[1].Run()
	require.Len(t, f.store.actions, 1, "signing updates the file through the store")

	actions[0].Run()
	assert.Equal(t, []Request{{Action: document.ActionCancel, DocumentID: "doc-1"}}, f.ctrl.DrainRequests())
	assert.Empty(t, f.ctrl.DrainRequests())
}

func TestController_LettersProps(t *testing.T) {
	f := newFixture(t, Options{Answer: true})
	f.ctrl.SetSnapshot(loaded(loadedState(document.StatusCreated)))

	p := f.ctrl.LettersProps()
	assert.Equal(t, DefaultCorrespondenceSource, p.Source)
	assert.Equal(t, "doc-1", p.DocumentID)
	assert.Equal(t, 1, p.ViewCount)
	assert.Same(t, f.node, p.Overlay.Node)
	assert.False(t, p.Overlay.Opened)

	f.node.Show("x", "y")
	assert.True(t, f.ctrl.LettersProps().Overlay.Opened)
}
