package details

import (
	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/logging"
	"github.com/colonyops/dossier/internal/core/store"
	"github.com/colonyops/dossier/internal/tui/overlay"
	"github.com/colonyops/dossier/internal/tui/views/letters"
)

// DefaultCorrespondenceSource tags the letters shown in the details view.
const DefaultCorrespondenceSource = "project"

// Dispatcher accepts store actions.
type Dispatcher interface {
	Dispatch(a store.Action) bool
}

// Options are the inputs the details view is opened with.
type Options struct {
	Type    document.Type
	OnRetry func()
	Answer  bool // the view was opened to answer a letter
}

// Deps are the collaborators of the details view.
type Deps struct {
	Translator           i18n.Translator
	Store                Dispatcher
	Overlay              *overlay.Node
	CorrespondenceSource string

	// OnDocumentChange runs whenever the document data changes and has an
	// id. Nil means NoopDocumentChange.
	OnDocumentChange func(document.DetailsState)
}

// NoopDocumentChange is the default document change hook.
func NoopDocumentChange(document.DetailsState) {}

// Request is an action the host application has to carry out.
type Request struct {
	Action     document.ActionID
	DocumentID string
}

// Controller holds the state of one details view. It contains pure logic
// with no Bubble Tea dependencies.
type Controller struct {
	opts Options
	deps Deps
	svc  document.ServiceType

	snap     store.Snapshot
	hasSnap  bool
	answer   bool
	counter  ViewCounter
	requests []Request
}

// NewController creates a controller. Opening with Answer set counts as the
// first rising edge.
func NewController(opts Options, deps Deps) *Controller {
	if deps.OnDocumentChange == nil {
		deps.OnDocumentChange = NoopDocumentChange
	}
	if deps.CorrespondenceSource == "" {
		deps.CorrespondenceSource = DefaultCorrespondenceSource
	}

	c := &Controller{
		opts: opts,
		deps: deps,
		svc:  document.Classify(opts.Type),
	}
	c.SetAnswer(opts.Answer)
	return c
}

// ServiceType returns the classification of the document type.
func (c *Controller) ServiceType() document.ServiceType {
	return c.svc
}

// Translator returns the translator the view renders with.
func (c *Controller) Translator() i18n.Translator {
	return c.deps.Translator
}

// SetSnapshot applies a store snapshot. Returns false when it is shallowly
// equal to the current one.
func (c *Controller) SetSnapshot(s store.Snapshot) bool {
	if c.hasSnap && store.Equal(c.snap, s) {
		return false
	}

	dataChanged := !c.hasSnap || !store.SameData(c.snap.Data, s.Data)
	c.snap = s
	c.hasSnap = true

	if dataChanged && s.Data.ID != "" {
		c.deps.OnDocumentChange(s.Data)
	}
	return true
}

// Snapshot returns the snapshot the view is rendered from.
func (c *Controller) Snapshot() store.Snapshot {
	return c.snap
}

// SetAnswer updates the answer flag. The view counter grows on each
// false to true transition.
func (c *Controller) SetAnswer(answer bool) bool {
	rising := answer && !c.answer
	c.answer = answer
	if rising {
		c.counter.Increment()
	}
	return rising
}

// OpenLetters asks the letters region to present the overlay again.
func (c *Controller) OpenLetters() int {
	return c.counter.Increment()
}

// ViewCount returns the overlay view counter.
func (c *Controller) ViewCount() int {
	return c.counter.Value()
}

// Retry invokes the retry callback.
func (c *Controller) Retry() {
	if c.opts.OnRetry != nil {
		c.opts.OnRetry()
	}
}

// UpdateFile forwards a partial attachment to the store.
func (c *Controller) UpdateFile(patch document.AttachmentPatch) {
	logger := logging.Document("details", c.snap.Data.ID)
	logger.Debug().
		Str("attachment_id", patch.ID).
		Msg("update file")
	c.deps.Store.Dispatch(store.UpdateFile(patch))
}

// Request queues an action for the host application.
func (c *Controller) Request(action document.ActionID, docID string) {
	c.requests = append(c.requests, Request{Action: action, DocumentID: docID})
}

// DrainRequests returns and clears the queued requests.
func (c *Controller) DrainRequests() []Request {
	out := c.requests
	c.requests = nil
	return out
}

// Plan composes the current snapshot.
func (c *Controller) Plan() Plan {
	return Compose(c.snap, c.svc, c.deps.Translator)
}

// Actions lists the header actions for the current document.
func (c *Controller) Actions() []document.Action {
	return document.ListActions(c.snap.Data, c)
}

// Steps lists the stepper entries for the current document.
func (c *Controller) Steps() []document.Step {
	return document.Steps(c.snap.Data.Status)
}

// LettersProps builds the props of the correspondence region.
func (c *Controller) LettersProps() letters.Props {
	o := letters.Overlay{Node: c.deps.Overlay}
	if c.deps.Overlay != nil {
		o.Opened = c.deps.Overlay.Opened()
	}
	return letters.Props{
		Source:     c.deps.CorrespondenceSource,
		DocumentID: c.snap.Data.ID,
		Overlay:    o,
		ViewCount:  c.counter.Value(),
	}
}
