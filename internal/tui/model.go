// Package tui implements the interactive details view of dossier.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/dossier/internal/core/config"
	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/messaging"
	"github.com/colonyops/dossier/internal/core/notify"
	"github.com/colonyops/dossier/internal/core/store"
	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/internal/store/jsonfile"
	"github.com/colonyops/dossier/internal/tui/overlay"
	"github.com/colonyops/dossier/internal/tui/skeleton"
	"github.com/colonyops/dossier/internal/tui/views/details"
	"github.com/colonyops/dossier/internal/tui/views/letters"
)

// Options configures the TUI.
type Options struct {
	DocumentID string
	Type       document.Type // document type the view is opened for
	Answer     bool          // open to answer correspondence
	Documents  DocumentSource
	Letters    messaging.Store
	Translator i18n.Translator
	Skeleton   skeleton.Config

	// Optional watchers; nil disables live reload.
	DocumentWatcher *jsonfile.Watcher
	LettersWatcher  *jsonfile.Watcher

	// OnDocumentChange is forwarded to the details view.
	OnDocumentChange func(document.DetailsState)
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg     *config.Config
	opts    Options
	store   *store.Store
	details details.View
	node    *overlay.Node
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	toasts  *ToastController

	ctx       context.Context
	cancel    context.CancelFunc
	snapshots <-chan store.Snapshot
	retries   chan struct{}
	docEvents <-chan jsonfile.ChangeEvent
	letEvents <-chan jsonfile.ChangeEvent

	width    int
	height   int
	quitting bool
}

// New creates the TUI model. The store starts in the loading state.
func New(cfg *config.Config, opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	st := store.New()
	node := overlay.NewNode()
	retries := make(chan struct{}, 1)
	keys := newKeyMap(cfg)

	ctrl := details.NewController(
		details.Options{
			Type:   opts.Type,
			Answer: opts.Answer,
			OnRetry: func() {
				select {
				case retries <- struct{}{}:
				default:
				}
			},
		},
		details.Deps{
			Translator:           opts.Translator,
			Store:                st,
			Overlay:              node,
			CorrespondenceSource: cfg.Letters.Source,
			OnDocumentChange:     opts.OnDocumentChange,
		},
	)
	ctrl.SetSnapshot(st.Snapshot())

	lv := letters.New(opts.Letters, opts.Translator, cfg.Letters.AutoPresent)

	m := Model{
		cfg:       cfg,
		opts:      opts,
		store:     st,
		details:   details.New(ctrl, lv, opts.Skeleton, keys.details),
		node:      node,
		keys:      keys,
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		toasts:    NewToastController(),
		ctx:       ctx,
		cancel:    cancel,
		snapshots: st.Subscribe(ctx),
		retries:   retries,
	}
	if opts.DocumentWatcher != nil {
		m.docEvents = opts.DocumentWatcher.Watch(ctx, opts.DocumentID)
	}
	if opts.LettersWatcher != nil {
		m.letEvents = opts.LettersWatcher.Watch(ctx, opts.DocumentID)
	}
	return m
}

// Init starts the load and the event listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadDocument(m.ctx, m.store, m.opts.Documents, m.opts.DocumentID, false),
		listenForSnapshot(m.snapshots),
		listenForRetry(m.retries),
		listenForChange(m.docEvents, documentChangedMsg{}),
		listenForChange(m.letEvents, lettersChangedMsg{}),
		m.details.Init(),
		m.spinner.Tick,
	)
}

// Store returns the details store.
func (m Model) Store() *store.Store {
	return m.store
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.details.SetSize(msg.Width, max(msg.Height-2, 0))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m.quit()
		}
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd

	case snapshotMsg:
		var cmd tea.Cmd
		m.details, cmd = m.details.SetSnapshot(store.Snapshot(msg))
		return m, tea.Batch(cmd, listenForSnapshot(m.snapshots))

	case documentLoadedMsg:
		if msg.err != nil {
			log.Debug().Err(msg.err).Str("document_id", m.opts.DocumentID).Msg("document load failed")
		}
		return m, nil

	case retryMsg:
		return m, tea.Batch(
			loadDocument(m.ctx, m.store, m.opts.Documents, m.opts.DocumentID, false),
			listenForRetry(m.retries),
		)

	case documentChangedMsg:
		return m, tea.Batch(
			loadDocument(m.ctx, m.store, m.opts.Documents, m.opts.DocumentID, true),
			listenForChange(m.docEvents, documentChangedMsg{}),
		)

	case lettersChangedMsg:
		return m, tea.Batch(
			m.details.Letters().Reload(),
			listenForChange(m.letEvents, lettersChangedMsg{}),
		)

	case details.DownloadRequestedMsg:
		return m, exportDocument(m.cfg.ExportDir(), msg.State)

	case details.ActionRequestedMsg:
		return m.handleRequest(msg.Request)

	case exportedMsg:
		if msg.err != nil {
			return m.pushToast(notify.Error(fmt.Sprintf("download failed: %v", msg.err)))
		}
		return m.pushToast(notify.Info("saved " + msg.path))

	case cancelledMsg:
		if msg.err != nil {
			return m.pushToast(notify.Error(fmt.Sprintf("cancel failed: %v", msg.err)))
		}
		return m, loadDocument(m.ctx, m.store, m.opts.Documents, m.opts.DocumentID, true)

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.details, cmd = m.details.Update(msg)
	return m, cmd
}

func (m Model) handleRequest(r details.Request) (tea.Model, tea.Cmd) {
	log.Info().Str("document_id", r.DocumentID).Str("action", string(r.Action)).Msg("action requested")

	switch r.Action {
	case document.ActionCancel:
		return m, cancelDocument(m.ctx, m.opts.Documents, r.DocumentID)
	case document.ActionWriteLetter:
		return m.pushToast(notify.Info(fmt.Sprintf("write with: dossier letters add %s", r.DocumentID)))
	default:
		return m.pushToast(notify.Info(fmt.Sprintf("%s requested", r.Action)))
	}
}

func (m Model) pushToast(n notify.Notification) (tea.Model, tea.Cmd) {
	m.toasts.Push(n)
	if m.toasts.Ticking() {
		return m, nil
	}
	m.toasts.SetTicking(true)
	return m, scheduleToastTick()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	m.store.Close()
	return m, tea.Quit
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.details.Controller().Snapshot()
	status := styles.HelpStyle.Render(m.help.ShortHelpView(m.keys.helpBindings(snap.IsError, m.node.Opened())))
	if snap.IsLoadingSkeleton && !snap.IsError {
		status = m.spinner.View() + " " + status
	}

	parts := []string{m.details.View()}
	if toasts := m.toasts.View(m.width); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the TUI program and blocks until it exits.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	p := tea.NewProgram(New(cfg, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
