package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/dossier/internal/core/config"
)

// Render loads the document once and returns a single frame of the details
// view at the given size. The frame is returned even when the load fails,
// showing the retry region, together with the load error.
func Render(ctx context.Context, cfg *config.Config, opts Options, width, height int) (string, error) {
	opts.DocumentWatcher = nil
	opts.LettersWatcher = nil

	m := New(cfg, opts)
	defer m.quit()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = updated.(Model)

	var loadErr error
	if loaded, ok := loadDocument(ctx, m.store, opts.Documents, opts.DocumentID, false)().(documentLoadedMsg); ok {
		loadErr = loaded.err
	}

	var cmd tea.Cmd
	m.details, cmd = m.details.SetSnapshot(m.store.Snapshot())

	// Follow-up commands run one level deep so letters are loaded and
	// presented, but nothing is written back.
	for _, msg := range runOnce(cmd) {
		m.details, _ = m.details.Update(msg)
	}

	return m.details.View(), loadErr
}

func runOnce(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	msgs := make([]tea.Msg, 0, len(batch))
	for _, c := range batch {
		if c == nil {
			continue
		}
		msgs = append(msgs, c())
	}
	return msgs
}
