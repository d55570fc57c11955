package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/logging"
	"github.com/colonyops/dossier/internal/core/store"
	"github.com/colonyops/dossier/internal/store/jsonfile"
)

// DocumentSource loads and persists documents.
type DocumentSource interface {
	Load(ctx context.Context, id string) (document.DetailsState, error)
	Save(ctx context.Context, d document.DetailsState) error
}

type snapshotMsg store.Snapshot

type documentLoadedMsg struct {
	err error
}

type retryMsg struct{}

type documentChangedMsg struct{}

type lettersChangedMsg struct{}

type exportedMsg struct {
	path string
	err  error
}

type cancelledMsg struct {
	err error
}

func listenForSnapshot(ch <-chan store.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func listenForRetry(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return retryMsg{}
	}
}

func listenForChange(ch <-chan jsonfile.ChangeEvent, msg tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return msg
	}
}

// loadDocument drives the store through a full load. When silent is set the
// skeleton is not shown; used for reloads of an already visible document.
func loadDocument(ctx context.Context, st *store.Store, src DocumentSource, id string, silent bool) tea.Cmd {
	return func() tea.Msg {
		log := logging.Document("loader", id)
		if !silent {
			st.Dispatch(store.LoadStarted())
		}

		d, err := src.Load(ctx, id)
		if err != nil {
			log.Warn().Err(err).Msg("load document")
			st.Dispatch(store.LoadFailed())
			return documentLoadedMsg{err: err}
		}

		st.Dispatch(store.LoadSucceeded(d))
		return documentLoadedMsg{}
	}
}

// exportDocument writes d as YAML to <dir>/<id>.yaml.
func exportDocument(dir string, d document.DetailsState) tea.Cmd {
	return func() tea.Msg {
		if d.ID == "" {
			return exportedMsg{err: document.ErrEmptyID}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportedMsg{err: fmt.Errorf("create export dir: %w", err)}
		}

		data, err := yaml.Marshal(d)
		if err != nil {
			return exportedMsg{err: fmt.Errorf("encode document: %w", err)}
		}

		path := filepath.Join(dir, d.ID+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportedMsg{err: fmt.Errorf("write export: %w", err)}
		}
		return exportedMsg{path: path}
	}
}

// cancelDocument marks the document cancelled and saves it.
func cancelDocument(ctx context.Context, src DocumentSource, id string) tea.Cmd {
	return func() tea.Msg {
		d, err := src.Load(ctx, id)
		if err != nil {
			return cancelledMsg{err: err}
		}
		if d.Status.IsTerminal() {
			return cancelledMsg{err: errors.New("document is already closed")}
		}
		d.Status = document.StatusCancelled
		return cancelledMsg{err: src.Save(ctx, d)}
	}
}
