package letters

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/messaging"
	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/internal/tui/overlay"
)

const (
	inlineLimit         = 3
	defaultOverlayWidth = 60
	unknownSender       = "unknown"
)

// Overlay is the side panel the host offers for presenting letters.
type Overlay struct {
	Node   *overlay.Node
	Opened bool
}

// Props are supplied by the details view on every render.
type Props struct {
	Source     string // letters tagged with another source are not shown
	DocumentID string
	Overlay    Overlay
	ViewCount  int
}

type lettersLoadedMsg struct {
	docID   string
	letters []messaging.Letter
	err     error
}

type lettersMarkedMsg struct {
	docID string
	err   error
}

// View is the Bubble Tea sub-model for the correspondence region.
type View struct {
	ctrl  *Controller
	store messaging.Store
	tr    i18n.Translator
	props Props
	width int
}

// New creates a letters View.
func New(store messaging.Store, tr i18n.Translator, autoPresent bool) View {
	return View{
		ctrl:  NewController(autoPresent),
		store: store,
		tr:    tr,
	}
}

// SetProps applies the latest props. A new document triggers a load; a grown
// view count presents letters in the overlay.
func (v View) SetProps(p Props) (View, tea.Cmd) {
	v.props = p

	var cmds []tea.Cmd
	if v.ctrl.SetDocument(p.DocumentID) && p.DocumentID != "" {
		cmds = append(cmds, loadLetters(v.store, p.DocumentID, p.Source))
	}
	if presented := v.ctrl.Observe(p.ViewCount); presented != nil {
		cmds = append(cmds, v.present(presented))
	}

	return v, tea.Batch(cmds...)
}

// Reload re-reads the letters of the current document.
func (v View) Reload() tea.Cmd {
	if v.ctrl.DocumentID() == "" {
		return nil
	}
	return loadLetters(v.store, v.ctrl.DocumentID(), v.props.Source)
}

// Update handles messages for the letters view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case lettersLoadedMsg:
		if msg.err != nil {
			log.Debug().Err(msg.err).Str("document_id", msg.docID).Msg("failed to load letters")
			return v, nil
		}
		if presented := v.ctrl.SetLetters(msg.docID, msg.letters); presented != nil {
			return v, v.present(presented)
		}
	case lettersMarkedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Str("document_id", msg.docID).Msg("failed to mark letters read")
		}
	}
	return v, nil
}

// SetWidth sets the width of the inline region.
func (v *View) SetWidth(width int) {
	v.width = width
}

// Controller exposes the underlying controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// View renders the inline correspondence region. While the overlay is open
// only the heading is shown.
func (v View) View() string {
	letters := v.ctrl.Letters()

	heading := styles.SectionStyle.Render(styles.IconMail + " " + v.tr.T("letters.title"))
	if unread := v.ctrl.UnreadCount(); unread > 0 {
		heading += " " + styles.LetterUnreadStyle.Render(fmt.Sprintf("%d %s", unread, v.tr.T("letters.unread")))
	}

	if v.overlayOpened() {
		return heading
	}
	if len(letters) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, heading, styles.HelpStyle.Render(v.tr.T("letters.empty")))
	}

	lines := []string{heading}
	start := max(len(letters)-inlineLimit, 0)
	for i := len(letters) - 1; i >= start; i-- {
		lines = append(lines, v.renderSummary(letters[i]))
	}
	return strings.Join(lines, "\n")
}

func (v View) overlayOpened() bool {
	if v.props.Overlay.Opened {
		return true
	}
	return v.props.Overlay.Node != nil && v.props.Overlay.Node.Opened()
}

func (v View) renderSummary(l messaging.Letter) string {
	marker := "  "
	if !l.Read {
		marker = styles.LetterUnreadStyle.Render("• ")
	}
	subject := l.Subject
	if subject == "" {
		subject = firstLine(l.Body)
	}
	return marker + styles.LetterSubjectStyle.Render(subject) + "  " +
		styles.LetterSenderStyle.Render(senderOf(l)) + "  " +
		styles.LetterTimeStyle.Render(humanize.Time(l.CreatedAt))
}

// present shows letters in the overlay node and persists their read state.
func (v View) present(letters []messaging.Letter) tea.Cmd {
	if node := v.props.Overlay.Node; node != nil {
		width := node.ContentWidth()
		if width <= 0 {
			width = defaultOverlayWidth
		}
		node.Show(v.tr.T("letters.title"), renderLetters(letters, width))
	}

	unread := messaging.IDs(messaging.Unread(letters))
	if len(unread) == 0 {
		return nil
	}
	return markRead(v.store, v.ctrl.DocumentID(), unread)
}

func renderLetters(letters []messaging.Letter, width int) string {
	divider := styles.LetterDividerStyle.Render(strings.Repeat("─", max(width, 1)))

	blocks := make([]string, 0, len(letters))
	for _, l := range letters {
		header := styles.LetterSenderStyle.Render(senderOf(l)) + "  " +
			styles.LetterTimeStyle.Render(l.CreatedAt.Format("02.01.2006 15:04"))
		if l.Subject != "" {
			header = styles.LetterSubjectStyle.Render(l.Subject) + "\n" + header
		}
		blocks = append(blocks, header+"\n"+renderMarkdown(l.Body, width))
	}
	return strings.Join(blocks, "\n"+divider+"\n")
}

func renderMarkdown(body string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return body
	}

	rendered, err := renderer.Render(body)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return body
	}
	return strings.TrimSpace(rendered)
}

func senderOf(l messaging.Letter) string {
	if l.Sender == "" {
		return unknownSender
	}
	return l.Sender
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func loadLetters(store messaging.Store, docID, source string) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return lettersLoadedMsg{docID: docID}
		}
		all, err := store.List(context.Background(), docID)
		if err != nil {
			return lettersLoadedMsg{docID: docID, err: err}
		}
		return lettersLoadedMsg{docID: docID, letters: filterSource(all, source)}
	}
}

func filterSource(letters []messaging.Letter, source string) []messaging.Letter {
	if source == "" {
		return letters
	}
	out := make([]messaging.Letter, 0, len(letters))
	for _, l := range letters {
		if l.Source == "" || l.Source == source {
			out = append(out, l)
		}
	}
	return out
}

func markRead(store messaging.Store, docID string, ids []string) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return lettersMarkedMsg{docID: docID}
		}
		return lettersMarkedMsg{docID: docID, err: store.MarkRead(context.Background(), docID, ids)}
	}
}
