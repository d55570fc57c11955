package details

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/store"
	"github.com/colonyops/dossier/internal/tui/components"
	"github.com/colonyops/dossier/internal/tui/skeleton"
	"github.com/colonyops/dossier/internal/tui/views/letters"
)

const (
	rightColumnWidth = 28
	overlayFraction  = 3 // overlay takes 1/overlayFraction of the width
	columnGap        = "   "
)

// DownloadRequestedMsg asks the host to export the document.
type DownloadRequestedMsg struct {
	State document.DetailsState
}

// ActionRequestedMsg asks the host to carry out a header action.
type ActionRequestedMsg struct {
	Request Request
}

// View is the Bubble Tea sub-model for the details view.
type View struct {
	ctrl     *Controller
	letters  letters.View
	skeleton skeleton.Config
	keys     KeyMap
	selected int // attachment cursor
	width    int
	height   int
}

// New creates a details View. A nil skeleton config uses the built-in
// geometry.
func New(ctrl *Controller, lettersView letters.View, sk skeleton.Config, keys KeyMap) View {
	if sk == nil {
		sk = skeleton.DefaultConfig()
	}
	return View{
		ctrl:     ctrl,
		letters:  lettersView,
		skeleton: sk,
		keys:     keys,
	}
}

// Init syncs the letters region with the initial state.
func (v View) Init() tea.Cmd {
	var cmd tea.Cmd
	v.letters, cmd = v.letters.SetProps(v.ctrl.LettersProps())
	return cmd
}

// Controller exposes the underlying controller.
func (v View) Controller() *Controller {
	return v.ctrl
}

// Letters exposes the letters region.
func (v View) Letters() letters.View {
	return v.letters
}

// SetSnapshot applies a store snapshot. Equal snapshots are ignored.
func (v View) SetSnapshot(s store.Snapshot) (View, tea.Cmd) {
	if !v.ctrl.SetSnapshot(s) {
		return v, nil
	}
	v.selected = clampIndex(v.selected, len(s.Data.Attachments))
	return v.syncLetters()
}

// SetAnswer updates the answer flag.
func (v View) SetAnswer(answer bool) (View, tea.Cmd) {
	if !v.ctrl.SetAnswer(answer) {
		return v, nil
	}
	return v.syncLetters()
}

// SetSize updates the view dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.letters.SetWidth(width)
	if node := v.ctrl.deps.Overlay; node != nil {
		node.SetSize(width/overlayFraction, height)
	}
}

// Update handles messages for the details view.
func (v View) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.letters, cmd = v.letters.Update(msg)
	return v, cmd
}

func (v View) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	plan := v.ctrl.Plan()

	if plan.Error {
		if key.Matches(msg, v.keys.Retry) {
			v.ctrl.Retry()
		}
		return v, nil
	}

	if node := v.ctrl.deps.Overlay; node != nil && node.Opened() {
		switch {
		case key.Matches(msg, v.keys.CloseOverlay):
			node.Hide()
			return v, nil
		case key.Matches(msg, v.keys.Up), key.Matches(msg, v.keys.Down):
			return v, node.Update(msg)
		}
	}

	switch {
	case key.Matches(msg, v.keys.OpenLetters):
		v.ctrl.OpenLetters()
		return v.syncLetters()
	case key.Matches(msg, v.keys.Download):
		if plan.Download {
			state := v.ctrl.Snapshot().Data
			return v, func() tea.Msg { return DownloadRequestedMsg{State: state} }
		}
		return v, nil
	}

	if plan.Loading {
		return v, nil
	}

	attachments := v.ctrl.Snapshot().Data.Attachments
	switch {
	case key.Matches(msg, v.keys.Up):
		v.selected = clampIndex(v.selected-1, len(attachments))
		return v, nil
	case key.Matches(msg, v.keys.Down):
		v.selected = clampIndex(v.selected+1, len(attachments))
		return v, nil
	case key.Matches(msg, v.keys.Sign):
		if v.selected < len(attachments) && attachments[v.selected].FileState == document.FileUploaded {
			signed := document.FileSigned
			v.ctrl.UpdateFile(document.AttachmentPatch{ID: attachments[v.selected].ID, FileState: &signed})
		}
		return v, nil
	}

	for _, a := range v.ctrl.Actions() {
		if msg.String() == a.Key {
			a.Run()
			return v, v.requestCmds()
		}
	}

	return v, nil
}

func (v View) requestCmds() tea.Cmd {
	requests := v.ctrl.DrainRequests()
	cmds := make([]tea.Cmd, 0, len(requests))
	for _, r := range requests {
		cmds = append(cmds, func() tea.Msg { return ActionRequestedMsg{Request: r} })
	}
	return tea.Batch(cmds...)
}

func (v View) syncLetters() (View, tea.Cmd) {
	var cmd tea.Cmd
	v.letters, cmd = v.letters.SetProps(v.ctrl.LettersProps())
	return v, cmd
}

// View renders the details view.
func (v View) View() string {
	plan := v.ctrl.Plan()
	d := v.ctrl.Snapshot().Data
	tr := v.ctrl.Translator()
	r := skeleton.NewRenderer(v.skeleton, plan.Loading)

	pageWidth := v.width
	node := v.ctrl.deps.Overlay
	if node != nil && node.Opened() && v.width > 0 {
		pageWidth = v.width - node.Width()
	}

	sections := []string{components.Header(tr, r, plan.ServiceType, d, !plan.Error, pageWidth)}

	if plan.Error {
		sections = append(sections, "", components.RetryPanel(tr, Keys(v.keys.Retry)))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		components.ActionButtons(tr, r, v.ctrl.Actions()),
		components.Stepper(tr, r, v.ctrl.Steps()),
		"",
		v.renderBody(plan, d, r, pageWidth),
		"",
		components.SideSummary(tr, r, Keys(v.keys.OpenLetters), pageWidth),
	)
	page := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if node != nil && node.Opened() {
		return lipgloss.JoinHorizontal(lipgloss.Top, page, node.View())
	}
	return page
}

func (v View) renderBody(plan Plan, d document.DetailsState, r skeleton.Renderer, width int) string {
	tr := v.ctrl.Translator()

	mainWidth := width
	var right []string
	if plan.Has(RegionDownload) {
		right = append(right, components.Download(tr, Keys(v.keys.Download)))
	}
	if plan.Has(RegionLinked) {
		right = append(right, components.LinkedDocument(tr, *d.LinkedDocument))
	}
	if len(right) > 0 && width > 0 {
		mainWidth = max(width-rightColumnWidth-len(columnGap), 0)
	}

	var main []string
	if plan.Has(RegionInfo) {
		main = append(main, components.Alert(tr.T(plan.InfoKey), mainWidth), "")
	}
	main = append(main, components.FormDetails(tr, r, d))
	if plan.Has(RegionAttachments) {
		main = append(main, "", components.AttachmentsList(tr, r, d.Attachments, v.selected))
	}
	main = append(main, "", v.letters.View())

	body := lipgloss.JoinVertical(lipgloss.Left, main...)
	if len(right) == 0 {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, columnGap, lipgloss.JoinVertical(lipgloss.Left, right...))
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}
