// Package components renders the regions of the details view. Each function
// is a pure render over its inputs; slots that carry document data go
// through the skeleton renderer.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/internal/tui/skeleton"
)

// Header renders the title line and the subhead. The document number is
// only rendered when showNumber is set; it is hidden in the error state.
func Header(tr i18n.Translator, r skeleton.Renderer, svc document.ServiceType, d document.DetailsState, showNumber bool, width int) string {
	title := tr.T("title")
	if width > 0 {
		title = ansi.Truncate(title, width, "…")
	}

	subhead := styles.SubtitleStyle.Render(tr.T("type." + string(svc)))
	if showNumber {
		number := r.Slot(skeleton.SubTitle, func() string {
			return styles.SubtitleStyle.Render(document.RenderNumber(d))
		})
		subhead = lipgloss.JoinHorizontal(lipgloss.Top, subhead, " ", number)
	}

	return lipgloss.JoinVertical(lipgloss.Left, styles.TitleStyle.Render(title), subhead)
}

// ActionButtons renders the header actions as key hints.
func ActionButtons(tr i18n.Translator, r skeleton.Renderer, actions []document.Action) string {
	return r.Slot(skeleton.ActionButtons, func() string {
		buttons := make([]string, 0, len(actions))
		for _, a := range actions {
			buttons = append(buttons, styles.ButtonStyle.Render(
				styles.ButtonKeyStyle.Render(a.Key)+" "+tr.T(a.Label),
			))
		}
		return strings.Join(buttons, " ")
	})
}

// Stepper renders the status progression.
func Stepper(tr i18n.Translator, r skeleton.Renderer, steps []document.Step) string {
	return r.Slot(skeleton.Stepper, func() string {
		parts := make([]string, 0, len(steps))
		for _, s := range steps {
			parts = append(parts, renderStep(tr, s))
		}
		return strings.Join(parts, styles.DividerStyle.Render(" ── "))
	})
}

func renderStep(tr i18n.Translator, s document.Step) string {
	label := tr.T(s.Label)
	switch s.State {
	case document.StepComplete:
		return styles.StepCompleteStyle.Render(fmt.Sprintf("%s %s", styles.MarkComplete, label))
	case document.StepCurrent:
		return styles.StepCurrentStyle.Render(fmt.Sprintf("%s %s", styles.MarkCurrent, label))
	case document.StepFailed:
		return styles.StepFailedStyle.Render(fmt.Sprintf("%s %s", styles.MarkFailed, label))
	default:
		return styles.StepPendingStyle.Render(fmt.Sprintf("%s %s", styles.MarkPending, label))
	}
}
