package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/internal/tui/skeleton"
)

// SideSummary renders the footer: an icon, a title with subtitle, and the
// open letters action bound to keys.
func SideSummary(tr i18n.Translator, r skeleton.Renderer, keys []string, width int) string {
	icon := r.Slot(skeleton.SideComponentIcon, func() string {
		return styles.SectionStyle.Render(styles.IconMail)
	})
	title := r.Slot(skeleton.SideComponentTitle, func() string {
		return styles.TitleStyle.Render(tr.T("footer.title"))
	})
	subtitle := r.Slot(skeleton.SideComponentSubTitle, func() string {
		return styles.SubtitleStyle.Render(tr.T("footer.subtitle"))
	})
	action := r.Slot(skeleton.SideComponentSubAction, func() string {
		return styles.ButtonKeyStyle.Render(strings.Join(keys, "/")) + " " + styles.HelpStyle.Render(tr.T("footer.action"))
	})

	text := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, action)
	content := lipgloss.JoinHorizontal(lipgloss.Top, icon, "  ", text)

	style := styles.FooterStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

// RetryPanel renders the error-recovery region.
func RetryPanel(tr i18n.Translator, keys []string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ErrorTitleStyle.Render(styles.IconWarning+" "+tr.T("error.title")),
		"",
		styles.ButtonStyle.Render(styles.ButtonKeyStyle.Render(strings.Join(keys, "/"))+" "+tr.T("error.retry")),
	)
	return styles.ErrorPanelStyle.Render(content)
}
