package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/internal/tui/skeleton"
)

const formLabelWidth = 14

// Alert renders an informational banner wrapped to width.
func Alert(text string, width int) string {
	style := styles.InfoBannerStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(styles.IconInfo + " " + text)
}

// FormDetails renders the document's field rows.
func FormDetails(tr i18n.Translator, r skeleton.Renderer, d document.DetailsState) string {
	rows := []string{
		formRow(tr.T("form.account"), r.Slot(skeleton.AccountFieldDescription, func() string {
			if d.Account.Description == "" {
				return styles.ValueStyle.Render(d.Account.Number)
			}
			return styles.ValueStyle.Render(d.Account.Number) + "  " + styles.LabelStyle.Render(d.Account.Description)
		})),
		formRow(tr.T("form.items"), r.Slot(skeleton.ItemLength, func() string {
			return styles.ValueStyle.Render(fmt.Sprint(d.ItemCount))
		})),
		formRow(tr.T("form.status"), r.Slot(skeleton.Status, func() string {
			return styles.ValueStyle.Render(tr.T(document.StatusLabel(d.Status)))
		})),
		formRow(tr.T("form.fee"), r.Slot(skeleton.WriteOff, func() string {
			return styles.ValueStyle.Render(d.Fee)
		})),
	}
	return strings.Join(rows, "\n")
}

func formRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Width(formLabelWidth).Render(label),
		value,
	)
}

// AttachmentsList renders one row per attachment. selected is the index of
// the highlighted row, or -1.
func AttachmentsList(tr i18n.Translator, r skeleton.Renderer, attachments []document.Attachment, selected int) string {
	lines := make([]string, 0, len(attachments)+1)
	lines = append(lines, styles.SectionStyle.Render(tr.T("attachments.title")))

	for i, a := range attachments {
		cursor := "  "
		nameStyle := styles.ValueStyle
		if i == selected && !r.Loading() {
			cursor = styles.LetterSelectedStyle.Render("> ")
			nameStyle = styles.LetterSelectedStyle
		}

		name := r.Slot(skeleton.AttachmentName, func() string {
			return nameStyle.Render(a.Name)
		})
		size := r.Slot(skeleton.AttachmentSize, func() string {
			return styles.LabelStyle.Render(humanize.Bytes(a.Size))
		})
		state := r.Slot(skeleton.AttachmentStatus, func() string {
			return fileStateStyle(a.FileState).Render(tr.T(fileStateKey(a.FileState)))
		})
		actions := r.Slot(skeleton.AttachmentActions, func() string {
			if a.FileState != document.FileUploaded {
				return ""
			}
			return styles.ButtonKeyStyle.Render("enter") + " " + styles.HelpStyle.Render(tr.T("attachments.sign"))
		})

		lines = append(lines, strings.Join([]string{cursor + styles.IconFile + " " + name, size, state, actions}, "  "))
	}

	return strings.Join(lines, "\n")
}

func fileStateKey(s document.FileState) string {
	return "attachments.state." + strings.ToLower(string(s))
}

func fileStateStyle(s document.FileState) lipgloss.Style {
	switch s {
	case document.FileSigning:
		return styles.FileSigningStyle
	case document.FileSigned:
		return styles.FileSignedStyle
	case document.FileError:
		return styles.FileErrorStyle
	default:
		return styles.FileUploadedStyle
	}
}

// Download renders the download affordance with its key hints.
func Download(tr i18n.Translator, keys []string) string {
	return styles.ButtonStyle.Render(
		styles.IconDownload + " " + styles.ButtonKeyStyle.Render(strings.Join(keys, "/")) + " " + tr.T("download.action"),
	)
}

// LinkedDocument renders the linked document summary.
func LinkedDocument(tr i18n.Translator, linked document.LinkedDocument) string {
	svc := document.Classify(linked.Type)
	number := linked.Number
	if number == "" {
		number = linked.ID
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.SectionStyle.Render(tr.T("linked.title")),
		styles.IconLink+" "+styles.ValueStyle.Render(tr.T("type."+string(svc))+" № "+number),
	)
}
