// Package styles provides shared lipgloss styles for the CLI and TUI.
package styles

import (
	"sort"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"),
		Secondary:  lipgloss.Color("#94e2d5"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Success:    lipgloss.Color("#a6e3a1"),
		Warning:    lipgloss.Color("#f9e2af"),
		Error:      lipgloss.Color("#f38ba8"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	TextMutedStyle     lipgloss.Style
	TextSuccessStyle   lipgloss.Style
	TextWarningStyle   lipgloss.Style
	TextErrorStyle     lipgloss.Style

	// Details view styles.
	TitleStyle       lipgloss.Style
	SubtitleStyle    lipgloss.Style
	LabelStyle       lipgloss.Style
	ValueStyle       lipgloss.Style
	SectionStyle     lipgloss.Style
	SkeletonStyle    lipgloss.Style
	InfoBannerStyle  lipgloss.Style
	ErrorPanelStyle  lipgloss.Style
	ErrorTitleStyle  lipgloss.Style
	ButtonStyle      lipgloss.Style
	ButtonKeyStyle   lipgloss.Style
	FooterStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	StatusBarStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style

	// Stepper styles.
	StepCompleteStyle lipgloss.Style
	StepCurrentStyle  lipgloss.Style
	StepPendingStyle  lipgloss.Style
	StepFailedStyle   lipgloss.Style

	// Attachment state styles.
	FileUploadedStyle lipgloss.Style
	FileSigningStyle  lipgloss.Style
	FileSignedStyle   lipgloss.Style
	FileErrorStyle    lipgloss.Style

	// Letters overlay styles.
	OverlayStyle        lipgloss.Style
	OverlayTitleStyle   lipgloss.Style
	LetterSubjectStyle  lipgloss.Style
	LetterSenderStyle   lipgloss.Style
	LetterTimeStyle     lipgloss.Style
	LetterUnreadStyle   lipgloss.Style
	LetterDividerStyle  lipgloss.Style
	LetterSelectedStyle lipgloss.Style

	// Toast styles.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	LabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	ValueStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	SectionStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	SkeletonStyle = lipgloss.NewStyle().
		Foreground(p.Surface)
	InfoBannerStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Secondary).
		Foreground(p.Foreground).
		PaddingLeft(1)
	ErrorPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(1, 2)
	ErrorTitleStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Foreground)
	ButtonKeyStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	FooterStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(p.Surface)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	StepCompleteStyle = lipgloss.NewStyle().Foreground(p.Success)
	StepCurrentStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	StepPendingStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StepFailedStyle = lipgloss.NewStyle().Foreground(p.Error)

	FileUploadedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	FileSigningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	FileSignedStyle = lipgloss.NewStyle().Foreground(p.Success)
	FileErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	OverlayTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	LetterSubjectStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true)
	LetterSenderStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	LetterTimeStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	LetterUnreadStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)
	LetterDividerStyle = lipgloss.NewStyle().
		Foreground(p.Surface)
	LetterSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(p.Foreground)
	ToastInfoStyle = toastBase.BorderForeground(p.Primary)
	ToastWarningStyle = toastBase.BorderForeground(p.Warning)
	ToastErrorStyle = toastBase.BorderForeground(p.Error)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	p := CurrentPalette

	fg := colorHexPtr(p.Foreground)
	primary := colorHexPtr(p.Primary)
	secondary := colorHexPtr(p.Secondary)
	muted := colorHexPtr(p.Muted)

	cfg.Document.Color = fg
	cfg.Document.Margin = nil
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = colorHexPtr(p.Surface)
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Code.Color = secondary

	return cfg
}
