package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconMail     = ""
	IconFile     = ""
	IconLink     = ""
	IconDownload = ""
	IconInfo     = ""
	IconWarning  = ""
)

// Stepper and attachment state markers. Plain unicode so they render
// without a patched font.
var (
	MarkComplete = "✓"
	MarkCurrent  = "●"
	MarkPending  = "○"
	MarkFailed   = "✗"
)
