// Package overlay provides the side panel the details view hosts. Regions
// render into a Node; the host decides where the node is drawn.
package overlay

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/dossier/internal/core/styles"
)

const (
	chromeHeight = 3 // title + border
	chromeWidth  = 4 // border + padding
)

// Node is a side panel slot. The zero value is closed and empty.
type Node struct {
	title    string
	content  string
	open     bool
	width    int
	height   int
	viewport viewport.Model
}

// NewNode creates a closed node.
func NewNode() *Node {
	return &Node{viewport: viewport.New(0, 0)}
}

// Show opens the node with title and content, scrolled to the top.
func (n *Node) Show(title, content string) {
	n.title = title
	n.content = content
	n.open = true
	n.viewport.SetContent(content)
	n.viewport.GotoTop()
}

// Hide closes the node. Content is kept until the next Show.
func (n *Node) Hide() {
	n.open = false
}

// Opened reports whether the node is currently shown.
func (n *Node) Opened() bool {
	return n.open
}

// Title returns the title of the last Show.
func (n *Node) Title() string {
	return n.title
}

// Content returns the content of the last Show.
func (n *Node) Content() string {
	return n.content
}

// SetSize sets the outer size of the panel.
func (n *Node) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.viewport.Width = max(width-chromeWidth, 0)
	n.viewport.Height = max(height-chromeHeight, 0)
}

// Width returns the outer width of the panel.
func (n *Node) Width() int {
	return n.width
}

// ContentWidth returns the width available to content.
func (n *Node) ContentWidth() int {
	return n.viewport.Width
}

// Update forwards scroll keys to the viewport while open.
func (n *Node) Update(msg tea.Msg) tea.Cmd {
	if !n.open {
		return nil
	}
	var cmd tea.Cmd
	n.viewport, cmd = n.viewport.Update(msg)
	return cmd
}

// View renders the panel, or an empty string when closed.
func (n *Node) View() string {
	if !n.open {
		return ""
	}

	body := n.content
	if n.viewport.Height > 0 {
		body = n.viewport.View()
	}

	style := styles.OverlayStyle
	if n.width > 0 {
		style = style.Width(max(n.width-2, 1))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.OverlayTitleStyle.Render(n.title),
		body,
	))
}
