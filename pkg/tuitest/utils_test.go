package tuitest

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello") + "   \nworld  \n\n"
	assert.Equal(t, "hello\nworld", StripANSI(styled))
}

func TestKeyPress(t *testing.T) {
	assert.Equal(t, "r", KeyPress('r').String())
	assert.Equal(t, "esc", KeyEsc().String())
	assert.Equal(t, "enter", KeyEnter().String())
	assert.Equal(t, "down", KeyDown().String())
}
