package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/dossier/pkg/tuitest"
)

func TestNode_ShowHide(t *testing.T) {
	n := NewNode()
	assert.False(t, n.Opened())
	assert.Empty(t, n.View())

	n.Show("Letters", "hello")
	assert.True(t, n.Opened())
	assert.Equal(t, "Letters", n.Title())
	assert.Equal(t, "hello", n.Content())

	out := tuitest.StripANSI(n.View())
	assert.Contains(t, out, "Letters")
	assert.Contains(t, out, "hello")

	n.Hide()
	assert.False(t, n.Opened())
	assert.Empty(t, n.View())
	assert.Equal(t, "hello", n.Content(), "content survives hide")
}

func TestNode_SetSize(t *testing.T) {
	n := NewNode()
	n.SetSize(40, 20)
	assert.Equal(t, 40, n.Width())
	assert.Equal(t, 36, n.ContentWidth())

	n.SetSize(2, 1)
	assert.Equal(t, 0, n.ContentWidth())
}

func TestNode_UpdateClosedIsNoop(t *testing.T) {
	n := NewNode()
	assert.Nil(t, n.Update(tuitest.KeyDown()))
}
