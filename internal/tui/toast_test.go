package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/dossier/internal/core/notify"
	"github.com/colonyops/dossier/pkg/tuitest"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Info("hello"))

	assert.True(t, c.HasToasts())
	assert.Len(t, c.toasts, 1)
	assert.Equal(t, "hello", c.toasts[0].notification.Message)
	assert.Equal(t, defaultToastTTL, c.toasts[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Info(time.Duration(i).String()))
	}

	assert.Len(t, c.toasts, defaultMaxToasts)
	assert.Equal(t, "2ns", c.toasts[0].notification.Message)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Info("expires"))
	c.Push(notify.Info("survives"))

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	assert.Len(t, c.toasts, 1)
	assert.Equal(t, "survives", c.toasts[0].notification.Message)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Info("first"))
	c.Push(notify.Error("second"))

	c.Dismiss()
	assert.Len(t, c.toasts, 1)
	assert.Equal(t, "first", c.toasts[0].notification.Message)

	c.Dismiss()
	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastController_View(t *testing.T) {
	c := NewToastController()
	assert.Empty(t, c.View(80))

	c.Push(notify.Error("export failed"))
	out := tuitest.StripANSI(c.View(80))
	assert.Contains(t, out, "✗ export failed")
}
