package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/dossier/internal/core/notify"
	"github.com/colonyops/dossier/internal/core/styles"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastController manages the lifecycle of active toast notifications.
// It handles push, eviction, TTL countdown, and dismissal.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    defaultToastTTL,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// View renders the toast stack right-aligned within width, oldest at top.
func (c *ToastController) View(width int) string {
	if len(c.toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		rendered = append(rendered, renderToast(t))
	}
	stack := strings.Join(rendered, "\n")
	if width <= 0 {
		return stack
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}

func renderToast(t toast) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = styles.MarkFailed
		style = styles.ToastErrorStyle
	case notify.LevelWarning:
		icon = styles.IconWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconInfo
		style = styles.ToastInfoStyle
	}

	return style.Width(toastWidth).Render(icon + " " + t.notification.Message)
}
