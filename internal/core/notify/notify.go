// Package notify defines the transient notifications shown by the TUI.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Info creates an info notification.
func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg, CreatedAt: time.Now()}
}

// Warning creates a warning notification.
func Warning(msg string) Notification {
	return Notification{Level: LevelWarning, Message: msg, CreatedAt: time.Now()}
}

// Error creates an error notification.
func Error(msg string) Notification {
	return Notification{Level: LevelError, Message: msg, CreatedAt: time.Now()}
}
