package common

import "context"

// Severity classifies a notification for presentation purposes
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives the player-facing event feed produced while handling
// commands (discoveries, warnings, task completions)
type Notifier interface {
	Notify(severity Severity, message string)
}

// Context keys for passing the notifier through context
type contextKey int

const (
	notifierKey contextKey = iota
)

// WithNotifier adds a notifier to the context
func WithNotifier(ctx context.Context, notifier Notifier) context.Context {
	return context.WithValue(ctx, notifierKey, notifier)
}

// NotifierFromContext extracts the notifier from context, or returns a no-op
// notifier if not found
func NotifierFromContext(ctx context.Context) Notifier {
	if notifier, ok := ctx.Value(notifierKey).(Notifier); ok {
		return notifier
	}
	return &noOpNotifier{}
}

// noOpNotifier swallows notifications (fallback when none is in context)
type noOpNotifier struct{}

func (n *noOpNotifier) Notify(severity Severity, message string) {
}
