package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Event names the frontend subscribes to.
const (
	ReviewStarted  = "events:review:started"
	ReviewFinished = "events:review:finished"
	ReviewFailed   = "events:review:failed"
)

// ReviewEvent is the payload emitted around each model call so the frontend
// can show progress and elapsed-time readouts.
type ReviewEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
	SessionKey string            `json:"sessionKey,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type contextKey string

const sessionContextKey contextKey = "codesage/events/session"

// WithSession returns a derived context annotated with the given session key
// so event emitters can automatically scope payloads.
func WithSession(ctx context.Context, sessionKey string) context.Context {
	if strings.TrimSpace(sessionKey) == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey, sessionKey)
}

// SessionFromContext extracts the session key associated with ctx.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionContextKey).(string); ok {
		return v
	}
	return ""
}

func newEvent(eventType EventType, message string) ReviewEvent {
	return ReviewEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info ReviewEvent.
func NewInfo(message string) ReviewEvent {
	return newEvent(EventInfo, message)
}

// NewWarn creates a warn ReviewEvent.
func NewWarn(message string) ReviewEvent {
	return newEvent(EventWarn, message)
}

// NewError creates an error ReviewEvent.
func NewError(message string) ReviewEvent {
	return newEvent(EventError, message)
}

// NewSuccess creates a success ReviewEvent.
func NewSuccess(message string) ReviewEvent {
	return newEvent(EventSuccess, message)
}
