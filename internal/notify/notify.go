// Package notify implements the short-lived message queue behind toast-style
// user feedback. Every mutation outcome lands here; entries auto-expire after
// a fixed display duration or on explicit dismissal.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for display.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Notification is a single queued message. Multiple notifications may be
// visible concurrently; the queue is insertion-ordered.
type Notification struct {
	ID        uuid.UUID
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// Queue holds pending notifications with a fixed time-to-live.
// It is not safe for concurrent use; the event loop owns it.
type Queue struct {
	ttl   time.Duration
	now   func() time.Time
	items []Notification
}

// NewQueue returns a queue whose entries expire ttl after creation.
func NewQueue(ttl time.Duration) *Queue {
	return &Queue{ttl: ttl, now: time.Now}
}

// Push enqueues a message and returns the stored notification.
func (q *Queue) Push(kind Kind, message string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Message:   message,
		Kind:      kind,
		CreatedAt: q.now(),
	}
	q.items = append(q.items, n)
	return n
}

func (q *Queue) Success(message string) Notification { return q.Push(KindSuccess, message) }
func (q *Queue) Error(message string) Notification   { return q.Push(KindError, message) }
func (q *Queue) Info(message string) Notification    { return q.Push(KindInfo, message) }
func (q *Queue) Warning(message string) Notification { return q.Push(KindWarning, message) }

// Active drops expired entries and returns the still-visible ones in
// insertion order.
func (q *Queue) Active() []Notification {
	cutoff := q.now().Add(-q.ttl)
	kept := q.items[:0]
	for _, n := range q.items {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	q.items = kept
	out := make([]Notification, len(kept))
	copy(out, kept)
	return out
}

// Dismiss removes the notification with the given id, if still queued.
func (q *Queue) Dismiss(id uuid.UUID) {
	kept := q.items[:0]
	for _, n := range q.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	q.items = kept
}

// Drain returns all live notifications and empties the queue. The REPL uses
// it to print each message exactly once after a command completes.
func (q *Queue) Drain() []Notification {
	out := q.Active()
	q.items = q.items[:0]
	return out
}
