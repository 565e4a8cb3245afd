package model

import (
	"time"

	"github.com/google/uuid"
)

// Session owns the ordered conversation history for one chat session.
//
// History is append-only within a turn and never pruned; it is discarded at
// process exit. Exactly one query is in flight at a time, so no locking is
// needed here.
type Session struct {
	ID       string
	messages []Message
}

// NewSession creates a session seeded with a single system message.
func NewSession(systemPrompt string) *Session {
	s := &Session{ID: uuid.NewString()}
	s.Append(Message{Role: RoleSystem, Content: systemPrompt})
	return s
}

// Append adds a message to the end of the history, stamping it if the caller
// did not.
func (s *Session) Append(msg Message) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.messages = append(s.messages, msg)
}

// Messages returns the history in insertion order.
func (s *Session) Messages() []Message {
	return s.messages
}

// Len returns the number of messages in the history.
func (s *Session) Len() int {
	return len(s.messages)
}
