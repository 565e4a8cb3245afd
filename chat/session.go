// Package chat is the tool-orchestration core: it owns conversation state,
// decides when tool calls happen, dispatches them across the MCP transport,
// bounds tool-calling to one round per turn, and recovers the session when
// the transport to the tool provider fails mid-conversation.
package chat

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"toolchat/model"
)

// Transport is the session's duplex channel to the tool provider. It is
// satisfied by *mcp.Server and replaced wholesale on reconnect.
type Transport interface {
	ListTools(ctx context.Context) ([]mcptypes.Tool, error)
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
	Close() error
}

// Session binds one conversation history to an inference provider and the
// transport currently serving it. Exactly one query is in flight at a time.
type Session struct {
	history   *model.Session
	provider  model.Provider
	transport Transport

	// OnToolCall, when set, is invoked just before each tool dispatch.
	OnToolCall func(name string)
}

// NewSession creates a session whose history is seeded with systemPrompt.
// transport may be nil; the supervisor will then connect on the first query.
func NewSession(provider model.Provider, transport Transport, systemPrompt string) *Session {
	return &Session{
		history:   model.NewSession(systemPrompt),
		provider:  provider,
		transport: transport,
	}
}

// History returns the conversation history in insertion order.
func (s *Session) History() []model.Message {
	return s.history.Messages()
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.history.ID
}

// Transport returns the current transport, nil if invalidated.
func (s *Session) Transport() Transport {
	return s.transport
}

// SetTransport replaces the transport reference. The history is untouched;
// replacing the transport is exactly what reconnect does.
func (s *Session) SetTransport(t Transport) {
	s.transport = t
}
