package model

import "time"

// Message roles as sent to the inference endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents one entry in a session's conversation history.
//
// ToolCalls is set only on assistant messages that request tool invocations.
// ToolCallID and Name are set only on tool messages, where ToolCallID must
// reference a ToolCall.ID emitted by a preceding assistant message in the
// same session.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
	Timestamp  time.Time
}
