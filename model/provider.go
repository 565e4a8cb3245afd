package model

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Provider abstracts inference endpoints (OpenAI-compatible APIs, Ollama)
// using provider-agnostic types from the model layer.
//
// This interface lives in the model package (not provider) to avoid import
// cycles: provider implementations import model, and the chat layer uses
// Provider without importing any SDK types beyond the MCP tool descriptor.
type Provider interface {
	// ChatWithTools sends the full message history with an optional tool
	// catalog and returns the endpoint's single choice. A nil or empty tools
	// slice disables tool use for the call.
	ChatWithTools(ctx context.Context, messages []Message, tools []mcptypes.Tool) (*ChatResult, error)

	// Ping checks if the endpoint is reachable.
	Ping(ctx context.Context) error

	// Model returns the active model identifier.
	Model() string
}

// FinishReason is the endpoint's classification for why generation stopped.
type FinishReason string

const (
	FinishStop      FinishReason = "stop"
	FinishToolCalls FinishReason = "tool_calls"
)

// ChatResult is one assistant response from the inference endpoint: the
// message to append to history plus the raw finish classification.
type ChatResult struct {
	Message      Message
	FinishReason FinishReason
}

// Classify resolves the effective stop condition for a turn. Tool calls in
// the message take precedence over the reported finish reason; a reason that
// is neither tool calls nor a plain stop has no safe default behavior and is
// surfaced as UnknownFinishReasonError.
func (r *ChatResult) Classify() (FinishReason, error) {
	if len(r.Message.ToolCalls) > 0 {
		return FinishToolCalls, nil
	}
	if r.FinishReason == FinishStop {
		return FinishStop, nil
	}
	return "", &UnknownFinishReasonError{Reason: string(r.FinishReason)}
}

// UnknownFinishReasonError reports a finish classification this client has
// no contract for. It is fatal for the rest of the turn but not for the session.
type UnknownFinishReasonError struct {
	Reason string
}

func (e *UnknownFinishReasonError) Error() string {
	return fmt.Sprintf("unknown stop reason: %q", e.Reason)
}
