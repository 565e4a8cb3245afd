package chat

import (
	"context"
	"fmt"

	"toolchat/config"
	"toolchat/model"
)

// ProcessQuery runs one turn: it realizes one user query into one final
// textual answer, invoking at most one round of tool calls in between.
//
// The flow is: append the user message, fetch the tool catalog, call the
// endpoint with tools permitted, and classify the response. A plain stop
// means the content is the answer. Tool calls are dispatched sequentially in
// the order received, each result appended as a tool message; then exactly
// one further endpoint call runs with tool use disabled to produce the
// answer. The single-round cap trades multi-hop chaining for guaranteed
// termination and an at-most-two-inference-calls cost per query.
func (s *Session) ProcessQuery(ctx context.Context, query string) (string, error) {
	s.history.Append(model.Message{Role: model.RoleUser, Content: query})

	tools, err := s.transport.ListTools(ctx)
	if err != nil {
		return "", fmt.Errorf("tool discovery failed: %w", err)
	}

	first, err := s.provider.ChatWithTools(ctx, s.history.Messages(), tools)
	if err != nil {
		return "", err
	}
	s.history.Append(first.Message)

	reason, err := first.Classify()
	if err != nil {
		return "", err
	}

	if reason == model.FinishStop {
		return first.Message.Content, nil
	}

	for _, call := range first.Message.ToolCalls {
		if s.OnToolCall != nil {
			s.OnToolCall(call.Name)
		}
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Turn] session=%s tool=%s args=%v", s.ID(), call.Name, call.Arguments)
		}

		content, err := s.transport.CallTool(ctx, call.Name, call.Arguments)
		if err != nil {
			return "", err
		}

		s.history.Append(model.Message{
			Role:       model.RoleTool,
			ToolCallID: call.ID,
			Name:       call.Name,
			Content:    content,
		})
	}

	// The one extra inference call of the round cap, tools disabled.
	final, err := s.provider.ChatWithTools(ctx, s.history.Messages(), nil)
	if err != nil {
		return "", err
	}
	s.history.Append(final.Message)

	return final.Message.Content, nil
}
