package provider

import (
	"encoding/json"

	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"

	"toolchat/model"
)

// toOpenAIMessages converts the session history to OpenAI chat-completion
// message params. Tool messages carry their originating call id; assistant
// messages that requested tools carry the requests back so the endpoint can
// pair them with the results.
func toOpenAIMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))

	for i, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			result[i] = openai.SystemMessage(msg.Content)
		case model.RoleUser:
			result[i] = openai.UserMessage(msg.Content)
		case model.RoleAssistant:
			result[i] = toOpenAIAssistantMessage(msg)
		case model.RoleTool:
			result[i] = openai.ToolMessage(msg.Content, msg.ToolCallID)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}

	return result
}

func toOpenAIAssistantMessage(msg model.Message) openai.ChatCompletionMessageParamUnion {
	if len(msg.ToolCalls) == 0 {
		return openai.AssistantMessage(msg.Content)
	}

	param := openai.ChatCompletionAssistantMessageParam{}
	if msg.Content != "" {
		param.Content.OfString = openai.String(msg.Content)
	}

	for _, call := range msg.ToolCalls {
		param.ToolCalls = append(param.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
			OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
				ID: call.ID,
				Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
					Name:      call.Name,
					Arguments: marshalArguments(call.Arguments),
				},
			},
		})
	}

	return openai.ChatCompletionMessageParamUnion{OfAssistant: &param}
}

// toOllamaMessages converts the session history to Ollama API messages.
// Ollama has no tool_call_id field; tool results are paired by order, with
// ToolName carrying the originating tool.
func toOllamaMessages(messages []model.Message) []api.Message {
	result := make([]api.Message, len(messages))

	for i, msg := range messages {
		result[i] = api.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}

		switch msg.Role {
		case model.RoleAssistant:
			result[i].ToolCalls = toOllamaToolCalls(msg.ToolCalls)
		case model.RoleTool:
			result[i].ToolName = msg.Name
		}
	}

	return result
}

func toOllamaToolCalls(calls []model.ToolCall) []api.ToolCall {
	if len(calls) == 0 {
		return nil
	}

	result := make([]api.ToolCall, len(calls))
	for i, call := range calls {
		result[i] = api.ToolCall{
			Function: api.ToolCallFunction{
				Name:      call.Name,
				Arguments: api.ToolCallFunctionArguments(call.Arguments),
			},
		}
	}
	return result
}

func marshalArguments(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	bytes, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(bytes)
}
