package provider

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"toolchat/config"
	"toolchat/mcp"
	"toolchat/model"
)

// OpenAIProvider implements model.Provider against any OpenAI-compatible
// chat-completions endpoint using the official OpenAI Go SDK.
type OpenAIProvider struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewOpenAI creates an OpenAI provider. The base URL defaults to the public
// OpenAI API; the API key is required; the model defaults to gpt-4o-mini.
func NewOpenAI(cfg *config.Config) (*OpenAIProvider, error) {
	baseURL := cfg.APIURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(cfg.APIKey),
	)

	return &OpenAIProvider{
		client:      client,
		model:       modelName,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// ChatWithTools implements model.Provider.ChatWithTools with a single
// non-streamed completion call. Tool-call arguments are normalized to the
// mapping form here, at the boundary, so the rest of the system never sees
// the serialized wire shape.
func (p *OpenAIProvider) ChatWithTools(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.ChatResult, error) {
	params := openai.ChatCompletionNewParams{
		Messages:    toOpenAIMessages(messages),
		Model:       openai.ChatModel(p.model),
		MaxTokens:   openai.Int(p.maxTokens),
		Temperature: openai.Float(p.temperature),
	}

	if len(tools) > 0 {
		params.Tools = mcp.ToOpenAITools(tools)
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	choice := completion.Choices[0]
	msg := model.Message{
		Role:    model.RoleAssistant,
		Content: choice.Message.Content,
	}

	for _, call := range choice.Message.ToolCalls {
		args, err := model.NormalizeArguments(call.Function.Arguments)
		if err != nil {
			return nil, fmt.Errorf("tool call %s: %w", call.Function.Name, err)
		}
		msg.ToolCalls = append(msg.ToolCalls, model.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: args,
		})
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[OpenAI] finish=%s content=%dB tool_calls=%d",
			choice.FinishReason, len(msg.Content), len(msg.ToolCalls))
	}

	return &model.ChatResult{
		Message:      msg,
		FinishReason: model.FinishReason(choice.FinishReason),
	}, nil
}

// Ping implements model.Provider.Ping by listing models.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return fmt.Errorf("OpenAI ping failed: %w", err)
	}
	return nil
}

// Model implements model.Provider.Model.
func (p *OpenAIProvider) Model() string {
	return p.model
}
