package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"

	"toolchat/config"
	"toolchat/mcp"
	"toolchat/model"
)

// OllamaProvider implements model.Provider against a local Ollama server.
type OllamaProvider struct {
	client      *api.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewOllama creates an Ollama provider. The base URL defaults to the local
// server; the model defaults to llama3.1:latest. No API key is involved.
func NewOllama(cfg *config.Config) (*OllamaProvider, error) {
	baseURL := cfg.APIURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = "llama3.1:latest"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &OllamaProvider{
		client:      api.NewClient(parsedURL, http.DefaultClient),
		model:       modelName,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// ChatWithTools implements model.Provider.ChatWithTools with a single
// non-streamed chat call.
//
// Ollama tool calls carry no id on the wire, so an id is minted per call;
// history then keeps the same tool_call_id back-references as with OpenAI,
// even though Ollama itself pairs tool results by message order.
func (p *OllamaProvider) ChatWithTools(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*model.ChatResult, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: toOllamaMessages(messages),
		Stream:   &stream,
		Options: map[string]any{
			"temperature": p.temperature,
			"num_predict": p.maxTokens,
		},
	}

	if len(tools) > 0 {
		req.Tools = mcp.ToOllamaTools(tools)
	}

	var last api.ChatResponse
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		last = resp
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat failed: %w", err)
	}

	msg := model.Message{
		Role:    model.RoleAssistant,
		Content: last.Message.Content,
	}

	for _, call := range last.Message.ToolCalls {
		args, err := model.NormalizeArguments(map[string]any(call.Function.Arguments))
		if err != nil {
			return nil, fmt.Errorf("tool call %s: %w", call.Function.Name, err)
		}
		msg.ToolCalls = append(msg.ToolCalls, model.ToolCall{
			ID:        "call_" + uuid.NewString(),
			Name:      call.Function.Name,
			Arguments: args,
		})
	}

	reason := model.FinishReason(last.DoneReason)
	if reason == "" && last.Done {
		reason = model.FinishStop
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Ollama] done_reason=%s content=%dB tool_calls=%d",
			last.DoneReason, len(msg.Content), len(msg.ToolCalls))
	}

	return &model.ChatResult{Message: msg, FinishReason: reason}, nil
}

// Ping implements model.Provider.Ping by listing local models.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := p.client.List(ctx); err != nil {
		return fmt.Errorf("ollama ping failed: %w", err)
	}
	return nil
}

// Model implements model.Provider.Model.
func (p *OllamaProvider) Model() string {
	return p.model
}
