package mcp

import (
	"testing"

	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

func sampleTools() []mcptypes.Tool {
	return []mcptypes.Tool{
		{
			Name:        "get_weather_for_date",
			Description: "Get the weather for a specific date and city",
			InputSchema: mcptypes.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"city": map[string]any{
						"type":        "string",
						"description": "The name of the city",
					},
					"date_str": map[string]any{
						"type":        "string",
						"description": "The date, format YYYY-MM-DD",
					},
				},
				Required: []string{"city"},
			},
		},
	}
}

func TestToOpenAITools(t *testing.T) {
	tests := []struct {
		name     string
		input    []mcptypes.Tool
		validate func(t *testing.T, result []openai.ChatCompletionToolUnionParam)
	}{
		{
			name:  "empty catalog yields nil",
			input: nil,
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				if result != nil {
					t.Errorf("expected nil, got %d tools", len(result))
				}
			},
		},
		{
			name:  "schema passes through reshaped",
			input: sampleTools(),
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				if len(result) != 1 {
					t.Fatalf("expected 1 tool, got %d", len(result))
				}
				fn := result[0].OfFunction
				if fn == nil {
					t.Fatal("expected a function tool")
				}
				if fn.Function.Name != "get_weather_for_date" {
					t.Errorf("name = %q", fn.Function.Name)
				}
				params := fn.Function.Parameters
				if params["type"] != "object" {
					t.Errorf("parameters type = %v", params["type"])
				}
				props, ok := params["properties"].(map[string]any)
				if !ok || len(props) != 2 {
					t.Errorf("properties not preserved: %v", params["properties"])
				}
				required, ok := params["required"].([]string)
				if !ok || len(required) != 1 || required[0] != "city" {
					t.Errorf("required not preserved: %v", params["required"])
				}
			},
		},
		{
			name: "empty required set is omitted",
			input: []mcptypes.Tool{
				{
					Name: "no_args",
					InputSchema: mcptypes.ToolInputSchema{
						Type:       "object",
						Properties: map[string]any{},
					},
				},
			},
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				params := result[0].OfFunction.Function.Parameters
				if _, present := params["required"]; present {
					t.Error("required should be omitted when empty")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ToOpenAITools(tt.input))
		})
	}
}

func TestToOllamaTools(t *testing.T) {
	result := ToOllamaTools(sampleTools())
	if len(result) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(result))
	}

	tool := result[0]
	if tool.Type != "function" {
		t.Errorf("type = %q, want function", tool.Type)
	}
	if tool.Function.Name != "get_weather_for_date" {
		t.Errorf("name = %q", tool.Function.Name)
	}

	params := tool.Function.Parameters
	if params.Type != "object" {
		t.Errorf("parameters type = %q", params.Type)
	}
	if len(params.Required) != 1 || params.Required[0] != "city" {
		t.Errorf("required = %v", params.Required)
	}

	cityProp, ok := params.Properties["city"]
	if !ok {
		t.Fatal("city property missing")
	}
	if len(cityProp.Type) != 1 || cityProp.Type[0] != "string" {
		t.Errorf("city type = %v", cityProp.Type)
	}
	if cityProp.Description != "The name of the city" {
		t.Errorf("city description = %q", cityProp.Description)
	}
}

func TestToOllamaPropertyShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		validate func(t *testing.T, prop api.ToolProperty)
	}{
		{
			name: "type list",
			input: map[string]any{
				"type": []any{"string", "null"},
			},
			validate: func(t *testing.T, prop api.ToolProperty) {
				if len(prop.Type) != 2 {
					t.Errorf("type = %v", prop.Type)
				}
			},
		},
		{
			name: "enum",
			input: map[string]any{
				"type": "string",
				"enum": []any{"text", "html"},
			},
			validate: func(t *testing.T, prop api.ToolProperty) {
				if len(prop.Enum) != 2 {
					t.Errorf("enum = %v", prop.Enum)
				}
			},
		},
		{
			name: "anyOf recurses",
			input: map[string]any{
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "number"},
				},
			},
			validate: func(t *testing.T, prop api.ToolProperty) {
				if len(prop.AnyOf) != 2 {
					t.Fatalf("anyOf = %v", prop.AnyOf)
				}
				if len(prop.AnyOf[0].Type) != 1 || prop.AnyOf[0].Type[0] != "string" {
					t.Errorf("anyOf[0] type = %v", prop.AnyOf[0].Type)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, toOllamaProperty(tt.input))
		})
	}
}
