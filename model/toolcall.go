package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToolCall is a single tool invocation requested by the assistant.
// ID is opaque and unique within the turn; Arguments is always the
// structured mapping form (see NormalizeArguments).
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// NormalizeArguments converts tool-call arguments from either wire shape the
// endpoint might produce (serialized JSON text or an already-structured
// mapping) into the mapping form. Everything downstream of the provider
// boundary only ever sees the result of this function.
func NormalizeArguments(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case string:
		return unmarshalArguments([]byte(v))
	case []byte:
		return unmarshalArguments(v)
	case json.RawMessage:
		return unmarshalArguments([]byte(v))
	default:
		// Some SDKs hand back their own struct types. Round-trip through
		// JSON to reach the mapping form.
		bytes, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("unsupported tool argument shape %T: %w", raw, err)
		}
		return unmarshalArguments(bytes)
	}
}

func unmarshalArguments(data []byte) (map[string]any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("tool arguments are not a valid JSON object: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
