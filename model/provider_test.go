package model

import (
	"errors"
	"testing"
)

func TestChatResultClassify(t *testing.T) {
	tests := []struct {
		name       string
		result     ChatResult
		want       FinishReason
		wantErr    bool
		wantReason string
	}{
		{
			name: "stop",
			result: ChatResult{
				Message:      Message{Role: RoleAssistant, Content: "hi"},
				FinishReason: FinishStop,
			},
			want: FinishStop,
		},
		{
			name: "tool calls win over reported reason",
			result: ChatResult{
				Message: Message{
					Role:      RoleAssistant,
					ToolCalls: []ToolCall{{ID: "call_1", Name: "t"}},
				},
				FinishReason: FinishStop,
			},
			want: FinishToolCalls,
		},
		{
			name: "unknown reason has no safe default",
			result: ChatResult{
				Message:      Message{Role: RoleAssistant, Content: "partial"},
				FinishReason: FinishReason("content_filter"),
			},
			wantErr:    true,
			wantReason: "content_filter",
		},
		{
			name: "empty reason is unknown",
			result: ChatResult{
				Message: Message{Role: RoleAssistant},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.result.Classify()
			if tt.wantErr {
				var unknownErr *UnknownFinishReasonError
				if !errors.As(err, &unknownErr) {
					t.Fatalf("expected UnknownFinishReasonError, got %v", err)
				}
				if tt.wantReason != "" && unknownErr.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", unknownErr.Reason, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}
