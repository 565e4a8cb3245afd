package mcp

import (
	"strings"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

func TestCommandForScript(t *testing.T) {
	tests := []struct {
		name       string
		scriptPath string
		wantPrefix string
		wantErr    bool
	}{
		{"python script", "./server.py", "python", false},
		{"node script", "/opt/tools/server.js", "node", false},
		{"shell script rejected", "./server.sh", "", true},
		{"no extension rejected", "./server", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, err := commandForScript(tt.scriptPath)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.scriptPath)
				}
				return
			}
			if err != nil {
				t.Fatalf("commandForScript(%q) returned error: %v", tt.scriptPath, err)
			}
			if !strings.HasPrefix(command, tt.wantPrefix) {
				t.Errorf("command = %q, want prefix %q", command, tt.wantPrefix)
			}
		})
	}
}

func TestFirstText(t *testing.T) {
	tests := []struct {
		name   string
		result *mcptypes.CallToolResult
		want   string
	}{
		{
			name: "single text element",
			result: &mcptypes.CallToolResult{
				Content: []mcptypes.Content{
					mcptypes.TextContent{Type: "text", Text: "friday"},
				},
			},
			want: "friday",
		},
		{
			name: "first text element wins",
			result: &mcptypes.CallToolResult{
				Content: []mcptypes.Content{
					mcptypes.TextContent{Type: "text", Text: "first"},
					mcptypes.TextContent{Type: "text", Text: "second"},
				},
			},
			want: "first",
		},
		{
			name:   "no content",
			result: &mcptypes.CallToolResult{},
			want:   "",
		},
		{
			name: "provider-reported failure is ordinary text",
			result: &mcptypes.CallToolResult{
				IsError: true,
				Content: []mcptypes.Content{
					mcptypes.TextContent{Type: "text", Text: "invalid date, use YYYY-MM-DD format."},
				},
			},
			want: "invalid date, use YYYY-MM-DD format.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstText(tt.result); got != tt.want {
				t.Errorf("firstText() = %q, want %q", got, tt.want)
			}
		})
	}
}
