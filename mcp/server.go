// Package mcp owns the duplex channel to the tool provider: connecting to a
// provider script over stdio, the discovery calls, tool invocation, and
// reshaping the provider's tool descriptors for inference endpoints.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mark3labs/mcp-go/client"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	globalconfig "toolchat/config"
)

// Server is the handle to one tool provider reached over stdio. It is
// replaced wholesale on reconnect; it is never repaired in place.
type Server struct {
	client     *client.Client
	scriptPath string

	tools     []mcptypes.Tool
	prompts   []mcptypes.Prompt
	templates []mcptypes.ResourceTemplate
}

// Connect launches the provider script, completes the MCP initialization
// handshake and runs the discovery calls. The script's extension selects the
// runtime (.py runs under python, .js under node); anything else is a
// connect error.
func Connect(ctx context.Context, scriptPath string) (*Server, error) {
	command, err := commandForScript(scriptPath)
	if err != nil {
		return nil, err
	}

	mcpClient, err := client.NewStdioMCPClient(command, os.Environ(), scriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to start tool provider %s: %w", scriptPath, err)
	}

	s := &Server{client: mcpClient, scriptPath: scriptPath}

	initReq := mcptypes.InitializeRequest{
		Params: mcptypes.InitializeParams{
			ProtocolVersion: "2025-06-18",
			Capabilities:    mcptypes.ClientCapabilities{},
			ClientInfo: mcptypes.Implementation{
				Name:    "toolchat",
				Version: "1.0.0",
			},
		},
	}

	if _, err := mcpClient.Initialize(ctx, initReq); err != nil {
		_ = mcpClient.Close()
		return nil, fmt.Errorf("failed to initialize tool provider: %w", err)
	}

	if err := s.discover(ctx); err != nil {
		_ = mcpClient.Close()
		return nil, err
	}

	if globalconfig.DebugLog != nil {
		globalconfig.DebugLog.Printf("[MCP] Connected to %s (%d tools, %d prompts, %d resource templates)",
			scriptPath, len(s.tools), len(s.prompts), len(s.templates))
	}

	return s, nil
}

// discover runs the enumeration calls once after connect. Tools are required
// before any turn executes; prompts and resource templates are informational
// and a provider that does not implement them is tolerated.
func (s *Server) discover(ctx context.Context) error {
	toolsResult, err := s.client.ListTools(ctx, mcptypes.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	s.tools = toolsResult.Tools

	if promptsResult, err := s.client.ListPrompts(ctx, mcptypes.ListPromptsRequest{}); err == nil {
		s.prompts = promptsResult.Prompts
	} else if globalconfig.DebugLog != nil {
		globalconfig.DebugLog.Printf("[MCP] ListPrompts unsupported by %s: %v", s.scriptPath, err)
	}

	if templatesResult, err := s.client.ListResourceTemplates(ctx, mcptypes.ListResourceTemplatesRequest{}); err == nil {
		s.templates = templatesResult.ResourceTemplates
	} else if globalconfig.DebugLog != nil {
		globalconfig.DebugLog.Printf("[MCP] ListResourceTemplates unsupported by %s: %v", s.scriptPath, err)
	}

	return nil
}

// ListTools fetches the current tool catalog from the provider.
func (s *Server) ListTools(ctx context.Context) ([]mcptypes.Tool, error) {
	toolsResult, err := s.client.ListTools(ctx, mcptypes.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	s.tools = toolsResult.Tools
	return s.tools, nil
}

// Prompts returns the prompt list captured at connect time.
func (s *Server) Prompts() []mcptypes.Prompt {
	return s.prompts
}

// ResourceTemplates returns the resource template list captured at connect time.
func (s *Server) ResourceTemplates() []mcptypes.ResourceTemplate {
	return s.templates
}

// CallTool invokes one tool and returns the first text content element of
// the response. The provider has no separate error channel: failures it
// reports arrive here as ordinary text for the model to interpret. There is
// no built-in timeout; callers needing bounded latency wrap ctx.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := s.client.CallTool(ctx, mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	})
	if err != nil {
		return "", fmt.Errorf("tool %s failed: %w", name, err)
	}

	return firstText(result), nil
}

// Close releases the channel. Safe to call on an already-broken channel.
func (s *Server) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func firstText(result *mcptypes.CallToolResult) string {
	for _, content := range result.Content {
		if text, ok := content.(mcptypes.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

// commandForScript resolves the runtime for a provider script by extension.
func commandForScript(scriptPath string) (string, error) {
	switch filepath.Ext(scriptPath) {
	case ".py":
		return pythonCommand(), nil
	case ".js":
		return "node", nil
	default:
		return "", fmt.Errorf("tool provider script must be a .py or .js file: %s", scriptPath)
	}
}

func pythonCommand() string {
	for _, cmd := range []string{"python3", "python"} {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd
		}
	}
	return "python3"
}
