package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"toolchat/chat"
	"toolchat/config"
	"toolchat/mcp"
	"toolchat/provider"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

const answerWidth = 100

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [server-script]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "server-script is the path to an MCP tool provider script (.py or .js);\ndefaults to ./server.py\n")
	}
	flag.Parse()

	serverPath := "./server.py"
	if flag.NArg() > 0 {
		serverPath = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	config.InitDebugLog(config.GetConfigDir())

	p, err := provider.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create provider: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	server, err := mcp.Connect(ctx, serverPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to tool provider: %v\n", err)
		os.Exit(1)
	}

	session := chat.NewSession(p, server, cfg.SystemPrompt)
	session.OnToolCall = func(name string) {
		fmt.Printf("Using tool: %s\n", name)
	}

	supervisor := chat.NewSupervisor(session, serverPath, func(ctx context.Context, endpoint string) (chat.Transport, error) {
		return mcp.Connect(ctx, endpoint)
	})
	defer supervisor.Close()

	if err := p.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: inference endpoint unreachable: %v\n", err)
	}

	fmt.Println("\nMCP client started!")
	fmt.Printf("Model: %s  Tools: %s\n", p.Model(), serverPath)
	fmt.Println("Type your queries or 'quit' to exit.")

	chatLoop(ctx, supervisor)
}

func chatLoop(ctx context.Context, supervisor *chat.Supervisor) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nQuery: ")
		if !scanner.Scan() {
			return
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			return
		}

		answer, err := supervisor.Submit(ctx, query)
		switch {
		case errors.Is(err, chat.ErrSessionFailed):
			fmt.Fprintf(os.Stderr, "\n%v. Exiting.\n", err)
			return
		case errors.Is(err, chat.ErrReconnected):
			fmt.Printf("\n%v\n", err)
		case err != nil:
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		default:
			fmt.Println()
			os.Stdout.Write(markdown.Render(answer, answerWidth, 0))
			fmt.Println()
		}
	}
}
