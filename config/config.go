package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds everything the client needs to talk to the inference
// endpoint. The API key is taken from the environment only and is never
// written to the settings file.
type Config struct {
	Provider     string  `toml:"provider"`
	APIURL       string  `toml:"api_url"`
	Model        string  `toml:"model"`
	MaxTokens    int64   `toml:"max_tokens"`
	Temperature  float64 `toml:"temperature"`
	SystemPrompt string  `toml:"system_prompt"`

	APIKey string `toml:"-"`
}

// DefaultSystemPrompt seeds every session's history.
const DefaultSystemPrompt = "You are a helpful assistant equipped with several tools. \n\n" +
	"**Workflow Guidance:**\n" +
	"1. Analyze the user's request. \n" +
	"2. If the request requires current information or details from the web, first use `web_search` to find relevant URLs.\n" +
	"3. If the search results provide promising URLs, consider using `get_web_content` on the most relevant URL to fetch its detailed content.\n" +
	"4. Synthesize the information from the search results and/or the fetched web content to answer the user's question.\n" +
	"5. For other requests, use the appropriate tool directly or answer based on your knowledge."

func Default() *Config {
	return &Config{
		Provider:     "openai",
		APIURL:       "",
		Model:        "",
		MaxTokens:    4096,
		Temperature:  0,
		SystemPrompt: DefaultSystemPrompt,
	}
}

// applyEnvOverrides layers environment values over the file settings.
// API_URL, OPENAI_API_KEY and MODEL_NAME intentionally keep their historic
// names so existing .env setups keep working.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("API_URL"); url != "" {
		c.APIURL = url
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.APIKey = key
	}
	if model := os.Getenv("MODEL_NAME"); model != "" {
		c.Model = model
	}
	if provider := os.Getenv("TOOLCHAT_PROVIDER"); provider != "" {
		c.Provider = provider
	}
}

var Debug = false
var DebugLog *log.Logger

func CheckDebug() bool {
	debug := os.Getenv("TOOLCHAT_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log file under dir. DebugLog stays nil unless
// TOOLCHAT_DEBUG is set; call sites guard with a nil check.
func InitDebugLog(dir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dir, "debug.log")

	// 0600: the log can contain message content
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
}
