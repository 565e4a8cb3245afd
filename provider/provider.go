// Package provider implements the inference-endpoint clients behind the
// model.Provider interface.
//
// Two endpoint families are supported: OpenAI-compatible chat-completions
// APIs (OpenAI itself, or anything speaking its wire format via a custom
// base URL) and a local Ollama server. Both return a single non-streamed
// choice per call; the chat layer never sees SDK types.
//
// The provider is constructed once at startup and passed into the session
// explicitly. Nothing in this package keeps ambient client state.
package provider

import (
	"fmt"

	"toolchat/config"
	"toolchat/model"
)

// Kind identifies the provider implementation.
type Kind string

const (
	KindOpenAI Kind = "openai"
	KindOllama Kind = "ollama"
)

// New creates a provider from configuration.
func New(cfg *config.Config) (model.Provider, error) {
	switch Kind(cfg.Provider) {
	case KindOpenAI:
		return NewOpenAI(cfg)
	case KindOllama:
		return NewOllama(cfg)
	default:
		return nil, fmt.Errorf("unknown provider kind: %q", cfg.Provider)
	}
}
