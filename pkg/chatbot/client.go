// Package chatbot sends one navigation question to an OpenAI-compatible
// chat completion endpoint.
package chatbot

import (
	"context"
	"errors"
	"strings"

	configpkg "github.com/educado/edu-navigator/pkg/config"
	loggerpkg "github.com/educado/edu-navigator/pkg/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client issues single-shot chat completion requests.
type Client struct {
	client  openai.Client
	model   string
	logger  loggerpkg.Logger
	verbose bool
}

// New builds a Client from an explicit configuration.
func New(cfg configpkg.Config, opts ...Option) (*Client, error) {
	cfg = configpkg.Normalize(cfg)
	deps := clientDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	loggerpkg.Debug(cfg.Verbose, deps.logger, "chatbot client init", map[string]any{
		"model":    cfg.Model,
		"base_url": cfg.BaseURL,
	})
	if cfg.APIKey == "" {
		return nil, newError(ErrAuthentication, errors.New("OPENAI_API_KEY is not set"))
	}
	if cfg.Model == "" {
		return nil, errors.New("Model is not set")
	}

	return &Client{
		client:  newOpenAIClient(cfg, deps.requestOptions),
		model:   cfg.Model,
		logger:  deps.logger,
		verbose: cfg.Verbose,
	}, nil
}

func newOpenAIClient(cfg configpkg.Config, extra []option.RequestOption) openai.Client {
	// The SDK retries twice by default; every call here is single-attempt.
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	opts = append(opts, extra...)
	return openai.NewClient(opts...)
}

// Model returns the model identifier requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Complete sends the system prompt and user input as one conversation and
// returns the first choice's content unmodified.
func (c *Client) Complete(ctx context.Context, systemPrompt, userInput string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return "", newError(ErrInput, errors.New("user input is required"))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	messages, err := toOpenAIMessages(NewConversation(systemPrompt, userInput).Messages())
	if err != nil {
		return "", err
	}

	loggerpkg.Debug(c.verbose, c.logger, "sending completion request", map[string]any{
		"model":        c.model,
		"prompt_bytes": len(systemPrompt),
		"input_bytes":  len(userInput),
	})
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		loggerpkg.Debug(c.verbose, c.logger, "completion request failed", map[string]any{
			"error": err.Error(),
		})
		return "", classify(err)
	}
	if len(completion.Choices) == 0 {
		return "", newError(ErrService, errors.New("empty completion choices"))
	}

	content := completion.Choices[0].Message.Content
	loggerpkg.Debug(c.verbose, c.logger, "completion received", map[string]any{
		"choices": len(completion.Choices),
		"bytes":   len(content),
	})
	return content, nil
}
