package genai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CohereClient is a Generator backed by the Cohere chat API.
type CohereClient struct {
	client *cohereclient.Client
	logger *slog.Logger
}

func NewCohereClient(apiKey string, logger *slog.Logger) *CohereClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &CohereClient{
		client: cohereclient.NewClient(cohereclient.WithToken(apiKey)),
		logger: logger,
	}
}

// Complete maps the system message to the chat preamble and the user
// message to the chat message. Only the last message of each role is used;
// the artifact prompts always send exactly one of each.
func (c *CohereClient) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	var preamble, message string
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			preamble = m.Content
		case RoleUser:
			message = m.Content
		}
	}

	req := &cohere.ChatRequest{Message: message}
	if model != "" {
		req.Model = &model
	}
	if preamble != "" {
		req.Preamble = &preamble
	}

	start := time.Now()
	resp, err := c.client.Chat(ctx, req)
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}

	c.logger.Debug("cohere chat completion",
		"model", model,
		"duration", time.Since(start))

	return resp.Text, nil
}
