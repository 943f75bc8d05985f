package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pagemint/pagemint/internal/config"
	"github.com/pagemint/pagemint/pkg/clients"
)

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

type Client struct {
	address string
	key     string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		address: cfg.TextGenAddress,
		key:     cfg.TextGenKey,
		client:  client,
	}
}

// Complete runs one text-completion call against the given model.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	payload, err := json.Marshal(completionRequest{Model: model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.key)
	headers.Set("Content-Type", "application/json")

	statusCode, body, err := c.client.Post(c.address+"/v1/completions", headers, payload)
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("textgen returned status %d for model %s", statusCode, model)
	}

	var resp completionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("textgen returned empty completion for model %s", model)
	}
	return resp.Text, nil
}
