// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

// Package recommend talks to an OpenAI-compatible chat completion endpoint
// to turn a visitor's taste description into watch recommendations. The
// heavy lifting happens in the collaborator; this package only shapes the
// prompt and unwraps the reply.
package recommend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tsukihub/tsukihub/internal/config"
)

// ErrDisabled indicates the recommendation collaborator is not configured.
var ErrDisabled = errors.New("recommend: collaborator not configured")

// maxErrorBodySize bounds the error body excerpt read from the collaborator.
const maxErrorBodySize = 64 * 1024

// Completer produces recommendation text from a visitor's taste description.
type Completer interface {
	Complete(ctx context.Context, favorites, preferences string) (string, error)
}

// Client is a Completer backed by an OpenAI-compatible HTTP endpoint.
type Client struct {
	url        string
	model      string
	httpClient *http.Client
}

// New creates a recommendation client from configuration. When the
// collaborator is disabled, every Complete call returns ErrDisabled.
func New(cfg config.RecommendConfig) *Client {
	return &Client{
		url:        cfg.URL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// systemPrompt frames the collaborator as an anime/manga recommender.
const systemPrompt = "You are an anime and manga recommendation assistant. " +
	"Given a visitor's favorite titles and their preferences, recommend up to " +
	"five titles. For each, give the title and one sentence on why it fits. " +
	"Reply in plain text."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the visitor's input to the collaborator and returns its
// reply text verbatim.
func (c *Client) Complete(ctx context.Context, favorites, preferences string) (string, error) {
	if c.url == "" {
		return "", ErrDisabled
	}

	userPrompt := fmt.Sprintf("Favorite titles:\n%s\n\nWhat I am looking for:\n%s", favorites, preferences)

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return "", fmt.Errorf("unexpected status %d from collaborator: %s", resp.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("collaborator returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// interface guard
var _ Completer = (*Client)(nil)
