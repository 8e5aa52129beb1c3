// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package gemini wraps the Gemini API for seed script generation.
// Structured output is requested with a response schema first; models
// that reject the schema get a retry with the contract embedded in the
// system instruction instead.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	apperrors "seedgen/cli/internal/errors"
	"seedgen/cli/internal/keychain"
	"seedgen/cli/internal/logging"
	"seedgen/cli/internal/seed"
)

// EnvAPIKey is checked before the keychain. A .env file in the working
// directory is loaded into the environment at startup, so it shares
// this path.
const EnvAPIKey = "GEMINI_API_KEY"

const (
	maxAttempts    = 3
	initialBackoff = 2 * time.Second
)

// Client calls the Gemini API with a fixed model.
type Client struct {
	genai *genai.Client
	model string
	log   *zap.Logger
}

// ResolveAPIKey finds the Gemini API key: environment first (which
// includes .env), then the OS keychain.
func ResolveAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	if mgr, err := keychain.GetManager(); err == nil {
		if key, err := mgr.LoadAPIKey(); err == nil && strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), nil
		}
	}

	return "", apperrors.New(apperrors.MissingCredential,
		"no Gemini API key found; set GEMINI_API_KEY or run 'seedgen login'")
}

// NewClient builds a client for the given model, resolving the API key.
func NewClient(ctx context.Context, model string) (*Client, error) {
	key, err := ResolveAPIKey()
	if err != nil {
		return nil, err
	}
	return NewClientWithKey(ctx, model, key)
}

// NewClientWithKey builds a client with an explicit key. Used by login
// to verify a key before storing it.
func NewClientWithKey(ctx context.Context, model, key string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.GenerationFailed, "failed to create Gemini client", err)
	}
	return &Client{genai: gc, model: model, log: logging.Debug()}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Ping verifies the API key by fetching the model's metadata.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.genai.Models.Get(ctx, c.model, nil)
	if err != nil {
		return classify(err)
	}
	return nil
}

// GenerateSeed asks the model for a seed script matching the prompt.
// It tries structured output with a response schema, and falls back to
// instruction-embedded JSON when the model rejects the schema or
// returns a payload that fails validation.
func (c *Client) GenerateSeed(ctx context.Context, promptText string) (*seed.Script, error) {
	runID := uuid.NewString()
	log := c.log.With(zap.String("run_id", runID), zap.String("model", c.model))
	log.Debug("generation started", zap.Int("prompt_bytes", len(promptText)))

	script, err := c.generateStructured(ctx, promptText, log)
	if err == nil {
		log.Debug("structured output accepted", zap.Int("statements", script.StatementCount()))
		return script, nil
	}
	if !retryWithoutSchema(err) {
		return nil, err
	}
	log.Debug("falling back to instruction-embedded schema", zap.String("reason", logging.Mask(err.Error())))

	script, err = c.generateFallback(ctx, promptText, log)
	if err != nil {
		return nil, err
	}
	log.Debug("fallback output accepted", zap.Int("statements", script.StatementCount()))
	return script, nil
}

// generateStructured is the primary path: response schema enforced by
// the API, payload arrives as clean JSON.
func (c *Client) generateStructured(ctx context.Context, promptText string, log *zap.Logger) (*seed.Script, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   seed.ResponseSchema(),
	}

	text, err := c.call(ctx, promptText, config, log)
	if err != nil {
		return nil, err
	}

	script, err := seed.Parse([]byte(text))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.BadResponse, "structured response failed validation", err)
	}
	return script, nil
}

// generateFallback re-issues the call without a response schema and
// carries the JSON Schema contract in the system instruction instead.
// The reply may be wrapped in markdown fences or prose.
func (c *Client) generateFallback(ctx context.Context, promptText string, log *zap.Logger) (*seed.Script, error) {
	instruction := "Respond with a single JSON object and nothing else. " +
		"The object must conform to this JSON Schema:\n" + seed.JSONSchema
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
	}

	text, err := c.call(ctx, promptText, config, log)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.BadResponse, "could not locate a JSON object in the response", err)
	}

	script, err := seed.Parse([]byte(raw))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.BadResponse, "fallback response failed validation", err)
	}
	return script, nil
}

// call issues one GenerateContent request with rate-limit retries.
func (c *Client) call(ctx context.Context, promptText string, config *genai.GenerateContentConfig, log *zap.Logger) (string, error) {
	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(promptText), config)
		if err != nil {
			classified := classify(err)
			if apperrors.KindOf(classified) != apperrors.RateLimited {
				return "", classified
			}
			lastErr = classified
			log.Debug("rate limited, backing off",
				zap.Int("attempt", attempt), zap.Duration("backoff", backoff))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		text := resp.Text()
		if strings.TrimSpace(text) == "" {
			return "", apperrors.New(apperrors.BadResponse, "model returned an empty response")
		}
		return text, nil
	}

	return "", lastErr
}

// retryWithoutSchema reports whether the fallback path could help:
// the model rejected structured output, or the structured payload was
// malformed.
func retryWithoutSchema(err error) bool {
	switch apperrors.KindOf(err) {
	case apperrors.BadResponse:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "response_schema") ||
		strings.Contains(msg, "responseschema") ||
		strings.Contains(msg, "response_mime_type") ||
		strings.Contains(msg, "json mode is not enabled")
}

// classify maps API errors onto the error kinds the CLI reports.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400:
			if strings.Contains(strings.ToLower(apiErr.Message), "api key") {
				return apperrors.Wrap(apperrors.InvalidCredential, "API key was rejected", err)
			}
			return apperrors.Wrap(apperrors.GenerationFailed, apiErr.Message, err)
		case 401, 403:
			return apperrors.Wrap(apperrors.InvalidCredential, "API key was rejected", err)
		case 404:
			return apperrors.Wrap(apperrors.ModelNotFound, fmt.Sprintf("model not found: %s", apiErr.Message), err)
		case 429:
			return apperrors.Wrap(apperrors.RateLimited, "rate limit exceeded", err)
		}
		return apperrors.Wrap(apperrors.GenerationFailed, apiErr.Message, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return apperrors.Wrap(apperrors.RateLimited, "rate limit exceeded", err)
	case strings.Contains(msg, "api key"):
		return apperrors.Wrap(apperrors.InvalidCredential, "API key was rejected", err)
	case strings.Contains(msg, "not found") && strings.Contains(msg, "model"):
		return apperrors.Wrap(apperrors.ModelNotFound, "model not found", err)
	}
	return apperrors.Wrap(apperrors.GenerationFailed, "generation request failed", err)
}
