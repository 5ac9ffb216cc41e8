// Package generation implements the structured-generation pipeline: a prompt
// and a schema descriptor go out, and a value is only returned after the
// provider response has been re-validated against that descriptor. Every
// call is a single attempt with no caching and no retries, so repeated
// requests intentionally produce fresh output.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerforge/careerforge-api/internal/generation/schema"
)

// Prompt is a fully rendered instruction pair. Both strings must be final
// before dispatch: no placeholders, no deferred interpolation.
type Prompt struct {
	System string
	User   string
}

// Request describes one outbound generation call.
type Request struct {
	Prompt      Prompt
	Schema      *schema.Descriptor
	MaxTokens   int64
	Temperature float64
}

// Client is the generation capability: one outbound provider call per
// Complete invocation, returning the raw response text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to the Client interface. Used by tests.
type ClientFunc func(ctx context.Context, req Request) (string, error)

func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Generate performs one schema-bound call: dispatch, decode, validate,
// unmarshal. Provider compliance is never trusted: the response is checked
// against req.Schema before anything is returned, and a half-populated value
// is never reported as success.
func Generate[T any](ctx context.Context, client Client, req Request) Result[T] {
	raw, err := client.Complete(ctx, req)
	if err != nil {
		return Fail[T](FailureTransport, err)
	}

	cleaned := StripCodeFences(raw)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return Fail[T](FailureSchema, fmt.Errorf("response is not valid JSON: %w", err))
	}

	if req.Schema != nil {
		if err := req.Schema.Validate(decoded); err != nil {
			return Fail[T](FailureSchema, err)
		}
	}

	var value T
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return Fail[T](FailureSchema, fmt.Errorf("response does not match target shape: %w", err))
	}

	return Ok(value)
}

// GenerateText performs an unconstrained call and returns the raw text.
// Used by the free-text stage of two-stage pipelines.
func GenerateText(ctx context.Context, client Client, req Request) Result[string] {
	raw, err := client.Complete(ctx, req)
	if err != nil {
		return Fail[string](FailureTransport, err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return Fail[string](FailureSchema, fmt.Errorf("provider returned an empty response"))
	}
	return Ok(text)
}

// StripCodeFences removes a surrounding markdown code fence, which providers
// often add despite instructions not to.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		firstLine := strings.TrimSpace(trimmed[:newline])
		if len(firstLine) <= 10 && !strings.ContainsAny(firstLine, "{}[]") {
			trimmed = trimmed[newline+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
