// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools exposes the arXiv and Semantic Scholar clients as named,
// JSON-argument tools ready for registration with an LLM chat host. Each
// Tool carries its schema together with the handler invoked when the host
// calls it.
package tools

import (
	"context"
	"encoding/json"

	"github.com/pdiddy/scholarly/internal/arxiv"
	"github.com/pdiddy/scholarly/internal/semanticscholar"
	"github.com/pdiddy/scholarly/pkg/types"
)

// Tool is a single host-callable operation.
type Tool struct {
	// Name is the tool's host-facing identifier.
	Name string

	// Description tells the model when to call the tool.
	Description string

	// Parameters is the JSON Schema of the tool's arguments.
	Parameters map[string]any

	// Handler executes the tool with JSON-encoded args and returns a
	// JSON-encoded result string on success. Implementations are safe
	// for concurrent use and respect context cancellation.
	Handler func(ctx context.Context, args string) (string, error)
}

// All returns every tool backed by the two clients.
func All(ax *arxiv.Client, s2 *semanticscholar.Client) []Tool {
	result := Arxiv(ax)
	return append(result, SemanticScholar(s2)...)
}

// Find returns the named tool, or false when no tool has that name.
func Find(list []Tool, name string) (Tool, bool) {
	for _, t := range list {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// decodeArgs unmarshals the handler's JSON args into v. A parse failure
// is the caller's fault, not the upstream API's.
func decodeArgs(args string, v any) error {
	if args == "" {
		args = "{}"
	}
	if err := json.Unmarshal([]byte(args), v); err != nil {
		return types.ErrInvalidParameter.Withf("malformed arguments: %v", err)
	}
	return nil
}

// encodeResult marshals the handler's result value to a JSON string.
func encodeResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", types.ErrRequestFailed.Withf("encoding result: %v", err)
	}
	return string(data), nil
}
