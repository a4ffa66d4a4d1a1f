// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the scholarly MCP server. It exposes the arXiv and
// Semantic Scholar tools over stdio so any MCP-capable chat host can
// call them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdiddy/scholarly/internal/arxiv"
	"github.com/pdiddy/scholarly/internal/progress"
	"github.com/pdiddy/scholarly/internal/semanticscholar"
	"github.com/pdiddy/scholarly/internal/tools"
	"github.com/pdiddy/scholarly/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadConfig reads the valves file named by SCHOLARLY_VALVES, falling
// back to the defaults when the variable is unset.
func loadConfig() (types.ToolConfig, error) {
	path := os.Getenv("SCHOLARLY_VALVES")
	if path == "" {
		return types.DefaultToolConfig(), nil
	}
	return types.LoadToolConfig(path)
}

// newServer registers every tool with a fresh MCP server.
func newServer(cfg types.ToolConfig) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{Name: "scholarly", Version: version}, nil)

	sink := progress.Writer(os.Stderr)
	list := tools.All(arxiv.New(cfg, sink), semanticscholar.New(cfg, sink))

	for _, tool := range list {
		schema, err := toSchema(tool.Parameters)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", tool.Name, err)
		}

		handler := tool.Handler
		server.AddTool(&mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := "{}"
			if len(req.Params.Arguments) > 0 {
				args = string(req.Params.Arguments)
			}
			out, err := handler(ctx, args)
			if err != nil {
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				}, nil
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: out}},
			}, nil
		})
	}
	return server, nil
}

// toSchema converts a JSON Schema map into the SDK's schema type.
func toSchema(params map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	schema := new(jsonschema.Schema)
	if err := json.Unmarshal(data, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	server, err := newServer(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Running MCP server...")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
