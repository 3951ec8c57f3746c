// Package mcp exposes the inference engine over the Model Context Protocol
// so LLM tools can classify intents and fill slots through stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/parlancehq/parlance/internal/nlu"
)

// Server is a MCP (Model Context Protocol) server.
// It communicates via JSON-RPC over stdio.
type Server struct {
	engine *nlu.Engine
}

// NewServer creates a new MCP server wrapping a loaded engine.
func NewServer(engine *nlu.Engine) *Server {
	return &Server{engine: engine}
}

// ParseInput represents the input schema for the parse tool.
type ParseInput struct {
	Text    string   `json:"text" jsonschema:"Utterance to parse (required)"`
	Intents []string `json:"intents,omitempty" jsonschema:"Intent allow-list (optional). Leave empty to classify against all intents in the model."`
}

// ExtractSlotInput represents the input schema for the extract_slot tool.
type ExtractSlotInput struct {
	Text     string `json:"text" jsonschema:"Utterance to extract from (required)"`
	Intent   string `json:"intent" jsonschema:"Intent name the utterance is assumed to express (required)"`
	SlotName string `json:"slot_name" jsonschema:"Name of the slot to extract (required)"`
}

// Start runs a spec-compliant MCP server over stdio using the official go-sdk.
func (s *Server) Start(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "parlance",
		Version: "1.0.0",
	}, nil)

	// Tool: parse
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "parse",
		Description: "Run intent classification and slot filling on an utterance. Returns the matched intent, its probability and the resolved slots, or a null intent when nothing matches.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ParseInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.engine.Parse(input.Text, input.Intents)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return textResult(result)
	})

	// Tool: extract_slot
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "extract_slot",
		Description: "Extract a single named slot from an utterance without running intent classification. The intent and slot name must exist in the model.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExtractSlotInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		slot, err := s.engine.ExtractSlot(input.Text, input.Intent, input.SlotName)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		if slot == nil {
			return nil, map[string]any{
				"content": []map[string]any{{"type": "text", "text": "null"}},
			}, nil
		}
		return textResult(slot)
	})

	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

// textResult wraps v as a single MCP text content block.
func textResult(v any) (*sdkmcp.CallToolResult, map[string]any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &sdkmcp.CallToolResult{IsError: true}, nil, fmt.Errorf("encode result: %w", err)
	}
	return nil, map[string]any{
		"content": []map[string]any{{"type": "text", "text": string(data)}},
	}, nil
}
