package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parlancehq/parlance/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based tools can classify intents and extract slots through stdio.

Tools provided by MCP server:
- parse: Run intent classification and slot filling on an utterance
- extract_slot: Extract a single named slot without classification

Communicates via stdio for integration with MCP clients.`,
	Example: `  parlance mcp --model ./assistant
  parlance mcp --model ./assistant.zip`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		server := mcp.NewServer(engine)
		return server.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
