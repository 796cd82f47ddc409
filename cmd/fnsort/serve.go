// Package main provides the entry point for the fnsort CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mjbear/markdown-footnote-sorter/internal/footnote"
	fnsortmcp "github.com/mjbear/markdown-footnote-sorter/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run fnsort as a Model Context Protocol (MCP) server over stdio.

This exposes the footnote transforms as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "fnsort": {
        "command": "fnsort",
        "args": ["serve"]
      }
    }
  }

Available tools: sort, check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := fnsortmcp.NewServer(buildVersion(), footnote.Default())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
