// Package mcp provides a Model Context Protocol server for fnsort.
// It exposes the footnote transforms as MCP tools so agents can tidy
// documents without shelling out.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mjbear/markdown-footnote-sorter/internal/footnote"
)

// NewServer creates an MCP server with the fnsort tools registered.
func NewServer(version string, dialect footnote.Dialect) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "fnsort",
		Version: version,
	}, nil)
	registerTools(server, dialect)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// transformAnnotations returns annotations for the fnsort tools: they
// transform the text they are given and touch nothing else.
func transformAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds the fnsort tools to the server.
func registerTools(server *mcp.Server, dialect footnote.Dialect) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "sort",
		Description: "Renumber and relocate Markdown footnotes. Definitions move to the end " +
			"of the document in first-reference order; markers are renumbered sequentially " +
			"unless keepnames is set.",
		Annotations: transformAnnotations(),
	}, handleSort(dialect))

	mcp.AddTool(server, &mcp.Tool{
		Name: "check",
		Description: "Inspect Markdown footnotes without modifying the document: reference " +
			"order, missing definitions, unused definitions, duplicate definitions, and " +
			"adjacent marker pairs.",
		Annotations: transformAnnotations(),
	}, handleCheck(dialect))
}
