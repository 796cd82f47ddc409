package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mjbear/markdown-footnote-sorter/internal/footnote"
)

// --- Sort tool ---

// SortInput is the input for the sort tool.
type SortInput struct {
	Text      string `json:"text"                jsonschema:"the Markdown document to transform"`
	Adjacent  bool   `json:"adjacent,omitempty"  jsonschema:"insert a space between adjacent inline markers first"`
	KeepNames bool   `json:"keepnames,omitempty" jsonschema:"keep original labels instead of renumbering"`
}

// SortOutput is the output for the sort tool.
type SortOutput struct {
	Text      string   `json:"text"            jsonschema:"the transformed document"`
	Order     []string `json:"order,omitempty" jsonschema:"distinct labels in first-reference order"`
	Footnotes int      `json:"footnotes"       jsonschema:"number of distinct footnotes"`
}

func handleSort(dialect footnote.Dialect) mcp.ToolHandlerFor[SortInput, SortOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SortInput) (*mcp.CallToolResult, SortOutput, error) {
		text := input.Text
		if input.Adjacent {
			text = dialect.SpaceAdjacent(text)
		}

		res, err := dialect.Sort(text, input.KeepNames)
		if err != nil {
			return nil, SortOutput{}, err
		}

		return nil, SortOutput{
			Text:      res.Text,
			Order:     res.Order,
			Footnotes: len(res.Order),
		}, nil
	}
}

// --- Check tool ---

// CheckInput is the input for the check tool.
type CheckInput struct {
	Text string `json:"text" jsonschema:"the Markdown document to inspect"`
}

// CheckOutput is the output for the check tool.
type CheckOutput struct {
	References int      `json:"references"           jsonschema:"total inline markers in the document"`
	Order      []string `json:"order,omitempty"      jsonschema:"distinct labels in first-reference order"`
	Missing    []string `json:"missing,omitempty"    jsonschema:"labels referenced without a definition"`
	Unused     []string `json:"unused,omitempty"     jsonschema:"labels defined but never referenced"`
	Duplicates []string `json:"duplicates,omitempty" jsonschema:"labels defined more than once"`
	Adjacent   int      `json:"adjacent"             jsonschema:"marker pairs the adjacency fixer would separate"`
}

func handleCheck(dialect footnote.Dialect) mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		rep := dialect.Check(input.Text)
		return nil, CheckOutput{
			References: rep.References,
			Order:      rep.Order,
			Missing:    rep.Missing,
			Unused:     rep.Unused,
			Duplicates: rep.Duplicates,
			Adjacent:   rep.Adjacent,
		}, nil
	}
}
