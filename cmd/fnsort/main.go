// Package main provides the entry point for the fnsort CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mjbear/markdown-footnote-sorter/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the fnsort CLI.
func newRootCmd() *cobra.Command {
	var adjacentFlag bool
	var keepNamesFlag bool

	cmd := &cobra.Command{
		Use:   "fnsort [file]",
		Short: "Tidy Markdown footnotes",
		Long: `fnsort - Renumber and relocate Markdown footnotes.

Footnote definitions move to the end of the document and are numbered in
the order their references first appear in the text. Every inline marker
is rewritten to match. Pass - (or no file) to read from stdin and write
to stdout; a file argument is rewritten in place.

Do not place footnote references at the start of a line. Such markers
are never scanned, and your footnotes will be eaten by a grue.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args, adjacentFlag, keepNamesFlag)
		},
	}

	cmd.Flags().BoolVar(&adjacentFlag, "adjacent", false, "Fix adjacent footnotes by adding a space between them")
	cmd.Flags().BoolVar(&keepNamesFlag, "keepnames", false, "Keep footnote names instead of replacing them with numbers")

	// Persistent --json flag (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
