// Package main provides the entry point for the fnsort CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjbear/markdown-footnote-sorter/internal/footnote"
	"github.com/mjbear/markdown-footnote-sorter/internal/output"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Inspect footnotes without modifying the document",
		Long: `Inspect the footnote structure of a Markdown document.

Reports the reference count, the canonical label order, labels referenced
without a definition, definitions never referenced, labels defined more
than once, and marker pairs that --adjacent would separate. The document
is never modified.

Exits non-zero when any referenced label has no definition.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	text, err := readCheckInput(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	rep := footnote.Default().Check(text)

	if printer.IsJSON() {
		if err := printer.WriteJSON(rep); err != nil {
			return err
		}
	} else {
		printReport(printer, rep)
	}

	if len(rep.Missing) > 0 {
		err := output.NewUserError(fmt.Sprintf("missing footnote definitions: %s", strings.Join(rep.Missing, ", ")))
		printer.Error(err)
		return err
	}
	return nil
}

// readCheckInput reads the whole document from the file argument or stdin.
func readCheckInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", output.NewSystemErrorWithCause(fmt.Sprintf("reading %s: %v", args[0], err), err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("reading stdin: %v", err), err)
	}
	return string(data), nil
}

// printReport writes the human-readable report.
func printReport(printer *output.Printer, rep footnote.Report) {
	printer.Print("References: %d\n", rep.References)
	if len(rep.Order) > 0 {
		printer.Print("Order: %s\n", strings.Join(rep.Order, " "))
	}
	if rep.Adjacent > 0 {
		printer.Print("Adjacent pairs fixable with --adjacent: %d\n", rep.Adjacent)
	}
	if len(rep.Unused) > 0 {
		printer.Warn("unused definitions: %s", strings.Join(rep.Unused, ", "))
	}
	if len(rep.Duplicates) > 0 {
		printer.Warn("duplicate definitions (last one wins): %s", strings.Join(rep.Duplicates, ", "))
	}
}
