// Package main provides the entry point for the fnsort CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mjbear/markdown-footnote-sorter/internal/config"
	"github.com/mjbear/markdown-footnote-sorter/internal/footnote"
	"github.com/mjbear/markdown-footnote-sorter/internal/output"
)

// runSort executes the root command: read, transform, write back.
func runSort(cmd *cobra.Command, args []string, adjacent, keepNames bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	adjacent, keepNames = applyConfigDefaults(cmd, printer, adjacent, keepNames)

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	if path == "-" {
		return sortStdin(cmd, printer, adjacent, keepNames)
	}
	return sortFile(printer, path, adjacent, keepNames)
}

// applyConfigDefaults fills in flag values from config.yaml for flags the
// user did not set explicitly. A broken config file is reported as a
// warning and otherwise ignored.
func applyConfigDefaults(cmd *cobra.Command, printer *output.Printer, adjacent, keepNames bool) (bool, bool) {
	settings, err := config.Load()
	if err != nil {
		printer.Warn("ignoring config: %v", err)
		return adjacent, keepNames
	}
	if !cmd.Flags().Changed("adjacent") {
		adjacent = settings.Adjacent
	}
	if !cmd.Flags().Changed("keepnames") {
		keepNames = settings.KeepNames
	}
	return adjacent, keepNames
}

// transform runs the pipeline over one in-memory document.
func transform(text string, adjacent, keepNames bool) (footnote.Result, error) {
	dialect := footnote.Default()
	if adjacent {
		text = dialect.SpaceAdjacent(text)
	}
	return dialect.Sort(text, keepNames)
}

// sortStdin reads the whole document from stdin and writes the transformed
// document to stdout.
func sortStdin(cmd *cobra.Command, printer *output.Printer, adjacent, keepNames bool) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("reading stdin: %v", err), err)
		printer.Error(sysErr)
		return sysErr
	}

	res, err := transform(string(data), adjacent, keepNames)
	if err != nil {
		return reportSortError(printer, err)
	}

	printer.Print("%s", res.Text)
	return nil
}

// sortFile rewrites path in place. The file stays untouched unless the
// transform succeeded: the handle is opened read-write, but seek, write,
// and truncate only happen after a full successful pass.
func sortFile(printer *output.Printer, path string, adjacent, keepNames bool) error {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("opening %s: %v", path, err), err)
		printer.Error(sysErr)
		return sysErr
	}
	defer file.Close() //nolint:errcheck // contents are flushed by the explicit write below

	data, err := io.ReadAll(file)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("reading %s: %v", path, err), err)
		printer.Error(sysErr)
		return sysErr
	}

	res, err := transform(string(data), adjacent, keepNames)
	if err != nil {
		return reportSortError(printer, err)
	}

	if err := writeBack(file, res.Text); err != nil {
		sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("writing %s: %v", path, err), err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message":   fmt.Sprintf("Sorted %d footnotes in %s", len(res.Order), path),
		"file":      path,
		"footnotes": len(res.Order),
	})
}

// writeBack overwrites the open file with text and truncates any leftover
// tail from the previous contents.
func writeBack(file *os.File, text string) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := file.WriteString(text); err != nil {
		return err
	}
	return file.Truncate(int64(len(text)))
}

// reportSortError maps transform failures onto exit-coded errors. The
// missing-footnote case is a user error; anything else is a system error.
func reportSortError(printer *output.Printer, err error) error {
	var missing *footnote.MissingFootnoteError
	if errors.As(err, &missing) {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("sorting footnotes: %v", err), err)
	printer.Error(sysErr)
	return sysErr
}
