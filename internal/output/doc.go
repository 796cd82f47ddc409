// Package output provides structured output and error handling for the
// fnsort CLI.
//
// The Printer is the single interface for command output. It switches
// between JSON and human-readable modes based on the --json flag, and
// styles human output with lipgloss when writing to a terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Sorted 3 footnotes"})
//	printer.Error(err)
//
// Errors carry exit codes via ExitError:
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: user error (bad flags, missing footnote definition)
//	output.ExitSystemError // 2: system error (I/O failure)
//
// Use the constructors NewUserError and NewSystemError so the process exit
// code and the JSON error payload stay in agreement.
package output
