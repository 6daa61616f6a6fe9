package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/runtime/source"
)

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Type    string // "usage", "io", "parse"
	Message string
	Hint    string // How to fix it
	Err     error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *CLIError) Unwrap() error { return e.Err }

// errParseFailed is returned once every diagnostic has been printed
var errParseFailed = &CLIError{Type: "parse", Message: "parse failed"}

// exitCode maps an error returned by a command to the process exit code
func exitCode(err error) int {
	var ce *CLIError
	if errors.As(err, &ce) {
		switch ce.Type {
		case "io":
			return ExitIOError
		case "parse":
			return ExitParseError
		}
		return ExitInvalidArguments
	}
	if diag.IsParse(err) {
		return ExitParseError
	}
	return ExitInvalidArguments
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, sources *source.Registry, useColor bool) {
	if err == nil {
		return
	}

	var de *diag.Error
	var ce *CLIError
	switch {
	case errors.As(err, &de):
		formatDiagnostic(w, de, sources, useColor)
	case errors.As(err, &ce):
		formatCLIError(w, ce, useColor)
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
	}
}

// formatDiagnostic prints the kind header and the caret trace into the
// unit the error came from
func formatDiagnostic(w io.Writer, err *diag.Error, sources *source.Registry, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s\n", Colorize(err.Kind.String(), ColorRed, useColor))
	_, _ = fmt.Fprintf(w, "%s\n", sources.Render(err))
}

// formatCLIError formats CLI errors
func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), err.Hint)
	}
}
