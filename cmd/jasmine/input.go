package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// stdinPath names standard input in argument lists and diagnostics
const stdinPath = "-"

// readSource returns the text of path, or of in when path is "-"
func readSource(path string, in io.Reader) (string, error) {
	if path == stdinPath {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", &CLIError{Type: "io", Message: "cannot read source", Err: errors.Wrap(err, "reading stdin")}
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", &CLIError{Type: "io", Message: "cannot read source", Err: errors.Wrapf(err, "reading %s", path)}
	}
	return string(b), nil
}

// inputPaths defaults to standard input when no file is named
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{stdinPath}
	}
	return args
}
