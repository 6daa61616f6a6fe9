package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTraceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace file offset message...",
		Short: "Render a message against the line of file containing a byte offset",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return &CLIError{Type: "usage", Message: fmt.Sprintf("invalid offset '%s'", args[1]), Hint: "offset is a byte count from the start of the file"}
			}

			text, err := readSource(args[0], a.in)
			if err != nil {
				return err
			}

			id := a.sources.Add(args[0], text)
			out, err := a.sources.Trace(id, offset, strings.Join(args[2:], " "))
			if err != nil {
				return &CLIError{Type: "usage", Message: "cannot trace", Err: err}
			}
			_, _ = fmt.Fprintln(a.out, out)
			return nil
		},
	}
}
