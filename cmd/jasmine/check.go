package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jasmine-lang/jasmine/internal/logging"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Report diagnostics only; the exit code tells whether every file parses",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.FromContext(cmd.Context())
			useColor := a.useColor()

			failed := 0
			for _, path := range inputPaths(args) {
				text, err := readSource(path, a.in)
				if err != nil {
					return err
				}
				_, nodes, err := a.sources.Parse(path, text, a.parserOpts(log)...)
				if err != nil {
					FormatError(a.errOut, err, a.sources, useColor)
					failed++
					continue
				}
				_, _ = fmt.Fprintf(a.out, "%s %s (%d statements)\n", Colorize("ok", ColorGreen, useColor), path, len(nodes))
			}

			if failed > 0 {
				_, _ = fmt.Fprintf(a.errOut, "%d of %d files failed\n", failed, len(inputPaths(args)))
				return errParseFailed
			}
			return nil
		},
	}
}
