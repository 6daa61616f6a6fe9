package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jasmine-lang/jasmine/core/ast"
	"github.com/jasmine-lang/jasmine/internal/logging"
)

func newParseCommand(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Print the syntax tree of each file (stdin when none or '-')",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := inputPaths(args)
			log := logging.FromContext(cmd.Context())

			failed := false
			for _, path := range paths {
				if err := a.parseFile(path, log, len(paths) > 1); err != nil {
					if !isReported(err) {
						return err
					}
					failed = true
				}
			}

			if watch {
				for _, path := range paths {
					if path == stdinPath {
						return &CLIError{Type: "usage", Message: "cannot watch stdin", Hint: "name the files to watch"}
					}
				}
				fw, err := newFileWatcher(paths, log)
				if err != nil {
					return err
				}
				defer fw.Close()
				return fw.Run(cmd.Context(), func(path string) {
					log.Info("source changed", zap.String("path", path))
					if err := a.parseFile(path, log, true); err != nil && !isReported(err) {
						FormatError(a.errOut, err, a.sources, a.useColor())
					}
				})
			}

			if failed {
				return errParseFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-parse files whenever they change")
	return cmd
}

// parseFile parses one file and prints its tree, or its diagnostic. A
// diagnostic is reported here and returned as errParseFailed.
func (a *app) parseFile(path string, log *zap.Logger, header bool) error {
	text, err := readSource(path, a.in)
	if err != nil {
		return err
	}

	id, nodes, err := a.sources.Parse(path, text, a.parserOpts(log)...)
	if err != nil {
		FormatError(a.errOut, err, a.sources, a.useColor())
		return errParseFailed
	}
	log.Debug("parsed file", zap.String("path", path), zap.Int("source_id", id), zap.Int("statements", len(nodes)))

	if header {
		_, _ = fmt.Fprintf(a.out, "== %s ==\n", path)
	}
	out, err := render(a.cfg.format, nodes)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(a.out, out)
	return nil
}

// render encodes nodes in format
func render(format string, nodes []ast.Node) (string, error) {
	if format == "yaml" {
		maps := make([]map[string]any, len(nodes))
		for i, n := range nodes {
			maps[i] = ast.ToMap(n)
		}
		b, err := yaml.Marshal(maps)
		if err != nil {
			return "", &CLIError{Type: "usage", Message: "cannot encode yaml", Err: err}
		}
		return string(b), nil
	}
	return ast.Tree(nodes), nil
}

func isReported(err error) bool {
	return err == errParseFailed
}
