package main

import (
	"context"
	"errors"
	"io"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jasmine-lang/jasmine/internal/logging"
	"github.com/jasmine-lang/jasmine/runtime/parser"
	"github.com/jasmine-lang/jasmine/runtime/source"
	"github.com/jasmine-lang/jasmine/runtime/syntax"
)

// config holds the resolved global options
type config struct {
	format     string
	maxDepth   int
	logLevel   string
	logFormat  string
	noColor    bool
	configFile string
}

// app is the state shared by every command of one invocation
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	v       *viper.Viper
	opts    []opt
	cfg     config
	sources *source.Registry
	log     *zap.Logger
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:      in,
		out:     out,
		errOut:  errOut,
		v:       newViper(),
		sources: source.NewRegistry(),
		log:     zap.NewNop(),
	}

	root := &cobra.Command{
		Use:               "jasmine",
		Short:             "Parse Jasmine source and inspect its syntax tree",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	a.opts = []opt{
		newOpt(&a.cfg.format, "format", "tree", "Output format: tree or yaml"),
		newOpt(&a.cfg.maxDepth, "max-depth", syntax.DefaultMaxDepth, "Maximum expression nesting depth"),
		newOpt(&a.cfg.logLevel, "log-level", "warn", "Log level: debug, info, warn or error"),
		newOpt(&a.cfg.logFormat, "log-format", "auto", "Log format: auto, console, logfmt or json"),
		newOpt(&a.cfg.noColor, "no-color", false, "Disable colored output"),
		newOpt(&a.cfg.configFile, "config", "", "Path to a jasmine.yaml or jasmine.toml config file"),
	}
	bindOptions(a.v, root.PersistentFlags(), a.opts)

	root.AddCommand(
		newParseCommand(a),
		newCheckCommand(a),
		newTraceCommand(a),
	)
	return root
}

// setup resolves options from flags, environment and config file, then
// builds the logger every command uses
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	loadOptions(a.v, a.opts)
	if a.cfg.configFile != "" {
		a.v.SetConfigFile(a.cfg.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return &CLIError{
				Type:    "io",
				Message: "cannot load config",
				Err:     pkgerrors.Wrapf(err, "reading %s", a.cfg.configFile),
			}
		}
		loadOptions(a.v, a.opts)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(a.cfg.logLevel)); err != nil {
		return &CLIError{Type: "usage", Message: "invalid --log-level", Err: err}
	}
	log, err := logging.New(a.errOut, logging.Config{Format: a.cfg.logFormat, Level: level})
	if err != nil {
		return &CLIError{Type: "usage", Message: "invalid --log-format", Err: err}
	}
	a.log = log

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, log))

	switch a.cfg.format {
	case "tree", "yaml":
	default:
		return &CLIError{Type: "usage", Message: "unsupported format '" + a.cfg.format + "'", Hint: "use tree or yaml"}
	}
	return nil
}

// parserOpts returns the parser options for the resolved config
func (a *app) parserOpts(log *zap.Logger) []parser.ParserOpt {
	return []parser.ParserOpt{
		parser.WithMaxDepth(a.cfg.maxDepth),
		parser.WithLogger(log),
	}
}

func (a *app) useColor() bool {
	return ShouldUseColor(a.cfg.noColor, a.errOut)
}

// run executes the command line args and returns the process exit code.
// Errors already reported by a command are not printed twice.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCommand(in, out, errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}
	if !errors.Is(err, errParseFailed) {
		FormatError(errOut, err, source.NewRegistry(), ShouldUseColor(false, errOut))
	}
	return exitCode(err)
}
