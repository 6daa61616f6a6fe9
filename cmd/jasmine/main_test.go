package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jasmine-lang/jasmine/core/diag"
)

// runCLI runs the command line with stdin and returns exit code and outputs
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestParseTree(t *testing.T) {
	code, out, errOut := runCLI(t, "total = sum [1.0,2.0]*3", "parse")
	require.Equal(t, ExitSuccess, code, errOut)

	for _, want := range []string{"Assign total", "Id sum", "Op *", "J series [1.0, 2.0]", "J i64 3"} {
		assert.Contains(t, out, want)
	}
}

func TestParseYAML(t *testing.T) {
	code, out, errOut := runCLI(t, "x = 1; from t select {a}", "parse", "--format", "yaml")
	require.Equal(t, ExitSuccess, code, errOut)

	var docs []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "Assign", docs[0]["type"])
	assert.Equal(t, "x", docs[0]["name"])
	assert.Equal(t, "Sql", docs[1]["type"])
	assert.Equal(t, "select", docs[1]["op"])
}

func TestParseReportsDiagnostic(t *testing.T) {
	code, out, errOut := runCLI(t, "x = [1, 2.5]", "parse")
	assert.Equal(t, ExitParseError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "construction error\n")
	assert.Contains(t, errOut, "--> -:1:9\n\nx = [1, 2.5]\n        ^\n\n= Not a valid i64, 2.5")
}

func TestParseMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jm", "a = 1")
	b := writeFile(t, dir, "b.jm", "b = 2")

	code, out, errOut := runCLI(t, "", "parse", a, b)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "== "+a+" ==")
	assert.Contains(t, out, "== "+b+" ==")
	assert.Less(t, strings.Index(out, "Assign a"), strings.Index(out, "Assign b"))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.jm", "a = 1;\nb = a + 1")
	bad := writeFile(t, dir, "bad.jm", "from t fitler {a}")

	code, out, errOut := runCLI(t, "", "check", good, bad)
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, out, "ok "+good+" (2 statements)")
	assert.NotContains(t, out, bad)
	assert.Contains(t, errOut, "syntax error")
	assert.Contains(t, errOut, bad+":1:8")
	assert.Contains(t, errOut, `(did you mean "filter"?)`)
	assert.Contains(t, errOut, "1 of 2 files failed")

	code, _, _ = runCLI(t, "", "check", good)
	assert.Equal(t, ExitSuccess, code)
}

func TestTrace(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.jm", "a = 1;\nb = c")

	code, out, errOut := runCLI(t, "", "trace", path, "11", "'c'", "is", "not", "defined")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "--> "+path+":2:5\n\nb = c\n    ^\n\n= 'c' is not defined\n", out)

	code, _, errOut = runCLI(t, "", "trace", path, "x", "msg")
	assert.Equal(t, ExitInvalidArguments, code)
	assert.Contains(t, errOut, "invalid offset 'x'")
	assert.Contains(t, errOut, "Hint: ")

	code, _, errOut = runCLI(t, "", "trace", path, "99", "msg")
	assert.Equal(t, ExitInvalidArguments, code)
	assert.Contains(t, errOut, "out of range")
}

func TestMissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, "", "parse", filepath.Join(t.TempDir(), "nope.jm"))
	assert.Equal(t, ExitIOError, code)
	assert.Contains(t, errOut, "cannot read source: reading ")
}

func TestUnsupportedFormat(t *testing.T) {
	code, _, errOut := runCLI(t, "x", "parse", "--format", "xml")
	assert.Equal(t, ExitInvalidArguments, code)
	assert.Contains(t, errOut, "unsupported format 'xml'")
	assert.Contains(t, errOut, "use tree or yaml")
}

func TestEnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("JASMINE_FORMAT", "yaml")

	code, out, errOut := runCLI(t, "x = 1", "parse")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, out, "type: Assign")

	// an explicit flag still wins
	code, out, _ = runCLI(t, "x = 1", "parse", "--format", "tree")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Assign x")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "jasmine.yaml", "format: yaml\nmax-depth: 2\n")

	code, _, errOut := runCLI(t, "((1))", "parse", "--config", cfg)
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, errOut, "depth error")
	assert.Contains(t, errOut, "exceeded maximum nesting depth of 2")

	code, _, errOut = runCLI(t, "", "parse", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, ExitIOError, code)
	assert.Contains(t, errOut, "cannot load config")
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "x = 1", "parse", "--log-level", "debug", "--log-format", "json")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Contains(t, errOut, `"msg":"parsed unit"`)
	assert.Contains(t, errOut, `"path":"-"`)

	code, _, errOut = runCLI(t, "x = 1", "parse", "--log-level", "loud")
	assert.Equal(t, ExitInvalidArguments, code)
	assert.Contains(t, errOut, "invalid --log-level")
}

func TestWatchCannotUseStdin(t *testing.T) {
	code, _, errOut := runCLI(t, "x = 1", "parse", "--watch")
	assert.Equal(t, ExitInvalidArguments, code)
	assert.Contains(t, errOut, "cannot watch stdin")
}

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "live.jm", "x = 1")
	writeFile(t, dir, "other.jm", "y = 1")

	fw, err := newFileWatcher([]string{path}, zap.NewNop())
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func(p string) { changed <- p })
	}()

	writeFile(t, dir, "other.jm", "y = 2")
	writeFile(t, dir, "live.jm", "x = 2")

	select {
	case p := <-changed:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitParseError, exitCode(errParseFailed))
	assert.Equal(t, ExitIOError, exitCode(&CLIError{Type: "io", Message: "x"}))
	assert.Equal(t, ExitInvalidArguments, exitCode(&CLIError{Type: "usage", Message: "x"}))
	assert.Equal(t, ExitParseError, exitCode(diag.Syntaxf(diag.Span{}, "x")))
	assert.Equal(t, ExitInvalidArguments, exitCode(assert.AnError))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "ok", Colorize("ok", ColorGreen, false))
	assert.Equal(t, ColorGreen+"ok"+ColorReset, Colorize("ok", ColorGreen, true))
	assert.False(t, ShouldUseColor(false, &bytes.Buffer{}))
	assert.False(t, ShouldUseColor(true, os.Stdout))
}
