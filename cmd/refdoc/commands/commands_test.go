package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/testutil"
)

const classPage = `<html><body>
<div class="header"><h2 title="Class Driver" class="title">Class Driver</h2></div>
<div class="contentContainer"><div class="description"><ul class="blockList"><li class="blockList">
<pre>public class <span class="typeNameLabel">Driver</span></pre>
<div class="block">Connects to a server.</div>
</li></ul></div></div>
</body></html>`

func newInput(t *testing.T) string {
	t.Helper()
	return testutil.WriteTree(t, "javadoc", map[string]string{
		"api/com/example/Driver.html": classPage,
	})
}

func parse(t *testing.T, args ...string) (*kong.Context, *CLI) {
	t.Helper()
	t.Setenv("REFDOC_LOG_LEVEL", "")
	t.Setenv("REFDOC_LOG_FORMAT", "")
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"formats": "asciidoc"}, kong.Exit(func(int) {}))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return kctx, cli
}

func TestJavadocCommand(t *testing.T) {
	input := newInput(t)
	output := filepath.Join(t.TempDir(), "out")
	textfile := filepath.Join(t.TempDir(), "refdoc.prom")

	kctx, cli := parse(t, "--metrics-textfile", textfile, "javadoc", input, output)
	require.Equal(t, "javadoc <input> <output>", kctx.Command())
	require.NoError(t, kctx.Run(NewGlobal(cli), cli))

	testutil.NewFileAssertions(t, output).AssertFileContains("Driver.adoc", "= Driver\n")

	metrics, err := os.ReadFile(textfile)
	require.NoError(t, err)
	require.Contains(t, string(metrics), `refdoc_runs_total{outcome="success"} 1`)
}

func TestJavadocCommand_CommentFormat(t *testing.T) {
	input := newInput(t)
	output := filepath.Join(t.TempDir(), "out")

	kctx, cli := parse(t, "javadoc", "--format", "java_comment", input, output)
	require.NoError(t, kctx.Run(NewGlobal(cli), cli))

	testutil.NewFileAssertions(t, output).
		AssertFiles("Driver.txt").
		AssertFileEquals("Driver.txt", "Driver\n\n/**\n * Connects to a server.\n */\n\n")
}

func TestJavadocCommand_InvalidFormat(t *testing.T) {
	kctx, cli := parse(t, "javadoc", "--format", "html", newInput(t), filepath.Join(t.TempDir(), "out"))

	err := kctx.Run(NewGlobal(cli), cli)
	require.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestJavadocCommand_FailureStillWritesMetrics(t *testing.T) {
	input := newInput(t)
	output := t.TempDir()
	textfile := filepath.Join(t.TempDir(), "refdoc.prom")

	kctx, cli := parse(t, "--metrics-textfile", textfile, "javadoc", input, output)
	err := kctx.Run(NewGlobal(cli), cli)
	require.True(t, errors.HasCategory(err, errors.CategoryAlreadyExists))

	metrics, err := os.ReadFile(textfile)
	require.NoError(t, err)
	require.Contains(t, string(metrics), `refdoc_runs_total{outcome="failed"} 1`)
}

func TestConfigFileAppliesFilters(t *testing.T) {
	input := newInput(t)
	output := filepath.Join(t.TempDir(), "out")
	cfgPath := filepath.Join(t.TempDir(), "refdoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("javadoc:\n  include: [\"/nothing-here/\"]\n"), 0o600))

	kctx, cli := parse(t, "--config", cfgPath, "javadoc", input, output)
	require.NoError(t, kctx.Run(NewGlobal(cli), cli))

	testutil.NewFileAssertions(t, output).AssertFiles()
}
