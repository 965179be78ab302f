package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"git.home.luguber.info/inful/refdoc/internal/convert"
	"git.home.luguber.info/inful/refdoc/internal/extract"
	"git.home.luguber.info/inful/refdoc/internal/extract/javadoc"
	"git.home.luguber.info/inful/refdoc/internal/extract/typedoc"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/logfields"
	"git.home.luguber.info/inful/refdoc/internal/render"
)

// ConvertFlags are shared by the conversion commands.
type ConvertFlags struct {
	Input  string `arg:"" help:"Directory containing the generated HTML pages" type:"path"`
	Output string `arg:"" help:"Directory to create for the converted documents" type:"path"`
	Format string `short:"f" help:"Output format (${formats})" default:"asciidoc"`
}

// JavadocCmd implements the 'javadoc' command.
type JavadocCmd struct {
	ConvertFlags `embed:""`
}

func (c *JavadocCmd) Run(g *Global, _ *CLI) error {
	x := javadoc.New(g.Config.Javadoc.Apply(javadoc.DefaultFilter()))
	return c.run(g, x, os.Stdout)
}

// TypeDocCmd implements the 'typedoc' command.
type TypeDocCmd struct {
	ConvertFlags `embed:""`
}

func (c *TypeDocCmd) Run(g *Global, _ *CLI) error {
	x := typedoc.New(g.Config.TypeDoc.Apply(typedoc.DefaultFilter()))
	return c.run(g, x, os.Stdout)
}

func (f *ConvertFlags) run(g *Global, x extract.Extractor, out io.Writer) error {
	format, err := render.ParseFormat(f.Format)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "unsupported output format").
			WithContext("valid", strings.Join(render.FormatNames(), ",")).
			Build()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conv := convert.New(x, render.Target{Format: format, Language: x.Dialect().Language()}).
		WithRecorder(g.Recorder).
		WithExtension(g.Config.Output.Extension)
	report, runErr := conv.Run(ctx, f.Input, f.Output)

	if err := g.FlushMetrics(); err != nil {
		slog.Warn("Failed to write metrics textfile", logfields.Error(err))
	}
	if runErr != nil {
		return runErr
	}

	_, err = fmt.Fprintf(out, "Wrote %d documents to %s (%d pages read, %d without an entity)\n",
		len(report.Written), f.Output, report.Files, len(report.Skipped))
	return err
}
