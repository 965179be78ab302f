package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/refdoc/cmd/refdoc/commands"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/render"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("refdoc"),
		kong.Description("Convert generated API reference HTML into AsciiDoc pages or documentation comments."),
		kong.UsageOnError(),
		kong.Vars{"formats": strings.Join(render.FormatNames(), ", ")},
	)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
		}
		parser.FatalIfErrorf(err)
	}

	err = kctx.Run(commands.NewGlobal(cli), cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
