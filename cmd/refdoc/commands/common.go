package commands

import (
	"log/slog"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/refdoc/internal/config"
	"git.home.luguber.info/inful/refdoc/internal/metrics"
)

// Global holds state shared by subcommands once flags are parsed.
type Global struct {
	Config   *config.Config
	Recorder metrics.Recorder

	registry *prom.Registry
	textfile string
}

// CLI definition & global flags.
type CLI struct {
	Config          string `short:"c" help:"Configuration file path (optional)" type:"path"`
	Verbose         bool   `short:"v" help:"Enable verbose logging"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write Prometheus metrics in textfile format after the run" type:"path"`

	Javadoc    JavadocCmd `cmd:"" help:"Convert Javadoc (JDK 11 layout) pages"`
	TypeDoc    TypeDocCmd `cmd:"" name:"typedoc" help:"Convert TypeDoc pages"`
	VersionCmd VersionCmd `cmd:"" name:"version" help:"Print version information"`

	cfg *config.Config
}

// AfterApply runs after flag parsing; loads configuration and sets up logging once.
func (c *CLI) AfterApply() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	slog.SetDefault(cfg.Logging.NewLogger(os.Stderr))
	c.cfg = cfg
	return nil
}

// NewGlobal builds the shared state for the parsed command line.
func NewGlobal(c *CLI) *Global {
	cfg := c.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Global{Config: cfg, Recorder: metrics.NoopRecorder{}, textfile: c.MetricsTextfile}
	if c.MetricsTextfile != "" {
		g.registry = prom.NewRegistry()
		g.Recorder = metrics.NewPrometheusRecorder(g.registry)
	}
	return g
}

// FlushMetrics writes the metrics textfile when one was requested.
func (g *Global) FlushMetrics() error {
	if g.textfile == "" || g.registry == nil {
		return nil
	}
	return metrics.WriteTextfile(g.textfile, g.registry)
}
