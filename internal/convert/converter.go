// Package convert drives one conversion run: discover pages, extract entities
// into a registry, then render every entity to its own file.
package convert

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"git.home.luguber.info/inful/refdoc/internal/apidoc"
	"git.home.luguber.info/inful/refdoc/internal/discovery"
	derrors "git.home.luguber.info/inful/refdoc/internal/discovery/errors"
	"git.home.luguber.info/inful/refdoc/internal/extract"
	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/refdoc/internal/logfields"
	"git.home.luguber.info/inful/refdoc/internal/metrics"
	"git.home.luguber.info/inful/refdoc/internal/render"
)

// Report summarizes a successful run.
type Report struct {
	Files    int      // pages accepted by the path filter
	Skipped  []string // pages without an entity marker
	Entities int      // distinct entities after merging
	Written  []string // output files, in write order
}

// Converter converts the pages of one dialect to one output format.
type Converter struct {
	extractor extract.Extractor
	target    render.Target
	extension string
	recorder  metrics.Recorder
}

// New returns a converter that renders entities found by x for target.
func New(x extract.Extractor, target render.Target) *Converter {
	return &Converter{
		extractor: x,
		target:    target,
		extension: target.Format.Extension(),
		recorder:  metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder.
func (c *Converter) WithRecorder(r metrics.Recorder) *Converter {
	if r != nil {
		c.recorder = r
	}
	return c
}

// WithExtension overrides the output file extension. Empty keeps the format's default.
func (c *Converter) WithExtension(ext string) *Converter {
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		c.extension = ext
	}
	return c
}

// Run converts inputDir into outputDir, which must not exist yet.
//
// The run stops at the first page missing a required element or
// contradicting itself; nothing is written in that case. Documents are
// written only after every page was read, so merged entities are complete.
func (c *Converter) Run(ctx context.Context, inputDir, outputDir string) (report Report, err error) {
	start := time.Now()
	dialect := string(c.extractor.Dialect())
	defer func() {
		c.recorder.ObserveRunDuration(time.Since(start))
		switch {
		case err == nil:
			c.recorder.IncRunOutcome(metrics.OutcomeSuccess)
		case errors.HasCategory(err, errors.CategoryCanceled):
			c.recorder.IncRunOutcome(metrics.OutcomeCanceled)
		default:
			c.recorder.IncRunOutcome(metrics.OutcomeFailed)
		}
	}()

	slog.Info("Starting conversion",
		logfields.Dialect(dialect),
		logfields.Format(string(c.target.Format)),
		logfields.Path(inputDir),
		slog.String("output", outputDir))

	if err := createOutputDir(outputDir); err != nil {
		return Report{}, err
	}

	files, err := discovery.Discover(inputDir, c.extractor.Accept)
	if err != nil {
		return Report{}, classifyDiscovery(err, inputDir)
	}
	report.Files = len(files)

	registry := apidoc.NewRegistry()
	for i := range files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Report{}, errors.WrapError(fmt.Errorf("%w: %w", ErrCanceled, ctxErr), errors.CategoryCanceled, "conversion canceled").
				WithContext("processed", i).
				Build()
		}

		fileStart := time.Now()
		next, skipped, err := c.processFile(registry, &files[i])
		c.recorder.ObserveFileDuration(dialect, time.Since(fileStart))
		switch {
		case err != nil:
			c.recorder.IncFileResult(dialect, metrics.ResultFailed)
			return Report{}, err
		case skipped:
			c.recorder.IncFileResult(dialect, metrics.ResultSkipped)
			report.Skipped = append(report.Skipped, files[i].RelativePath)
		default:
			c.recorder.IncFileResult(dialect, metrics.ResultConverted)
		}
		registry = next
	}

	report.Entities = registry.Len()
	written, err := c.writeAll(registry, outputDir)
	report.Written = written
	if err != nil {
		return report, err
	}

	slog.Info("Conversion complete",
		logfields.Dialect(dialect),
		slog.Int("files", report.Files),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("entities", report.Entities),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return report, nil
}

// processFile extracts the entity documented by one page and adds it to reg.
func (c *Converter) processFile(reg apidoc.Registry, sf *discovery.SourceFile) (apidoc.Registry, bool, error) {
	if err := sf.LoadContent(); err != nil {
		return reg, false, errors.FileSystemError("read source file").
			WithCause(err).
			WithContext("path", sf.Path).
			Build()
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(sf.Content))
	if err != nil {
		return reg, false, errors.WrapError(fmt.Errorf("%w: %w", ErrParseFailed, err), errors.CategoryExtraction, "parse page").
			WithContext("path", sf.Path).
			Build()
	}
	// The parsed tree is all extraction needs.
	sf.Content = nil

	kind, ok := c.extractor.Detect(doc)
	if !ok {
		slog.Debug("No entity on page", logfields.Path(sf.RelativePath))
		return reg, true, nil
	}

	res := c.extractor.Extract(doc, kind)
	if res.IsErr() {
		return reg, false, res.UnwrapErr().WithContext("path", sf.Path)
	}
	entity := res.Unwrap()
	if err := entity.Validate(); err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return reg, false, ce.WithContext("path", sf.Path)
		}
		return reg, false, err
	}

	next, outcome := reg.Add(entity, c.extractor.Policy())
	switch outcome {
	case apidoc.Replaced:
		slog.Warn("Entity documented again, keeping the later page",
			logfields.Entity(entity.Name),
			logfields.Path(sf.RelativePath))
	default:
		slog.Debug("Entity extracted",
			logfields.Entity(entity.Name),
			logfields.Kind(string(entity.Kind)),
			logfields.Path(sf.RelativePath),
			slog.String("outcome", outcome.String()))
	}
	return next, false, nil
}

// writeAll renders every registered entity in first-seen order.
func (c *Converter) writeAll(reg apidoc.Registry, outputDir string) ([]string, error) {
	var written []string
	format := string(c.target.Format)
	for _, entity := range reg.Entities() {
		name := entity.Name + "." + c.extension
		if filepath.Base(name) != name || strings.ContainsAny(entity.Name, `/\`) {
			return written, errors.ValidationError("entity name is not a valid file name").
				WithContext("entity", entity.Name).
				Build()
		}

		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(render.Render(entity, c.target)), 0o644); err != nil {
			return written, errors.FileSystemError("write output file").
				WithCause(fmt.Errorf("%w: %w", ErrWriteFailed, err)).
				WithContext("path", path).
				Build()
		}
		written = append(written, path)
		c.recorder.IncEntityWritten(format)
		slog.Debug("Wrote entity", logfields.Entity(entity.Name), logfields.File(name))
	}
	return written, nil
}

func createOutputDir(dir string) error {
	err := os.Mkdir(dir, 0o755)
	switch {
	case err == nil:
		return nil
	case os.IsExist(err):
		return errors.WrapError(fmt.Errorf("%w: %w", ErrOutputExists, err), errors.CategoryAlreadyExists, "output directory already exists").
			WithContext("path", dir).
			Fatal().
			Build()
	default:
		return errors.FileSystemError("cannot create output directory").
			WithCause(fmt.Errorf("%w: %w", ErrOutputCreateFailed, err)).
			WithContext("path", dir).
			Build()
	}
}

func classifyDiscovery(err error, inputDir string) error {
	category := errors.CategoryFileSystem
	if stderrors.Is(err, derrors.ErrInputDirNotFound) || stderrors.Is(err, derrors.ErrInputNotDirectory) {
		category = errors.CategoryNotFound
	}
	return errors.WrapError(err, category, "cannot read input directory").
		WithContext("path", inputDir).
		Fatal().
		Build()
}
