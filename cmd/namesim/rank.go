package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"namesim/internal/config"
	"namesim/internal/errs"
	"namesim/internal/logging"
	"namesim/internal/ranker"
	"namesim/internal/scan"
	"namesim/internal/similarity"
	"namesim/internal/tracing"
)

type rankFlags struct {
	threshold float64
	ngram     int
	pattern   string
	weighting string
	topK      int
	workers   int
	format    string
	reverse   bool
	quiet     bool
	verbose   bool
}

func newRankFlags() *rankFlags {
	return &rankFlags{}
}

func (f *rankFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.threshold, "threshold", "t", 0.6, "Minimum similarity to report (exclusive)")
	cmd.Flags().IntVarP(&f.ngram, "ngram", "l", 1, "Length of word n-gram used as vector components (1-4)")
	cmd.Flags().StringVarP(&f.pattern, "pattern", "f", "", "File names must match this regular expression")
	cmd.Flags().StringVar(&f.weighting, "weighting", "", "Term weighting: count, binary, or tfidf")
	cmd.Flags().IntVarP(&f.topK, "top", "k", 0, "Keep each file in at most this many pairs (0 = unlimited)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Scoring goroutines (0 = sequential)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: auto, tsv, table, or json")
	cmd.Flags().BoolVarP(&f.reverse, "reverse", "r", false, "Print lowest scores first")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Suppress diagnostics and progress")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
}

// resolve merges config-file defaults with explicitly set flags. Flags win.
func (f *rankFlags) resolve(cmd *cobra.Command, cfg *config.Config) rankSettings {
	s := rankSettings{
		threshold: cfg.Rank.Threshold,
		ngram:     cfg.Rank.NGram,
		pattern:   cfg.Scan.Pattern,
		weighting: cfg.Rank.Weighting,
		topK:      cfg.Rank.TopK,
		workers:   cfg.Rank.Workers,
		format:    cfg.Output.Format,
		reverse:   cfg.Output.Reverse,
		hidden:    cfg.Scan.IncludeHidden,
	}
	set := cmd.Flags().Changed
	if set("threshold") {
		s.threshold = f.threshold
	}
	if set("ngram") {
		s.ngram = f.ngram
	}
	if set("pattern") {
		s.pattern = f.pattern
	}
	if set("weighting") {
		s.weighting = f.weighting
	}
	if set("top") {
		s.topK = f.topK
	}
	if set("workers") {
		s.workers = f.workers
	}
	if set("format") {
		s.format = f.format
	}
	if set("reverse") {
		s.reverse = f.reverse
	}
	return s
}

type rankSettings struct {
	threshold float64
	ngram     int
	pattern   string
	weighting string
	topK      int
	workers   int
	format    string
	reverse   bool
	hidden    bool
}

func runRank(cmd *cobra.Command, args []string, cmdCtx *commandContext, flags *rankFlags) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	settings := flags.resolve(cmd, cfg)

	logLevel := cfg.Logging.Level
	if flags.verbose {
		logLevel = "debug"
	}
	if flags.quiet {
		logLevel = "error"
	}
	logger, err := logging.New(logging.Options{
		Level:  logLevel,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger = logger.With(logging.String("run_id", runID))

	weighting, err := similarity.ParseWeighting(settings.weighting)
	if err != nil {
		return errs.Wrap(errs.ErrConfiguration, "cli", "weighting", "", err)
	}

	var pattern *regexp.Regexp
	if settings.pattern != "" && settings.pattern != ".*" {
		pattern, err = regexp.Compile(settings.pattern)
		if err != nil {
			return errs.Wrap(errs.ErrInput, "cli", "pattern",
				fmt.Sprintf("invalid regular expression %q", settings.pattern), err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
	})
	if err != nil {
		// Trace export is best-effort and never blocks ranking.
		logger.Warn("trace export unavailable", logging.Error(err))
		provider = nil
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := provider.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("trace flush failed", logging.Error(shutdownErr))
		}
	}()
	tracer := provider.Tracer("namesim")

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	ctx, runSpan := tracer.Start(ctx, "run", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int("roots", len(roots)),
	))
	defer runSpan.End()

	scanCtx, scanSpan := tracer.Start(ctx, "scan")
	entries, err := scan.Roots(scanCtx, roots, cmd.InOrStdin(), scan.Options{
		Pattern:       pattern,
		IncludeHidden: settings.hidden,
		Logger:        logging.WithComponent(logger, "scan"),
	})
	scanSpan.SetAttributes(attribute.Int("entries", len(entries)))
	scanSpan.End()
	if err != nil {
		runSpan.RecordError(err)
		return err
	}
	logger.Info("scan complete", logging.Int("entries", len(entries)))

	opts := ranker.Options{
		Threshold: settings.threshold,
		NGram:     settings.ngram,
		Weighting: weighting,
		TopK:      settings.topK,
		Workers:   settings.workers,
		Logger:    logger,
	}
	if bar := newProgressBar(len(entries), flags.quiet); bar != nil {
		opts.Progress = func(done, _ int) { _ = bar.Set(done) }
		defer func() { _ = bar.Finish() }()
	}

	rankCtx, rankSpan := tracer.Start(ctx, "rank", trace.WithAttributes(
		attribute.Float64("threshold", settings.threshold),
		attribute.Int("ngram", settings.ngram),
		attribute.String("weighting", string(weighting)),
	))
	results, err := ranker.Rank(rankCtx, entries, opts)
	if err == nil {
		rankSpan.SetAttributes(attribute.Int("pairs", len(results)))
	} else {
		rankSpan.RecordError(err)
	}
	rankSpan.End()
	if err != nil {
		runSpan.RecordError(err)
		return err
	}

	return renderResults(cmd, results, settings)
}

// newProgressBar returns a scoring progress bar when stderr is a terminal,
// nil otherwise so piped runs stay clean.
func newProgressBar(total int, quiet bool) *progressbar.ProgressBar {
	if quiet || total == 0 || !isTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("scoring"),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
