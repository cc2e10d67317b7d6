// internal/batch/batch.go
package batch

import (
	"context"
	"fmt"

	"articlefix/internal/diff"
	"articlefix/internal/discover"
	apperrors "articlefix/internal/errors"
	"articlefix/internal/rewrite"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Reporter receives the progress of a run in program order.
type Reporter interface {
	Start()
	NoFiles()
	Found(n int)
	Processing(path string)
	Done(result rewrite.Result)
	Diff(path string, d *diff.Result)
	Summary(report *Report)
}

// Report collects the outcome of every file attempted in a run.
type Report struct {
	RunID   string
	Results []rewrite.Result
}

func (r *Report) Processed() int {
	return len(r.Results)
}

func (r *Report) Changed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() && res.Changed {
			n++
		}
	}
	return n
}

func (r *Report) Unchanged() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() && !res.Changed {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Options configures a Runner
type Options struct {
	Pattern      string // Glob selecting the files to rewrite
	ShowDiff     bool   // Report a diff of every changed file
	ContextLines int    // Context lines around diff hunks, 3 when zero
}

// Runner drives discovery and rewrites every discovered file in turn.
type Runner struct {
	fs       afero.Fs
	rewriter *rewrite.Rewriter
	reporter Reporter
	differ   *diff.Engine
	opts     Options
	logger   *zap.Logger
}

// NewRunner creates a Runner. An empty Options.Pattern selects
// discover.ArticlePattern.
func NewRunner(fsys afero.Fs, rewriter *rewrite.Rewriter, reporter Reporter, opts Options, logger *zap.Logger) *Runner {
	if opts.Pattern == "" {
		opts.Pattern = discover.ArticlePattern
	}
	if opts.ContextLines == 0 {
		opts.ContextLines = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		fs:       fsys,
		rewriter: rewriter,
		reporter: reporter,
		differ:   diff.NewEngine(opts.ContextLines),
		opts:     opts,
		logger:   logger,
	}
}

// Run rewrites every file matching the pattern, one after another. The
// returned error is non-nil only when discovery fails or ctx is cancelled
// between files; individual file failures are recorded in the Report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.New().String()}
	logger := r.logger.With(zap.String("run_id", report.RunID))

	r.reporter.Start()

	paths, err := discover.Discover(r.fs, r.opts.Pattern)
	if err != nil {
		logger.Error("discovery failed", zap.String("pattern", r.opts.Pattern), zap.Error(err))
		return report, fmt.Errorf("discovering files: %w", err)
	}
	if len(paths) == 0 {
		logger.Info("no files matched", zap.String("pattern", r.opts.Pattern))
		r.reporter.NoFiles()
		return report, nil
	}

	r.reporter.Found(len(paths))
	logger.Debug("files discovered", zap.Int("count", len(paths)))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run interrupted: %w", err)
		}

		r.reporter.Processing(path)
		result := r.rewriter.RewriteFile(path)
		r.reporter.Done(result)

		if !result.OK() {
			logger.Warn("rewrite failed",
				zap.String("path", path),
				zap.String("error_type", string(apperrors.TypeOf(result.Err))),
				zap.Error(result.Err),
			)
		} else if r.opts.ShowDiff && result.Changed {
			r.reporter.Diff(path, r.differ.Diff(result.Before, result.After))
		}

		// Contents are not kept past the file's own pass.
		result.Before, result.After = "", ""
		report.Results = append(report.Results, result)
	}

	r.reporter.Summary(report)
	logger.Info("run complete",
		zap.Int("processed", report.Processed()),
		zap.Int("changed", report.Changed()),
		zap.Int("failed", report.Failed()),
	)
	return report, nil
}
