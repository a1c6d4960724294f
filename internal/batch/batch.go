// Package batch runs the decoder and slug generator over whole corpora.
package batch

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hebrew-lexicon/oshb"
	"github.com/hebrew-lexicon/oshb/internal/config"
)

// Runner fans work out over a bounded number of goroutines.
type Runner struct {
	cfg config.BatchConfig
	log *slog.Logger
}

// New returns a Runner. A nil logger discards output.
func New(cfg config.BatchConfig, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 1024
	}
	return &Runner{cfg: cfg, log: log}
}

func (r *Runner) workers() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// TopErrors is the number of error messages a report should surface.
func (r *Runner) TopErrors() int { return r.cfg.TopErrors }

// ErrorCount is one distinct error message and how often it occurred.
type ErrorCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Report tallies the errors of a decode run.
type Report struct {
	Total      int            `json:"total"`
	WithErrors int            `json:"with_errors"`
	Counts     map[string]int `json:"counts"`
	Duration   time.Duration  `json:"duration_ns"`
}

// ErrorRate is the fraction of codes that produced at least one error.
func (r Report) ErrorRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.WithErrors) / float64(r.Total)
}

// Top returns the n most frequent error messages, most frequent first;
// ties are ordered by message.
func (r Report) Top(n int) []ErrorCount {
	out := make([]ErrorCount, 0, len(r.Counts))
	for msg, c := range r.Counts {
		out = append(out, ErrorCount{Message: msg, Count: c})
	}
	slices.SortFunc(out, func(a, b ErrorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Message, b.Message)
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (r *Report) add(a oshb.Analysis) {
	r.Total++
	if len(a.Errors) == 0 {
		return
	}
	r.WithErrors++
	for _, e := range a.Errors {
		r.Counts[e.Error()]++
	}
}

func (r *Report) merge(o Report) {
	r.Total += o.Total
	r.WithErrors += o.WithErrors
	for msg, c := range o.Counts {
		r.Counts[msg] += c
	}
}

// Decode decodes every code. Results keep the order of codes. Cancelling
// ctx stops scheduling further chunks and returns ctx.Err().
func (r *Runner) Decode(ctx context.Context, codes []string) ([]oshb.Analysis, Report, error) {
	start := time.Now()
	results := make([]oshb.Analysis, len(codes))
	report := Report{Counts: make(map[string]int)}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for lo := 0; lo < len(codes); lo += r.cfg.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		lo := lo
		hi := min(lo+r.cfg.ChunkSize, len(codes))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			local := Report{Counts: make(map[string]int)}
			for i := lo; i < hi; i++ {
				results[i] = oshb.Decode(codes[i])
				local.add(results[i])
			}
			mu.Lock()
			report.merge(local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Report{}, err
	}

	report.Duration = time.Since(start)
	r.logReport(ctx, report)
	return results, report, nil
}

func (r *Runner) logReport(ctx context.Context, rep Report) {
	level := slog.LevelInfo
	if rep.ErrorRate() > r.cfg.ErrorRateWarn {
		level = slog.LevelWarn
	}
	r.log.Log(ctx, level, "decode finished",
		slog.Int("total", rep.Total),
		slog.Int("with_errors", rep.WithErrors),
		slog.Float64("error_rate", rep.ErrorRate()),
		slog.Duration("duration", rep.Duration),
	)
	for _, ec := range rep.Top(r.cfg.TopErrors) {
		r.log.WarnContext(ctx, "parse error", slog.String("message", ec.Message), slog.Int("count", ec.Count))
	}
}
