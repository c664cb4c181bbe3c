package genni

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one Solver.Run.
type Result struct {
	Solutions    []Solution
	RightRecords int
	IndexKeys    int
	IndexEntries int
	Probes       int
	Right        time.Duration
	Build        time.Duration
	Search       time.Duration
}

// Solver runs the three phases: right enumeration, index build, left search.
type Solver struct {
	bounds  Bounds
	workers int
	shards  int
	chunks  int
	logger  *zap.Logger
	metrics *Metrics

	done  atomic.Int64
	total atomic.Int64
}

// Option configures a Solver.
type Option func(*Solver)

// WithBounds restricts the search space.
func WithBounds(b Bounds) Option { return func(s *Solver) { s.bounds = b } }

// WithWorkers caps the goroutines used by the parallel phases.
func WithWorkers(n int) Option { return func(s *Solver) { s.workers = n } }

// WithShards sets how many partitions the index is built in.
func WithShards(n int) Option { return func(s *Solver) { s.shards = n } }

// WithChunks sets how many static pieces the xl range is cut into.
func WithChunks(n int) Option { return func(s *Solver) { s.chunks = n } }

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option { return func(s *Solver) { s.logger = l } }

// WithMetrics records phase sizes and search counters on m.
func WithMetrics(m *Metrics) Option { return func(s *Solver) { s.metrics = m } }

// NewSolver returns a Solver over DefaultBounds using every CPU.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		bounds:  DefaultBounds(),
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.shards <= 0 {
		s.shards = s.workers
	}
	if s.chunks <= 0 {
		s.chunks = s.workers * 8
	}
	return s
}

// Progress reports how many xl values the left search has finished out of
// the total. It is safe to call from any goroutine while Run is in flight.
func (s *Solver) Progress() (done, total int64) {
	return s.done.Load(), s.total.Load()
}

// Run performs the full search and blocks until it completes or ctx ends.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	if err := s.bounds.Validate(); err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}
	s.done.Store(0)
	s.total.Store(s.bounds.XL.Len())
	res := &Result{}

	s.logger.Info("enumerating right halves",
		zap.Int64("xr_count", s.bounds.XR.Len()),
		zap.Int64("yr_count", s.bounds.YR.Len()))
	start := time.Now()
	records, err := EnumerateRight(ctx, s.bounds, s.workers)
	if err != nil {
		return nil, fmt.Errorf("enumerate right halves: %w", err)
	}
	res.Right = time.Since(start)
	res.RightRecords = len(records)
	s.metrics.observePhase("right", res.Right)
	s.logger.Info("right halves enumerated",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", res.Right))

	start = time.Now()
	idx, err := BuildIndex(ctx, records, s.bounds.YL, s.shards)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	res.Build = time.Since(start)
	res.IndexKeys, res.IndexEntries, res.Probes = idx.Keys(), idx.Entries(), len(idx.Probes())
	s.metrics.observePhase("build", res.Build)
	s.metrics.setIndex(len(records), idx)
	s.logger.Info("index built",
		zap.Int("keys", res.IndexKeys),
		zap.Int("entries", res.IndexEntries),
		zap.Int("probes", res.Probes),
		zap.Duration("elapsed", res.Build))

	start = time.Now()
	parts, err := Search(ctx, idx, s.bounds, s.workers, s.chunks, &s.done, s.metrics)
	if err != nil {
		return nil, fmt.Errorf("search left halves: %w", err)
	}
	res.Search = time.Since(start)
	res.Solutions = Flatten(parts)
	s.metrics.observePhase("search", res.Search)
	s.logger.Info("search complete",
		zap.Int("solutions", len(res.Solutions)),
		zap.Duration("elapsed", res.Search))

	return res, nil
}

// FindAllSolutions searches the full default space and returns every pair.
// The order of the result is unspecified.
func FindAllSolutions() []Solution {
	res, err := NewSolver().Run(context.Background())
	if err != nil {
		// DefaultBounds always validates and the context never ends.
		panic(err)
	}
	return res.Solutions
}
