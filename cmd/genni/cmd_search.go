package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"genni"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchOpts struct {
	workers  int
	shards   int
	config   string
	progress bool
	sorted   bool
	metrics  bool
}

func loadBounds(path string) (genni.Bounds, error) {
	if path == "" {
		return genni.DefaultBounds(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return genni.Bounds{}, fmt.Errorf("open bounds: %w", err)
	}
	defer f.Close()
	return genni.LoadBounds(f)
}

// runSearch executes the search and prints every solution
func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bounds, err := loadBounds(searchOpts.config)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	solver := genni.NewSolver(
		genni.WithBounds(bounds),
		genni.WithWorkers(searchOpts.workers),
		genni.WithShards(searchOpts.shards),
		genni.WithLogger(logger),
		genni.WithMetrics(genni.NewMetrics(reg)),
	)

	stop := func() {}
	if searchOpts.progress {
		stop = startProgress(ctx, os.Stderr, solver.Progress, 500*time.Millisecond)
	}
	res, err := solver.Run(ctx)
	stop()
	if err != nil {
		return err
	}

	if searchOpts.metrics {
		logMetrics(reg)
	}
	if searchOpts.sorted {
		genni.SortSolutions(res.Solutions)
	}
	renderSolutions(cmd.OutOrStdout(), res.Solutions)
	return nil
}

// logMetrics writes every gathered sample as one log line.
func logMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields, zap.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
			logger.Info("metric", fields...)
		}
	}
}
