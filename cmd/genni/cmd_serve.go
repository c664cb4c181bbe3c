package main

import (
	"context"
	"os"

	"genni"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runServe answers line-protocol commands until QUIT or EOF
func runServe(cmd *cobra.Command, args []string) error {
	solve := func(b genni.Bounds) ([]genni.Solution, error) {
		res, err := genni.NewSolver(
			genni.WithBounds(b),
			genni.WithWorkers(searchOpts.workers),
			genni.WithShards(searchOpts.shards),
			genni.WithLogger(logger),
		).Run(context.Background())
		if err != nil {
			logger.Warn("run failed", zap.Error(err))
			return nil, err
		}
		return res.Solutions, nil
	}
	return genni.RunServer(os.Stdin, cmd.OutOrStdout(), solve)
}
