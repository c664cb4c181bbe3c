package main

import (
	"fmt"
	"strconv"

	"genni"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCheck re-derives the genni product of one pair
func runCheck(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("parse x: %w", err)
	}
	y, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("parse y: %w", err)
	}

	d := genni.GenniProduct(x, y)
	logger.Debug("genni product", zap.Int64("x", x), zap.Int64("y", y),
		zap.Int64("value", d.Value), zap.Stringer("status", d.Status))

	out := cmd.OutOrStdout()
	switch {
	case !d.Ok():
		fmt.Fprintf(out, "x = %d, y = %d: no genni product (%s)\n", x, y, d.Status)
	case x*y == d.Value:
		fmt.Fprintf(out, "x = %d, y = %d: solution (%d)\n", x, y, d.Value)
	default:
		fmt.Fprintf(out, "x = %d, y = %d: not a solution (%d != %d)\n", x, y, x*y, d.Value)
	}
	return nil
}
