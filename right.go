package genni

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RightRecord is one right-half pair whose derived value reconciles with its
// product modulo 1000. K is the carry (xr*yr - dr) / 1000.
type RightRecord struct {
	XR, YR, K int64
}

// rightRow scans every yr against one xr.
func rightRow(xr int64, yr Range) []RightRecord {
	var out []RightRecord
	for y := yr.Min; y <= yr.Max; y++ {
		dr := RightDerived(xr, y)
		if !dr.Ok() {
			continue
		}
		diff := xr*y - dr.Value
		if diff%1000 != 0 {
			continue
		}
		out = append(out, RightRecord{XR: xr, YR: y, K: diff / 1000})
	}
	return out
}

// EnumerateRight finds every valid right-half record within b.XR × b.YR.
// Rows of xr run in parallel on at most workers goroutines; each row writes
// its own slot, so the merged output is ordered by xr, then yr.
func EnumerateRight(ctx context.Context, b Bounds, workers int) ([]RightRecord, error) {
	rows := make([][]RightRecord, b.XR.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range rows {
		xr := b.XR.Min + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = rightRow(xr, b.YR)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Flatten(rows), nil
}
