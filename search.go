package genni

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Solution is one pair with x*y equal to its genni product.
type Solution struct {
	X, Y int64
}

// searchTally is kept per chunk and folded into Metrics once the chunk ends.
type searchTally struct {
	pruned    int64
	hits      int64
	rejected  int64
	solutions int64
}

// searchXL runs every yl and every probe yr against one xl.
// Core:
//   - dl = LeftDerived(xl, yl); skip yl when it does not exist.
//   - probe = 1000*(dl - xl*yl) - xl*yr must equal some xr*yl + k in the index.
//   - a key match alone is not enough: the entry's yl and yr must be the ones
//     that produced the probe.
func searchXL(idx *Index, xl int64, ylRange Range, t *searchTally) []Solution {
	var found []Solution
	probes := idx.Probes()
	for yl := ylRange.Min; yl <= ylRange.Max; yl++ {
		dl := LeftDerived(xl, yl)
		if !dl.Ok() {
			t.pruned++
			continue
		}
		base := 1000 * (dl.Value - xl*yl)
		for _, yr := range probes {
			entries := idx.Lookup(base - xl*yr)
			if entries == nil {
				continue
			}
			t.hits++
			for _, e := range entries {
				if int64(e.YL) != yl || int64(e.YR) != yr {
					t.rejected++
					continue
				}
				found = append(found, Solution{X: xl*1000 + int64(e.XR), Y: yl*1000 + yr})
				t.solutions++
			}
		}
	}
	return found
}

// chunkRange splits r into at most n contiguous pieces covering it exactly.
func chunkRange(r Range, n int) []Range {
	total := r.Len()
	if total == 0 {
		return nil
	}
	n = int(min(int64(max(n, 1)), total))
	size := total / int64(n)
	out := make([]Range, n)
	start := r.Min
	for i := range out {
		end := start + size - 1
		if i == n-1 {
			end = r.Max
		}
		out[i] = Range{Min: start, Max: end}
		start = end + 1
	}
	return out
}

// Search probes idx with every xl in b.XL, exhaustively. The xl range is cut
// into static chunks run by at most workers goroutines; each chunk fills its
// own slot of the returned slice. done, if non-nil, is advanced once per xl.
func Search(ctx context.Context, idx *Index, b Bounds, workers, chunks int, done *atomic.Int64, m *Metrics) ([][]Solution, error) {
	parts := chunkRange(b.XL, chunks)
	out := make([][]Solution, len(parts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, part := range parts {
		g.Go(func() error {
			var t searchTally
			for xl := part.Min; xl <= part.Max; xl++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = append(out[i], searchXL(idx, xl, b.YL, &t)...)
				if done != nil {
					done.Add(1)
				}
			}
			m.addSearch(t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
