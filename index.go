package genni

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Entry is what the index stores under a key. Every half fits in 32 bits, and
// the index holds one entry per (record, yl), so the narrow fields halve its
// footprint.
type Entry struct {
	XR, YR, YL int32
}

// Index maps a key xr*yl + k to every (xr, yr, yl) that produces it.
// It is immutable once BuildIndex returns and safe for concurrent readers.
type Index struct {
	shards  []map[int64][]Entry
	probes  []int64
	entries int
}

// IndexKey is the right-hand side of the matching equation for one record
// and one yl.
//
//go:inline
func IndexKey(r RightRecord, yl int64) int64 {
	return r.XR*yl + r.K
}

//go:inline
func shardOf(key int64, n int) int {
	return int(uint64(key) % uint64(n))
}

// BuildIndex indexes every record against every yl in ylRange.
//
// Keys are partitioned into shards; each shard has exactly one builder
// goroutine that walks all records and keeps only its own keys, so no bucket
// is ever written by two goroutines. Colliding keys append, never overwrite.
func BuildIndex(ctx context.Context, records []RightRecord, ylRange Range, shards int) (*Index, error) {
	shards = max(shards, 1)
	idx := &Index{
		shards: make([]map[int64][]Entry, shards),
		probes: ProbeList(records),
	}
	counts := make([]int, shards)

	g, ctx := errgroup.WithContext(ctx)
	for s := range idx.shards {
		g.Go(func() error {
			m := make(map[int64][]Entry)
			for _, r := range records {
				if err := ctx.Err(); err != nil {
					return err
				}
				for yl := ylRange.Min; yl <= ylRange.Max; yl++ {
					key := IndexKey(r, yl)
					if shardOf(key, shards) != s {
						continue
					}
					m[key] = append(m[key], Entry{XR: int32(r.XR), YR: int32(r.YR), YL: int32(yl)})
					counts[s]++
				}
			}
			idx.shards[s] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range counts {
		idx.entries += c
	}
	return idx, nil
}

// ProbeList returns the sorted distinct yr values of records.
func ProbeList(records []RightRecord) []int64 {
	ys := make([]int64, 0, len(records))
	for _, r := range records {
		ys = append(ys, r.YR)
	}
	slices.Sort(ys)
	return slices.Compact(ys)
}

// Lookup returns the entries stored under key, or nil. The returned slice
// must not be modified.
func (idx *Index) Lookup(key int64) []Entry {
	return idx.shards[shardOf(key, len(idx.shards))][key]
}

// Probes returns the sorted distinct yr values the left search tries.
// The returned slice must not be modified.
func (idx *Index) Probes() []int64 { return idx.probes }

// Keys is the number of distinct keys.
func (idx *Index) Keys() int {
	n := 0
	for _, m := range idx.shards {
		n += len(m)
	}
	return n
}

// Entries is the number of stored entries, collisions included.
func (idx *Index) Entries() int { return idx.entries }
