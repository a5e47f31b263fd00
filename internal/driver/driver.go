// Package driver is the thin glue that walks an in-memory corpus,
// enumerates similar-record clusters from the feature index, and
// drives the delta codec dispatcher over them. It owns no codec or
// index logic of its own; it only orchestrates them and reports the
// results.
package driver

import (
	"time"

	"github.com/odessbench/deltabench/internal/delta"
	"github.com/odessbench/deltabench/internal/index"
)

// Cluster is one base record and the keys judged similar to it.
type Cluster struct {
	Base    string
	Similar []string
}

// BuildClusters walks every key currently indexed, in lexicographic
// order for reproducibility, and extracts its similarity cluster. Keys
// already consumed as part of an earlier cluster are skipped (the
// index itself enforces this: GetSimilarRecordsKeys removes every
// member of a cluster it returns).
func BuildClusters(tbl *index.Table) []Cluster {
	var clusters []Cluster
	for _, key := range tbl.Keys() {
		similar := tbl.GetSimilarRecordsKeys(key)
		if len(similar) == 0 {
			continue
		}
		clusters = append(clusters, Cluster{Base: key, Similar: dedupe(similar)})
	}
	return clusters
}

// dedupe drops duplicate keys while preserving first-seen order. A
// candidate sharing multiple super-features with the cluster's base
// appears once per shared super-feature in the raw result; the driver
// only cares about cluster membership, not multiplicity.
func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Stats accumulates the outcome of driving one codec over every
// cluster in a benchmark run.
type Stats struct {
	Type Type

	CompressSuccess int
	CompressFail    int
	UncompressFail  int

	OriginalBytes   uint64
	CompressedBytes uint64

	CompressTime   time.Duration
	UncompressTime time.Duration
}

// Type re-exports delta.Type so callers of this package don't need a
// second import for the one value they pass through.
type Type = delta.Type

// Run drives typ's codec over every cluster: for each similar key it
// compresses the record against its cluster's base, and immediately
// decompresses the result to verify round-trip safety, accumulating
// Stats along the way. A record whose delta compression fails the
// quality gate is counted as a compress failure; this driver does not
// attempt any further compression of the raw value.
func Run(dispatcher *delta.Dispatcher, typ delta.Type, records map[string][]byte, clusters []Cluster) Stats {
	stats := Stats{Type: typ}

	for _, cluster := range clusters {
		base, ok := records[cluster.Base]
		if !ok {
			continue
		}
		for _, key := range cluster.Similar {
			input, ok := records[key]
			if !ok {
				continue
			}

			start := time.Now()
			out, ok := dispatcher.Compress(typ, input, base)
			stats.CompressTime += time.Since(start)

			if !ok {
				stats.CompressFail++
				continue
			}
			stats.CompressSuccess++
			stats.OriginalBytes += uint64(len(input))
			stats.CompressedBytes += uint64(len(out))

			start = time.Now()
			_, ok = dispatcher.Uncompress(typ, out, base)
			stats.UncompressTime += time.Since(start)
			if !ok {
				stats.UncompressFail++
			}
		}
	}

	return stats
}
