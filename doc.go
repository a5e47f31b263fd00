// Package deltabench is a resemblance-based delta-compression testbed
// for a content-addressed record store.
//
// # Overview
//
// Given a corpus of opaque (key, value) records, deltabench answers
// one question: which records are similar enough to be stored as
// deltas against another record, and how well do several delta-
// encoding algorithms perform on that selection?
//
// An Odess-style feature generator samples each record's bytes at
// content-defined positions (via a rolling Gear hash) and folds the
// samples into a small number of super-features. Two records sharing a
// super-feature are considered similar. A feature index table tracks
// every record's super-features and, given a key, returns every other
// key judged similar to it — extracting that cluster from the index so
// a later pass never re-emits the same group.
//
// Once a cluster is known, its members can be delta-encoded against the
// cluster's base record using any of several byte-level differential
// codecs (xdelta, edelta, gdelta, gdelta_original), all reachable
// through one dispatcher with a uniform self-describing frame and a
// compression-quality gate.
//
// # When to Use
//
// deltabench is a benchmarking harness, not a storage engine: it
// measures which similarity/codec combination would be worth deploying
// in a real content-addressed store. It does not persist anything
// itself, and corpus ingestion (walking a real dataset on disk) is
// intentionally out of scope — see cmd/deltabench for a thin CLI that
// drives the pipeline over an in-memory fixture.
//
// # Basic Usage
//
//	eng, err := deltabench.New(deltabench.DefaultConfig())
//	eng.Put("a", []byte("hello world"))
//	eng.Put("b", []byte("hello world, with a twist"))
//	similar := eng.GetSimilarRecordsKeys("a") // -> ["b" "b" "b"], one entry per shared super-feature
//
//	out, ok := eng.Compress(delta.XDelta, []byte("hello world, with a twist"), []byte("hello world"))
//	if ok {
//	    back, _ := eng.Uncompress(delta.XDelta, out, []byte("hello world"))
//	    // back == the original input
//	}
package deltabench
