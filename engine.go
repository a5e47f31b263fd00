package deltabench

import (
	"github.com/odessbench/deltabench/internal/config"
	"github.com/odessbench/deltabench/internal/delta"
	"github.com/odessbench/deltabench/internal/feature"
	"github.com/odessbench/deltabench/internal/index"
)

// Re-export the handful of types callers need so importing this one
// package is enough for common use; the internal/ packages stay
// reachable for callers who want the pieces individually (the CLI
// driver does).
type (
	// Config is the resemblance engine's construction parameters.
	Config = config.Config
	// DeltaType identifies a delta codec; see the delta package for
	// the full Type enum (None, XDelta, EDelta, GDelta, GDeltaOriginal).
	DeltaType = delta.Type
)

// DefaultConfig returns the Odess resemblance parameters used
// throughout this module's tests and CLI.
func DefaultConfig() Config { return config.Default() }

// Engine bundles a feature generator, a feature index table, and a
// delta codec dispatcher into one value: ingestion feeds Put, and
// later Get/Compress drive delta selection.
type Engine struct {
	gen        *feature.Generator
	table      *index.Table
	dispatcher *delta.Dispatcher
}

// New builds an Engine from cfg, validating the feature_count /
// super_feature_count divisibility constraint.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := feature.New(cfg.SampleMask, cfg.FeatureCount, cfg.SuperFeatureCount, cfg.FixTransformConstants)
	if err != nil {
		return nil, err
	}
	return &Engine{
		gen:        gen,
		table:      index.New(gen),
		dispatcher: delta.NewDispatcher(),
	}, nil
}

// Put indexes value under key for similarity detection, overwriting
// any prior mapping for key.
func (e *Engine) Put(key string, value []byte) { e.table.Put(key, value) }

// Delete removes key from the similarity index.
func (e *Engine) Delete(key string) { e.table.Delete(key) }

// GetSimilarRecordsKeys returns (and extracts) every key judged similar
// to key. See index.Table.GetSimilarRecordsKeys for the exact
// multiplicity and side-effect semantics.
func (e *Engine) GetSimilarRecordsKeys(key string) []string {
	return e.table.GetSimilarRecordsKeys(key)
}

// CountAllSimilarRecords reports how many distinct indexed keys
// currently participate in some shared super-feature bucket.
func (e *Engine) CountAllSimilarRecords() int { return e.table.CountAllSimilarRecords() }

// Compress delta-encodes input against base using the codec registered
// for typ. ok is false if the codec is unregistered, either buffer is
// empty, the codec's size ceiling is exceeded, or the result fails the
// compression-quality gate.
func (e *Engine) Compress(typ DeltaType, input, base []byte) (output []byte, ok bool) {
	return e.dispatcher.Compress(typ, input, base)
}

// Uncompress reverses Compress.
func (e *Engine) Uncompress(typ DeltaType, frame, base []byte) (output []byte, ok bool) {
	return e.dispatcher.Uncompress(typ, frame, base)
}
