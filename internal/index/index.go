// Package index implements the feature index table: a mutable bipartite
// index between record keys and their super-features, used to discover
// which records are similar enough to delta-compress against each other.
package index

import "sort"

// superFeatureGenerator is the subset of *feature.Generator that Table
// depends on. Declared locally so index has no import-time dependency
// on the feature package's construction details.
type superFeatureGenerator interface {
	SuperFeatures(value []byte) []uint64
}

// Table is a bipartite index: keyFeatures maps a key to its ordered
// super-features, featureKeys maps a super-feature to the set of keys
// that produced it. Both maps are kept in lockstep by Put and Delete:
// sf is in keyFeatures[k] exactly when k is in featureKeys[sf], and a
// featureKeys bucket that becomes empty is dropped.
//
// Table is not safe for concurrent use; callers needing concurrent
// mutation must serialize access themselves.
type Table struct {
	gen superFeatureGenerator

	keyFeatures map[string][]uint64
	featureKeys map[uint64]map[string]struct{}
}

// New builds an empty Table backed by gen for computing super-features.
func New(gen superFeatureGenerator) *Table {
	return &Table{
		gen:         gen,
		keyFeatures: make(map[string][]uint64),
		featureKeys: make(map[uint64]map[string]struct{}),
	}
}

// Put indexes value under key, computing its super-features via the
// generator. Any prior mapping for key is removed first, so Put
// overwrites.
func (t *Table) Put(key string, value []byte) {
	t.Delete(key)

	sfs := t.gen.SuperFeatures(value)
	t.keyFeatures[key] = sfs
	for _, sf := range sfs {
		keys, ok := t.featureKeys[sf]
		if !ok {
			keys = make(map[string]struct{})
			t.featureKeys[sf] = keys
		}
		keys[key] = struct{}{}
	}
}

// Delete removes key and all of its super-feature associations. It is
// a no-op if key is not indexed.
func (t *Table) Delete(key string) {
	sfs, ok := t.keyFeatures[key]
	if !ok {
		return
	}
	t.remove(key, sfs)
}

// remove strips key out of every featureKeys bucket named in sfs and
// drops key from keyFeatures. It does not look up sfs itself, so
// callers that already hold a key's super-features (e.g.
// GetSimilarRecordsKeys extracting a cluster) can reuse them instead of
// paying for a second map lookup.
func (t *Table) remove(key string, sfs []uint64) {
	for _, sf := range sfs {
		keys := t.featureKeys[sf]
		delete(keys, key)
		if len(keys) == 0 {
			delete(t.featureKeys, sf)
		}
	}
	delete(t.keyFeatures, key)
}

// GetSimilarRecordsKeys returns every key that shares at least one
// super-feature with key, one entry per shared super-feature (so a key
// sharing two super-features appears twice). If key is not indexed, it
// returns nil.
//
// As a side effect, every returned key and key itself are removed from
// the table: a cluster of similar records is consumed as a unit, so a
// later query never re-emits members of a cluster already extracted.
func (t *Table) GetSimilarRecordsKeys(key string) []string {
	sfs, ok := t.keyFeatures[key]
	if !ok {
		return nil
	}

	var similar []string
	for _, sf := range sfs {
		for other := range t.featureKeys[sf] {
			if other != key {
				similar = append(similar, other)
			}
		}
	}

	for _, other := range similar {
		t.Delete(other)
	}
	t.remove(key, sfs)

	return similar
}

// CountAllSimilarRecords returns the number of distinct keys that
// participate in any super-feature bucket shared by more than one key.
// It does not mutate the table.
func (t *Table) CountAllSimilarRecords() int {
	seen := make(map[string]struct{})
	for _, keys := range t.featureKeys {
		if len(keys) <= 1 {
			continue
		}
		for k := range keys {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}

// Keys returns the indexed keys in lexicographic order, giving
// deterministic iteration to callers (e.g. the driver clustering pass)
// regardless of Go's randomized map iteration order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.keyFeatures))
	for k := range t.keyFeatures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
