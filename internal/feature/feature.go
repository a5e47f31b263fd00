// Package feature implements the Odess-style feature generator: it
// converts one record's value into a fixed-size vector of super-features
// used by the index package to judge resemblance between records.
package feature

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/OneOfOne/xxhash"

	"github.com/odessbench/deltabench/internal/gear"
)

// DefaultSampleMask gives a sampling probability of roughly 2^-7 (about
// 7 set bits): k1/128 from the original Odess paper's mask family.
const DefaultSampleMask uint64 = 0x0000400303410000

// DefaultFeatureCount and DefaultSuperFeatureCount are the Odess
// defaults: 12 features grouped 4-at-a-time into 3 super-features.
const (
	DefaultFeatureCount      = 12
	DefaultSuperFeatureCount = 3
)

// superFeatureSeed seeds the xxhash64 reduction of a feature group into
// one super-feature.
const superFeatureSeed = 0x7fcaf1

// Generator produces super-features for record values. It is safe for
// reuse across many values but not for concurrent use: SuperFeatures
// reuses an internal scratch buffer.
type Generator struct {
	sampleMask uint64
	n          int
	m          int
	groupLen   int
	a          []uint64
	b          []uint64

	scratch []uint64
}

// New builds a Generator. n must be a positive multiple of m. When
// fixed is true, the per-feature affine transform constants are drawn
// from the gear table (bit-identical across runs and processes);
// otherwise they are drawn from math/rand/v2, giving a fresh process-
// wide random transform each time.
func New(sampleMask uint64, n, m int, fixed bool) (*Generator, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("feature: feature_count and super_feature_count must be positive, got n=%d m=%d", n, m)
	}
	if n%m != 0 {
		return nil, fmt.Errorf("feature: feature_count %d must be a multiple of super_feature_count %d", n, m)
	}

	g := &Generator{
		sampleMask: sampleMask,
		n:          n,
		m:          m,
		groupLen:   n / m,
		a:          make([]uint64, n),
		b:          make([]uint64, n),
		scratch:    make([]uint64, n),
	}

	if fixed {
		for i := 0; i < n; i++ {
			g.a[i] = gear.Table[i%len(gear.Table)]
			g.b[i] = gear.Table[(n+i)%len(gear.Table)]
		}
	} else {
		for i := 0; i < n; i++ {
			g.a[i] = rand.Uint64()
			g.b[i] = rand.Uint64()
		}
	}

	return g, nil
}

// SuperFeatures computes the M super-features of value. The returned
// slice is owned by the caller; SuperFeatures never retains it.
func (g *Generator) SuperFeatures(value []byte) []uint64 {
	for i := range g.scratch {
		g.scratch[i] = 0
	}

	var h uint64
	for _, b := range value {
		h = gear.Roll(h, b)
		if h&g.sampleMask != 0 {
			continue
		}
		for j := 0; j < g.n; j++ {
			v := g.a[j]*h + g.b[j]
			if v > g.scratch[j] {
				g.scratch[j] = v
			}
		}
	}

	return g.reduce()
}

// reduce folds the N sampled features down into M super-features.
func (g *Generator) reduce() []uint64 {
	out := make([]uint64, g.m)
	if g.m == g.n {
		copy(out, g.scratch)
		return out
	}

	buf := make([]byte, g.groupLen*8)
	for j := 0; j < g.m; j++ {
		group := g.scratch[j*g.groupLen : (j+1)*g.groupLen]
		for i, v := range group {
			binary.LittleEndian.PutUint64(buf[i*8:], v)
		}
		out[j] = xxhash.Checksum64S(buf, superFeatureSeed)
	}
	return out
}
