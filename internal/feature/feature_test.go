package feature

import (
	"bytes"
	"testing"
)

func TestNewRejectsBadDivisor(t *testing.T) {
	if _, err := New(DefaultSampleMask, 12, 5, true); err == nil {
		t.Fatalf("expected error when feature_count is not a multiple of super_feature_count")
	}
	if _, err := New(DefaultSampleMask, 0, 1, true); err == nil {
		t.Fatalf("expected error for non-positive feature_count")
	}
}

func TestSuperFeaturesCountAndDeterminism(t *testing.T) {
	g, err := New(DefaultSampleMask, DefaultFeatureCount, DefaultSuperFeatureCount, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sf1 := g.SuperFeatures([]byte("hello world"))
	if len(sf1) != DefaultSuperFeatureCount {
		t.Fatalf("got %d super-features, want %d", len(sf1), DefaultSuperFeatureCount)
	}

	sf2 := g.SuperFeatures([]byte("hello world"))
	if !equalU64(sf1, sf2) {
		t.Fatalf("super-features differ across repeated calls on the same value: %v vs %v", sf1, sf2)
	}
}

func TestSuperFeaturesDeterministicAcrossGenerators(t *testing.T) {
	g1, _ := New(DefaultSampleMask, DefaultFeatureCount, DefaultSuperFeatureCount, true)
	g2, _ := New(DefaultSampleMask, DefaultFeatureCount, DefaultSuperFeatureCount, true)

	value := bytes.Repeat([]byte("the quick brown fox "), 50)
	if !equalU64(g1.SuperFeatures(value), g2.SuperFeatures(value)) {
		t.Fatalf("fixed transform constants must give bit-identical super-features across generator instances")
	}
}

func TestSuperFeaturesEmptyInput(t *testing.T) {
	g, _ := New(DefaultSampleMask, DefaultFeatureCount, DefaultSuperFeatureCount, true)
	sf := g.SuperFeatures(nil)
	if len(sf) != DefaultSuperFeatureCount {
		t.Fatalf("empty input should still yield the configured super-feature count")
	}
	for _, v := range sf {
		if v == 0 {
			t.Fatalf("zero features hashed with a seed should not be trivially zero: %v", sf)
		}
	}
}

func TestSuperFeaturesIdentityWhenMEqualsN(t *testing.T) {
	g, err := New(DefaultSampleMask, 8, 8, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sf := g.SuperFeatures([]byte("abc"))
	if len(sf) != 8 {
		t.Fatalf("got %d, want 8", len(sf))
	}
}

func TestSuperFeaturesDissimilarInputsDiffer(t *testing.T) {
	g, _ := New(DefaultSampleMask, DefaultFeatureCount, DefaultSuperFeatureCount, true)
	zeros := bytes.Repeat([]byte{0x00}, 1<<20)
	ones := bytes.Repeat([]byte{0xff}, 1<<20)

	sfZeros := g.SuperFeatures(zeros)
	sfOnes := g.SuperFeatures(ones)

	shared := 0
	for _, a := range sfZeros {
		for _, b := range sfOnes {
			if a == b {
				shared++
			}
		}
	}
	if shared > 0 {
		t.Fatalf("unrelated 1MiB buffers of constant bytes should not share any super-feature, got %d shared", shared)
	}
}

func equalU64(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
