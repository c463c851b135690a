package cms

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestDeriveIsDeterministic(t *testing.T) {
	a := DefaultHash.Derive(7, "determinism")
	b := DefaultHash.Derive(7, "determinism")
	if len(a) != 7 || len(b) != 7 {
		t.Fatalf("expected 7 hashes, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("hash %d differs between calls: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestDeriveSeedsDiffer(t *testing.T) {
	hashes := DefaultHash.Derive(16, "seed spread")
	seen := make(map[uint64]int)
	for i, h := range hashes {
		if prev, dup := seen[h]; dup {
			t.Errorf("rows %d and %d derived the same value %d", prev, i, h)
		}
		seen[h] = i
	}
}

// The seed perturbs the offset basis before the key is folded, so the first
// row must match plain 64-bit FNV-1a.
func TestDeriveRowZeroIsPlainFNV1a(t *testing.T) {
	key := "fnv check"
	h := fnvOffsetBasis
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime
	}
	if got := DefaultHash.Derive(1, key)[0]; got != h {
		t.Errorf("row 0 hash is %d, plain FNV-1a gives %d", got, h)
	}
}

func TestDeriveBucketSpread(t *testing.T) {
	const (
		numKeys    = 100_000
		numBuckets = 1 << 10
	)
	buckets := make([]int, numBuckets)
	for i := 0; i < numKeys; i++ {
		key := fmt.Sprintf("key-%d-%d", i, rand.Uint32())
		buckets[DefaultHash.Derive(1, key)[0]%numBuckets]++
	}
	avg := float64(numKeys) / float64(numBuckets)
	for i, cnt := range buckets {
		if float64(cnt) > avg*3 {
			t.Errorf("bucket %d holds %d keys, average is %.1f", i, cnt, avg)
		}
	}
}

func BenchmarkDerive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DefaultHash.Derive(7, "benchmark key for derive")
	}
}

func BenchmarkAdd(b *testing.B) {
	s, _ := New(1<<16, 7, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Add("benchmark key for add", 1)
	}
}

func BenchmarkCheck(b *testing.B) {
	s, _ := New(1<<16, 7, nil)
	s.Add("benchmark key for check", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Check("benchmark key for check")
	}
}
