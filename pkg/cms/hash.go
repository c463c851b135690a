package cms

// HashStrategy derives the per-row hash values for a key. Derive must be
// deterministic for a given (numHashes, key) pair and return an owned slice
// of exactly numHashes values; callers consume the slice within a single
// operation and never retain it.
//
// Two sketches are merge-compatible only when they hold the *same* strategy
// instance, so strategies should be shared values, not constructed per
// sketch.
type HashStrategy interface {
	Derive(numHashes uint32, key string) []uint64
}

// DefaultHash is the strategy used when a sketch is constructed without an
// explicit one: seeded 64-bit FNV-1a. Per row i the offset basis is perturbed
// by 31*i before folding the key, yielding depth related-but-distinct values
// from one pass-cheap algorithm. This trades pairwise independence for speed.
var DefaultHash HashStrategy = &fnvStrategy{}

const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// fnvStrategy carries an unused tag byte so the struct is not zero-sized:
// pointers to distinct zero-sized values can share an address, which would
// make separate instances compare equal and defeat the instance-identity
// rule above.
type fnvStrategy struct {
	_ byte
}

func (*fnvStrategy) Derive(numHashes uint32, key string) []uint64 {
	hashes := make([]uint64, numHashes)
	for i := range hashes {
		hashes[i] = fnv1a(key, uint64(i))
	}
	return hashes
}

func fnv1a(key string, seed uint64) uint64 {
	h := fnvOffsetBasis + 31*seed
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime
	}
	return h
}
