// Package cms implements a Count-Min Sketch: a fixed-memory probabilistic
// structure estimating per-key frequencies in a stream with a 2-D counter
// table and depth hash rows per key. Estimates overcount (never undercount
// for add-only workloads) by at most errorRate*elementsAdded with probability
// at least confidence.
//
// A Sketch is not safe for concurrent use; callers that share one across
// goroutines must supply their own mutual exclusion.
package cms

import (
	"fmt"
	"math"
	"slices"
)

// maxTableCells bounds width*depth so the flat table always fits an int
// index on 32-bit platforms.
const maxTableCells = 1 << 30

// Sketch is a Count-Min Sketch. The counter table is a row-major flat slice
// of width*depth signed 32-bit bins; row i occupies [i*width, (i+1)*width).
type Sketch struct {
	width, depth  uint32
	confidence    float64
	errorRate     float64
	elementsAdded int64
	counters      []int32
	hash          HashStrategy
}

// New creates a sketch with explicit dimensions. Confidence and error rate
// are derived as 1-2^-depth and 2/width. A nil strategy selects DefaultHash.
func New(width, depth uint32, strategy HashStrategy) (*Sketch, error) {
	if width < 1 || depth < 1 {
		return nil, fmt.Errorf("%w: width and depth must be at least 1, got width=%d depth=%d", ErrInvalidParameter, width, depth)
	}
	cells := uint64(width) * uint64(depth)
	if cells > maxTableCells {
		return nil, fmt.Errorf("%w: %d counters requested, limit is %d", ErrTableTooLarge, cells, maxTableCells)
	}
	if strategy == nil {
		strategy = DefaultHash
	}
	return &Sketch{
		width:      width,
		depth:      depth,
		confidence: 1 - 1/math.Pow(2, float64(depth)),
		errorRate:  2 / float64(width),
		counters:   make([]int32, cells),
		hash:       strategy,
	}, nil
}

// NewOptimal derives the dimensions from a target error rate and confidence:
// width = ceil(2/errorRate), depth = ceil(-ln(1-confidence)/ln2).
func NewOptimal(errorRate, confidence float64, strategy HashStrategy) (*Sketch, error) {
	if errorRate <= 0 || confidence <= 0 {
		return nil, fmt.Errorf("%w: error rate and confidence must be positive, got errorRate=%g confidence=%g", ErrInvalidParameter, errorRate, confidence)
	}
	if confidence >= 1 {
		return nil, fmt.Errorf("%w: confidence must be below 1, got %g", ErrInvalidParameter, confidence)
	}
	width := uint32(math.Ceil(2 / errorRate))
	depth := uint32(math.Ceil(-math.Log(1-confidence) / math.Ln2))
	return New(width, depth, strategy)
}

// Width returns the number of columns per row.
func (s *Sketch) Width() uint32 { return s.width }

// Depth returns the number of rows, which is also the number of hash values
// computed per key.
func (s *Sketch) Depth() uint32 { return s.depth }

// Confidence returns the probability that an estimate respects the error
// bound.
func (s *Sketch) Confidence() float64 { return s.confidence }

// ErrorRate returns the per-estimate error bound factor.
func (s *Sketch) ErrorRate() float64 { return s.errorRate }

// ElementsAdded returns the total weight added minus removed across all keys.
func (s *Sketch) ElementsAdded() int64 { return s.elementsAdded }

// Strategy returns the hash strategy bound to this sketch.
func (s *Sketch) Strategy() HashStrategy { return s.hash }

// Hashes derives the depth hash values for key using the sketch's strategy.
// The returned slice is owned by the caller.
func (s *Sketch) Hashes(key string) []uint64 {
	return s.hash.Derive(s.depth, key)
}

// Add increments the counters for key by delta and returns the new estimate:
// the minimum post-update counter across all rows.
func (s *Sketch) Add(key string, delta uint32) int32 {
	res, _ := s.AddHashes(s.hash.Derive(s.depth, key), delta)
	return res
}

// AddHashes is Add with a caller-supplied hash sequence. It fails with
// ErrInsufficientHashes when fewer than depth hashes are given.
func (s *Sketch) AddHashes(hashes []uint64, delta uint32) (int32, error) {
	if uint32(len(hashes)) < s.depth {
		return 0, fmt.Errorf("%w: got %d hashes, sketch depth is %d", ErrInsufficientHashes, len(hashes), s.depth)
	}
	res := int32(math.MaxInt32)
	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		s.counters[bin] = saturatingAdd(s.counters[bin], delta)
		if s.counters[bin] < res {
			res = s.counters[bin]
		}
	}
	s.elementsAdded += int64(delta)
	return res, nil
}

// Remove decrements the counters for key by delta, mirroring Add with
// saturating subtraction, and returns the minimum post-update counter.
func (s *Sketch) Remove(key string, delta uint32) int32 {
	res, _ := s.RemoveHashes(s.hash.Derive(s.depth, key), delta)
	return res
}

// RemoveHashes is Remove with a caller-supplied hash sequence.
func (s *Sketch) RemoveHashes(hashes []uint64, delta uint32) (int32, error) {
	if uint32(len(hashes)) < s.depth {
		return 0, fmt.Errorf("%w: got %d hashes, sketch depth is %d", ErrInsufficientHashes, len(hashes), s.depth)
	}
	res := int32(math.MaxInt32)
	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		s.counters[bin] = saturatingSub(s.counters[bin], delta)
		if s.counters[bin] < res {
			res = s.counters[bin]
		}
	}
	s.elementsAdded -= int64(delta)
	return res, nil
}

// Check returns the canonical Count-Min estimate for key: the minimum counter
// across all rows. For add-only workloads it never undercounts.
func (s *Sketch) Check(key string) int32 {
	res, _ := s.CheckHashes(s.hash.Derive(s.depth, key))
	return res
}

// CheckHashes is Check with a caller-supplied hash sequence.
func (s *Sketch) CheckHashes(hashes []uint64) (int32, error) {
	if uint32(len(hashes)) < s.depth {
		return 0, fmt.Errorf("%w: got %d hashes, sketch depth is %d", ErrInsufficientHashes, len(hashes), s.depth)
	}
	res := int32(math.MaxInt32)
	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		if s.counters[bin] < res {
			res = s.counters[bin]
		}
	}
	return res, nil
}

// CheckMean returns the integer-truncated average of the row counters for
// key. It trades the no-undercount guarantee for lower variance.
func (s *Sketch) CheckMean(key string) int32 {
	res, _ := s.CheckMeanHashes(s.hash.Derive(s.depth, key))
	return res
}

// CheckMeanHashes is CheckMean with a caller-supplied hash sequence.
func (s *Sketch) CheckMeanHashes(hashes []uint64) (int32, error) {
	if uint32(len(hashes)) < s.depth {
		return 0, fmt.Errorf("%w: got %d hashes, sketch depth is %d", ErrInsufficientHashes, len(hashes), s.depth)
	}
	sum := int64(0)
	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		sum += int64(s.counters[bin])
	}
	return int32(sum / int64(s.depth)), nil
}

// CheckMeanMin returns the median of per-row residual estimates, each row's
// counter reduced by the expected noise from other keys colliding in its bin.
// It reduces the overestimation bias of the plain minimum.
func (s *Sketch) CheckMeanMin(key string) int32 {
	res, _ := s.CheckMeanMinHashes(s.hash.Derive(s.depth, key))
	return res
}

// CheckMeanMinHashes is CheckMeanMin with a caller-supplied hash sequence.
func (s *Sketch) CheckMeanMinHashes(hashes []uint64) (int32, error) {
	if uint32(len(hashes)) < s.depth {
		return 0, fmt.Errorf("%w: got %d hashes, sketch depth is %d", ErrInsufficientHashes, len(hashes), s.depth)
	}
	residuals := make([]int64, s.depth)
	for i := uint32(0); i < s.depth; i++ {
		bin := uint32(hashes[i]%uint64(s.width)) + i*s.width
		val := int64(s.counters[bin])
		if s.width > 1 {
			val -= (s.elementsAdded - val) / int64(s.width-1)
		}
		residuals[i] = val
	}
	slices.Sort(residuals)
	n := len(residuals)
	var median int64
	if n%2 == 0 {
		median = (residuals[n/2] + residuals[n/2-1]) / 2
	} else {
		median = residuals[n/2]
	}
	return clampInt32(median), nil
}

// Clear zeroes every counter and resets the added-element accumulator,
// keeping the dimensions and strategy.
func (s *Sketch) Clear() {
	clear(s.counters)
	s.elementsAdded = 0
}

// Destroy releases the counter table and resets the sketch to the zero
// state. Repeated calls are no-ops; a destroyed sketch must be reinitialized
// before use.
func (s *Sketch) Destroy() {
	s.counters = nil
	s.hash = nil
	s.width = 0
	s.depth = 0
	s.confidence = 0
	s.errorRate = 0
	s.elementsAdded = 0
}

// Copy returns a deep copy sharing only the hash strategy instance, so the
// copy remains merge-compatible with the original.
func (s *Sketch) Copy() *Sketch {
	clone := *s
	clone.counters = slices.Clone(s.counters)
	return &clone
}

// Counters pinned at either int32 bound stay pinned; later updates in the
// opposite direction do not unpin them.

func saturatingAdd(a int32, delta uint32) int32 {
	if a == math.MaxInt32 || a == math.MinInt32 {
		return a
	}
	c := int64(a) + int64(delta)
	if c > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(c)
}

func saturatingSub(a int32, delta uint32) int32 {
	if a == math.MaxInt32 || a == math.MinInt32 {
		return a
	}
	c := int64(a) - int64(delta)
	if c < math.MinInt32 {
		return math.MinInt32
	}
	return int32(c)
}

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
