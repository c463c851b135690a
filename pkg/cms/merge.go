package cms

import (
	"fmt"
	"math"
)

// Merge builds a new sketch from the given sources: dimensions, strategy,
// error rate and confidence are copied from the first source, then every
// source's counters and elementsAdded are combined into it. All sources must
// share identical width, depth and hash strategy instance; validation runs
// fully before any allocation or mutation.
func Merge(sketches ...*Sketch) (*Sketch, error) {
	if len(sketches) == 0 {
		return nil, fmt.Errorf("%w: no sketches to merge", ErrInvalidParameter)
	}
	base := sketches[0]
	if err := validateMerge(base, sketches[1:]); err != nil {
		return nil, err
	}
	dst, err := New(base.width, base.depth, base.hash)
	if err != nil {
		return nil, err
	}
	dst.errorRate = base.errorRate
	dst.confidence = base.confidence
	combine(dst, sketches)
	return dst, nil
}

// MergeInto combines the sources directly into dst. On any compatibility
// mismatch the whole operation fails with ErrIncompatibleSketches and no
// sketch is modified.
func MergeInto(dst *Sketch, srcs ...*Sketch) error {
	if dst == nil {
		return fmt.Errorf("%w: nil merge target", ErrInvalidParameter)
	}
	if err := validateMerge(dst, srcs); err != nil {
		return err
	}
	combine(dst, srcs)
	return nil
}

func validateMerge(base *Sketch, others []*Sketch) error {
	for _, other := range others {
		if other == nil {
			return fmt.Errorf("%w: nil sketch in merge", ErrInvalidParameter)
		}
		if base.width != other.width {
			return fmt.Errorf("%w: width mismatch (%d vs %d)", ErrIncompatibleSketches, base.width, other.width)
		}
		if base.depth != other.depth {
			return fmt.Errorf("%w: depth mismatch (%d vs %d)", ErrIncompatibleSketches, base.depth, other.depth)
		}
		if base.hash != other.hash {
			return fmt.Errorf("%w: different hash strategy instances", ErrIncompatibleSketches)
		}
	}
	return nil
}

func combine(dst *Sketch, srcs []*Sketch) {
	for _, src := range srcs {
		dst.elementsAdded += src.elementsAdded
		for bin := range dst.counters {
			dst.counters[bin] = saturatingCombine(dst.counters[bin], src.counters[bin])
		}
	}
}

func saturatingCombine(a, b int32) int32 {
	if a == math.MaxInt32 || a == math.MinInt32 {
		return a
	}
	c := int64(a) + int64(b)
	return clampInt32(c)
}
