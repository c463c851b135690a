package cms

import (
	"errors"
	"math"
	"testing"
)

func TestMergeCombinesCounters(t *testing.T) {
	a, _ := New(1000, 4, nil)
	b, _ := New(1000, 4, nil)
	a.Add("shared", 3)
	b.Add("shared", 4)
	b.Add("only b", 2)

	m, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if got := m.Check("shared"); got != 7 {
		t.Errorf("expected merged estimate 7, got %d", got)
	}
	if got := m.Check("only b"); got != 2 {
		t.Errorf("expected merged estimate 2, got %d", got)
	}
	if m.ElementsAdded() != 9 {
		t.Errorf("expected merged elements added 9, got %d", m.ElementsAdded())
	}
	// Sources stay untouched.
	if a.Check("shared") != 3 || b.Check("shared") != 4 {
		t.Errorf("merge mutated its sources")
	}
}

func TestMergeWithZeroSketchIsIdentity(t *testing.T) {
	s, _ := New(1000, 4, nil)
	for i := 0; i < 20; i++ {
		s.Add("key", uint32(i+1))
	}
	zero, _ := New(1000, 4, nil)

	m, err := Merge(s, zero)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if m.ElementsAdded() != s.ElementsAdded() {
		t.Errorf("elements added changed: %d vs %d", m.ElementsAdded(), s.ElementsAdded())
	}
	for bin, v := range s.counters {
		if m.counters[bin] != v {
			t.Fatalf("counter %d changed: %d vs %d", bin, m.counters[bin], v)
		}
	}
}

func TestMergeAssociativity(t *testing.T) {
	a, _ := New(500, 3, nil)
	b, _ := New(500, 3, nil)
	c, _ := New(500, 3, nil)
	a.Add("x", 1)
	b.Add("y", 2)
	c.Add("z", 3)
	c.Add("x", 4)

	all, err := Merge(a, b, c)
	if err != nil {
		t.Fatalf("Merge(a, b, c) failed: %v", err)
	}
	ab, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge(a, b) failed: %v", err)
	}
	if err := MergeInto(ab, c); err != nil {
		t.Fatalf("MergeInto failed: %v", err)
	}

	if all.ElementsAdded() != ab.ElementsAdded() {
		t.Errorf("elements added diverge: %d vs %d", all.ElementsAdded(), ab.ElementsAdded())
	}
	for bin := range all.counters {
		if all.counters[bin] != ab.counters[bin] {
			t.Fatalf("counter %d diverges: %d vs %d", bin, all.counters[bin], ab.counters[bin])
		}
	}
}

func TestMergeIntoAccumulatesTarget(t *testing.T) {
	dst, _ := New(1000, 4, nil)
	src, _ := New(1000, 4, nil)
	dst.Add("key", 5)
	src.Add("key", 6)

	if err := MergeInto(dst, src); err != nil {
		t.Fatalf("MergeInto failed: %v", err)
	}
	if got := dst.Check("key"); got != 11 {
		t.Errorf("expected 11 after merge-into, got %d", got)
	}
	if dst.ElementsAdded() != 11 {
		t.Errorf("expected elements added 11, got %d", dst.ElementsAdded())
	}
}

func TestMergeRejectsIncompatibleSketches(t *testing.T) {
	a, _ := New(1000, 4, nil)
	a.Add("key", 1)

	wrongWidth, _ := New(500, 4, nil)
	wrongWidth.Add("key", 1)
	if _, err := Merge(a, wrongWidth); !errors.Is(err, ErrIncompatibleSketches) {
		t.Errorf("width mismatch: expected ErrIncompatibleSketches, got %v", err)
	}

	wrongDepth, _ := New(1000, 5, nil)
	if _, err := Merge(a, wrongDepth); !errors.Is(err, ErrIncompatibleSketches) {
		t.Errorf("depth mismatch: expected ErrIncompatibleSketches, got %v", err)
	}

	otherStrategy, _ := New(1000, 4, &fnvStrategy{})
	if _, err := Merge(a, otherStrategy); !errors.Is(err, ErrIncompatibleSketches) {
		t.Errorf("strategy mismatch: expected ErrIncompatibleSketches, got %v", err)
	}

	// Failed merges leave every input unchanged.
	if a.Check("key") != 1 || wrongWidth.Check("key") != 1 {
		t.Errorf("failed merge mutated an input sketch")
	}
	if err := MergeInto(a, wrongWidth); !errors.Is(err, ErrIncompatibleSketches) {
		t.Errorf("MergeInto width mismatch: expected ErrIncompatibleSketches, got %v", err)
	}
	if a.Check("key") != 1 {
		t.Errorf("failed MergeInto mutated the target")
	}
}

func TestMergeDistinguishesStrategyInstances(t *testing.T) {
	// Equal behavior is not enough: compatibility requires the same instance.
	first := &fnvStrategy{}
	second := &fnvStrategy{}
	if HashStrategy(first) == HashStrategy(second) {
		t.Fatal("separate strategy instances compare equal")
	}

	a, _ := New(1000, 4, first)
	b, _ := New(1000, 4, second)
	if _, err := Merge(a, b); !errors.Is(err, ErrIncompatibleSketches) {
		t.Errorf("expected ErrIncompatibleSketches for separate instances, got %v", err)
	}

	shared, _ := New(1000, 4, first)
	if _, err := Merge(a, shared); err != nil {
		t.Errorf("expected shared instance to merge, got %v", err)
	}
}

func TestMergeSaturates(t *testing.T) {
	a, _ := New(16, 1, nil)
	b, _ := New(16, 1, nil)
	a.Add("hot", math.MaxInt32-1)
	b.Add("hot", math.MaxInt32-1)

	m, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if got := m.Check("hot"); got != math.MaxInt32 {
		t.Errorf("expected merged counter clamped at MaxInt32, got %d", got)
	}
}

func TestMergeRequiresAtLeastOneSketch(t *testing.T) {
	if _, err := Merge(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
	if err := MergeInto(nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for nil target, got %v", err)
	}
}
