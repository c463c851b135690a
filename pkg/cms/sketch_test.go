package cms

import (
	"errors"
	"math"
	"testing"
)

func TestNewDerivesRates(t *testing.T) {
	s, err := New(1000, 5, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Width() != 1000 || s.Depth() != 5 {
		t.Fatalf("unexpected dimensions: width=%d depth=%d", s.Width(), s.Depth())
	}
	if s.ErrorRate() != 2.0/1000 {
		t.Errorf("expected error rate %g, got %g", 2.0/1000, s.ErrorRate())
	}
	if s.Confidence() != 1-1/math.Pow(2, 5) {
		t.Errorf("expected confidence %g, got %g", 1-1/math.Pow(2, 5), s.Confidence())
	}
	if s.ElementsAdded() != 0 {
		t.Errorf("fresh sketch should have 0 elements added, got %d", s.ElementsAdded())
	}
}

func TestNewOptimalDerivesDimensions(t *testing.T) {
	s, err := NewOptimal(0.001, 0.96875, nil)
	if err != nil {
		t.Fatalf("NewOptimal failed: %v", err)
	}
	if s.Width() != 2000 {
		t.Errorf("expected width 2000, got %d", s.Width())
	}
	if s.Depth() != 5 {
		t.Errorf("expected depth 5, got %d", s.Depth())
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name         string
		width, depth uint32
	}{
		{"zero width", 0, 5},
		{"zero depth", 1000, 0},
		{"both zero", 0, 0},
	}
	for _, tc := range cases {
		if _, err := New(tc.width, tc.depth, nil); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter, got %v", tc.name, err)
		}
	}

	if _, err := NewOptimal(0, 0.9, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero error rate: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := NewOptimal(0.01, -1, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative confidence: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := NewOptimal(0.01, 1, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("confidence 1: expected ErrInvalidParameter, got %v", err)
	}
}

func TestNewRejectsOversizedTable(t *testing.T) {
	if _, err := New(math.MaxUint32, math.MaxUint32, nil); !errors.Is(err, ErrTableTooLarge) {
		t.Fatalf("expected ErrTableTooLarge, got %v", err)
	}
}

// The reference scenario: ten unit additions of one key must check back as
// exactly ten, since no other key touches its bins.
func TestAddThenCheckExact(t *testing.T) {
	s, err := New(10000, 7, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 1; i <= 10; i++ {
		if got := s.Add("this is a test", 1); got != int32(i) {
			t.Fatalf("add %d returned %d", i, got)
		}
	}
	if got := s.Check("this is a test"); got != 10 {
		t.Errorf("expected check to return 10, got %d", got)
	}
	if s.ElementsAdded() != 10 {
		t.Errorf("expected 10 elements added, got %d", s.ElementsAdded())
	}
}

func TestCheckIsMonotoneUpperBound(t *testing.T) {
	s, _ := New(1 << 12, 4, nil)
	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	truth := make(map[string]int32)
	for round := 0; round < 50; round++ {
		for i, key := range keys {
			before := s.Check(key)
			delta := uint32(i + 1)
			s.Add(key, delta)
			truth[key] += int32(delta)
			after := s.Check(key)
			if after < before {
				t.Fatalf("check(%q) decreased after add: %d -> %d", key, before, after)
			}
		}
	}
	for key, want := range truth {
		if got := s.Check(key); got < want {
			t.Errorf("check(%q) undercounts: got %d, true count %d", key, got, want)
		}
	}
}

func TestRemoveMirrorsAdd(t *testing.T) {
	s, _ := New(10000, 7, nil)
	s.Add("key", 7)
	if got := s.Remove("key", 3); got != 4 {
		t.Errorf("expected remove to return 4, got %d", got)
	}
	if got := s.Check("key"); got != 4 {
		t.Errorf("expected check to return 4 after removal, got %d", got)
	}
	if s.ElementsAdded() != 4 {
		t.Errorf("expected elements added 4, got %d", s.ElementsAdded())
	}
	s.Remove("key", 10)
	if got := s.Check("key"); got != -6 {
		t.Errorf("expected check to return -6, got %d", got)
	}
}

func TestEstimatorsOnSingleKey(t *testing.T) {
	s, _ := New(10000, 7, nil)
	for i := 0; i < 100; i++ {
		s.Add("only key", 1)
	}
	if got := s.Check("only key"); got != 100 {
		t.Errorf("check: expected 100, got %d", got)
	}
	if got := s.CheckMean("only key"); got != 100 {
		t.Errorf("check mean: expected 100, got %d", got)
	}
	// With a single key the per-row noise term is zero, so the mean-min
	// residual median equals the true count.
	if got := s.CheckMeanMin("only key"); got != 100 {
		t.Errorf("check mean-min: expected 100, got %d", got)
	}
}

func TestCheckMeanMinReducesBias(t *testing.T) {
	s, _ := New(128, 5, nil)
	for i := 0; i < 1000; i++ {
		s.Add(string(rune('a'+i%26))+"-noise", uint32(i%7+1))
	}
	s.Add("target", 50)
	min := s.Check("target")
	meanMin := s.CheckMeanMin("target")
	if meanMin > min {
		t.Errorf("mean-min estimate %d should not exceed min estimate %d", meanMin, min)
	}
}

func TestInsufficientHashes(t *testing.T) {
	s, _ := New(100, 5, nil)
	short := []uint64{1, 2, 3}

	if _, err := s.AddHashes(short, 1); !errors.Is(err, ErrInsufficientHashes) {
		t.Errorf("AddHashes: expected ErrInsufficientHashes, got %v", err)
	}
	if _, err := s.RemoveHashes(short, 1); !errors.Is(err, ErrInsufficientHashes) {
		t.Errorf("RemoveHashes: expected ErrInsufficientHashes, got %v", err)
	}
	if _, err := s.CheckHashes(short); !errors.Is(err, ErrInsufficientHashes) {
		t.Errorf("CheckHashes: expected ErrInsufficientHashes, got %v", err)
	}
	if _, err := s.CheckMeanHashes(short); !errors.Is(err, ErrInsufficientHashes) {
		t.Errorf("CheckMeanHashes: expected ErrInsufficientHashes, got %v", err)
	}
	if _, err := s.CheckMeanMinHashes(short); !errors.Is(err, ErrInsufficientHashes) {
		t.Errorf("CheckMeanMinHashes: expected ErrInsufficientHashes, got %v", err)
	}

	if s.ElementsAdded() != 0 {
		t.Errorf("rejected operations must not change the sketch, elements added = %d", s.ElementsAdded())
	}
}

func TestAddByHashesMatchesAddByKey(t *testing.T) {
	byKey, _ := New(500, 4, nil)
	byHashes, _ := New(500, 4, nil)

	hashes := byHashes.Hashes("shared key")
	byKey.Add("shared key", 9)
	if _, err := byHashes.AddHashes(hashes, 9); err != nil {
		t.Fatalf("AddHashes failed: %v", err)
	}

	if a, b := byKey.Check("shared key"), byHashes.Check("shared key"); a != b {
		t.Errorf("estimates diverge: by key %d, by hashes %d", a, b)
	}
}

func TestSaturationClampsWithoutWrapping(t *testing.T) {
	s, _ := New(16, 1, nil)
	s.Add("hot", math.MaxInt32)
	if got := s.Check("hot"); got != math.MaxInt32 {
		t.Fatalf("expected counter at MaxInt32, got %d", got)
	}
	s.Add("hot", math.MaxInt32)
	if got := s.Check("hot"); got != math.MaxInt32 {
		t.Errorf("counter wrapped past MaxInt32: %d", got)
	}

	// A pinned counter stays pinned, matching the saturating contract.
	s.Remove("hot", 1)
	if got := s.Check("hot"); got != math.MaxInt32 {
		t.Errorf("pinned counter moved on remove: %d", got)
	}

	u, _ := New(16, 1, nil)
	u.Remove("cold", math.MaxInt32)
	u.Remove("cold", math.MaxInt32)
	if got := u.Check("cold"); got != math.MinInt32 {
		t.Errorf("counter wrapped past MinInt32: %d", got)
	}
}

func TestClearResetsCounters(t *testing.T) {
	s, _ := New(1000, 4, nil)
	for i := 0; i < 10; i++ {
		s.Add("key", 5)
	}
	s.Clear()
	if got := s.Check("key"); got != 0 {
		t.Errorf("expected 0 after clear, got %d", got)
	}
	if s.ElementsAdded() != 0 {
		t.Errorf("expected 0 elements added after clear, got %d", s.ElementsAdded())
	}
	if s.Width() != 1000 || s.Depth() != 4 {
		t.Errorf("clear must keep dimensions, got width=%d depth=%d", s.Width(), s.Depth())
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	s, _ := New(1000, 4, nil)
	s.Add("key", 5)
	s.Destroy()
	if s.Width() != 0 || s.Depth() != 0 || s.ElementsAdded() != 0 {
		t.Errorf("destroyed sketch not zeroed: width=%d depth=%d elements=%d", s.Width(), s.Depth(), s.ElementsAdded())
	}
	if s.Strategy() != nil {
		t.Errorf("destroyed sketch still references a hash strategy")
	}
	s.Destroy() // second call must be a safe no-op
}

func TestCopyIsIndependentButCompatible(t *testing.T) {
	s, _ := New(1000, 4, nil)
	s.Add("key", 5)

	c := s.Copy()
	if got := c.Check("key"); got != 5 {
		t.Fatalf("copy lost counters: got %d", got)
	}
	c.Add("key", 1)
	if got := s.Check("key"); got != 5 {
		t.Errorf("mutating the copy changed the original: got %d", got)
	}
	if c.Strategy() != s.Strategy() {
		t.Errorf("copy must share the hash strategy instance")
	}
}
