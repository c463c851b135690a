package freq

import (
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/model"
	"math"
	"strings"
	"testing"
	"time"
)

func newTestTask(t *testing.T, watchKeys ...string) *Task {
	t.Helper()
	task, err := New(config.TrackerTaskDef{
		Name:      "test_task",
		Width:     1000,
		Depth:     5,
		WatchKeys: watchKeys,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return task
}

func TestTaskProcessEvent(t *testing.T) {
	task := newTestTask(t)

	for i := 0; i < 10; i++ {
		task.ProcessEvent(&model.Event{Timestamp: time.Now(), Key: "10.0.0.1", Weight: 1})
	}
	task.ProcessEvent(&model.Event{Timestamp: time.Now(), Key: "10.0.0.2", Weight: 7})

	if got := task.Estimate("10.0.0.1"); got != 10 {
		t.Errorf("Estimate(10.0.0.1) = %d, want 10", got)
	}
	if got := task.Estimate("10.0.0.2"); got != 7 {
		t.Errorf("Estimate(10.0.0.2) = %d, want 7", got)
	}
}

func TestTaskNegativeWeightRemoves(t *testing.T) {
	task := newTestTask(t)

	task.ProcessEvent(&model.Event{Key: "flow", Weight: 10})
	task.ProcessEvent(&model.Event{Key: "flow", Weight: -4})

	if got := task.Estimate("flow"); got != 6 {
		t.Errorf("Estimate after removal = %d, want 6", got)
	}
}

func TestTaskExtremeWeightsClamp(t *testing.T) {
	task := newTestTask(t)

	// A weight beyond uint32 range clamps instead of truncating.
	task.ProcessEvent(&model.Event{Key: "big", Weight: math.MaxInt64})
	if got := task.Estimate("big"); got != math.MaxInt32 {
		t.Errorf("Estimate(big) = %d, want %d", got, int32(math.MaxInt32))
	}

	// math.MinInt64 cannot be negated; the removal must still land.
	task.ProcessEvent(&model.Event{Key: "flow", Weight: 10})
	task.ProcessEvent(&model.Event{Key: "flow", Weight: math.MinInt64})
	if got := task.Estimate("flow"); got != math.MinInt32 {
		t.Errorf("Estimate(flow) = %d, want %d (removal must not be dropped)", got, int32(math.MinInt32))
	}
}

func TestTaskOptimalSizing(t *testing.T) {
	task, err := New(config.TrackerTaskDef{
		Name:       "optimal",
		ErrorRate:  0.001,
		Confidence: 0.96875,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snapshot := task.Snapshot().(TaskSnapshot)
	if snapshot.Width != 2000 {
		t.Errorf("width = %d, want 2000", snapshot.Width)
	}
	if snapshot.Depth != 5 {
		t.Errorf("depth = %d, want 5", snapshot.Depth)
	}
}

func TestTaskRejectsBadConfig(t *testing.T) {
	if _, err := New(config.TrackerTaskDef{Name: "bad"}); err == nil {
		t.Fatal("expected error for task with no sizing parameters")
	}
}

func TestTaskSnapshotContainsWatchedKeys(t *testing.T) {
	task := newTestTask(t, "alpha", "beta")

	task.ProcessEvent(&model.Event{Key: "alpha", Weight: 3})
	task.ProcessEvent(&model.Event{Key: "beta", Weight: 5})
	task.ProcessEvent(&model.Event{Key: "gamma", Weight: 9})

	snapshot := task.Snapshot().(TaskSnapshot)
	if snapshot.TaskName != "test_task" {
		t.Errorf("TaskName = %q, want test_task", snapshot.TaskName)
	}
	if snapshot.ElementsAdded != 17 {
		t.Errorf("ElementsAdded = %d, want 17", snapshot.ElementsAdded)
	}
	if len(snapshot.Estimates) != 2 {
		t.Fatalf("len(Estimates) = %d, want 2", len(snapshot.Estimates))
	}

	byKey := make(map[string]KeyEstimate)
	for _, est := range snapshot.Estimates {
		byKey[est.Key] = est
	}
	if byKey["alpha"].CountMin != 3 {
		t.Errorf("alpha CountMin = %d, want 3", byKey["alpha"].CountMin)
	}
	if byKey["beta"].CountMin != 5 {
		t.Errorf("beta CountMin = %d, want 5", byKey["beta"].CountMin)
	}
}

func TestTaskSnapshotIsIndependent(t *testing.T) {
	task := newTestTask(t)
	task.ProcessEvent(&model.Event{Key: "key", Weight: 1})

	snapshot := task.Snapshot().(TaskSnapshot)
	task.ProcessEvent(&model.Event{Key: "key", Weight: 1})

	if got := snapshot.Sketch.Check("key"); got != 1 {
		t.Errorf("snapshot sketch estimate = %d, want 1 (must not see later events)", got)
	}
}

func TestTaskReset(t *testing.T) {
	task := newTestTask(t)
	task.ProcessEvent(&model.Event{Key: "key", Weight: 100})

	task.Reset()

	if got := task.Estimate("key"); got != 0 {
		t.Errorf("Estimate after reset = %d, want 0", got)
	}
	snapshot := task.Snapshot().(TaskSnapshot)
	if snapshot.ElementsAdded != 0 {
		t.Errorf("ElementsAdded after reset = %d, want 0", snapshot.ElementsAdded)
	}
}

func TestTaskAlerterMsg(t *testing.T) {
	task := newTestTask(t, "hot")
	for i := 0; i < 20; i++ {
		task.ProcessEvent(&model.Event{Key: "hot", Weight: 1})
	}

	rules := []config.AlerterRule{
		{Name: "hot key", TaskName: "test_task", Key: "hot", Threshold: 10, Operator: ">"},
		{Name: "other task", TaskName: "another_task", Key: "hot", Threshold: 1, Operator: ">"},
		{Name: "not exceeded", TaskName: "test_task", Key: "hot", Threshold: 1000, Operator: ">"},
	}

	msg := task.AlerterMsg(rules)
	if !strings.Contains(msg, "hot key") {
		t.Errorf("alert message should contain triggered rule name, got: %q", msg)
	}
	if strings.Contains(msg, "other task") {
		t.Errorf("alert message should not contain rules for other tasks, got: %q", msg)
	}
	if strings.Contains(msg, "not exceeded") {
		t.Errorf("alert message should not contain rules below threshold, got: %q", msg)
	}
}
