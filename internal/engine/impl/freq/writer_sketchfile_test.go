package freq

import (
	"Go2FreqSpectra/pkg/cms"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSketchFileWriter(t *testing.T) {
	rootPath := t.TempDir()

	sketch, err := cms.New(500, 4, nil)
	if err != nil {
		t.Fatalf("cms.New failed: %v", err)
	}
	sketch.Add("10.0.0.1", 12)
	sketch.Add("10.0.0.2", 3)

	snapshot := TaskSnapshot{
		TaskName:      "writer_test",
		Width:         sketch.Width(),
		Depth:         sketch.Depth(),
		ElementsAdded: sketch.ElementsAdded(),
		Estimates: []KeyEstimate{
			{Key: "10.0.0.1", CountMin: 12, Mean: 12, MeanMin: 12},
			{Key: "10.0.0.2", CountMin: 3, Mean: 3, MeanMin: 3},
		},
		Sketch: sketch,
	}

	writer := NewSketchFileWriter(rootPath, time.Minute)
	if writer.GetInterval() != time.Minute {
		t.Errorf("GetInterval = %v, want 1m", writer.GetInterval())
	}

	timestamp := "2026-01-02_15-04-05"
	if err := writer.Write(snapshot, timestamp, "writer_test"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	taskDir := filepath.Join(rootPath, timestamp, "writer_test")

	// The binary sketch round-trips through Import.
	sketchFile, err := os.Open(filepath.Join(taskDir, "sketch.cms"))
	if err != nil {
		t.Fatalf("sketch.cms missing: %v", err)
	}
	defer sketchFile.Close()

	restored, err := cms.Import(sketchFile, nil)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if restored.ElementsAdded() != 15 {
		t.Errorf("restored ElementsAdded = %d, want 15", restored.ElementsAdded())
	}
	if got := restored.Check("10.0.0.1"); got != 12 {
		t.Errorf("restored estimate = %d, want 12", got)
	}

	// The summary reflects the snapshot metadata.
	summaryBytes, err := os.ReadFile(filepath.Join(taskDir, "summary.json"))
	if err != nil {
		t.Fatalf("summary.json missing: %v", err)
	}
	var summary SummaryData
	if err := json.Unmarshal(summaryBytes, &summary); err != nil {
		t.Fatalf("failed to decode summary.json: %v", err)
	}
	if summary.TaskName != "writer_test" || summary.Width != 500 || summary.Depth != 4 || summary.ElementsAdded != 15 {
		t.Errorf("unexpected summary: %+v", summary)
	}

	// The watched-key estimates land in estimates.txt.
	estimates, err := os.ReadFile(filepath.Join(taskDir, "estimates.txt"))
	if err != nil {
		t.Fatalf("estimates.txt missing: %v", err)
	}
	want := "10.0.0.1 12 12 12\n10.0.0.2 3 3 3\n"
	if string(estimates) != want {
		t.Errorf("estimates.txt = %q, want %q", string(estimates), want)
	}
}

func TestSketchFileWriterRejectsWrongPayload(t *testing.T) {
	writer := NewSketchFileWriter(t.TempDir(), time.Second)
	if err := writer.Write("not a snapshot", "2026-01-02_15-04-05", "bad"); err == nil {
		t.Fatal("expected error for wrong payload type")
	}
}
