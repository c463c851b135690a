package freq

import (
	"Go2FreqSpectra/internal/model"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// SummaryData holds the metadata written next to each sketch file.
type SummaryData struct {
	TaskName      string `json:"task_name"`
	Width         uint32 `json:"width"`
	Depth         uint32 `json:"depth"`
	ElementsAdded int64  `json:"elements_added"`
	WatchedKeys   int    `json:"watched_keys"`
	Timestamp     string `json:"timestamp"`
}

// SketchFileWriter persists snapshots to disk: the full sketch in its binary
// export format, the watched-key estimates as text, and a summary.json.
// It implements the model.Writer interface.
type SketchFileWriter struct {
	rootPath string
	interval time.Duration
}

// NewSketchFileWriter creates a new writer for binary sketch snapshots.
func NewSketchFileWriter(rootPath string, interval time.Duration) model.Writer {
	return &SketchFileWriter{rootPath: rootPath, interval: interval}
}

// GetInterval returns the configured snapshot interval for this writer.
func (w *SketchFileWriter) GetInterval() time.Duration {
	return w.interval
}

// Write serializes a single task snapshot into a timestamped directory.
// It expects the payload to be of type TaskSnapshot.
func (w *SketchFileWriter) Write(payload interface{}, timestamp, name string) error {
	snapshot, ok := payload.(TaskSnapshot)
	if !ok {
		return fmt.Errorf("invalid payload type for SketchFileWriter: expected TaskSnapshot, got %T", payload)
	}

	// Timestamped directory with a per-task subdirectory to avoid file name
	// collisions.
	snapshotDir := filepath.Join(w.rootPath, timestamp)
	taskDir := filepath.Join(snapshotDir, name)
	if err := os.MkdirAll(taskDir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// 1. The sketch itself, in the binary export format.
	sketchPath := filepath.Join(taskDir, "sketch.cms")
	sketchFile, err := os.Create(sketchPath)
	if err != nil {
		return fmt.Errorf("failed to create sketch file '%s': %w", sketchPath, err)
	}
	defer sketchFile.Close()

	if err := snapshot.Sketch.Export(sketchFile); err != nil {
		return fmt.Errorf("failed to export sketch to '%s': %w", sketchPath, err)
	}

	// 2. Watched-key estimates as one line per key.
	if len(snapshot.Estimates) > 0 {
		estimatesPath := filepath.Join(taskDir, "estimates.txt")
		estimatesFile, err := os.Create(estimatesPath)
		if err != nil {
			return fmt.Errorf("failed to create estimates file '%s': %w", estimatesPath, err)
		}
		defer estimatesFile.Close()

		for _, est := range snapshot.Estimates {
			line := fmt.Sprintf("%s %d %d %d\n", est.Key, est.CountMin, est.Mean, est.MeanMin)
			if _, err := estimatesFile.WriteString(line); err != nil {
				return fmt.Errorf("failed to write estimate to file: %w", err)
			}
		}
	}

	// 3. Summary metadata.
	summary := SummaryData{
		TaskName:      snapshot.TaskName,
		Width:         snapshot.Width,
		Depth:         snapshot.Depth,
		ElementsAdded: snapshot.ElementsAdded,
		WatchedKeys:   len(snapshot.Estimates),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	summaryPath := filepath.Join(taskDir, "summary.json")
	summaryFile, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer summaryFile.Close()

	jsonEncoder := json.NewEncoder(summaryFile)
	jsonEncoder.SetIndent("", "  ")
	if err := jsonEncoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary to json: %w", err)
	}

	log.Printf("Wrote sketch snapshot for task '%s' to %s", name, taskDir)
	return nil
}
