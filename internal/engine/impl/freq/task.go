package freq

import (
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/factory"
	"Go2FreqSpectra/internal/model"
	"Go2FreqSpectra/pkg/cms"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// --- Factory Registration ---

func init() {
	factory.RegisterTracker("cms", func(cfg *config.Config) (*factory.TaskGroup, error) {
		cmsCfg := cfg.Tracker.CMS

		// Create all enabled writers for this tracker group
		writers := make([]model.Writer, 0, len(cmsCfg.Writers))
		for _, writerDef := range cmsCfg.Writers {
			if !writerDef.Enabled {
				continue
			}

			interval, err := time.ParseDuration(writerDef.SnapshotInterval)
			if err != nil {
				log.Printf("Warning: invalid snapshot_interval for writer type '%s': %v, skipping.", writerDef.Type, err)
				continue
			}

			var writer model.Writer
			switch writerDef.Type {
			case "sketchfile":
				writer = NewSketchFileWriter(writerDef.SketchFile.RootPath, interval)
				log.Printf("Sketch file writer created at %s", writerDef.SketchFile.RootPath)
			case "clickhouse":
				writer, err = NewClickHouseWriter(writerDef.ClickHouse, interval)
				if err != nil {
					log.Printf("Warning: failed to create writer type '%s': %v, skipping.", writerDef.Type, err)
					continue
				}
				log.Printf("ClickHouse writer created for database %s at %s:%d", writerDef.ClickHouse.Database, writerDef.ClickHouse.Host, writerDef.ClickHouse.Port)
			default:
				log.Printf("Warning: unknown writer type '%s' in cms tracker config, skipping.", writerDef.Type)
				continue
			}
			writers = append(writers, writer)
		}

		// Create all tasks for this tracker group
		tasks := make([]model.Task, len(cmsCfg.Tasks))
		for i, taskCfg := range cmsCfg.Tasks {
			task, err := New(taskCfg)
			if err != nil {
				return nil, fmt.Errorf("failed to create task '%s': %w", taskCfg.Name, err)
			}
			tasks[i] = task
		}

		return &factory.TaskGroup{Tasks: tasks, Writers: writers}, nil
	})
}

// --- Task Implementation ---

// KeyEstimate carries the three estimator readings for one watched key.
type KeyEstimate struct {
	Key      string
	CountMin int32
	Mean     int32
	MeanMin  int32
}

// TaskSnapshot is the payload handed to writers: per-key estimates for the
// watched keys plus an independent copy of the sketch itself.
type TaskSnapshot struct {
	TaskName      string
	Width         uint32
	Depth         uint32
	ElementsAdded int64
	Estimates     []KeyEstimate
	Sketch        *cms.Sketch
}

// Task tracks key frequencies with a count-min sketch. The sketch itself is
// single-threaded; the task mutex supplies the external mutual exclusion the
// engine's worker pool needs.
type Task struct {
	name      string
	watchKeys []string

	mu     sync.Mutex
	sketch *cms.Sketch
}

// New creates a new cms tracker task based on the provided configuration.
// Analytic targets (error_rate/confidence) take precedence over explicit
// dimensions when both are configured.
func New(cfg config.TrackerTaskDef) (*Task, error) {
	var (
		sketch *cms.Sketch
		err    error
	)
	if cfg.ErrorRate > 0 && cfg.Confidence > 0 {
		sketch, err = cms.NewOptimal(cfg.ErrorRate, cfg.Confidence, nil)
		if err != nil {
			return nil, err
		}
		log.Printf("Creating cms task '%s' from error_rate %g, confidence %g -> width %d, depth %d, watching %d keys",
			cfg.Name, cfg.ErrorRate, cfg.Confidence, sketch.Width(), sketch.Depth(), len(cfg.WatchKeys))
	} else {
		sketch, err = cms.New(cfg.Width, cfg.Depth, nil)
		if err != nil {
			return nil, err
		}
		log.Printf("Creating cms task '%s' with width %d, depth %d, watching %d keys",
			cfg.Name, sketch.Width(), sketch.Depth(), len(cfg.WatchKeys))
	}

	return &Task{
		name:      cfg.Name,
		watchKeys: cfg.WatchKeys,
		sketch:    sketch,
	}, nil
}

// Name returns the name of the task.
func (t *Task) Name() string {
	return t.name
}

// ProcessEvent folds a single event into the sketch. A negative weight is a
// removal of previously added weight.
func (t *Task) ProcessEvent(ev *model.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ev.Weight >= 0 {
		t.sketch.Add(ev.Key, clampWeight(ev.Weight))
	} else {
		t.sketch.Remove(ev.Key, clampWeight(ev.Weight))
	}
}

// Estimate returns the live count-min estimate for key.
func (t *Task) Estimate(key string) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sketch.Check(key)
}

// Snapshot returns a TaskSnapshot with the watched-key estimates and a deep
// copy of the sketch, safe to persist while processing continues.
func (t *Task) Snapshot() interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	estimates := make([]KeyEstimate, len(t.watchKeys))
	for i, key := range t.watchKeys {
		estimates[i] = KeyEstimate{
			Key:      key,
			CountMin: t.sketch.Check(key),
			Mean:     t.sketch.CheckMean(key),
			MeanMin:  t.sketch.CheckMeanMin(key),
		}
	}

	return TaskSnapshot{
		TaskName:      t.name,
		Width:         t.sketch.Width(),
		Depth:         t.sketch.Depth(),
		ElementsAdded: t.sketch.ElementsAdded(),
		Estimates:     estimates,
		Sketch:        t.sketch.Copy(),
	}
}

// Reset clears the sketch, preparing for a new measurement period.
func (t *Task) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sketch.Clear()
}

// AlerterMsg evaluates the given rules against the live watched-key
// estimates and returns an HTML fragment describing the triggered ones.
func (t *Task) AlerterMsg(rules []config.AlerterRule) string {
	snapshot, ok := t.Snapshot().(TaskSnapshot)
	if !ok {
		return ""
	}

	var triggeredMessages []string

	for _, rule := range rules {
		if rule.TaskName != t.name {
			continue
		}

		var hits []string
		for _, est := range snapshot.Estimates {
			if rule.Key != "" && rule.Key != est.Key {
				continue
			}
			if check(float64(est.CountMin), rule.Threshold, rule.Operator) {
				hits = append(hits, fmt.Sprintf("<tr><td><code>%s</code></td><td>%d</td></tr>", est.Key, est.CountMin))
			}
		}

		if len(hits) > 0 {
			itemsTable := fmt.Sprintf("<table border=\"1\" cellpadding=\"5\" cellspacing=\"0\">"+
				"<tr><th>Key</th><th>Estimate</th></tr>%s</table>", strings.Join(hits, ""))

			msg := fmt.Sprintf("<h3>Alert: %s</h3>"+
				"<ul>"+
				"<li><b>Task:</b> <code>%s</code></li>"+
				"<li><b>Condition:</b> <code>estimate %s %.2f</code></li>"+
				"</ul>"+
				"<p><b>Triggering Keys:</b></p>%s",
				rule.Name, rule.TaskName, rule.Operator, rule.Threshold, itemsTable)
			triggeredMessages = append(triggeredMessages, msg)
		}
	}

	return strings.Join(triggeredMessages, "<br><hr><br>")
}

// check compares a value against a threshold based on an operator.
func check(value, threshold float64, operator string) bool {
	switch operator {
	case ">":
		return value > threshold
	case "<":
		return value < threshold
	case "=":
		return value == threshold
	case ">=":
		return value >= threshold
	case "<=":
		return value <= threshold
	default:
		log.Printf("Warning: unknown operator '%s' in alerter rule", operator)
		return false
	}
}

// clampWeight narrows an event weight's magnitude to the uint32 delta the
// sketch accepts. Negating math.MinInt64 overflows, so the range checks run
// on the signed value before any negation.
func clampWeight(w int64) uint32 {
	if w < 0 {
		if w <= -int64(^uint32(0)) {
			return ^uint32(0)
		}
		return uint32(-w)
	}
	if w > int64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(w)
}
