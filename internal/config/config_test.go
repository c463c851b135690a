package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
tracker:
  types: ["cms"]
  period: "1h"
  num_workers: 4
  size_of_event_channel: 10000
  cms:
    tasks:
      - name: "source_addresses"
        width: 16384
        depth: 5
        watch_keys: ["10.0.0.1"]
      - name: "api_endpoints"
        error_rate: 0.001
        confidence: 0.999
    writers:
      - type: "sketchfile"
        enabled: true
        snapshot_interval: "1m"
        sketchfile:
          root_path: "snapshots"
probe:
  nats_url: "nats://localhost:4222"
  subject: "gofs.events.raw"
api:
  grpc_listen_addr: ":50051"
  http_listen_addr: ":8080"
alerter:
  enabled: true
  check_interval: "30s"
  rules:
    - name: "Hot source address"
      task_name: "source_addresses"
      key: "10.0.0.1"
      threshold: 100000
      operator: ">"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatalf("failed to write sample config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Tracker.Types) != 1 || cfg.Tracker.Types[0] != "cms" {
		t.Errorf("unexpected tracker types: %v", cfg.Tracker.Types)
	}
	if cfg.Tracker.NumWorkers != 4 {
		t.Errorf("num_workers = %d, want 4", cfg.Tracker.NumWorkers)
	}

	tasks := cfg.Tracker.CMS.Tasks
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].Name != "source_addresses" || tasks[0].Width != 16384 || tasks[0].Depth != 5 {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	if tasks[1].ErrorRate != 0.001 || tasks[1].Confidence != 0.999 {
		t.Errorf("unexpected second task: %+v", tasks[1])
	}

	writers := cfg.Tracker.CMS.Writers
	if len(writers) != 1 || writers[0].Type != "sketchfile" || !writers[0].Enabled {
		t.Fatalf("unexpected writers: %+v", writers)
	}
	if writers[0].SketchFile.RootPath != "snapshots" {
		t.Errorf("root_path = %q, want snapshots", writers[0].SketchFile.RootPath)
	}

	if cfg.Probe.Subject != "gofs.events.raw" {
		t.Errorf("probe subject = %q", cfg.Probe.Subject)
	}
	if len(cfg.Alerter.Rules) != 1 || cfg.Alerter.Rules[0].Threshold != 100000 {
		t.Errorf("unexpected alerter rules: %+v", cfg.Alerter.Rules)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
