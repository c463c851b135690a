package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrackerTaskDef defines a single frequency-tracking task from the config
// file. Either explicit dimensions (width/depth) or analytic targets
// (error_rate/confidence) select the sketch size; analytic targets win when
// both are set.
type TrackerTaskDef struct {
	Name       string   `yaml:"name"`
	Width      uint32   `yaml:"width"`
	Depth      uint32   `yaml:"depth"`
	ErrorRate  float64  `yaml:"error_rate"`
	Confidence float64  `yaml:"confidence"`
	// WatchKeys are the keys whose estimates every snapshot reports.
	WatchKeys []string `yaml:"watch_keys"`
}

// SketchFileConfig holds the settings for the binary sketch file writer.
type SketchFileConfig struct {
	RootPath string `yaml:"root_path"`
}

// ClickHouseConfig holds the connection settings for ClickHouse.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WriterDef defines a single writer for a tracker group.
type WriterDef struct {
	Type             string           `yaml:"type"`
	Enabled          bool             `yaml:"enabled"`
	SnapshotInterval string           `yaml:"snapshot_interval"`
	SketchFile       SketchFileConfig `yaml:"sketchfile"`
	ClickHouse       ClickHouseConfig `yaml:"clickhouse"`
}

// CMSConfig holds the tasks and writers of the count-min tracker group.
type CMSConfig struct {
	Tasks   []TrackerTaskDef `yaml:"tasks"`
	Writers []WriterDef      `yaml:"writers"`
}

// TrackerConfig holds the configuration for the tracking engine.
type TrackerConfig struct {
	Types              []string  `yaml:"types"`
	Period             string    `yaml:"period"`
	NumWorkers         int       `yaml:"num_workers"`
	SizeOfEventChannel int       `yaml:"size_of_event_channel"`
	CMS                CMSConfig `yaml:"cms"`
}

// ProbeConfig holds the NATS transport settings shared by publishers and
// subscribers.
type ProbeConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// APIConfig holds the listen addresses of the query API server.
type APIConfig struct {
	GrpcListenAddr string `yaml:"grpc_listen_addr"`
	HttpListenAddr string `yaml:"http_listen_addr"`
}

// AlerterRule defines a single alerting rule evaluated against live
// watched-key estimates.
type AlerterRule struct {
	Name      string  `yaml:"name"`
	TaskName  string  `yaml:"task_name"`
	Key       string  `yaml:"key"`
	Threshold float64 `yaml:"threshold"`
	Operator  string  `yaml:"operator"`
}

// AlerterConfig holds the alerter settings.
type AlerterConfig struct {
	Enabled       bool          `yaml:"enabled"`
	CheckInterval string        `yaml:"check_interval"`
	Rules         []AlerterRule `yaml:"rules"`
}

// SMTPConfig holds the email notifier settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Tracker TrackerConfig `yaml:"tracker"`
	Probe   ProbeConfig   `yaml:"probe"`
	API     APIConfig     `yaml:"api"`
	Alerter AlerterConfig `yaml:"alerter"`
	SMTP    SMTPConfig    `yaml:"smtp"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
