package freq

import (
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/model"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Estimator codes stored in the freq_estimates table.
const (
	EstimatorCountMin = uint8(0)
	EstimatorMean     = uint8(1)
	EstimatorMeanMin  = uint8(2)
)

const createEstimatesTableStatement = `
CREATE TABLE IF NOT EXISTS freq_estimates (
    Timestamp   DateTime,
    TaskName    String,
    Key         String,
    Value       Int64,
	Estimator	UInt8
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (TaskName, Key, Timestamp);
`

const createTotalsTableStatement = `
CREATE TABLE IF NOT EXISTS sketch_totals (
    Timestamp       DateTime,
    TaskName        String,
    ElementsAdded   Int64,
    Width           UInt32,
    Depth           UInt32
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (TaskName, Timestamp);
`

// ClickHouseWriter implements the model.Writer interface for ClickHouse.
type ClickHouseWriter struct {
	conn     driver.Conn
	interval time.Duration
}

// NewClickHouseWriter creates a new ClickHouse writer for frequency estimates.
func NewClickHouseWriter(cfg config.ClickHouseConfig, interval time.Duration) (model.Writer, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createEstimatesTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create freq_estimates table: %w", err)
	}
	if err := conn.Exec(context.Background(), createTotalsTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create sketch_totals table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured freq_estimates and sketch_totals tables exist.")

	return &ClickHouseWriter{conn: conn, interval: interval}, nil
}

func (w *ClickHouseWriter) GetInterval() time.Duration {
	return w.interval
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})

	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

func (w *ClickHouseWriter) Write(payload interface{}, timestamp, name string) error {
	snapshot, ok := payload.(TaskSnapshot)
	if !ok {
		return fmt.Errorf("invalid payload type for ClickHouse Writer: expected TaskSnapshot, got %T", payload)
	}

	snapshotTime, _ := time.Parse("2006-01-02_15-04-05", timestamp)

	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO freq_estimates")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	total := 0
	for _, est := range snapshot.Estimates {
		if err := batch.Append(snapshotTime, name, est.Key, int64(est.CountMin), EstimatorCountMin); err != nil {
			return fmt.Errorf("failed to append estimate to batch: %w", err)
		}
		if err := batch.Append(snapshotTime, name, est.Key, int64(est.Mean), EstimatorMean); err != nil {
			return fmt.Errorf("failed to append estimate to batch: %w", err)
		}
		if err := batch.Append(snapshotTime, name, est.Key, int64(est.MeanMin), EstimatorMeanMin); err != nil {
			return fmt.Errorf("failed to append estimate to batch: %w", err)
		}
		total += 3
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	totalsBatch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO sketch_totals")
	if err != nil {
		return fmt.Errorf("failed to prepare totals batch: %w", err)
	}
	if err := totalsBatch.Append(snapshotTime, name, snapshot.ElementsAdded, snapshot.Width, snapshot.Depth); err != nil {
		return fmt.Errorf("failed to append totals to batch: %w", err)
	}
	if err := totalsBatch.Send(); err != nil {
		return fmt.Errorf("failed to send totals batch: %w", err)
	}

	log.Printf("Wrote %d estimates for task '%s' to ClickHouse", total, name)
	return nil
}
