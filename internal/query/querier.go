package query

import (
	v1 "Go2FreqSpectra/api/gen/v1"
	"Go2FreqSpectra/internal/config"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Querier defines the interface for querying persisted frequency estimates.
type Querier interface {
	SearchTasks(ctx context.Context, req *v1.SearchTasksRequest) (*v1.SearchTasksResponse, error)
	EstimateHistory(ctx context.Context, req *v1.EstimateHistoryRequest) (*v1.EstimateHistoryResponse, error)
	TaskTotals(ctx context.Context, req *v1.TaskTotalsRequest) (*v1.TaskTotalsResponse, error)
}

// clickhouseQuerier implements the Querier interface for ClickHouse.
type clickhouseQuerier struct {
	conn clickhouse.Conn
}

// NewClickHouseQuerier creates a new querier for ClickHouse.
func NewClickHouseQuerier(cfg config.ClickHouseConfig) (Querier, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}
	return &clickhouseQuerier{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (clickhouse.Conn, error) {
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

// SearchTasks lists the distinct task names that have written totals.
func (q *clickhouseQuerier) SearchTasks(ctx context.Context, req *v1.SearchTasksRequest) (*v1.SearchTasksResponse, error) {
	rows, err := q.conn.Query(ctx, "SELECT DISTINCT TaskName FROM sketch_totals ORDER BY TaskName")
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan task name: %w", err)
		}
		names = append(names, name)
	}

	return &v1.SearchTasksResponse{TaskNames: names}, nil
}

// EstimateHistory returns the time series of a single estimator for one key.
func (q *clickhouseQuerier) EstimateHistory(ctx context.Context, req *v1.EstimateHistoryRequest) (*v1.EstimateHistoryResponse, error) {
	if req.TaskName == "" || req.Key == "" {
		return nil, fmt.Errorf("task_name and key are required")
	}
	if req.Estimator > 2 {
		return nil, fmt.Errorf("unsupported estimator code %d, only 0 (count-min), 1 (mean), 2 (mean-min) are allowed", req.Estimator)
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT Timestamp, Value
		FROM freq_estimates
	`)

	whereClauses := []string{"TaskName = ?", "Key = ?", "Estimator = ?"}
	args := []interface{}{req.TaskName, req.Key, uint8(req.Estimator)}

	if req.EndTime != nil {
		whereClauses = append(whereClauses, "Timestamp <= ?")
		args = append(args, req.EndTime.AsTime())
	}

	queryBuilder.WriteString(" WHERE " + strings.Join(whereClauses, " AND "))
	queryBuilder.WriteString(" ORDER BY Timestamp DESC")

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT %d", limit))

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var points []*v1.EstimatePoint
	for rows.Next() {
		var ts time.Time
		var value int64
		if err := rows.Scan(&ts, &value); err != nil {
			return nil, fmt.Errorf("failed to scan estimate point: %w", err)
		}
		points = append(points, &v1.EstimatePoint{Timestamp: timestamppb.New(ts), Value: value})
	}

	// Oldest first for plotting.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return &v1.EstimateHistoryResponse{Points: points}, nil
}

// TaskTotals returns the latest sketch totals per task.
func (q *clickhouseQuerier) TaskTotals(ctx context.Context, req *v1.TaskTotalsRequest) (*v1.TaskTotalsResponse, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			TaskName,
			argMax(ElementsAdded, Timestamp) AS LatestElementsAdded,
			argMax(Width, Timestamp) AS LatestWidth,
			argMax(Depth, Timestamp) AS LatestDepth
		FROM sketch_totals
	`)

	var whereClauses []string
	args := []interface{}{}

	if req.EndTime != nil {
		whereClauses = append(whereClauses, "Timestamp <= ?")
		args = append(args, req.EndTime.AsTime())
	}
	if req.TaskName != "" {
		whereClauses = append(whereClauses, "TaskName = ?")
		args = append(args, req.TaskName)
	}

	if len(whereClauses) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(whereClauses, " AND "))
	}

	queryBuilder.WriteString(" GROUP BY TaskName")

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var summaries []*v1.TaskSummary
	for rows.Next() {
		var summary v1.TaskSummary
		if err := rows.Scan(&summary.TaskName, &summary.ElementsAdded, &summary.Width, &summary.Depth); err != nil {
			return nil, fmt.Errorf("failed to scan task totals: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	return &v1.TaskTotalsResponse{Summaries: summaries}, nil
}
