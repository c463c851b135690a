package main

import (
	v1 "Go2FreqSpectra/api/gen/v1"
	"context"
	"flag"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var estimatorNames = map[uint32]string{
	0: "count-min",
	1: "mean",
	2: "mean-min",
}

func main() {
	// Command-line flags
	serverAddr := flag.String("addr", "localhost:50051", "The gRPC server address")
	mode := flag.String("mode", "totals", "Query mode: 'tasks', 'history', or 'totals'")
	taskName := flag.String("task", "", "The name of the task to query")
	key := flag.String("key", "", "The tracked key for history mode")
	estimator := flag.Uint("estimator", 0, "Estimator for history mode (0 count-min, 1 mean, 2 mean-min)")
	limit := flag.Int("limit", 20, "Maximum number of history points to return")
	defaultEnd := time.Now().UTC().Add(8 * time.Hour).Format(time.RFC3339)
	endTimeStr := flag.String("end", defaultEnd, "End time in RFC3339 format (e.g., 2026-08-31T15:10:00Z).")

	flag.Parse()

	// Set up a connection to the server.
	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := v1.NewQueryServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	switch *mode {
	case "tasks":
		doTasksQuery(ctx, client)
	case "history":
		if *taskName == "" || *key == "" {
			log.Fatal("Error: -task and -key flags are required for history mode")
		}
		doHistoryQuery(ctx, client, *taskName, *key, uint32(*estimator), int32(*limit), *endTimeStr)
	case "totals":
		doTotalsQuery(ctx, client, *taskName, *endTimeStr)
	default:
		log.Fatalf("Unknown mode: %s. Use 'tasks', 'history', or 'totals'", *mode)
	}
}

// doTasksQuery lists the known task names.
func doTasksQuery(ctx context.Context, client v1.QueryServiceClient) {
	resp, err := client.SearchTasks(ctx, &v1.SearchTasksRequest{})
	if err != nil {
		log.Fatalf("could not perform tasks query: %v", err)
	}

	log.Println("---", "Known Tasks", "---")
	if len(resp.TaskNames) == 0 {
		log.Println("No tasks found.")
		return
	}
	for _, name := range resp.TaskNames {
		log.Printf("  %s", name)
	}
	log.Println("--------------------")
}

// doHistoryQuery fetches the estimate time series for one key.
func doHistoryQuery(ctx context.Context, client v1.QueryServiceClient, taskName, key string, estimator uint32, limit int32, endTime string) {
	log.Printf("Executing history query for task '%s', key '%s', estimator '%s'", taskName, key, estimatorNames[estimator])
	log.Printf("Query params - End time: %s, limit: %d", endTime, limit)

	req := &v1.EstimateHistoryRequest{
		TaskName:  taskName,
		Key:       key,
		Estimator: estimator,
		EndTime:   parseAndConvert(endTime),
		Limit:     limit,
	}

	resp, err := client.EstimateHistory(ctx, req)
	if err != nil {
		log.Fatalf("could not perform history query: %v", err)
	}

	log.Println("---", "Estimate History", "---")
	if len(resp.Points) == 0 {
		log.Println("No data returned.")
		return
	}
	for _, point := range resp.Points {
		log.Printf("  %s  %d", point.Timestamp.AsTime().Format(time.RFC3339), point.Value)
	}
	log.Println("-------------------------")
}

// doTotalsQuery fetches the latest sketch totals per task.
func doTotalsQuery(ctx context.Context, client v1.QueryServiceClient, taskName string, endTime string) {
	log.Printf("Executing totals query for task: %q", taskName)
	log.Printf("Query params - End time: %s", endTime)

	req := &v1.TaskTotalsRequest{
		TaskName: taskName,
		EndTime:  parseAndConvert(endTime),
	}

	resp, err := client.TaskTotals(ctx, req)
	if err != nil {
		log.Fatalf("could not perform totals query: %v", err)
	}

	log.Println("---", "Task Totals", "---")
	if len(resp.Summaries) == 0 {
		log.Println("No data returned.")
		return
	}
	for _, summary := range resp.Summaries {
		log.Printf("  Task: %s", summary.TaskName)
		log.Printf("    Elements Added: %d", summary.ElementsAdded)
		log.Printf("    Dimensions:     %d x %d", summary.Width, summary.Depth)
	}
	log.Println("--------------------")
}

// parseAndConvert parses an RFC3339 time string into a protobuf timestamp.
func parseAndConvert(timeStr string) *timestamppb.Timestamp {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format for %q, expected RFC3339: %v", timeStr, err)
	}
	return timestamppb.New(t)
}
