package main

import (
	v1 "Go2FreqSpectra/api/gen/v1"
	"Go2FreqSpectra/internal/config"
	"Go2FreqSpectra/internal/query"
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ---- Grafana-specific structs ----
type QueryRequest struct {
	Targets []struct {
		Target string `json:"target"`
	} `json:"targets"`
	Range struct {
		From time.Time `json:"from"`
		To   time.Time `json:"to"`
	} `json:"range"`
}

type TimeSeriesResponse struct {
	Target     string      `json:"target"`
	Datapoints [][]float64 `json:"datapoints"` // [ [value, timestamp_ms], ... ]
}

// ---- gRPC service implementation ----
type QueryServiceServer struct {
	v1.UnimplementedQueryServiceServer
	querier query.Querier
	cfg     *config.Config
}

func (s *QueryServiceServer) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	log.Println("Received HealthCheck request")
	return &v1.HealthCheckResponse{Status: "ok"}, nil
}

func (s *QueryServiceServer) SearchTasks(ctx context.Context, req *v1.SearchTasksRequest) (*v1.SearchTasksResponse, error) {
	log.Println("Received SearchTasks request")
	// Configured tasks are authoritative; ClickHouse may lag behind a fresh deployment.
	var taskNames []string
	for _, task := range s.cfg.Tracker.CMS.Tasks {
		taskNames = append(taskNames, task.Name)
	}
	if len(taskNames) > 0 {
		return &v1.SearchTasksResponse{TaskNames: taskNames}, nil
	}
	return s.querier.SearchTasks(ctx, req)
}

func (s *QueryServiceServer) EstimateHistory(ctx context.Context, req *v1.EstimateHistoryRequest) (*v1.EstimateHistoryResponse, error) {
	log.Printf("Received EstimateHistory request for task: %s, key: %s, estimator: %d", req.TaskName, req.Key, req.Estimator)
	return s.querier.EstimateHistory(ctx, req)
}

func (s *QueryServiceServer) TaskTotals(ctx context.Context, req *v1.TaskTotalsRequest) (*v1.TaskTotalsResponse, error) {
	log.Printf("Received TaskTotals request for task: %s, end: %v", req.TaskName, req.EndTime)
	return s.querier.TaskTotals(ctx, req)
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var querier query.Querier
	for _, writerDef := range cfg.Tracker.CMS.Writers {
		if writerDef.Enabled && writerDef.Type == "clickhouse" {
			log.Println("Found enabled ClickHouse writer for cms tracker.")
			querier, err = query.NewClickHouseQuerier(writerDef.ClickHouse)
			if err != nil {
				log.Fatalf("Failed to create querier: %v", err)
			}
			break
		}
	}

	if querier == nil {
		log.Fatalf("No enabled ClickHouse writer found for the cms tracker. API server cannot start.")
	}

	service := &QueryServiceServer{
		querier: querier,
		cfg:     cfg,
	}

	// Run gRPC server
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, service)

	lis, err := net.Listen("tcp", cfg.API.GrpcListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.API.GrpcListenAddr, err)
	}
	go func() {
		log.Printf("gRPC API server starting on %s", cfg.API.GrpcListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Run HTTP server for Grafana
	httpServer := &http.Server{
		Addr:    cfg.API.HttpListenAddr,
		Handler: newHTTPHandler(service),
	}

	go func() {
		log.Printf("HTTP server (Grafana) starting on %s", cfg.API.HttpListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Servers shutting down...")

	grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)

	log.Println("All servers exited.")
}

// ---- HTTP handler for Grafana ----
// Targets of the form "task/key" plot the count-min history of a single
// watched key; a bare task name plots the task's total elements added.
func newHTTPHandler(s *QueryServiceServer) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		var req QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		endTime := req.Range.To
		if endTime.IsZero() {
			endTime = time.Now().Add(24 * time.Hour)
		}

		var response []TimeSeriesResponse
		for _, target := range req.Targets {
			ts, err := s.resolveTarget(r.Context(), target.Target, endTime)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			response = append(response, ts)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}).Methods("POST")

	return r
}

func (s *QueryServiceServer) resolveTarget(ctx context.Context, target string, endTime time.Time) (TimeSeriesResponse, error) {
	taskName, key, isKeyTarget := strings.Cut(target, "/")

	if isKeyTarget {
		historyReq := &v1.EstimateHistoryRequest{
			TaskName: taskName,
			Key:      key,
			EndTime:  timestamppb.New(endTime),
		}
		historyResp, err := s.EstimateHistory(ctx, historyReq)
		if err != nil {
			return TimeSeriesResponse{}, err
		}

		datapoints := make([][]float64, 0, len(historyResp.Points))
		for _, point := range historyResp.Points {
			datapoints = append(datapoints, []float64{
				float64(point.Value),
				float64(point.Timestamp.AsTime().UnixMilli()),
			})
		}
		return TimeSeriesResponse{Target: target, Datapoints: datapoints}, nil
	}

	totalsReq := &v1.TaskTotalsRequest{
		TaskName: taskName,
		EndTime:  timestamppb.New(endTime),
	}
	totalsResp, err := s.TaskTotals(ctx, totalsReq)
	if err != nil {
		return TimeSeriesResponse{}, err
	}
	if len(totalsResp.Summaries) == 0 {
		return TimeSeriesResponse{Target: target}, nil
	}

	return TimeSeriesResponse{
		Target: target,
		Datapoints: [][]float64{
			{float64(totalsResp.Summaries[0].ElementsAdded), float64(endTime.Unix() * 1000)},
		},
	}, nil
}
