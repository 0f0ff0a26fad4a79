package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	v1 "DecaySpectra/api/gen/v1"
	"DecaySpectra/internal/config"
	"DecaySpectra/internal/query"

	"google.golang.org/grpc"
)

// QueryServiceServer serves recorded checkpoints over gRPC.
type QueryServiceServer struct {
	v1.UnimplementedQueryServiceServer
	querier query.Querier
}

func (s *QueryServiceServer) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	log.Println("Received HealthCheck request")
	return &v1.HealthCheckResponse{Status: "ok"}, nil
}

func (s *QueryServiceServer) ListEstimators(ctx context.Context, req *v1.ListEstimatorsRequest) (*v1.ListEstimatorsResponse, error) {
	log.Println("Received ListEstimators request")
	return s.querier.ListEstimators(ctx, req)
}

func (s *QueryServiceServer) QueryCheckpoints(ctx context.Context, req *v1.QueryCheckpointsRequest) (*v1.QueryCheckpointsResponse, error) {
	log.Printf("Received QueryCheckpoints request for estimator: %s, range: [%v, %v], limit: %d",
		req.Estimator, req.StartTime, req.EndTime, req.Limit)
	return s.querier.QueryCheckpoints(ctx, req)
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Find the first enabled ClickHouse writer config
	var chCfg *config.ClickHouseConfig
	for _, writerDef := range cfg.Writers {
		if writerDef.Enabled && writerDef.Type == "clickhouse" {
			chCfg = &writerDef.ClickHouse
			break
		}
	}

	if chCfg == nil {
		log.Fatalf("No enabled ClickHouse writer found in config. API server cannot start.")
	}

	querier, err := query.NewClickHouseQuerier(*chCfg)
	if err != nil {
		log.Fatalf("Failed to create querier: %v", err)
	}

	service := &QueryServiceServer{querier: querier}

	// Run gRPC server
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, service)

	lis, err := net.Listen("tcp", cfg.API.GRPCListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.API.GRPCListenAddr, err)
	}
	go func() {
		log.Printf("gRPC API server starting on %s", cfg.API.GRPCListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("gRPC server shutting down...")

	grpcServer.GracefulStop()
	log.Println("gRPC server exited.")
}
