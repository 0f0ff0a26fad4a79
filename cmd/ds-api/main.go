package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "DecaySpectra/api/gen/v1"
	"DecaySpectra/internal/config"
	"DecaySpectra/internal/query"

	"github.com/gorilla/mux"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

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

	// Initialize querier with the found config
	querier, err := query.NewClickHouseQuerier(*chCfg)
	if err != nil {
		log.Fatalf("Failed to create querier: %v", err)
	}

	// Initialize router
	r := mux.NewRouter()

	// Create API handler with querier dependency
	apiHandler := &APIHandler{querier: querier}

	// Define API routes
	r.HandleFunc("/api/v1/health", apiHandler.healthHandler).Methods("GET")
	r.HandleFunc("/api/v1/estimators", apiHandler.listEstimatorsHandler).Methods("GET")
	r.HandleFunc("/api/v1/checkpoints/query", apiHandler.queryCheckpointsHandler).Methods("POST")

	// Start HTTP server
	server := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("API server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", server.Addr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("API server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("API server exited.")
}

// APIHandler holds the dependencies for API handlers.
type APIHandler struct {
	querier query.Querier
}

// healthHandler reports server liveness.
func (h *APIHandler) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeProtoJSON(w, &v1.HealthCheckResponse{Status: "ok"})
}

// listEstimatorsHandler lists the estimator names present in storage.
func (h *APIHandler) listEstimatorsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := h.querier.ListEstimators(r.Context(), &v1.ListEstimatorsRequest{})
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to list estimators: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, resp)
}

// queryCheckpointsHandler handles checkpoint range queries.
func (h *APIHandler) queryCheckpointsHandler(w http.ResponseWriter, r *http.Request) {
	var req v1.QueryCheckpointsRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := protojson.Unmarshal(body, &req); err != nil {
		http.Error(w, fmt.Sprintf("failed to decode request: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.querier.QueryCheckpoints(r.Context(), &req)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query checkpoints: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, resp)
}

func writeProtoJSON(w http.ResponseWriter, msg proto.Message) {
	jsonBytes, err := protojson.Marshal(msg)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to marshal response: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonBytes)
}
