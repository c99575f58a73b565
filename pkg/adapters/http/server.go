package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/connormcn37/pipe-graph/internal/presentation/graph"
	"github.com/connormcn37/pipe-graph/pkg/domain"
	"github.com/connormcn37/pipe-graph/pkg/schema"
)

// Engine defines the interface for the pipeline core served over HTTP.
type Engine interface {
	Step(ctx context.Context) error
	Tick() uint64
	Output(id domain.NodeID) (domain.Signal, error)
	Outputs() []domain.Signal
	Inspect() []domain.NodeInfo
}

// Server exposes an engine for inspection and manual tick driving.
type Server struct {
	Engine  Engine
	Metrics http.Handler
}

type Option func(*Server)

// WithMetricsHandler mounts the given handler at /metrics, typically
// promhttp.Handler().
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.GetHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/graph", server.GetGraph)
		r.Get("/graph/mermaid", server.GetGraphMermaid)
		r.Get("/outputs", server.GetOutputs)
		r.Get("/nodes/{id}/output", server.GetNodeOutput)
		r.Get("/nodes/{id}/frame", server.GetNodeFrame)
		r.Post("/step", server.PostStep)
	})
	if server.Metrics != nil {
		r.Handle("/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetGraph handles the GET /v1/graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	infos := s.Engine.Inspect()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		slog.Error("GetGraph response encode failed", "error", err)
	}
}

// GetGraphMermaid handles the GET /v1/graph/mermaid request.
func (s *Server) GetGraphMermaid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.GenerateMermaid(s.Engine.Inspect()))
}

// GetOutputs handles the GET /v1/outputs request.
func (s *Server) GetOutputs(w http.ResponseWriter, r *http.Request) {
	snapshot := schema.Snapshot(s.Engine.Tick(), s.Engine.Inspect(), s.Engine.Outputs())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		slog.Error("GetOutputs response encode failed", "error", err)
	}
}

// GetNodeOutput handles the GET /v1/nodes/{id}/output request.
func (s *Server) GetNodeOutput(w http.ResponseWriter, r *http.Request) {
	id, err := parseNodeID(r)
	if err != nil {
		http.Error(w, "Invalid node id", http.StatusBadRequest)
		return
	}

	sig, err := s.Engine.Output(id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Output error: %v", err), http.StatusNotFound)
		return
	}

	name := ""
	if infos := s.Engine.Inspect(); int(id) < len(infos) {
		name = infos[id].Name
	}

	out := schema.FromSignal(s.Engine.Tick(), id, name, sig)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("GetNodeOutput response encode failed", "error", err)
	}
}

// GetNodeFrame handles the GET /v1/nodes/{id}/frame request. The body is
// the raw pixel buffer, row-major rows of interleaved channels, with the
// geometry carried in X-Frame-* headers.
func (s *Server) GetNodeFrame(w http.ResponseWriter, r *http.Request) {
	id, err := parseNodeID(r)
	if err != nil {
		http.Error(w, "Invalid node id", http.StatusBadRequest)
		return
	}

	sig, err := s.Engine.Output(id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Output error: %v", err), http.StatusNotFound)
		return
	}

	frame, ok := sig.Frame()
	if !ok {
		http.Error(w, "Node output carries no frame", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("X-Frame-Width", strconv.Itoa(frame.Width()))
	w.Header().Set("X-Frame-Height", strconv.Itoa(frame.Height()))
	w.Header().Set("X-Frame-Channels", strconv.Itoa(frame.Channels()))
	if _, err := w.Write(frame.Data()); err != nil {
		slog.Error("GetNodeFrame write failed", "error", err)
	}
}

// PostStep handles the POST /v1/step request, driving exactly one tick.
func (s *Server) PostStep(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Step(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Step error: %v", err), http.StatusInternalServerError)
		slog.Error("Step failed", "error", err)
		return
	}

	resp := map[string]uint64{"tick": s.Engine.Tick()}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("PostStep response encode failed", "error", err)
	}
}

func parseNodeID(r *http.Request) (domain.NodeID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return domain.InvalidNodeID, fmt.Errorf("invalid node id %q: %w", raw, err)
	}
	return domain.NodeID(id), nil
}
