package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/handshake/internal/logging"
	"github.com/aretw0/handshake/internal/metrics"
	"github.com/aretw0/handshake/internal/presentation/graph"
	"github.com/aretw0/handshake/pkg/adapters/memory"
	"github.com/aretw0/handshake/pkg/catalog"
	"github.com/aretw0/handshake/pkg/protocol"
	"github.com/aretw0/handshake/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the automaton core used by the API.
type Engine interface {
	Verify(symbols []string) protocol.VerifyResult
	Step(sess *protocol.Session, input string) protocol.TransitionRecord
	Reset(sess *protocol.Session)
	Describe() protocol.Description
	StartState() protocol.State
}

// Server handles the REST API around the automaton engine.
type Server struct {
	engine   Engine
	sessions *session.Manager
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithSessionManager injects the session manager backing /api/step.
func WithSessionManager(m *session.Manager) Option {
	return func(s *Server) {
		s.sessions = m
	}
}

// WithMetrics enables Prometheus instrumentation of verdicts and steps.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the server's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine. Without options it
// keeps sessions in memory and skips instrumentation.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sessions == nil {
		s.sessions = session.NewManager(memory.NewStore())
	}

	r := chi.NewRouter()

	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/verify", s.Verify)
		r.Post("/step", s.Step)
		r.Post("/reset", s.Reset)
		r.Get("/diagram", s.Diagram)
		r.Get("/examples", s.Examples)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// VerifyRequest is the body of POST /api/verify.
type VerifyRequest struct {
	Packets []string `json:"packets"`
}

// StepRequest is the body of POST /api/step.
type StepRequest struct {
	SessionID string `json:"session_id"`
	Input     string `json:"input"`
}

// StepResponse reports one executed transition and the session it
// belongs to.
type StepResponse struct {
	SessionID    string                    `json:"session_id"`
	Step         protocol.TransitionRecord `json:"step"`
	CurrentState protocol.State            `json:"current_state"`
}

// ResetRequest is the body of POST /api/reset.
type ResetRequest struct {
	SessionID string `json:"session_id"`
}

// ResetResponse confirms a session reset.
type ResetResponse struct {
	SessionID    string         `json:"session_id"`
	CurrentState protocol.State `json:"current_state"`
	Message      string         `json:"message"`
}

// DiagramResponse is the automaton description plus a Mermaid rendering.
type DiagramResponse struct {
	protocol.Description
	Mermaid string `json:"mermaid"`
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// Verify handles POST /api/verify. An empty sequence is a well-formed
// request whose result is simply invalid; only an undecodable body is a
// client error.
func (s *Server) Verify(w http.ResponseWriter, r *http.Request) {
	var body VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Verify: invalid request body", "err", err)
		return
	}

	res := s.engine.Verify(body.Packets)
	s.metrics.ObserveVerification(res)

	s.logger.Info("sequence verified",
		"length", len(body.Packets),
		"valid", res.Valid,
		"final_state", res.FinalState.String(),
	)

	writeJSON(w, s.logger, res)
}

// Step handles POST /api/step. The session is loaded (or created), stepped
// once and saved back, all under the per-session lock so concurrent steps
// on one session serialize.
func (s *Server) Step(w http.ResponseWriter, r *http.Request) {
	var body StepRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Input == "" {
		http.Error(w, "No input provided", http.StatusBadRequest)
		return
	}

	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var resp StepResponse
	store := s.sessions.Store()
	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		sess, err := store.Load(ctx, sessionID)
		if errors.Is(err, protocol.ErrSessionNotFound) {
			sess = protocol.NewSession(s.engine.StartState())
		} else if err != nil {
			return err
		}

		rec := s.engine.Step(sess, body.Input)
		s.metrics.ObserveStep(rec)

		resp = StepResponse{
			SessionID:    sessionID,
			Step:         rec,
			CurrentState: sess.CurrentState,
		}
		return store.Save(ctx, sessionID, sess)
	})
	if err != nil {
		http.Error(w, "Failed to step session", http.StatusInternalServerError)
		s.logger.Error("Step: session update failed", "session_id", sessionID, "err", err)
		return
	}

	writeJSON(w, s.logger, resp)
}

// Reset handles POST /api/reset.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	var body ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.SessionID == "" {
		http.Error(w, "No session_id provided", http.StatusBadRequest)
		return
	}

	fresh := protocol.NewSession(s.engine.StartState())
	if err := s.sessions.Save(r.Context(), body.SessionID, fresh); err != nil {
		http.Error(w, "Failed to reset session", http.StatusInternalServerError)
		s.logger.Error("Reset: save failed", "session_id", body.SessionID, "err", err)
		return
	}

	writeJSON(w, s.logger, ResetResponse{
		SessionID:    body.SessionID,
		CurrentState: fresh.CurrentState,
		Message:      "automaton reset to start state",
	})
}

// Diagram handles GET /api/diagram.
func (s *Server) Diagram(w http.ResponseWriter, r *http.Request) {
	desc := s.engine.Describe()
	writeJSON(w, s.logger, DiagramResponse{
		Description: desc,
		Mermaid:     graph.GenerateMermaid(desc, nil),
	})
}

// Examples handles GET /api/examples.
func (s *Server) Examples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, catalog.Examples())
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
