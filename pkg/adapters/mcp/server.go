package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/handshake"
	"github.com/aretw0/handshake/internal/presentation/graph"
	"github.com/aretw0/handshake/pkg/adapters/memory"
	"github.com/aretw0/handshake/pkg/catalog"
	"github.com/aretw0/handshake/pkg/protocol"
	"github.com/aretw0/handshake/pkg/session"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the interface required by the MCP server to interact
// with the automaton.
type Engine interface {
	Verify(symbols []string) protocol.VerifyResult
	Step(sess *protocol.Session, input string) protocol.TransitionRecord
	Describe() protocol.Description
	StartState() protocol.State
}

// StepResult is the structured output of the step_transition tool.
type StepResult struct {
	SessionID    string                    `json:"session_id" jsonschema_description:"Session the transition belongs to"`
	Step         protocol.TransitionRecord `json:"step" jsonschema_description:"The executed transition"`
	CurrentState protocol.State            `json:"current_state" jsonschema_description:"State after the transition"`
}

// Server wraps the automaton engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	sessions  *session.Manager
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. Sessions for the
// step_transition tool are kept in memory unless a manager is given.
func NewServer(engine Engine, sessions *session.Manager) *Server {
	if sessions == nil {
		sessions = session.NewManager(memory.NewStore())
	}
	s := &Server{
		engine:    engine,
		sessions:  sessions,
		mcpServer: server.NewMCPServer("handshake-mcp", strings.TrimSpace(handshake.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: verify_sequence
	verifyTool := mcp.NewTool("verify_sequence",
		mcp.WithDescription("Run a full packet sequence through the automaton and report whether it forms a valid TCP handshake. Packets is a JSON array of symbol names."),
		mcp.WithString("packets", mcp.Required(), mcp.Description("JSON array of packet symbols, e.g. [\"LISTEN\",\"SYN\",\"ACK\"]")),
		mcp.WithOutputSchema[protocol.VerifyResult](),
	)
	s.mcpServer.AddTool(verifyTool, mcp.NewStructuredToolHandler(s.handleVerify))

	// TOOL: step_transition
	stepTool := mcp.NewTool("step_transition",
		mcp.WithDescription("Execute a single transition in a persistent session. Omit session_id to start a new session."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input symbol, e.g. SYN")),
		mcp.WithString("session_id", mcp.Description("Session to step; a new one is created when omitted")),
		mcp.WithOutputSchema[StepResult](),
	)
	s.mcpServer.AddTool(stepTool, mcp.NewStructuredToolHandler(s.handleStep))

	// TOOL: reset_session
	resetTool := mcp.NewTool("reset_session",
		mcp.WithDescription("Reset a session back to the start state, clearing its history."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session to reset")),
	)
	s.mcpServer.AddTool(resetTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID, err := request.RequireString("session_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fresh := protocol.NewSession(s.engine.StartState())
		if err := s.sessions.Save(ctx, sessionID, fresh); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("reset failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("session %s reset to %s", sessionID, fresh.CurrentState)), nil
	})

	// TOOL: describe_protocol
	s.mcpServer.AddTool(mcp.NewTool("describe_protocol",
		mcp.WithDescription("Get the automaton definition: states, alphabet, transition rules, start and accepting states."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.engine.Describe())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleVerify(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (protocol.VerifyResult, error) {
	raw, _ := args["packets"].(string)

	var packets []string
	if err := json.Unmarshal([]byte(raw), &packets); err != nil {
		return protocol.VerifyResult{}, fmt.Errorf("packets must be a JSON array of strings: %w", err)
	}

	return s.engine.Verify(packets), nil
}

func (s *Server) handleStep(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResult, error) {
	input, _ := args["input"].(string)
	if input == "" {
		return StepResult{}, fmt.Errorf("input is required")
	}

	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var result StepResult
	store := s.sessions.Store()
	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		sess, err := store.Load(ctx, sessionID)
		if errors.Is(err, protocol.ErrSessionNotFound) {
			sess = protocol.NewSession(s.engine.StartState())
		} else if err != nil {
			return err
		}

		rec := s.engine.Step(sess, input)
		result = StepResult{
			SessionID:    sessionID,
			Step:         rec,
			CurrentState: sess.CurrentState,
		}
		return store.Save(ctx, sessionID, sess)
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("step failed: %w", err)
	}

	return result, nil
}

func (s *Server) registerResources() {
	// EXPOSE: handshake://diagram
	s.mcpServer.AddResource(mcp.NewResource("handshake://diagram", "Protocol State Diagram",
		mcp.WithMIMEType("text/vnd.mermaid"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "handshake://diagram",
				MIMEType: "text/vnd.mermaid",
				Text:     graph.GenerateMermaid(s.engine.Describe(), nil),
			},
		}, nil
	})

	// EXPOSE: handshake://examples
	s.mcpServer.AddResource(mcp.NewResource("handshake://examples", "Example Packet Sequences",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(catalog.Examples())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "handshake://examples",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
