package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/internal/presentation/tui"
	"github.com/aretw0/nfa/pkg/service"
)

const graphURI = "nfa://graph"

// SimulateResult is the structured output of the simulate tool.
type SimulateResult struct {
	Input     string   `json:"input" jsonschema_description:"The simulated input"`
	Accepted  bool     `json:"accepted" jsonschema_description:"Whether the automaton accepts the input"`
	MaxCopies int      `json:"max_copies" jsonschema_description:"Largest number of simultaneously active states, -1 without a start state"`
	Trace     []string `json:"trace,omitempty" jsonschema_description:"Active states per frame, as comma separated names"`
}

// ClosureResult is the structured output of the closure tool.
type ClosureResult struct {
	State   string   `json:"state" jsonschema_description:"The queried state"`
	Closure []string `json:"closure" jsonschema_description:"States reachable through epsilon edges, the state included"`
}

// DFAResult is the structured output of the is_dfa tool.
type DFAResult struct {
	IsDFA bool `json:"is_dfa" jsonschema_description:"True when there are no epsilon edges and no symbol has two destinations"`
}

// Server exposes an automaton as an MCP Server.
type Server struct {
	automaton *service.Automaton
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(automaton *service.Automaton, opts ...Option) *Server {
	s := &Server{
		automaton: automaton,
		mcpServer: server.NewMCPServer("nfa-mcp", strings.TrimSpace(nfa.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: simulate
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Run the automaton on an input string and report acceptance and the maximum number of active states."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input string; may be empty")),
		mcp.WithBoolean("trace", mcp.Description("Include the active set of every frame")),
		mcp.WithOutputSchema[SimulateResult](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	// TOOL: closure
	closureTool := mcp.NewTool("closure",
		mcp.WithDescription("List the epsilon closure of a state."),
		mcp.WithString("state", mcp.Required(), mcp.Description("State name")),
		mcp.WithOutputSchema[ClosureResult](),
	)
	s.mcpServer.AddTool(closureTool, mcp.NewStructuredToolHandler(s.handleClosure))

	// TOOL: is_dfa
	dfaTool := mcp.NewTool("is_dfa",
		mcp.WithDescription("Report whether the transition structure is deterministic."),
		mcp.WithOutputSchema[DFAResult](),
	)
	s.mcpServer.AddTool(dfaTool, mcp.NewStructuredToolHandler(s.handleIsDFA))

	// TOOL: describe
	s.mcpServer.AddTool(mcp.NewTool("describe",
		mcp.WithDescription("Describe states, alphabet and transitions as markdown."),
	), s.handleDescribe)
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResult, error) {
	input, _ := args["input"].(string)
	trace, _ := args["trace"].(bool)

	if !trace {
		v, err := s.automaton.Simulate(ctx, input)
		if err != nil {
			return SimulateResult{}, fmt.Errorf("simulate failed: %w", err)
		}
		return SimulateResult{Input: v.Input, Accepted: v.Accepted, MaxCopies: v.MaxCopies}, nil
	}

	run, err := s.automaton.Trace(ctx, input)
	if err != nil {
		s.logger.Warn("MCP simulate: trace failed", "err", err)
		return SimulateResult{}, fmt.Errorf("trace failed: %w", err)
	}
	res := SimulateResult{Input: run.Input, Accepted: run.Accepted, MaxCopies: run.MaxCopies}
	for _, frame := range run.Frames {
		res.Trace = append(res.Trace, strings.Join(frame.Active.Names(), ","))
	}
	return res, nil
}

func (s *Server) handleClosure(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ClosureResult, error) {
	state, _ := args["state"].(string)
	closure, err := s.automaton.Closure(state)
	if err != nil {
		return ClosureResult{}, err
	}
	return ClosureResult{State: state, Closure: closure}, nil
}

func (s *Server) handleIsDFA(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DFAResult, error) {
	return DFAResult{IsDFA: s.automaton.IsDFA()}, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(tui.Describe(s.automaton.Snapshot())), nil
}

func (s *Server) registerResources() {
	// EXPOSE: nfa://graph
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "Automaton diagram",
		mcp.WithResourceDescription("Mermaid flowchart of states and transitions"),
		mcp.WithMIMEType("text/plain"),
	), s.handleGraph)
}

func (s *Server) handleGraph(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var chart string
	_ = s.automaton.View(func(n *nfa.NFA) error {
		chart = graph.GenerateMermaid(n, nil)
		return nil
	})

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      graphURI,
			MIMEType: "text/plain",
			Text:     chart,
		},
	}, nil
}
