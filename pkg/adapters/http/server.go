package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/internal/logging"
	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/service"
)

// Server serves one automaton over JSON.
type Server struct {
	Automaton *service.Automaton

	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithGatherer exposes the gathered metrics on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the automaton.
func NewHandler(automaton *service.Automaton, opts ...Option) http.Handler {
	s := &Server{
		Automaton: automaton,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/automaton", s.GetAutomaton)
	r.Post("/states", s.AddState)
	r.Post("/sigma", s.AddSigma)
	r.Post("/start", s.SetStart)
	r.Post("/final", s.SetFinal)
	r.Post("/transitions", s.AddTransition)
	r.Post("/simulate", s.Simulate)
	r.Get("/closure/{state}", s.GetClosure)
	r.Get("/dfa", s.GetDFA)
	r.Get("/graph", s.GetGraph)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
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

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":       "nfa-http",
		"version":   nfa.Version,
		"automaton": s.Automaton.Name(),
	})
}

// GetAutomaton handles the GET /automaton request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Automaton.Snapshot())
}

// AddState handles the POST /states request.
func (s *Server) AddState(w http.ResponseWriter, r *http.Request) {
	var body StateRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.mutated(w, "add_state", s.Automaton.AddState(body.Name))
}

// AddSigma handles the POST /sigma request.
func (s *Server) AddSigma(w http.ResponseWriter, r *http.Request) {
	var body SigmaRequest
	if !s.decode(w, r, &body) {
		return
	}
	sym, ok := singleRune(body.Symbol)
	if !ok {
		s.writeError(w, http.StatusUnprocessableEntity, errSymbolLength)
		return
	}
	s.mutated(w, "add_sigma", s.Automaton.AddSigma(sym))
}

// SetStart handles the POST /start request.
func (s *Server) SetStart(w http.ResponseWriter, r *http.Request) {
	var body StateRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.mutated(w, "set_start", s.Automaton.SetStart(body.Name))
}

// SetFinal handles the POST /final request.
func (s *Server) SetFinal(w http.ResponseWriter, r *http.Request) {
	var body StateRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.mutated(w, "set_final", s.Automaton.SetFinal(body.Name))
}

// AddTransition handles the POST /transitions request.
func (s *Server) AddTransition(w http.ResponseWriter, r *http.Request) {
	var body TransitionRequest
	if !s.decode(w, r, &body) {
		return
	}

	sym := domain.Epsilon
	switch {
	case body.Epsilon && body.On != "":
		s.writeError(w, http.StatusUnprocessableEntity, errors.New("use either on or epsilon, not both"))
		return
	case !body.Epsilon:
		c, ok := singleRune(body.On)
		if !ok {
			s.writeError(w, http.StatusUnprocessableEntity, errSymbolLength)
			return
		}
		sym = domain.Char(c)
	}
	s.mutated(w, "add_transition", s.Automaton.AddTransition(body.From, body.To, sym))
}

// Simulate handles the POST /simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if !s.decode(w, r, &body) {
		return
	}

	if !body.Trace {
		verdict, err := s.Automaton.Simulate(r.Context(), body.Input)
		if err != nil {
			s.writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		s.writeJSON(w, http.StatusOK, SimulateResponse{Verdict: verdict})
		return
	}

	run, err := s.Automaton.Trace(r.Context(), body.Input)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, newTraceResponse(run))
}

// GetClosure handles the GET /closure/{state} request.
func (s *Server) GetClosure(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	closure, err := s.Automaton.Closure(state)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ClosureResponse{State: state, Closure: closure})
}

// GetDFA handles the GET /dfa request.
func (s *Server) GetDFA(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"is_dfa": s.Automaton.IsDFA()})
}

// GetGraph handles the GET /graph request. With ?input= the states active
// during that simulation are highlighted.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	input, overlay := r.URL.Query().Get("input"), r.URL.Query().Has("input")

	var chart string
	_ = s.Automaton.View(func(n *nfa.NFA) error {
		var o *graph.GraphOverlay
		if overlay {
			if run, err := n.Trace(input); err == nil {
				o = graph.OverlayFromRun(run)
			}
		}
		chart = graph.GenerateMermaid(n, o)
		return nil
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(chart)); err != nil {
		s.logger.Error("GetGraph write failed", "err", err)
	}
}

// -- Helpers --

var errSymbolLength = errors.New("symbol must be exactly one character")

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return false
	}
	return true
}

func (s *Server) mutated(w http.ResponseWriter, op string, err error) {
	if err != nil {
		s.logger.Info("mutation rejected", "op", op, "err", err)
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, MutationResponse{Revision: s.Automaton.Revision()})
}

// statusFor maps core errors to response codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownState),
		errors.Is(err, domain.ErrUndeclaredSymbol),
		errors.Is(err, domain.ErrEpsilonSigma),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNoStartState):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
