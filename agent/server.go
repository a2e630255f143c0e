package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"reversi/game"
	"reversi/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type FindMoveRequest struct {
	Board      []string `json:"board"` // Rows of 'X', 'O' and '.', top row first
	Color      string   `json:"color"`
	Iterations int      `json:"iterations,omitempty"`
	Seed       uint64   `json:"seed,omitempty"`
}

type FindMoveResponse struct {
	Action     string   `json:"action"`
	Legal      []string `json:"legal"`
	Episodes   int      `json:"episodes"`
	Nodes      int      `json:"nodes"`
	DurationMs int64    `json:"duration_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server answers move requests over HTTP. Every request runs its own search
// on its own board, so requests are served concurrently.
type Server struct {
	options []searcher.Option
	logger  zerolog.Logger
	router  chi.Router
}

// NewServer builds the router. options configure every search; a request may
// still override the iteration budget and seed.
func NewServer(logger zerolog.Logger, options ...searcher.Option) *Server {
	s := &Server{options: options, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/findmove", s.handleFindMove)
	s.router = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("agent server listening")
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	log := s.logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()

	var req FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request: " + err.Error()})
		return
	}
	board, err := game.ParseOthello(req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	color, err := game.ParseColor(req.Color)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	options := append([]searcher.Option{searcher.WithMetrics(), searcher.WithLogger(log)}, s.options...)
	if req.Iterations > 0 {
		options = append(options, searcher.WithIterations(req.Iterations))
	}
	if req.Seed > 0 {
		options = append(options, searcher.WithSeed(req.Seed))
	}

	action, metric, err := searcher.NewMCTS(color, options...).FindMove(board)
	if errors.Is(err, searcher.ErrNoLegalMoves) {
		log.Warn().Stringer("color", color).Msg("move requested without legal moves")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, FindMoveResponse{
		Action: action.String(),
		Legal: lo.Map(board.LegalActions(color), func(a game.Action, _ int) string {
			return a.String()
		}),
		Episodes:   metric.Episodes,
		Nodes:      metric.NodesCreated,
		DurationMs: metric.Duration.Milliseconds(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
