package server

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"regexviz/regexlib"
)

// ErrNotFound is returned when an automaton id is unknown to the registry.
var ErrNotFound = errors.New("unknown automaton id")

// Server keeps compiled automata in memory and serves the compile/simulate
// API used by the visualization front end. Automata are immutable after
// compilation, so only the registry map itself needs locking.
type Server struct {
	log *slog.Logger

	mu       sync.RWMutex
	automata map[string]*regexlib.NFA
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, automata: make(map[string]*regexlib.NFA)}
}

func (s *Server) put(n *regexlib.NFA) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.automata[id] = n
	s.mu.Unlock()
	return id
}

func (s *Server) get(id string) (*regexlib.NFA, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.automata[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n, nil
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.POST("/api/compile", s.handleCompile)
	r.POST("/api/simulate", s.handleSimulate)
	r.GET("/api/automata/:id/dot", s.handleDOT)
	return r
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}
