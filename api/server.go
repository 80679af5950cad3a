// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine
// orchestration, output serialization. Pricing logic never lives in a
// handler.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mainland-quote/core/engine"
	"mainland-quote/core/types"
	"mainland-quote/db"
	"mainland-quote/internal/logging"
)

// Server is the API server.
type Server struct {
	router  chi.Router
	version string
	store   *db.Store

	// eng is swapped wholesale when settings change so in-flight
	// calculations keep their snapshot.
	mu  sync.RWMutex
	eng *engine.Engine
}

// NewServer creates an API server without persistence; save and list
// endpoints respond 503.
func NewServer(version string, settings *types.Settings) *Server {
	return NewServerWithStore(version, settings, nil)
}

// NewServerWithStore creates an API server backed by a document store.
func NewServerWithStore(version string, settings *types.Settings, store *db.Store) *Server {
	s := &Server{
		version: version,
		store:   store,
		eng:     engine.New(settings),
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Post("/estimates/calculate", s.handleCalculateEstimate)
	r.Post("/quotes/calculate", s.handleCalculateQuote)

	r.Route("/estimates", func(r chi.Router) {
		r.Get("/", s.handleListEstimates)
		r.Post("/", s.handleSaveEstimate)
		r.Get("/{id}", s.handleGetEstimate)
		r.Delete("/{id}", s.handleDeleteEstimate)
	})
	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", s.handleListQuotes)
		r.Post("/", s.handleSaveQuote)
		r.Get("/{id}", s.handleGetQuote)
		r.Delete("/{id}", s.handleDeleteQuote)
	})

	r.Get("/settings", s.handleGetSettings)
	r.Put("/settings", s.handleUpdateSettings)
	r.Get("/tax-rates", s.handleListTaxRates)
	r.Get("/tax-rates/{state}", s.handleTaxRates)

	return r
}

// engine returns the current engine snapshot.
func (s *Server) engine() *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng
}

// swapEngine atomically replaces the engine with one over new settings.
func (s *Server) swapEngine(settings *types.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng = engine.New(settings)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Component("api").Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code, message string, status int) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}
