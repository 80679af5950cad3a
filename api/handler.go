// Package api - Request handlers
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mainland-quote/core/taxes"
	"mainland-quote/core/types"
	"mainland-quote/internal/errors"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// handleCalculateEstimate runs one estimate pass without persisting
// anything.
func (s *Server) handleCalculateEstimate(w http.ResponseWriter, r *http.Request) {
	var est types.Estimate
	if err := json.NewDecoder(r.Body).Decode(&est); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.engine().RecalculateEstimate(est))
}

// handleCalculateQuote runs one quote pass without persisting anything.
func (s *Server) handleCalculateQuote(w http.ResponseWriter, r *http.Request) {
	var q types.QuoteState
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.engine().RecalculateQuote(q))
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, "NO_STORE", "persistence is not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) handleListEstimates(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	estimates, err := s.store.ListEstimates(r.Context())
	if err != nil {
		writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	if estimates == nil {
		estimates = []types.Estimate{}
	}
	writeJSON(w, http.StatusOK, estimates)
}

// handleSaveEstimate recalculates before saving so stored totals are
// always consistent with the stored inputs.
func (s *Server) handleSaveEstimate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var est types.Estimate
	if err := json.NewDecoder(r.Body).Decode(&est); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	est = s.engine().RecalculateEstimate(est)
	id, err := s.store.SaveEstimate(r.Context(), est)
	if err != nil {
		writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	est.ID = id
	writeJSON(w, http.StatusCreated, est)
}

func (s *Server) handleGetEstimate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	est, err := s.store.GetEstimate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, est)
}

func (s *Server) handleDeleteEstimate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.store.DeleteEstimate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	quotes, err := s.store.ListQuotes(r.Context())
	if err != nil {
		writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	if quotes == nil {
		quotes = []types.QuoteState{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *Server) handleSaveQuote(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var q types.QuoteState
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	q = s.engine().RecalculateQuote(q)
	id, err := s.store.SaveQuote(r.Context(), q)
	if err != nil {
		writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}
	q.ID = id
	writeJSON(w, http.StatusCreated, q)
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	q, err := s.store.GetQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.store.DeleteQuote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine().Settings())
}

// handleUpdateSettings persists new settings and swaps the engine
// snapshot so later calculations see them.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings types.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if s.store != nil {
		if err := s.store.SaveSettings(r.Context(), settings); err != nil {
			writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
			return
		}
	}
	s.swapEngine(&settings)
	writeJSON(w, http.StatusOK, settings)
}

// handleListTaxRates returns every state's reference rates, ordered by
// state code.
func (s *Server) handleListTaxRates(w http.ResponseWriter, r *http.Request) {
	type stateRates struct {
		State string      `json:"state"`
		Rates taxes.Rates `json:"rates"`
	}
	codes := taxes.States()
	out := make([]stateRates, 0, len(codes))
	for _, code := range codes {
		rates, _ := taxes.Lookup(code)
		out = append(out, stateRates{State: code, Rates: rates})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTaxRates(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	rates, ok := taxes.Lookup(state)
	if !ok {
		writeError(w, "NOT_FOUND", "unknown state code: "+state, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

func writeStorageError(w http.ResponseWriter, err error) {
	if errors.IsType(err, errors.TypeNotFound) {
		writeError(w, "NOT_FOUND", err.Error(), http.StatusNotFound)
		return
	}
	writeError(w, "STORAGE_ERROR", err.Error(), http.StatusInternalServerError)
}
