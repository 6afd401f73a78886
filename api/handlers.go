package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/seenimoa/filinglens/internal/edgar"
	"github.com/seenimoa/filinglens/internal/export"
	"github.com/seenimoa/filinglens/pkg/models"
)

// errorResponse is the JSON error body. Status distinguishes the
// informational "unknown_ticker" outcome from genuine fetch failures.
type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/v1/company/{ticker}
func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	company, err := s.svc.ResolveCompany(r.Context(), ticker)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

// GET /api/v1/company/{ticker}/filings?form=10-K&days=90[&format=csv]
func (s *Server) handleFilings(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	form := r.URL.Query().Get("form")
	if form == "" {
		form = "10-K"
	}
	if !models.IsSupportedFormType(form) {
		writeError(w, http.StatusBadRequest, "bad_request",
			fmt.Sprintf("unsupported form type %q (supported: %s)", form, strings.Join(models.SupportedFormTypes, ", ")))
		return
	}

	days, err := windowDaysParam(r, 90)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	company, filings, err := s.svc.Filings(r.Context(), ticker, form, days, s.now())
	if err != nil {
		s.writePipelineError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		data, err := export.FilingsCSV(filings)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "export_error", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", company.Ticker+"_filings.csv"))
		w.Write(data)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"company":     company,
		"form":        form,
		"window_days": days,
		"filings":     filings, // empty list is a normal "no matches" outcome
	})
}

// GET /api/v1/company/{ticker}/feed?form=10-K&limit=20
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	form := r.URL.Query().Get("form")
	if form != "" && !models.IsSupportedFormType(form) {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("unsupported form type %q", form))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	company, err := s.svc.ResolveCompany(r.Context(), ticker)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	entries, err := s.svc.LatestFilingsFeed(r.Context(), company.CIK, form, limit)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"company": company, "entries": entries})
}

// GET /api/v1/company/{ticker}/prices?days=90
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	days, err := windowDaysParam(r, 90)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	company, err := s.svc.ResolveCompany(r.Context(), ticker)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	points, err := s.prices.DailyCloses(r.Context(), company.Ticker, days)
	if err != nil {
		writeError(w, http.StatusBadGateway, "fetch_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"company": company, "prices": points})
}

// GET /api/v1/analysis?url={documentUrl}
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	documentURL := r.URL.Query().Get("url")
	if documentURL == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "missing required query parameter: url")
		return
	}
	// Only filing archive documents may be analyzed through this surface.
	if !strings.HasPrefix(documentURL, s.svc.ArchiveBase()+"/") {
		writeError(w, http.StatusBadRequest, "bad_request",
			"url must point at the filing archive ("+s.svc.ArchiveBase()+")")
		return
	}

	analysis, err := s.extractor.Extract(r.Context(), documentURL)
	if err != nil {
		s.writePipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"analysis": analysis,
		"means":    analysis.Means(), // labels with zero parsed values are absent: "not found"
	})
}

// windowDaysParam parses and bounds the trailing window query parameter.
func windowDaysParam(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return def, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid days parameter %q", raw)
	}
	if days < models.MinWindowDays || days > models.MaxWindowDays {
		return 0, fmt.Errorf("days must be between %d and %d", models.MinWindowDays, models.MaxWindowDays)
	}
	return days, nil
}

// writePipelineError maps the pipeline's error taxonomy onto HTTP
// responses. Unknown ticker renders as an informational 404; transport,
// upstream-status, and malformed-body failures render as 502s with the
// failure cause.
func (s *Server) writePipelineError(w http.ResponseWriter, err error) {
	var unknownTicker *edgar.UnknownTickerError
	var httpErr *edgar.HTTPError
	var netErr *edgar.NetworkError
	var malformed *edgar.MalformedResponseError

	switch {
	case errors.As(err, &unknownTicker):
		writeError(w, http.StatusNotFound, "unknown_ticker", unknownTicker.Error())
	case errors.As(err, &httpErr):
		writeError(w, http.StatusBadGateway, "fetch_error", httpErr.Error())
	case errors.As(err, &netErr):
		writeError(w, http.StatusBadGateway, "network_error", netErr.Error())
	case errors.As(err, &malformed):
		writeError(w, http.StatusBadGateway, "malformed_response", malformed.Error())
	default:
		s.log.Error("unhandled pipeline error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Status: code, Error: msg})
}
