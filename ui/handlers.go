package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cedralab/domain/biquad"
	"cedralab/domain/cedra"
	"cedralab/domain/core"
	"cedralab/domain/quasicrystal"
	"cedralab/internal/analysis"
	"cedralab/internal/errors"
	"cedralab/internal/render"
)

// analyzeRequest is the JSON body of POST /api/analyze. Zero values fall
// back to the configured defaults.
type analyzeRequest struct {
	Length     int   `json:"length"`
	Bins       int   `json:"bins"`
	Resolution int   `json:"resolution"`
	Lags       []int `json:"lags"`
}

// solveRequest is the JSON body of POST /api/solve.
type solveRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

func (a *App) handleConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cedra.Snapshot())
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("invalid JSON body"))
		return
	}

	if req.Length == 0 {
		req.Length = a.cfg.Length
	}
	if req.Bins == 0 {
		req.Bins = a.cfg.Bins
	}
	if req.Resolution == 0 {
		req.Resolution = a.cfg.Resolution
	}
	if len(req.Lags) == 0 {
		req.Lags = a.cfg.Lags
	}

	report, _, err := a.builder.Build(r.Context(), analysis.Request{
		Length:     req.Length,
		Bins:       req.Bins,
		Resolution: req.Resolution,
		Lags:       req.Lags,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if a.reports != nil {
		if err := a.reports.Save(r.Context(), report); err != nil {
			a.logger.Error("failed to persist report %s: %v", report.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, report)
}

func (a *App) handleListReports(w http.ResponseWriter, r *http.Request) {
	if a.reports == nil {
		writeError(w, errors.New(errors.CodeDatabaseError, "report storage is not configured"))
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	reports, err := a.reports.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to list reports"))
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if a.reports == nil {
		writeError(w, errors.New(errors.CodeDatabaseError, "report storage is not configured"))
		return
	}

	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidInput("report ID must not be empty"))
		return
	}

	report, err := a.reports.Get(r.Context(), id)
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to load report"))
		return
	}
	if report == nil {
		writeError(w, errors.NotFound("report"))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (a *App) handleQuasicrystal(w http.ResponseWriter, r *http.Request) {
	bound := a.cfg.QCBound
	if s := r.URL.Query().Get("bound"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, errors.InvalidInput("bound must be an integer"))
			return
		}
		bound = parsed
	}

	structure, err := quasicrystal.Generate(bound)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, structure)
}

func (a *App) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidInput("invalid JSON body"))
		return
	}

	solver := biquad.NewSolver()
	roots := solver.Solve(req.A, req.B, req.C)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"a":     req.A,
		"b":     req.B,
		"c":     req.C,
		"roots": roots,
	})
}

func (a *App) handleConstantsHTML(w http.ResponseWriter, r *http.Request) {
	md := render.ConstantsMarkdown(cedra.Snapshot())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(render.ToHTML(md))
}

func (a *App) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	if a.reports == nil {
		writeError(w, errors.New(errors.CodeDatabaseError, "report storage is not configured"))
		return
	}

	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.InvalidInput("report ID must not be empty"))
		return
	}

	report, err := a.reports.Get(r.Context(), id)
	if err != nil {
		writeError(w, errors.Wrap(err, "failed to load report"))
		return
	}
	if report == nil {
		writeError(w, errors.NotFound("report"))
		return
	}

	md := render.ReportMarkdown(report)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(render.ToHTML(md))
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps application error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeDatabaseError:
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
