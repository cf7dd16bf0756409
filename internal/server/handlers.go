package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/rshade/digital-footprint/internal/catalog"
	"github.com/rshade/digital-footprint/internal/footprint"
	"github.com/rshade/digital-footprint/internal/report"
)

// CalculateRequest is the POST /v1/calculate body. Location falls back to
// the server's default when empty.
type CalculateRequest struct {
	Usage    footprint.UsageInput `json:"usage"`
	Location string               `json:"location,omitempty"`
}

// CalculateResponse bundles the calculation result with its
// presentation-ready forms.
type CalculateResponse struct {
	Result  footprint.CalculationResult `json:"result"`
	Chart   []report.ChartRow           `json:"chart,omitempty"`
	Sweep   []report.SweepRow           `json:"sweep,omitempty"`
	Summary string                      `json:"summary"`
}

// CompareRequest is the POST /v1/compare body.
type CompareRequest struct {
	Usage     footprint.UsageInput `json:"usage"`
	LocationA string               `json:"location_a"`
	LocationB string               `json:"location_b"`
}

// CompareResponse bundles the comparison result with synchronized chart
// rows for both sides.
type CompareResponse struct {
	Result  footprint.ComparisonResult `json:"result"`
	ChartA  []report.ChartRow          `json:"chart_a,omitempty"`
	ChartB  []report.ChartRow          `json:"chart_b,omitempty"`
	MaxCO2G float64                    `json:"max_co2_g"`
	Summary string                     `json:"summary"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCalculate(defaultLocation string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}

		locationID := req.Location
		if locationID == "" {
			locationID = defaultLocation
		}

		result, err := footprint.CalculateByID(req.Usage, locationID)
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}

		sweep, err := report.LocationSweep(req.Usage, locationID)
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}

		s.writeJSON(w, http.StatusOK, CalculateResponse{
			Result:  result,
			Chart:   report.BreakdownRows(result),
			Sweep:   sweep,
			Summary: report.Summary(result),
		})
	}
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := footprint.CompareByID(req.Usage, req.LocationA, req.LocationB)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	rowsA, rowsB, maxCO2 := report.ComparisonRows(result)
	s.writeJSON(w, http.StatusOK, CompareResponse{
		Result:  result,
		ChartA:  rowsA,
		ChartB:  rowsB,
		MaxCO2G: maxCO2,
		Summary: report.CompareSummary(result),
	})
}

func (s *Server) handleTasks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Tasks())
}

func (s *Server) handleGrids(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Grids())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps calculation errors to HTTP status codes. Bad input (an
// unknown id or invalid quantity) is a client error, everything else an
// internal one.
func statusFor(err error) int {
	if errors.Is(err, catalog.ErrUnknownID) || errors.Is(err, footprint.ErrInvalidQuantity) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encoding response failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
