// Package service exposes the split engine and currency table over a JSON
// HTTP API. Handlers do DTO plumbing and logging only; all math lives in the
// calculator package.
package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mawenner/tally/internal/calculator"
	"github.com/mawenner/tally/internal/common"
	"github.com/mawenner/tally/internal/currency"
	"github.com/mawenner/tally/internal/models"
	"github.com/mawenner/tally/internal/obs"
)

// SplitService serves split computation and assignment validation.
type SplitService struct {
	metrics         *obs.Metrics
	defaultCurrency string
}

// NewSplitService creates a SplitService. metrics may be nil when the server
// runs without Prometheus.
func NewSplitService(metrics *obs.Metrics, defaultCurrency string) *SplitService {
	return &SplitService{metrics: metrics, defaultCurrency: defaultCurrency}
}

type computeRequest struct {
	Receipt     models.Receipt       `json:"receipt"`
	People      []models.Person      `json:"people"`
	Assignments models.AssignmentMap `json:"assignments"`
}

type computeResponse struct {
	People          []models.Person   `json:"people"`
	FullyAssigned   bool              `json:"fully_assigned"`
	UnassignedItems []int             `json:"unassigned_items"`
	FormattedTotals map[string]string `json:"formatted_totals"`
}

type validateRequest struct {
	Receipt     models.Receipt       `json:"receipt"`
	Assignments models.AssignmentMap `json:"assignments"`
}

type validateResponse struct {
	FullyAssigned   bool  `json:"fully_assigned"`
	UnassignedItems []int `json:"unassigned_items"`
}

// Compute handles POST /api/v1/split/compute.
//
// The validator is run alongside the engine rather than as a gate: a partial
// assignment still gets totals computed so callers can render a live view
// while the user is assigning items, with the validation flags telling them
// the numbers are not final yet.
func (s *SplitService) Compute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload")
		return
	}

	requestID := uuid.NewString()
	slog.Debug("computing split",
		"request_id", requestID,
		"items", len(req.Receipt.Items),
		"people", len(req.People),
		"subtotal", req.Receipt.Subtotal,
	)

	// People submitted without an ID get one assigned; their assignments
	// must then reference the returned ID on subsequent calls.
	for i := range req.People {
		if req.People[i].ID == "" {
			req.People[i].ID = uuid.NewString()
		}
	}

	people := calculator.ComputeTotals(req.Receipt, req.People, req.Assignments)
	fullyAssigned := calculator.IsFullyAssigned(req.Receipt, req.Assignments)
	unassigned := calculator.UnassignedItems(req.Receipt, req.Assignments)

	code := req.Receipt.Currency
	if code == "" {
		code = s.defaultCurrency
	}
	formatted := make(map[string]string, len(people))
	for _, p := range people {
		formatted[p.ID] = currency.Format(p.FinalTotal, code)
		slog.Debug("person share",
			"request_id", requestID,
			"person", p.Name,
			"total_before_tax", p.TotalBeforeTax,
			"tax", p.Tax,
			"tip", p.Tip,
			"final_total", p.FinalTotal,
		)
	}

	if s.metrics != nil {
		s.metrics.SplitsComputed.Inc()
		if !fullyAssigned {
			s.metrics.IncompleteAssignments.Inc()
		}
	}

	common.JSON(w, http.StatusOK, computeResponse{
		People:          people,
		FullyAssigned:   fullyAssigned,
		UnassignedItems: notNil(unassigned),
		FormattedTotals: formatted,
	})
}

// Validate handles POST /api/v1/split/validate.
func (s *SplitService) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload")
		return
	}

	fullyAssigned := calculator.IsFullyAssigned(req.Receipt, req.Assignments)
	unassigned := calculator.UnassignedItems(req.Receipt, req.Assignments)

	if s.metrics != nil && !fullyAssigned {
		s.metrics.IncompleteAssignments.Inc()
	}

	common.JSON(w, http.StatusOK, validateResponse{
		FullyAssigned:   fullyAssigned,
		UnassignedItems: notNil(unassigned),
	})
}

// notNil keeps empty index lists encoding as [] instead of null.
func notNil(indices []int) []int {
	if indices == nil {
		return []int{}
	}
	return indices
}
