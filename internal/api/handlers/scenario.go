package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/scenario"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ScenarioHandler handles saved business case endpoints
// ⭐ SSOT: scenario API handlers live in this struct and nowhere else.
type ScenarioHandler struct {
	store  *scenario.Store
	engine *roi.Engine
	logger *logger.Logger
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(store *scenario.Store, engine *roi.Engine, log *logger.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		store:  store,
		engine: engine,
		logger: log,
	}
}

// CreateScenarioRequest names a business case and carries its inputs.
// Metrics are always derived server-side from the inputs, never posted.
type CreateScenarioRequest struct {
	Name    string               `json:"name"`
	Company string               `json:"company"`
	Draft   bool                 `json:"draft"`
	Inputs  roi.CalculatorInputs `json:"inputs"`
}

// Create computes and saves a scenario
// POST /api/scenarios
func (h *ScenarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Missing scenario name")
		return
	}

	result := h.engine.Calculate(req.Inputs)
	sc := scenario.New(req.Name, req.Company, result, req.Draft)

	if err := h.store.Save(ctx, sc); err != nil {
		h.logger.WithError(err).Error("Failed to save scenario")
		respondError(w, http.StatusInternalServerError, "Failed to save scenario")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"scenario_id": sc.ID,
		"name":        sc.Name,
		"draft":       sc.Draft,
	}).Info("Scenario saved")

	respondJSON(w, http.StatusCreated, sc)
}

// List returns saved scenarios, most recently updated first
// GET /api/scenarios?limit=&offset=
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'limit' (expected integer)")
			return
		}
		limit = n
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'offset' (expected integer)")
			return
		}
		offset = n
	}
	if offset < 0 {
		offset = 0
	}

	scenarios, err := h.store.List(ctx, limit, offset)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list scenarios")
		respondError(w, http.StatusInternalServerError, "Failed to list scenarios")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": scenarios,
		"count":     len(scenarios),
	})
}

// Get returns one scenario by id
// GET /api/scenarios/{id}
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	sc, err := h.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, scenario.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Scenario not found")
			return
		}
		h.logger.WithError(err).Error("Failed to get scenario")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve scenario")
		return
	}

	respondJSON(w, http.StatusOK, sc)
}

// Delete removes one scenario by id
// DELETE /api/scenarios/{id}
func (h *ScenarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, scenario.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Scenario not found")
			return
		}
		h.logger.WithError(err).Error("Failed to delete scenario")
		respondError(w, http.StatusInternalServerError, "Failed to delete scenario")
		return
	}

	h.logger.WithField("scenario_id", id).Info("Scenario deleted")

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "deleted",
		"id":     id,
	})
}
