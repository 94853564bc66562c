package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

// ListScenarios returns all training scenarios, newest first.
func (h *Handler) ListScenarios(c *gin.Context) {
	scenarios, err := h.Store.ListScenarios()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, scenarios)
}

// GetScenario returns a single scenario by id.
func (h *Handler) GetScenario(c *gin.Context) {
	scenario, err := h.Store.GetScenarioByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Scenario not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, scenario)
}

type createScenarioRequest struct {
	Scenario string `json:"scenario" binding:"required"`
}

// CreateScenario persists the scenario, then attempts the risk assessment
// inline. Like complaints, a failed assessment leaves the AI fields null
// and the request still returns 201.
func (h *Handler) CreateScenario(c *gin.Context) {
	var req createScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid scenario data")
		return
	}

	scenario := &models.Scenario{Scenario: req.Scenario}
	if err := h.Store.CreateScenario(scenario); err != nil {
		internalError(c)
		return
	}

	assessment, err := h.AI.AssessScenario(c.Request.Context(), scenario.Scenario)
	if err != nil {
		log.Printf("ERROR: Assessment skipped for scenario %s: %v", scenario.ID, err)
		c.JSON(http.StatusCreated, scenario)
		return
	}
	patch := models.ScenarioPatch{
		AIResponse:         &assessment.Response,
		RecommendedActions: &assessment.RecommendedActions,
	}
	if assessment.RiskLevel != "" {
		patch.RiskLevel = &assessment.RiskLevel
	}
	updated, err := h.Store.UpdateScenario(scenario.ID, patch)
	if err != nil {
		log.Printf("ERROR: Failed to attach assessment to scenario %s: %v", scenario.ID, err)
		c.JSON(http.StatusCreated, scenario)
		return
	}

	c.JSON(http.StatusCreated, updated)
}

// UpdateScenario applies a partial update.
func (h *Handler) UpdateScenario(c *gin.Context) {
	var patch models.ScenarioPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid scenario data")
		return
	}
	scenario, err := h.Store.UpdateScenario(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Scenario not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, scenario)
}
