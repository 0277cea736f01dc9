package handlers

import (
	"errors"
	"net/http"
	"time"

	"cerberus/models"
	"cerberus/services/catalog"
	"cerberus/services/estimate"
	"cerberus/utils"

	"github.com/gin-gonic/gin"
)

// EstimateHandler exposes the catalog and the pure estimator. The draft stays
// with the client: it is sent back as "previous" and never stored here.
type EstimateHandler struct {
	Catalog *catalog.Catalog
	Now     func() time.Time
}

func NewEstimateHandler(cat *catalog.Catalog) *EstimateHandler {
	return &EstimateHandler{Catalog: cat, Now: time.Now}
}

type estimateResponse struct {
	Estimate models.DraftEstimate `json:"estimate"`
	Summary  string               `json:"summary"`
	Note     string               `json:"note"`
}

func (h *EstimateHandler) respond(c *gin.Context, est models.DraftEstimate) {
	c.JSON(http.StatusOK, estimateResponse{
		Estimate: est,
		Summary:  estimate.Summary(&est, h.Catalog.Business()),
		Note:     estimate.QuotedCaveat(&est),
	})
}

// GetCatalogHandler returns packages, add-ons, post-only services and business info.
func (h *EstimateHandler) GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Data())
}

// ComputeEstimateHandler recomputes the package-mode estimate.
func (h *EstimateHandler) ComputeEstimateHandler(c *gin.Context) {
	var input struct {
		estimate.Selection
		Previous *models.DraftEstimate `json:"previous"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.respond(c, estimate.Compute(h.Catalog, input.Selection, input.Previous, h.Now()))
}

// SelectPostOnlyHandler switches the estimate to a post-only service.
func (h *EstimateHandler) SelectPostOnlyHandler(c *gin.Context) {
	var input struct {
		PostOnlyID string                `json:"postOnlyId"`
		Previous   *models.DraftEstimate `json:"previous"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "Invalid request body", err)
		return
	}

	est, err := estimate.SelectPostOnly(h.Catalog, input.PostOnlyID, input.Previous, h.Now())
	if errors.Is(err, estimate.ErrUnknownPostOnly) {
		utils.JSONError(c, getLogger(c), http.StatusNotFound, "Unknown post-only service", err)
		return
	}
	h.respond(c, est)
}

// SummaryHandler formats a client-held draft without changing it.
func (h *EstimateHandler) SummaryHandler(c *gin.Context) {
	var input struct {
		Estimate *models.DraftEstimate `json:"estimate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": estimate.Summary(input.Estimate, h.Catalog.Business()),
		"note":    estimate.QuotedCaveat(input.Estimate),
	})
}
