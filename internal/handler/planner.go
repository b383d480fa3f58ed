package handler

import (
	"net/http"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/metrics"
	"github.com/osse101/ValleyCompanion_Go/internal/planner"
)

// PlannerItemRequest is one crop and how many to plant
type PlannerItemRequest struct {
	CropID   string `json:"cropId" validate:"required,max=100,cropid"`
	Quantity int    `json:"quantity" validate:"gte=1,lte=100000"`
}

// PlannerSummaryRequest is the body of a planner summary call
type PlannerSummaryRequest struct {
	Items []PlannerItemRequest `json:"items" validate:"required,max=200,dive"`
}

// HandlePlannerSummary prices a plan against current crop data.
// Nothing is stored; the client owns the plan.
// @Summary Summarize a planting plan
// @Description Returns per-crop investment, revenue and profit plus totals. Repeated crop ids add up.
// @Tags planner
// @Accept json
// @Produce json
// @Param request body PlannerSummaryRequest true "Plan"
// @Success 200 {object} planner.Summary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown crop"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/planner/summary [post]
func HandlePlannerSummary(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlannerSummaryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Planner summary"); err != nil {
			return
		}

		entries := make([]planner.Entry, 0, len(req.Items))
		for _, item := range req.Items {
			crop, err := svc.GetCrop(r.Context(), item.CropID)
			if err != nil {
				respondCatalogError(w, r, domain.EntityCrop, err)
				return
			}
			entries = append(entries, planner.Entry{Crop: *crop, Quantity: item.Quantity})
		}

		metrics.PlannerSummaries.Inc()
		respondJSON(w, http.StatusOK, planner.FromEntries(entries).Summary())
	}
}
