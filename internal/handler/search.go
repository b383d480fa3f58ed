package handler

import (
	"net/http"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// SearchResponse wraps global search hits
type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []catalog.SearchResult `json:"results"`
}

// HandleSearch searches recipe, fish and crop names
// @Summary Global name search
// @Description Case-insensitive substring match. Queries under two characters return no results.
// @Tags catalog
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} SearchResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/search [get]
func HandleSearch(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryParam(r, ParamQuery)
		results, err := svc.Search(r.Context(), q)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgRequestFailed, "path", r.URL.Path, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSearchFailed)
			return
		}
		respondJSON(w, http.StatusOK, SearchResponse{Query: q, Results: results})
	}
}
