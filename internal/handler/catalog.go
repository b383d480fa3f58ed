package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// HandleListCrops lists crops, optionally narrowed by season
// @Summary List crops
// @Description Season matches by substring so multi-season crops are included. "All Seasons" disables the filter.
// @Tags catalog
// @Produce json
// @Param season query string false "Season, e.g. Spring"
// @Success 200 {array} domain.Crop
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/crops [get]
func HandleListCrops(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.NewCropFilter(queryParam(r, ParamSeason))
		crops, err := svc.ListCrops(r.Context(), filter)
		if err != nil {
			respondCatalogError(w, r, domain.EntityCrop, err)
			return
		}
		respondJSON(w, http.StatusOK, crops)
	}
}

// HandleGetCrop returns one crop by id
// @Summary Get crop
// @Tags catalog
// @Produce json
// @Param id path string true "Crop id"
// @Success 200 {object} domain.Crop
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/crops/{id} [get]
func HandleGetCrop(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crop, err := svc.GetCrop(r.Context(), chi.URLParam(r, ParamID))
		if err != nil {
			respondCatalogError(w, r, domain.EntityCrop, err)
			return
		}
		respondJSON(w, http.StatusOK, crop)
	}
}

// HandleListFish lists fish; filters compose with AND
// @Summary List fish
// @Tags catalog
// @Produce json
// @Param season query string false "Season substring; All Seasons disables"
// @Param weather query string false "Weather substring; Any Weather disables"
// @Param location query string false "Location substring; Any Location disables"
// @Success 200 {array} domain.Fish
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/fish [get]
func HandleListFish(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.NewFishFilter(
			queryParam(r, ParamSeason),
			queryParam(r, ParamWeather),
			queryParam(r, ParamLocation),
		)
		fish, err := svc.ListFish(r.Context(), filter)
		if err != nil {
			respondCatalogError(w, r, domain.EntityFish, err)
			return
		}
		respondJSON(w, http.StatusOK, fish)
	}
}

// HandleListNPCs lists villagers, or returns one when name is given
// @Summary List NPCs or look one up
// @Description With name, returns a single NPC matched case-insensitively, or 404.
// @Tags catalog
// @Produce json
// @Param name query string false "Exact NPC name, any case"
// @Success 200 {array} domain.NPC
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/npcs [get]
func HandleListNPCs(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if name := queryParam(r, ParamName); name != "" {
			npc, err := svc.GetNPC(r.Context(), name)
			if err != nil {
				respondCatalogError(w, r, domain.EntityNPC, err)
				return
			}
			respondJSON(w, http.StatusOK, npc)
			return
		}

		npcs, err := svc.ListNPCs(r.Context())
		if err != nil {
			respondCatalogError(w, r, domain.EntityNPC, err)
			return
		}
		respondJSON(w, http.StatusOK, npcs)
	}
}

// HandleListRecipes lists recipes, optionally for one category
// @Summary List recipes
// @Tags catalog
// @Produce json
// @Param category query string false "Category label, exact; All disables"
// @Success 200 {array} domain.Recipe
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/recipes [get]
func HandleListRecipes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.ListRecipes(r.Context(), domain.NewRecipeFilter(queryParam(r, ParamCategory)))
		if err != nil {
			respondCatalogError(w, r, domain.EntityRecipe, err)
			return
		}
		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleListMining lists mining locations with their sections
// @Summary List mining locations
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.MiningLocation
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/mining [get]
func HandleListMining(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := svc.ListMiningLocations(r.Context())
		if err != nil {
			respondCatalogError(w, r, domain.EntityMiningLocation, err)
			return
		}
		respondJSON(w, http.StatusOK, locations)
	}
}

// HandleListBundles lists community center bundles
// @Summary List bundles
// @Tags catalog
// @Produce json
// @Param room query string false "Room, exact; All Rooms disables"
// @Success 200 {array} domain.Bundle
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/bundles [get]
func HandleListBundles(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bundles, err := svc.ListBundles(r.Context(), domain.NewBundleFilter(queryParam(r, ParamRoom)))
		if err != nil {
			respondCatalogError(w, r, domain.EntityBundle, err)
			return
		}
		respondJSON(w, http.StatusOK, bundles)
	}
}
