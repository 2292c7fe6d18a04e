package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skycast/internal/core"
	"skycast/internal/insights"
	"skycast/internal/types"
)

// FavouriteStore is the persistence surface for saved locations.
type FavouriteStore interface {
	Create(ctx context.Context, fav *types.FavouriteLocation) error
	GetByID(ctx context.Context, id string) (*types.FavouriteLocation, error)
	List(ctx context.Context) ([]types.FavouriteLocation, error)
	Delete(ctx context.Context, id string) error
}

// FavouritesHandler maps HTTP requests onto the favourites store, plus the
// compare operation that pulls current conditions for every favourite
// through the forecast cache.
type FavouritesHandler struct {
	store     FavouriteStore
	forecasts ForecastService
	validator *core.Validator
	logger    *slog.Logger
}

// NewFavouritesHandler creates a FavouritesHandler.
func NewFavouritesHandler(store FavouriteStore, svc ForecastService, val *core.Validator, logger *slog.Logger) *FavouritesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavouritesHandler{store: store, forecasts: svc, validator: val, logger: logger}
}

// RegisterRoutes mounts the favourites endpoints onto the mux.
func (h *FavouritesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/compare", h.HandleCompare)
	r.Delete("/{id}", h.HandleDelete)
}

// CreateFavouriteRequest is the POST /v1/favourites body.
type CreateFavouriteRequest struct {
	Label    string  `json:"label" validate:"required,max=120"`
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	Timezone string  `json:"timezone" validate:"omitempty,max=64"`
}

// HandleCreate serves POST /v1/favourites.
func (h *FavouritesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateFavouriteRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	fav := &types.FavouriteLocation{
		Label:    req.Label,
		Lat:      req.Lat,
		Lon:      req.Lon,
		Timezone: req.Timezone,
	}
	if err := h.store.Create(r.Context(), fav); err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusCreated, core.APIResponse{Data: fav})
}

// HandleList serves GET /v1/favourites.
func (h *FavouritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	favs, err := h.store.List(r.Context())
	if err != nil {
		core.Error(w, r, err)
		return
	}
	if favs == nil {
		favs = []types.FavouriteLocation{}
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: favs})
}

// HandleDelete serves DELETE /v1/favourites/{id}.
func (h *FavouritesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		core.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompareEntry is one favourite's slice of the comparison. A fetch failure
// for one location is a normal outcome: its entry carries the error message
// and an absent snapshot instead of failing the whole comparison.
type CompareEntry struct {
	Favourite types.FavouriteLocation `json:"favourite"`
	Current   *CurrentSnapshot        `json:"current,omitempty"`
	Comfort   types.Float             `json:"comfort"`
	BestHour  string                  `json:"best_hour,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// HandleCompare serves GET /v1/favourites/compare?units=. Every favourite's
// bundle comes through the forecast cache, so comparing favourites in quick
// succession costs at most one upstream call per location.
func (h *FavouritesHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	sys := types.UnitSystem(r.URL.Query().Get("units"))
	if sys == "" {
		sys = types.UnitsMetric
	}
	if !sys.Valid() {
		core.Error(w, r, types.NewAppError(types.ErrCodeValidationInvalidUnits,
			`units must be "metric" or "imperial"`, nil))
		return
	}

	favs, err := h.store.List(r.Context())
	if err != nil {
		core.Error(w, r, err)
		return
	}

	entries := make([]CompareEntry, 0, len(favs))
	for _, fav := range favs {
		entry := CompareEntry{Favourite: fav}

		bundle, err := h.forecasts.Bundle(r.Context(), fav.Lat, fav.Lon, sys)
		if err != nil {
			entry.Error = "forecast unavailable"
			entries = append(entries, entry)
			continue
		}

		cur := bundle.Current
		snapshot := snapshotFor(cur, sys)
		entry.Current = &snapshot
		entry.Comfort = insights.ComfortScore(types.UnitsMetric,
			cur.Temperature, cur.Humidity, cur.WindSpeed, types.Float{}, types.Float{})
		if best, ok := insights.BestOutdoorHour(bundle.Hourly.SamplesOn(bundle.CurrentDate())); ok {
			entry.BestHour = best
		}
		entries = append(entries, entry)
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: entries})
}
