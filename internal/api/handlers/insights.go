// Package handlers contains the HTTP handler implementations for the skycast
// API: derived insights, raw forecast passthrough, location search, and
// favourites.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skycast/internal/core"
	"skycast/internal/insights"
	"skycast/internal/types"
	"skycast/internal/units"
)

// ForecastService is the cached retrieval surface the handlers depend on.
// Defined locally so handler tests can substitute a double without touching
// the forecast package.
type ForecastService interface {
	Bundle(ctx context.Context, lat, lon float64, units types.UnitSystem) (*types.ForecastBundle, error)
	Search(ctx context.Context, query string, count int) ([]types.GeocodeResult, error)
}

// InsightsHandler maps HTTP requests onto the insight engine.
type InsightsHandler struct {
	forecasts ForecastService
	logger    *slog.Logger
}

// NewInsightsHandler creates an InsightsHandler.
func NewInsightsHandler(svc ForecastService, logger *slog.Logger) *InsightsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsHandler{forecasts: svc, logger: logger}
}

// RegisterRoutes mounts the insight endpoints onto the mux.
func (h *InsightsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/insights", h.HandleGetInsights)
	r.Get("/forecast", h.HandleGetForecast)
	r.Get("/locations/search", h.HandleSearchLocations)
}

// CurrentSnapshot is the units-adjusted current-conditions block returned to
// clients. Temperature and wind are converted at this boundary; the engine
// itself never sees imperial values.
type CurrentSnapshot struct {
	Time         string          `json:"time"`
	Temperature  types.Float     `json:"temperature"`
	ApparentTemp types.Float     `json:"apparent_temperature"`
	Humidity     types.Float     `json:"relative_humidity"`
	WindSpeed    types.Float     `json:"wind_speed"`
	Pressure     types.Float     `json:"pressure"`
	WeatherCode  types.Int       `json:"weather_code"`
	Condition    string          `json:"condition"`
	Pictogram    types.Pictogram `json:"pictogram"`
}

// InsightsResponse is the full payload of GET /v1/insights.
type InsightsResponse struct {
	Location types.Location       `json:"location"`
	Units    types.UnitSystem     `json:"units"`
	Current  CurrentSnapshot      `json:"current"`
	Insights insights.DayInsights `json:"insights"`
}

// HandleGetInsights serves GET /v1/insights?lat=&lon=&units=&date=.
// It fetches the bundle through the cache, runs every derivation for the
// requested (or current) day, and returns the combined result.
func (h *InsightsHandler) HandleGetInsights(w http.ResponseWriter, r *http.Request) {
	lat, lon, sys, err := coordinateParams(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	date := r.URL.Query().Get("date")
	if date != "" && !isoDatePattern.MatchString(date) {
		core.Error(w, r, types.NewAppError(types.ErrCodeValidationInvalidDate,
			"date must be formatted YYYY-MM-DD", nil))
		return
	}

	bundle, err := h.forecasts.Bundle(r.Context(), lat, lon, sys)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	resp := InsightsResponse{
		Location: types.Location{Lat: bundle.Latitude, Lon: bundle.Longitude},
		Units:    sys,
		Current:  snapshotFor(bundle.Current, sys),
		Insights: insights.ForDay(bundle, date),
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: resp})
}

// HandleGetForecast serves GET /v1/forecast?lat=&lon=&units=, returning the
// raw cached bundle for clients that render their own charts. Values stay
// metric regardless of the units parameter, which affects caching only.
func (h *InsightsHandler) HandleGetForecast(w http.ResponseWriter, r *http.Request) {
	lat, lon, sys, err := coordinateParams(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	bundle, err := h.forecasts.Bundle(r.Context(), lat, lon, sys)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: bundle})
}

// HandleSearchLocations serves GET /v1/locations/search?q=.
func (h *InsightsHandler) HandleSearchLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		core.Error(w, r, types.NewAppError(types.ErrCodeValidationMissingField,
			"query parameter q is required", nil))
		return
	}

	results, err := h.forecasts.Search(r.Context(), query, 5)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	if results == nil {
		results = []types.GeocodeResult{}
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: results})
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// coordinateParams parses and validates the lat/lon/units query triple shared
// by the forecast-backed endpoints.
func coordinateParams(r *http.Request) (lat, lon float64, sys types.UnitSystem, err error) {
	q := r.URL.Query()

	lat, perr := strconv.ParseFloat(q.Get("lat"), 64)
	if perr != nil || lat < -90 || lat > 90 {
		return 0, 0, "", types.NewAppError(types.ErrCodeValidationInvalidLat,
			"lat must be a number in [-90, 90]", perr)
	}
	lon, perr = strconv.ParseFloat(q.Get("lon"), 64)
	if perr != nil || lon < -180 || lon > 180 {
		return 0, 0, "", types.NewAppError(types.ErrCodeValidationInvalidLon,
			"lon must be a number in [-180, 180]", perr)
	}

	sys = types.UnitSystem(q.Get("units"))
	if sys == "" {
		sys = types.UnitsMetric
	}
	if !sys.Valid() {
		return 0, 0, "", types.NewAppError(types.ErrCodeValidationInvalidUnits,
			`units must be "metric" or "imperial"`, nil)
	}
	return lat, lon, sys, nil
}

// snapshotFor converts the current-conditions block to the caller's unit
// system. This is the formatting boundary: everything upstream is metric.
func snapshotFor(cur types.CurrentConditions, sys types.UnitSystem) CurrentSnapshot {
	temp, app, wind := cur.Temperature, cur.ApparentTemp, cur.WindSpeed
	if sys == types.UnitsImperial {
		temp = units.CToF(temp)
		app = units.CToF(app)
		wind = units.KmhToMph(wind)
	}
	return CurrentSnapshot{
		Time:         cur.Time,
		Temperature:  temp,
		ApparentTemp: app,
		Humidity:     cur.Humidity,
		WindSpeed:    wind,
		Pressure:     cur.Pressure,
		WeatherCode:  cur.WeatherCode,
		Condition:    types.DescribeWeatherCode(cur.WeatherCode),
		Pictogram:    types.PictogramForCode(cur.WeatherCode),
	}
}
