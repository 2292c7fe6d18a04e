package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/core"
	"skycast/internal/types"
)

// --- Mock FavouriteStore ---

type mockStore struct {
	createFn func(ctx context.Context, fav *types.FavouriteLocation) error
	listFn   func(ctx context.Context) ([]types.FavouriteLocation, error)
	deleteFn func(ctx context.Context, id string) error

	lastCreated *types.FavouriteLocation
	lastDeleted string
}

func (m *mockStore) Create(ctx context.Context, fav *types.FavouriteLocation) error {
	m.lastCreated = fav
	if m.createFn != nil {
		return m.createFn(ctx, fav)
	}
	fav.ID = "fav_new"
	fav.CreatedAt = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return nil
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*types.FavouriteLocation, error) {
	return &types.FavouriteLocation{ID: id, Label: "Home", Lat: 51.5, Lon: -0.13}, nil
}

func (m *mockStore) List(ctx context.Context) ([]types.FavouriteLocation, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	m.lastDeleted = id
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newFavouritesRouter(store FavouriteStore, svc ForecastService) http.Handler {
	h := NewFavouritesHandler(store, svc, core.NewValidator(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Route("/favourites", h.RegisterRoutes)
	return r
}

// --- POST /favourites ---

func TestHandleCreate_Success(t *testing.T) {
	store := &mockStore{}
	body := `{"label": "Home", "lat": 51.5074, "lon": -0.1278, "timezone": "Europe/London"}`

	rec := doRequest(t, newFavouritesRouter(store, &mockForecasts{}),
		http.MethodPost, "/favourites", strings.NewReader(body))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, store.lastCreated)
	assert.Equal(t, "Home", store.lastCreated.Label)
	assert.Equal(t, 51.5074, store.lastCreated.Lat)

	var fav types.FavouriteLocation
	decodeData(t, rec, &fav)
	assert.Equal(t, "fav_new", fav.ID)
}

func TestHandleCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing label", `{"lat": 51.5, "lon": -0.13}`},
		{"label too long", `{"label": "` + strings.Repeat("x", 121) + `", "lat": 0, "lon": 0}`},
		{"lat out of range", `{"label": "a", "lat": 95, "lon": 0}`},
		{"lon out of range", `{"label": "a", "lat": 0, "lon": 190}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newFavouritesRouter(&mockStore{}, &mockForecasts{}),
				http.MethodPost, "/favourites", strings.NewReader(tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleCreate_MalformedBody(t *testing.T) {
	rec := doRequest(t, newFavouritesRouter(&mockStore{}, &mockForecasts{}),
		http.MethodPost, "/favourites", strings.NewReader(`{nope`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_malformed_body", errorCode(t, rec))
}

func TestHandleCreate_StoreError(t *testing.T) {
	store := &mockStore{
		createFn: func(ctx context.Context, fav *types.FavouriteLocation) error {
			return types.NewAppError(types.ErrCodeInternalDB, "failed to create favourite", nil)
		},
	}

	rec := doRequest(t, newFavouritesRouter(store, &mockForecasts{}),
		http.MethodPost, "/favourites", strings.NewReader(`{"label": "a", "lat": 0, "lon": 0}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// --- GET /favourites ---

func TestHandleList_EmptyIsArray(t *testing.T) {
	rec := doRequest(t, newFavouritesRouter(&mockStore{}, &mockForecasts{}),
		http.MethodGet, "/favourites", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
}

func TestHandleList_ReturnsFavourites(t *testing.T) {
	store := &mockStore{
		listFn: func(ctx context.Context) ([]types.FavouriteLocation, error) {
			return []types.FavouriteLocation{
				{ID: "fav_1", Label: "Home", Lat: 51.5, Lon: -0.13},
				{ID: "fav_2", Label: "Cabin", Lat: 60.39, Lon: 5.32},
			}, nil
		},
	}

	rec := doRequest(t, newFavouritesRouter(store, &mockForecasts{}),
		http.MethodGet, "/favourites", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var favs []types.FavouriteLocation
	decodeData(t, rec, &favs)
	require.Len(t, favs, 2)
	assert.Equal(t, "Cabin", favs[1].Label)
}

// --- DELETE /favourites/{id} ---

func TestHandleDelete_Success(t *testing.T) {
	store := &mockStore{}

	rec := doRequest(t, newFavouritesRouter(store, &mockForecasts{}),
		http.MethodDelete, "/favourites/fav_1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "fav_1", store.lastDeleted)
}

func TestHandleDelete_NotFound(t *testing.T) {
	store := &mockStore{
		deleteFn: func(ctx context.Context, id string) error {
			return types.NewAppError(types.ErrCodeNotFoundFavourite, "favourite not found", nil)
		},
	}

	rec := doRequest(t, newFavouritesRouter(store, &mockForecasts{}),
		http.MethodDelete, "/favourites/fav_missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found_favourite", errorCode(t, rec))
}

// --- GET /favourites/compare ---

func TestHandleCompare_MixesSuccessAndFailure(t *testing.T) {
	store := &mockStore{
		listFn: func(ctx context.Context) ([]types.FavouriteLocation, error) {
			return []types.FavouriteLocation{
				{ID: "fav_1", Label: "Home", Lat: 51.5, Lon: -0.13},
				{ID: "fav_2", Label: "Cabin", Lat: 60.39, Lon: 5.32},
			}, nil
		},
	}
	svc := &mockForecasts{
		bundleFn: func(ctx context.Context, lat, lon float64, units types.UnitSystem) (*types.ForecastBundle, error) {
			if lat == 60.39 {
				return nil, types.NewAppError(types.ErrCodeUpstreamForecast, "forecast provider unavailable", nil)
			}
			return sampleBundle(), nil
		},
	}

	rec := doRequest(t, newFavouritesRouter(store, svc),
		http.MethodGet, "/favourites/compare", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []CompareEntry
	decodeData(t, rec, &entries)
	require.Len(t, entries, 2)

	home := entries[0]
	assert.Equal(t, "fav_1", home.Favourite.ID)
	require.NotNil(t, home.Current)
	assert.Equal(t, types.F(20), home.Current.Temperature)
	assert.Equal(t, 97.5, home.Comfort.Value)
	assert.Equal(t, "2026-08-30T12:00", home.BestHour)
	assert.Empty(t, home.Error)

	cabin := entries[1]
	assert.Equal(t, "fav_2", cabin.Favourite.ID)
	assert.Nil(t, cabin.Current)
	assert.Equal(t, "forecast unavailable", cabin.Error)
}

func TestHandleCompare_InvalidUnits(t *testing.T) {
	rec := doRequest(t, newFavouritesRouter(&mockStore{}, &mockForecasts{}),
		http.MethodGet, "/favourites/compare?units=kelvin", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_invalid_units", errorCode(t, rec))
}

func TestHandleCompare_NoFavourites(t *testing.T) {
	rec := doRequest(t, newFavouritesRouter(&mockStore{}, &mockForecasts{}),
		http.MethodGet, "/favourites/compare", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": []}`, rec.Body.String())
}
