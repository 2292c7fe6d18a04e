package forecast

import (
	"context"
	"log/slog"

	"skycast/internal/types"
)

// Fetcher is the upstream surface the service depends on. *Client satisfies
// it; tests substitute a double.
type Fetcher interface {
	FetchForecast(ctx context.Context, lat, lon float64, timezone string) (*types.ForecastBundle, error)
	Geocode(ctx context.Context, name string, count int) ([]types.GeocodeResult, error)
}

// Service is the cached forecast retrieval facade used by handlers and the
// CLI: one call per location/unit combination per freshness window reaches
// the upstream, everything else is served from memory.
type Service struct {
	fetcher Fetcher
	cache   *Cache
	logger  *slog.Logger
}

// NewService creates a Service around the given fetcher and cache.
func NewService(fetcher Fetcher, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fetcher: fetcher, cache: cache, logger: logger}
}

// Bundle returns the forecast bundle for a coordinate, served from cache
// when fresh. A fetch failure is a normal outcome: the caller receives a nil
// bundle and the error, never a partial bundle.
func (s *Service) Bundle(ctx context.Context, lat, lon float64, units types.UnitSystem) (*types.ForecastBundle, error) {
	return s.cache.GetOrFetch(ctx, lat, lon, units, func(ctx context.Context) (*types.ForecastBundle, error) {
		return s.fetcher.FetchForecast(ctx, lat, lon, "auto")
	})
}

// Search forward-geocodes a place name. Searches are not cached: queries
// are free-form text and rarely repeat within a freshness window.
func (s *Service) Search(ctx context.Context, query string, count int) ([]types.GeocodeResult, error) {
	return s.fetcher.Geocode(ctx, query, count)
}
