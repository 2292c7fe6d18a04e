package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"skycast/internal/types"
)

// ForecastDays is how many days of hourly and daily data each fetch requests.
const ForecastDays = 12

// maxResponseBytes bounds upstream response bodies; a 12-day bundle is well
// under a megabyte.
const maxResponseBytes = 4 << 20

// hourlyVariables, dailyVariables, and currentVariables name the upstream
// series the engine consumes. Order matters only for URL stability.
var (
	currentVariables = []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature",
		"precipitation", "weather_code", "wind_speed_10m",
		"wind_direction_10m", "pressure_msl", "is_day",
	}
	hourlyVariables = []string{
		"temperature_2m", "apparent_temperature", "relative_humidity_2m",
		"precipitation_probability", "uv_index", "wind_speed_10m",
		"weather_code",
	}
	dailyVariables = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
		"apparent_temperature_max", "apparent_temperature_min",
		"uv_index_max", "precipitation_sum", "precipitation_probability_max",
		"wind_speed_10m_max", "sunrise", "sunset",
	}
)

// ClientConfig holds the upstream endpoints and client tuning knobs.
type ClientConfig struct {
	ForecastURL string
	GeocodeURL  string
	UserAgent   string
	Timeout     time.Duration
	// RequestsPerSecond throttles outbound calls to stay inside the
	// provider's free-tier allowance. Zero disables throttling.
	RequestsPerSecond float64
	Burst             int
}

// Client is the Open-Meteo upstream client. All outbound calls pass through
// a circuit breaker so a provider outage fails fast instead of tying up
// request goroutines, and through a client-side rate limiter.
//
// The client performs no retries: a failed fetch surfaces immediately and
// the cache layer decides what the caller sees.
type Client struct {
	cfg     ClientConfig
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: cb,
		limiter: limiter,
		logger:  logger,
	}
}

// FetchForecast retrieves the 12-day bundle for a coordinate. The timezone
// parameter selects the local time base for every timestamp in the bundle;
// "auto" lets the provider resolve it from the coordinate.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64, timezone string) (*types.ForecastBundle, error) {
	if timezone == "" {
		timezone = "auto"
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("timezone", timezone)
	q.Set("current", strings.Join(currentVariables, ","))
	q.Set("hourly", strings.Join(hourlyVariables, ","))
	q.Set("daily", strings.Join(dailyVariables, ","))
	q.Set("forecast_days", strconv.Itoa(ForecastDays))

	var bundle types.ForecastBundle
	if err := c.getJSON(ctx, c.cfg.ForecastURL, q, &bundle); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamForecast, "forecast provider unavailable", err)
	}
	return &bundle, nil
}

// geocodeResponse matches the provider's search envelope.
type geocodeResponse struct {
	Results []types.GeocodeResult `json:"results"`
}

// Geocode performs a forward-geocoding search and returns every candidate.
// Picking among them is the caller's concern.
func (c *Client) Geocode(ctx context.Context, name string, count int) ([]types.GeocodeResult, error) {
	if count <= 0 {
		count = 5
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodeResponse
	if err := c.getJSON(ctx, c.cfg.GeocodeURL, q, &resp); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamGeocoding, "geocoding provider unavailable", err)
	}
	return resp.Results, nil
}

// getJSON performs a rate-limited, breaker-guarded GET and decodes the JSON
// body into out.
func (c *Client) getJSON(ctx context.Context, baseURL string, q url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqURL := baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if r.StatusCode >= 500 {
			// Drain so the connection can be reused, then count the
			// response as a breaker failure.
			_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxResponseBytes))
			_ = r.Body.Close()
			return nil, fmt.Errorf("upstream status %d", r.StatusCode)
		}
		return r, nil
	})
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	c.logger.Debug("upstream request",
		"url", baseURL, "duration", time.Since(start), "status", resp.StatusCode)
	return nil
}
