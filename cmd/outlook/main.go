// Command outlook prints a colourised weather outlook for a place or a
// coordinate on the terminal. It shares the fetch, cache, and derivation
// code with the API server but renders text instead of JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"

	"skycast/internal/config"
	"skycast/internal/forecast"
	"skycast/internal/insights"
	"skycast/internal/types"
	"skycast/internal/units"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "outlook: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("outlook", flag.ContinueOnError)
	city := fs.String("city", "", "place name to look up (overrides -lat/-lon)")
	lat := fs.Float64("lat", math.NaN(), "latitude in decimal degrees")
	lon := fs.Float64("lon", math.NaN(), "longitude in decimal degrees")
	unitsFlag := fs.String("units", "metric", "unit system: metric or imperial")
	date := fs.String("date", "", "ISO date to inspect (defaults to today)")
	verbose := fs.Bool("v", false, "debug logging")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *noColor {
		color.NoColor = true
	}

	sys := types.UnitSystem(*unitsFlag)
	if !sys.Valid() {
		return fmt.Errorf("unknown unit system %q", *unitsFlag)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	client := forecast.NewClient(forecast.ClientConfig{
		ForecastURL:       cfg.Upstream.ForecastURL,
		GeocodeURL:        cfg.Upstream.GeocodeURL,
		UserAgent:         cfg.Upstream.UserAgent,
		Timeout:           cfg.Upstream.Timeout,
		RequestsPerSecond: cfg.Upstream.RequestsPerSecond,
		Burst:             cfg.Upstream.Burst,
	}, logger)
	svc := forecast.NewService(client, forecast.NewCache(cfg.Cache.TTL, logger), logger)

	ctx := context.Background()
	label := ""
	if *city != "" {
		results, err := svc.Search(ctx, *city, 1)
		if err != nil {
			return fmt.Errorf("looking up %q: %w", *city, err)
		}
		if len(results) == 0 {
			return fmt.Errorf("no place found for %q", *city)
		}
		hit := results[0]
		*lat, *lon = hit.Latitude, hit.Longitude
		label = placeLabel(hit)
	}
	if math.IsNaN(*lat) || math.IsNaN(*lon) {
		return fmt.Errorf("either -city or both -lat and -lon are required")
	}
	if label == "" {
		label = fmt.Sprintf("%.4f, %.4f", *lat, *lon)
	}

	bundle, err := svc.Bundle(ctx, *lat, *lon, sys)
	if err != nil {
		return fmt.Errorf("fetching forecast: %w", err)
	}

	render(os.Stdout, label, sys, bundle, insights.ForDay(bundle, *date))
	return nil
}

func placeLabel(r types.GeocodeResult) string {
	parts := []string{r.Name}
	if r.Admin1 != "" {
		parts = append(parts, r.Admin1)
	}
	if r.Country != "" {
		parts = append(parts, r.Country)
	}
	return strings.Join(parts, ", ")
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	faint   = color.New(color.Faint)
	good    = color.New(color.FgGreen)
	fair    = color.New(color.FgYellow)
	poor    = color.New(color.FgRed)
)

// glyphs maps pictograms to the terminal symbols the outlook header shows.
var glyphs = map[types.Pictogram]string{
	types.PictogramClear:        "☀",
	types.PictogramPartlyCloudy: "⛅",
	types.PictogramOvercast:     "☁",
	types.PictogramFog:          "🌫",
	types.PictogramDrizzle:      "🌦",
	types.PictogramRain:         "🌧",
	types.PictogramSnow:         "❄",
	types.PictogramShowers:      "🌦",
	types.PictogramSnowShowers:  "🌨",
	types.PictogramThunderstorm: "⛈",
	types.PictogramUnknown:      "·",
}

func render(w *os.File, label string, sys types.UnitSystem, bundle *types.ForecastBundle, day insights.DayInsights) {
	heading.Fprintf(w, "%s  %s\n", glyphs[day.Pictogram], label)
	faint.Fprintf(w, "%s  ·  %s\n", day.Date, day.Condition)
	for _, a := range day.Alerts {
		poor.Fprintf(w, "⚠ %s\n", a)
	}
	fmt.Fprintln(w)

	cur := bundle.Current
	fmt.Fprintf(w, "Now        %s", formatTemp(cur.Temperature, sys))
	if cur.ApparentTemp.Valid {
		fmt.Fprintf(w, " (feels like %s)", formatTemp(cur.ApparentTemp, sys))
	}
	fmt.Fprintln(w)
	if cur.Humidity.Valid {
		fmt.Fprintf(w, "Humidity   %.0f%%\n", cur.Humidity.Value)
	}
	if cur.WindSpeed.Valid {
		fmt.Fprintf(w, "Wind       %s\n", formatSpeed(cur.WindSpeed, sys))
	}
	if cur.Pressure.Valid {
		fmt.Fprintf(w, "Pressure   %.0f hPa\n", cur.Pressure.Value)
	}
	fmt.Fprintf(w, "UV         %s\n", day.UVBand)
	if day.MoonPhase != "" {
		fmt.Fprintf(w, "Moon       %s\n", day.MoonPhase)
	}
	fmt.Fprintln(w)

	if day.Comfort.Valid {
		fmt.Fprintf(w, "Comfort    %s\n", comfortColor(day.Comfort.Value).Sprintf("%.0f/100", day.Comfort.Value))
	}
	if day.BestHour != "" {
		fmt.Fprintf(w, "Best hour  %s\n", types.ClockOf(day.BestHour))
	}
	fmt.Fprintf(w, "\n%s\n\n", day.MicroSummary)

	if len(day.Story) > 0 {
		heading.Fprintln(w, "Day story")
		for _, p := range day.Story {
			fmt.Fprintf(w, "  %-10s %s\n", p.Name, p.Text)
		}
		fmt.Fprintln(w)
	}

	renderActivities(w, day.Activities)
	renderOverview(w, bundle, day.Overview, sys)
}

func renderActivities(w *os.File, a insights.ActivityRanking) {
	if len(a.Walking)+len(a.Sport)+len(a.Stargazing) == 0 {
		return
	}
	heading.Fprintln(w, "Good hours")
	printRanked(w, "Walking", a.Walking)
	printRanked(w, "Sport", a.Sport)
	printRanked(w, "Stargazing", a.Stargazing)
	fmt.Fprintln(w)
}

func printRanked(w *os.File, name string, hours []insights.RankedHour) {
	if len(hours) == 0 {
		return
	}
	clocks := make([]string, 0, len(hours))
	for _, h := range hours {
		clocks = append(clocks, types.ClockOf(h.Time))
	}
	fmt.Fprintf(w, "  %-10s %s\n", name, strings.Join(clocks, "  "))
}

func renderOverview(w *os.File, bundle *types.ForecastBundle, ov insights.Overview, sys types.UnitSystem) {
	if ov.Days == 0 {
		return
	}
	heading.Fprintf(w, "Next %d days\n", ov.Days)
	fmt.Fprintf(w, "  %s\n", ov.Headline)
	if ov.Range.Low.Valid && ov.Range.High.Valid {
		fmt.Fprintf(w, "  Range      %s to %s\n",
			formatTemp(ov.Range.Low, sys), formatTemp(ov.Range.High, sys))
	}
	if ov.Warmest != nil {
		fmt.Fprintf(w, "  Warmest    %s (%s)\n", ov.Warmest.Date, formatTemp(types.F(ov.Warmest.Value), sys))
	}
	if ov.Coldest != nil {
		fmt.Fprintf(w, "  Coldest    %s (%s)\n", ov.Coldest.Date, formatTemp(types.F(ov.Coldest.Value), sys))
	}
	if ov.Wettest != nil {
		fmt.Fprintf(w, "  Wettest    %s (%.1f mm)\n", ov.Wettest.Date, ov.Wettest.Value)
	}
	if ov.Windiest != nil {
		fmt.Fprintf(w, "  Windiest   %s (%s)\n", ov.Windiest.Date, formatSpeed(types.F(ov.Windiest.Value), sys))
	}

	days := bundle.Daily.Aggregates()
	if spark := sparkline(days); spark != "" {
		fmt.Fprintf(w, "  Highs      %s\n", spark)
	}

	fmt.Fprintln(w)
	for _, d := range days {
		line := fmt.Sprintf("  %s  %-28s %8s / %-8s",
			d.Date,
			types.DescribeWeatherCode(d.WeatherCode),
			formatTemp(d.TempMax, sys),
			formatTemp(d.TempMin, sys))
		if d.RainProbMax.Valid && d.RainProbMax.Value >= 30 {
			line += fair.Sprintf("  %.0f%% rain", d.RainProbMax.Value)
		}
		fmt.Fprintln(w, line)
	}
}

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the period's daily highs as a row of block glyphs. Days
// missing a high render as a dot so the row stays aligned with the table
// below it.
func sparkline(days []types.DailyAggregate) string {
	highs := make([]types.Float, len(days))
	for i, d := range days {
		highs[i] = d.TempMax
	}
	scaled := insights.NormalizeSeries(highs)

	var b strings.Builder
	drawn := false
	for _, v := range scaled {
		if !v.Valid {
			b.WriteRune('·')
			continue
		}
		idx := int(v.Value * float64(len(sparkGlyphs)-1))
		b.WriteRune(sparkGlyphs[idx])
		drawn = true
	}
	if !drawn {
		return ""
	}
	return b.String()
}

// formatTemp renders a Celsius value in the requested unit system, or a dash
// when the reading is absent.
func formatTemp(t types.Float, sys types.UnitSystem) string {
	if !t.Valid {
		return "–"
	}
	if sys == types.UnitsImperial {
		return fmt.Sprintf("%.1f°F", units.CToF(t).Value)
	}
	return fmt.Sprintf("%.1f°C", t.Value)
}

func formatSpeed(s types.Float, sys types.UnitSystem) string {
	if !s.Valid {
		return "–"
	}
	if sys == types.UnitsImperial {
		return fmt.Sprintf("%.1f mph", units.KmhToMph(s).Value)
	}
	return fmt.Sprintf("%.1f km/h", s.Value)
}

func comfortColor(score float64) *color.Color {
	switch {
	case score >= 70:
		return good
	case score >= 40:
		return fair
	default:
		return poor
	}
}
