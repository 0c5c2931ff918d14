// Package compare evaluates slope irradiance scenarios and the arithmetic
// reductions used to contrast them: daily totals, percentage differences,
// and the caller-side albedo correction for net shortwave radiation.
package compare

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/zfacksandahler/valley-radiation-analysis/radiation"
)

// Scenario describes one surface to evaluate: where it is, when, and how
// it is oriented.
type Scenario struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	DayOfYear int     `json:"day_of_year"`
	SlopeDeg  float64 `json:"slope_deg"`
	AspectDeg float64 `json:"aspect_deg"`
}

// Result holds the hourly irradiance sequence for a scenario together
// with its reductions. Total is the daily sum in W·h/m² under the
// convention that each hourly value is a constant rate for its hour;
// Peak is the largest hourly value in W/m².
type Result struct {
	Scenario Scenario  `json:"scenario"`
	Hourly   []float64 `json:"hourly"`
	Total    float64   `json:"total"`
	Peak     float64   `json:"peak"`
}

// Evaluate runs the radiation model for a single scenario and reduces
// the hourly sequence.
func Evaluate(s Scenario) Result {
	hourly := radiation.ComputeHourlyIrradiance(s.Latitude, s.DayOfYear, s.SlopeDeg, s.AspectDeg)
	return Result{
		Scenario: s,
		Hourly:   hourly,
		Total:    floats.Sum(hourly),
		Peak:     floats.Max(hourly),
	}
}

// EvaluateAll evaluates scenarios concurrently. Each model call is
// independent and pure, so the only coordination is the worker limit and
// context cancellation. workers <= 0 means one worker per CPU.
func EvaluateAll(ctx context.Context, scenarios []Scenario, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PercentDifference returns the difference of b relative to a in percent,
// (b-a)/a * 100. A zero baseline yields 0 rather than a division error.
func PercentDifference(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	return (b - a) / a * 100.0
}

// ApplyNetFactor scales every hourly value by (1 - albedo), modeling the
// fraction of incoming shortwave radiation the surface actually absorbs.
// Albedo is a surface property, not a solar-geometry one, so this stays
// outside the radiation model. The input slice is not modified.
func ApplyNetFactor(hourly []float64, albedo float64) []float64 {
	net := make([]float64, len(hourly))
	for i, v := range hourly {
		net[i] = v * (1.0 - albedo)
	}
	return net
}
