package compare

import (
	"context"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/zfacksandahler/valley-radiation-analysis/radiation"
)

var (
	southSlope = Scenario{Name: "south", Latitude: 48, DayOfYear: 172, SlopeDeg: 30, AspectDeg: 180}
	northSlope = Scenario{Name: "north", Latitude: 48, DayOfYear: 172, SlopeDeg: 30, AspectDeg: 0}
)

func TestEvaluate(t *testing.T) {
	result := Evaluate(southSlope)

	if len(result.Hourly) != radiation.HoursPerDay {
		t.Fatalf("got %d hourly values, want %d", len(result.Hourly), radiation.HoursPerDay)
	}
	if result.Total <= 0 {
		t.Errorf("south slope daily total = %v, want > 0", result.Total)
	}
	if want := floats.Sum(result.Hourly); result.Total != want {
		t.Errorf("Total = %v, sum of hourly = %v", result.Total, want)
	}
	if want := floats.Max(result.Hourly); result.Peak != want {
		t.Errorf("Peak = %v, max of hourly = %v", result.Peak, want)
	}
}

func TestEvaluateOrientationOrdering(t *testing.T) {
	south := Evaluate(southSlope)
	north := Evaluate(northSlope)

	if north.Total >= south.Total {
		t.Errorf("north total %v not smaller than south total %v", north.Total, south.Total)
	}
	if PercentDifference(south.Total, north.Total) >= 0 {
		t.Errorf("expected a negative relative difference for the north slope")
	}
}

func TestEvaluateAll(t *testing.T) {
	scenarios := []Scenario{southSlope, northSlope,
		{Name: "east", Latitude: 48, DayOfYear: 172, SlopeDeg: 30, AspectDeg: 90},
		{Name: "flat", Latitude: 48, DayOfYear: 172, SlopeDeg: 0, AspectDeg: 0},
	}

	results, err := EvaluateAll(context.Background(), scenarios, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(scenarios) {
		t.Fatalf("got %d results, want %d", len(results), len(scenarios))
	}

	// Order and content must match sequential evaluation.
	for i, s := range scenarios {
		want := Evaluate(s)
		if results[i].Scenario.Name != s.Name {
			t.Errorf("result %d is scenario %q, want %q", i, results[i].Scenario.Name, s.Name)
		}
		if results[i].Total != want.Total {
			t.Errorf("scenario %q: total %v, sequential evaluation gives %v", s.Name, results[i].Total, want.Total)
		}
	}
}

func TestEvaluateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := EvaluateAll(ctx, []Scenario{southSlope}, 1); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

func TestPercentDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"increase", 100, 150, 50},
		{"decrease", 200, 100, -50},
		{"equal", 42, 42, 0},
		{"zero baseline", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentDifference(tt.a, tt.b); got != tt.want {
				t.Errorf("PercentDifference(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestApplyNetFactorDistributesOverSum(t *testing.T) {
	result := Evaluate(southSlope)
	const albedo = 0.23

	net := ApplyNetFactor(result.Hourly, albedo)
	if len(net) != len(result.Hourly) {
		t.Fatalf("got %d net values, want %d", len(net), len(result.Hourly))
	}

	want := (1.0 - albedo) * result.Total
	if diff := math.Abs(floats.Sum(net) - want); diff > 1e-9 {
		t.Errorf("net sum differs from scaled total by %v", diff)
	}

	// The raw sequence must not be modified.
	if floats.Sum(result.Hourly) != result.Total {
		t.Error("ApplyNetFactor modified its input")
	}
}
