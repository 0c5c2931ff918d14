// Command slope-compare contrasts the daily clear-sky shortwave radiation
// received by two differently oriented slopes at the same location and
// date. The defaults reproduce the canonical valley scenario: a south-
// versus a north-facing 30° slope at 48°N on the summer solstice.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/zfacksandahler/valley-radiation-analysis/compare"
	"github.com/zfacksandahler/valley-radiation-analysis/internal/log"
	"github.com/zfacksandahler/valley-radiation-analysis/radiation"
	"github.com/zfacksandahler/valley-radiation-analysis/sunpos"
)

type config struct {
	lat     *float64
	doy     *int
	slope   *float64
	aspectA *float64
	aspectB *float64
	albedo  *float64
	hourly  *bool
	workers *int
	debug   *bool

	showHelp *bool
}

func defineFlags() config {
	return config{
		lat:     flag.Float64("lat", 48.0, "Latitude in decimal degrees, positive north"),
		doy:     flag.Int("doy", 172, "Day of year (1-365)"),
		slope:   flag.Float64("slope", 30.0, "Slope inclination in degrees from horizontal"),
		aspectA: flag.Float64("aspect-a", 180.0, "Aspect of slope A in degrees clockwise from north"),
		aspectB: flag.Float64("aspect-b", 0.0, "Aspect of slope B in degrees clockwise from north"),

		albedo:  flag.Float64("albedo", -1, "Surface albedo (0-1) for an additional net-radiation view; negative disables"),
		hourly:  flag.Bool("hourly", false, "Print the per-hour irradiance table"),
		workers: flag.Int("workers", 0, "Concurrent scenario evaluations (0 = one per CPU)"),
		debug:   flag.Bool("debug", false, "Enable debug logging"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Valley Slope Radiation Comparison

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Scenario Options", []string{"lat", "doy", "slope", "aspect-a", "aspect-b"})
	printGroup("Report Options", []string{"albedo", "hourly"})
	printGroup("Misc", []string{"workers", "debug", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	if err := log.Init(*cfg.debug); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	scenarios := []compare.Scenario{
		{Name: "A", Latitude: *cfg.lat, DayOfYear: *cfg.doy, SlopeDeg: *cfg.slope, AspectDeg: *cfg.aspectA},
		{Name: "B", Latitude: *cfg.lat, DayOfYear: *cfg.doy, SlopeDeg: *cfg.slope, AspectDeg: *cfg.aspectB},
	}

	log.Debugf("evaluating %d scenarios with %d workers", len(scenarios), *cfg.workers)
	results, err := compare.EvaluateAll(context.Background(), scenarios, *cfg.workers)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	a, b := results[0], results[1]

	fmt.Println("=== Valley Slope Radiation Comparison ===")
	fmt.Printf("Latitude:     %.1f°\n", *cfg.lat)
	fmt.Printf("Day of year:  %d (declination %.2f°)\n", *cfg.doy, radiation.Declination(*cfg.doy))
	fmt.Printf("Slope angle:  %.1f°\n", *cfg.slope)
	if rise, set, ok := sunpos.SunriseSunset(*cfg.doy, *cfg.lat); ok {
		fmt.Printf("Daylight:     %.1f h to %.1f h solar time\n", rise, set)
	}
	fmt.Println()

	printResult(a, *cfg.albedo)
	printResult(b, *cfg.albedo)

	fmt.Printf("Difference (B - A):  %.1f W·h/m²\n", b.Total-a.Total)
	fmt.Printf("Relative difference: %.1f%%\n", compare.PercentDifference(a.Total, b.Total))
	fmt.Println("(Positive means slope B receives more)")

	if *cfg.hourly {
		fmt.Println()
		fmt.Println("Hourly irradiance (W/m²):")
		for h := 0; h < radiation.HoursPerDay; h++ {
			fmt.Printf("Hour %2d: A %6.1f | B %6.1f\n", h, a.Hourly[h], b.Hourly[h])
		}
	}
}

func printResult(r compare.Result, albedo float64) {
	fmt.Printf("Slope %s (aspect %.0f°):\n", r.Scenario.Name, r.Scenario.AspectDeg)
	fmt.Printf("  Total daily incoming shortwave radiation: %.1f W·h/m²\n", r.Total)
	fmt.Printf("  Peak hourly irradiance: %.1f W/m²\n", r.Peak)
	if albedo >= 0 && albedo <= 1 {
		fmt.Printf("  Net after albedo %.2f: %.1f W·h/m²\n", albedo, r.Total*(1.0-albedo))
	}
	fmt.Println()
}
