package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zfacksandahler/valley-radiation-analysis/compare"
	"github.com/zfacksandahler/valley-radiation-analysis/sunpos"
)

// scenarioKey identifies a cached evaluation. The model is deterministic,
// so identical inputs always map to the same result.
type scenarioKey struct {
	lat    float64
	doy    int
	slope  float64
	aspect float64
}

// evaluate answers from the cache when possible and runs the model
// otherwise. The cache key ignores the scenario name, so the name is
// rebuilt from the request rather than served from the cached entry.
func (s *Server) evaluate(sc compare.Scenario) compare.Result {
	key := scenarioKey{sc.Latitude, sc.DayOfYear, sc.SlopeDeg, sc.AspectDeg}
	if cached, ok := s.cache.Get(key); ok {
		result := cached.(compare.Result)
		result.Scenario = sc
		return result
	}
	result := compare.Evaluate(sc)
	s.cache.Add(key, result)
	return result
}

func queryFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func queryDayOfYear(c *gin.Context) (int, bool) {
	raw := c.Query("doy")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doy is required"})
		return 0, false
	}
	doy, err := strconv.Atoi(raw)
	if err != nil || doy < 1 || doy > 366 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doy, expected 1-366"})
		return 0, false
	}
	return doy, true
}

func (s *Server) handleIrradiance(c *gin.Context) {
	lat, ok := queryFloat(c, "lat")
	if !ok {
		return
	}
	doy, ok := queryDayOfYear(c)
	if !ok {
		return
	}
	slope, ok := queryFloat(c, "slope")
	if !ok {
		return
	}
	aspect, ok := queryFloat(c, "aspect")
	if !ok {
		return
	}

	result := s.evaluate(compare.Scenario{
		Latitude:  lat,
		DayOfYear: doy,
		SlopeDeg:  slope,
		AspectDeg: aspect,
	})

	body := gin.H{
		"hourly": result.Hourly,
		"total":  result.Total,
		"peak":   result.Peak,
	}

	if rise, set, ok := sunpos.SunriseSunset(doy, lat); ok {
		body["sunrise"] = rise
		body["sunset"] = set
	}

	if albedoStr := c.Query("albedo"); albedoStr != "" {
		albedo, err := strconv.ParseFloat(albedoStr, 64)
		if err != nil || albedo < 0 || albedo > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid albedo, expected 0-1"})
			return
		}
		net := compare.ApplyNetFactor(result.Hourly, albedo)
		body["net_hourly"] = net
		body["net_total"] = result.Total * (1.0 - albedo)
	}

	c.JSON(http.StatusOK, body)
}

func (s *Server) handleCompare(c *gin.Context) {
	lat, ok := queryFloat(c, "lat")
	if !ok {
		return
	}
	doy, ok := queryDayOfYear(c)
	if !ok {
		return
	}
	slope, ok := queryFloat(c, "slope")
	if !ok {
		return
	}
	aspectA, ok := queryFloat(c, "aspect_a")
	if !ok {
		return
	}
	aspectB, ok := queryFloat(c, "aspect_b")
	if !ok {
		return
	}

	resultA := s.evaluate(compare.Scenario{
		Name: "a", Latitude: lat, DayOfYear: doy, SlopeDeg: slope, AspectDeg: aspectA,
	})
	resultB := s.evaluate(compare.Scenario{
		Name: "b", Latitude: lat, DayOfYear: doy, SlopeDeg: slope, AspectDeg: aspectB,
	})

	c.JSON(http.StatusOK, gin.H{
		"a":            resultA,
		"b":            resultB,
		"difference":   resultB.Total - resultA.Total,
		"percent_diff": compare.PercentDifference(resultA.Total, resultB.Total),
	})
}
