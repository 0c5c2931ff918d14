// Package sunpos answers solar position queries used to annotate
// irradiance reports: apparent declination, the sun's direction vector,
// and the daylight window for a day of year.
package sunpos

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/zfacksandahler/valley-radiation-analysis/geom"
	"github.com/zfacksandahler/valley-radiation-analysis/radiation"
)

// ApparentDeclination returns the apparent solar declination in degrees
// for the given instant, computed from the full solar ephemeris.
func ApparentDeclination(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	_, dec := solar.ApparentEquatorial(jd)
	return dec.Deg()
}

// DirectionECEF returns the unit vector pointing from the Earth's center
// toward the Sun in Earth-centered, Earth-fixed coordinates.
func DirectionECEF(t time.Time) geom.Vec3 {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the Sun, as a unit vector in ECI
	// (Earth-centered inertial).
	ra, dec := solar.ApparentEquatorial(jd)
	eci := geom.FromSpherical(ra.Rad(), dec.Rad())

	// Rotate ECI → ECEF using GMST.
	gmst := sidereal.Apparent0UT(jd)
	cosGMST := gmst.Angle().Cos()
	sinGMST := gmst.Angle().Sin()

	return geom.Vec3{
		X: eci.X*cosGMST + eci.Y*sinGMST,
		Y: -eci.X*sinGMST + eci.Y*cosGMST,
		Z: eci.Z,
	}.Normalize()
}

// SunriseSunset returns the solar-time hours of sunrise and sunset for a
// day of year at the given latitude, using the same declination
// approximation the radiation model uses so the window matches the
// model's day/night split. ok is false during polar day or polar night,
// when the sun never crosses the horizon.
func SunriseSunset(dayOfYear int, latitude float64) (riseHour, setHour float64, ok bool) {
	latRad := latitude * (math.Pi / 180.0)
	deltaRad := radiation.Declination(dayOfYear) * (math.Pi / 180.0)

	// At sunrise/sunset the sun sits on the horizon:
	// cos(H) = -tan(lat) * tan(declination).
	cosH := -math.Tan(latRad) * math.Tan(deltaRad)
	if cosH < -1.0 || cosH > 1.0 {
		return 0, 0, false
	}

	// Hour angle to hours, 15 degrees per hour around solar noon.
	halfDay := math.Acos(cosH) * (180.0 / math.Pi) / 15.0
	return 12.0 - halfDay, 12.0 + halfDay, true
}
