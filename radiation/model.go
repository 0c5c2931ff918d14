// Package radiation implements a simplified clear-sky shortwave radiation
// model for arbitrarily oriented, tilted surfaces. Only the direct beam
// component is modeled; diffuse-sky and ground-reflected irradiance are
// intentionally omitted so that comparisons between slope orientations
// stay consistent with the reference behavior.
package radiation

import "math"

const (
	// SolarConstant is the extraterrestrial solar irradiance in W/m².
	SolarConstant = 1367.0

	// ClearSkyTransmittance is the fixed fraction of extraterrestrial
	// irradiance that reaches the ground under cloudless skies.
	ClearSkyTransmittance = 0.7

	// HoursPerDay is the length of the hourly sequence returned by
	// ComputeHourlyIrradiance.
	HoursPerDay = 24

	// eccentricityCoeff scales the annual Earth-Sun distance correction.
	eccentricityCoeff = 0.033

	// zenithEpsilon guards the beam projection against a near-zero zenith
	// cosine at sunrise and sunset.
	zenithEpsilon = 1e-10
)

// degToRad converts an angle from degrees to radians
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// Declination returns the solar declination in degrees for a day of year
// (1-365), using the single-harmonic Cooper (1969) approximation.
func Declination(dayOfYear int) float64 {
	return 23.45 * math.Sin(degToRad(360.0/365.0*float64(284+dayOfYear)))
}

// ExtraterrestrialIrradiance returns the solar constant corrected for the
// Earth-Sun distance on the given day of year, in W/m².
func ExtraterrestrialIrradiance(dayOfYear int) float64 {
	dayAngle := 2.0 * math.Pi * float64(dayOfYear-1) / 365.0
	return SolarConstant * (1.0 + eccentricityCoeff*math.Cos(dayAngle))
}

// ComputeHourlyIrradiance calculates the incoming shortwave irradiance
// (W/m²) on a tilted surface for each hour of a day.
//
// latitude is in decimal degrees, positive north. dayOfYear runs 1-365.
// slopeDeg is the surface inclination from horizontal (0 = flat,
// 90 = vertical). aspectDeg is the compass direction the slope faces,
// clockwise from north (0 = north, 90 = east, 180 = south).
//
// The returned slice always holds exactly 24 values, one per hour of the
// day (index 0 spans 00:00-01:00), each evaluated at the hour's midpoint.
// Hours with no sun on the surface, either because the sun is below the
// horizon or behind the slope, are 0. The function is total over its
// numeric domain: it performs no input validation and never returns a
// negative, infinite, or NaN value.
func ComputeHourlyIrradiance(latitude float64, dayOfYear int, slopeDeg, aspectDeg float64) []float64 {
	lat := degToRad(latitude)
	slope := degToRad(slopeDeg)

	// Surface azimuth measured from south, positive toward west. The
	// incidence formula below is defined in this convention, so the
	// compass aspect (north = 0, clockwise) is shifted by 180°.
	gamma := degToRad(aspectDeg - 180.0)

	delta := degToRad(Declination(dayOfYear))
	i0Corr := ExtraterrestrialIrradiance(dayOfYear)

	hourly := make([]float64, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		// Hour angle at the midpoint of the hour: 15° per hour from
		// solar noon, positive in the afternoon.
		omega := degToRad(15.0 * (float64(hour) + 0.5 - 12.0))

		// Solar altitude. Non-positive means the sun is below the
		// horizon for this hour.
		sinAlpha := math.Sin(lat)*math.Sin(delta) + math.Cos(lat)*math.Cos(delta)*math.Cos(omega)
		if sinAlpha <= 0 {
			continue
		}

		// Zenith angle and altitude are complementary.
		cosThetaZ := sinAlpha

		// Angle of incidence on the tilted surface,
		// Duffie & Beckman eq. 1.6.2.
		cosTheta := math.Sin(delta)*math.Sin(lat)*math.Cos(slope) -
			math.Sin(delta)*math.Cos(lat)*math.Sin(slope)*math.Cos(gamma) +
			math.Cos(delta)*math.Cos(lat)*math.Cos(slope)*math.Cos(omega) +
			math.Cos(delta)*math.Sin(lat)*math.Sin(slope)*math.Cos(gamma)*math.Cos(omega) +
			math.Cos(delta)*math.Sin(slope)*math.Sin(gamma)*math.Sin(omega)

		// Sun is up but behind the slope.
		if cosTheta <= 0 {
			continue
		}

		// Clear-sky horizontal irradiance, beam component only.
		ghi := i0Corr * cosThetaZ * ClearSkyTransmittance

		// Project the horizontal beam onto the tilted plane. cosThetaZ
		// only approaches zero right at sunrise/sunset; treat those
		// samples as dark rather than dividing by it.
		if cosThetaZ > zenithEpsilon {
			hourly[hour] = ghi * cosTheta / cosThetaZ
		}
	}
	return hourly
}
