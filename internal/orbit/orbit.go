package orbit

import (
	"fmt"
	"math"
	"time"
)

const (
	// earthRadiusKm is the mean Earth radius used for geodetic conversion.
	earthRadiusKm = 6371.0

	// earthMu is the standard gravitational parameter of Earth in km³/s².
	earthMu = 398600.4418

	// earthRotationRad is Earth's sidereal rotation rate in rad/s.
	earthRotationRad = 7.2921159e-5
)

// Elements describes one satellite's circular orbit.
type Elements struct {
	// AltitudeKm is the orbit altitude above the mean Earth radius.
	AltitudeKm float64 `yaml:"altitude_km"`

	// InclinationDeg is the orbital inclination in degrees [0, 180].
	InclinationDeg float64 `yaml:"inclination_deg"`

	// RAANDeg is the right ascension of the ascending node in degrees,
	// measured against the prime meridian at the model epoch.
	RAANDeg float64 `yaml:"raan_deg"`

	// PhaseDeg is the argument of latitude at the model epoch in degrees:
	// how far along the orbit the satellite is at t=0.
	PhaseDeg float64 `yaml:"phase_deg"`

	// PeriodMin is the orbital period in minutes. Zero means "derive from
	// altitude" via Kepler's third law.
	PeriodMin float64 `yaml:"period_min"`
}

// Position is a geodetic coordinate.
type Position struct {
	LatitudeDeg  float64 `json:"latitude"`
	LongitudeDeg float64 `json:"longitude"`
	AltitudeKm   float64 `json:"altitude_km"`
}

// Velocity is an Earth-fixed cartesian velocity vector in km/s.
type Velocity struct {
	XKmS float64 `json:"x_km_s"`
	YKmS float64 `json:"y_km_s"`
	ZKmS float64 `json:"z_km_s"`
}

// Validate reports whether the elements describe a usable orbit.
func (e Elements) Validate() error {
	if e.AltitudeKm <= 0 {
		return fmt.Errorf("altitude_km %.1f must be positive", e.AltitudeKm)
	}
	if e.InclinationDeg < 0 || e.InclinationDeg > 180 {
		return fmt.Errorf("inclination_deg %.1f is out of range [0, 180]", e.InclinationDeg)
	}
	if e.PeriodMin < 0 {
		return fmt.Errorf("period_min %.1f must not be negative", e.PeriodMin)
	}
	return nil
}

// Period returns the orbital period. A zero PeriodMin is derived from the
// altitude via Kepler's third law.
func (e Elements) Period() time.Duration {
	if e.PeriodMin > 0 {
		return time.Duration(e.PeriodMin * float64(time.Minute))
	}
	a := earthRadiusKm + e.AltitudeKm
	seconds := 2 * math.Pi * math.Sqrt(a*a*a/earthMu)
	return time.Duration(seconds * float64(time.Second))
}

// Kepler propagates circular orbits relative to a fixed epoch. It is
// stateless apart from the epoch and safe for concurrent use.
type Kepler struct {
	epoch time.Time
}

// NewKepler returns a Kepler model with phase angles anchored at epoch.
func NewKepler(epoch time.Time) *Kepler {
	return &Kepler{epoch: epoch}
}

// Propagate computes the geodetic position and Earth-fixed velocity for the
// given elements at time at. Invalid elements yield an error and zero values.
func (k *Kepler) Propagate(e Elements, at time.Time) (Position, Velocity, error) {
	if err := e.Validate(); err != nil {
		return Position{}, Velocity{}, fmt.Errorf("orbit: %w", err)
	}

	t := at.Sub(k.epoch).Seconds()
	pos := k.positionAt(e, t)

	// Velocity by central difference of the Earth-fixed cartesian position.
	// A 1s step is far below the orbital timescale, so the estimate is
	// effectively exact for a circular orbit.
	before := cartesian(k.positionAt(e, t-0.5))
	after := cartesian(k.positionAt(e, t+0.5))
	vel := Velocity{
		XKmS: after[0] - before[0],
		YKmS: after[1] - before[1],
		ZKmS: after[2] - before[2],
	}

	return pos, vel, nil
}

// positionAt evaluates the ground track t seconds after the epoch.
func (k *Kepler) positionAt(e Elements, t float64) Position {
	n := 2 * math.Pi / e.Period().Seconds() // mean motion, rad/s
	u := rad(e.PhaseDeg) + n*t              // argument of latitude
	inc := rad(e.InclinationDeg)

	lat := math.Asin(math.Sin(inc) * math.Sin(u))

	// Longitude of the sub-satellite point: node position plus the in-plane
	// angle projected onto the equator, minus Earth's rotation since epoch.
	lon := rad(e.RAANDeg) + math.Atan2(math.Cos(inc)*math.Sin(u), math.Cos(u)) - earthRotationRad*t

	return Position{
		LatitudeDeg:  deg(lat),
		LongitudeDeg: normalizeLonDeg(deg(lon)),
		AltitudeKm:   e.AltitudeKm,
	}
}

// cartesian converts a geodetic position to Earth-fixed cartesian km.
func cartesian(p Position) [3]float64 {
	r := earthRadiusKm + p.AltitudeKm
	lat := rad(p.LatitudeDeg)
	lon := rad(p.LongitudeDeg)
	return [3]float64{
		r * math.Cos(lat) * math.Cos(lon),
		r * math.Cos(lat) * math.Sin(lon),
		r * math.Sin(lat),
	}
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }

// normalizeLonDeg wraps a longitude into (-180, 180].
func normalizeLonDeg(lon float64) float64 {
	lon = math.Mod(lon, 360)
	switch {
	case lon > 180:
		lon -= 360
	case lon <= -180:
		lon += 360
	}
	return lon
}
