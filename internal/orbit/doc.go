// Package orbit implements the position model used to propagate tracked
// satellites. It approximates each orbit as circular: Elements describe the
// orbital plane and phase, and Kepler derives a geodetic position plus an
// ECEF velocity vector for any instant, accounting for Earth rotation in the
// ground track.
//
// The model is deliberately simple - it produces plausible, smoothly-moving
// ground tracks, not flight-dynamics-grade ephemerides. Callers interact with
// it through the store.PositionModel interface and never depend on the math.
package orbit
