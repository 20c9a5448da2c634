package api

import (
	"time"

	"github.com/orbitalos/orbitalos/internal/store"
)

// Static service identity reported by /health and /api/info.
const (
	ServiceName    = "OrbitalOS Satellite API"
	ServiceVersion = "1.0.0"
	serviceDesc    = "Real-time satellite tracking and orbital mechanics API"
)

// Placeholder contract for the not-yet-implemented business endpoints.
// Clients and tests key off these instead of guessing literal strings.
const (
	MsgConjunctionStub = "conjunction analysis is not implemented yet"
	MsgReservationStub = "reservation recorded; scheduling is not implemented yet"

	StatusReservationCreated = "created"
)

// HealthResponse is the payload for GET /health.
type HealthResponse struct {
	Status          string `json:"status"`
	Service         string `json:"service"`
	Version         string `json:"version"`
	SatellitesCount int    `json:"satellites_count"`
}

// InfoResponse is the payload for GET /api/info.
type InfoResponse struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Endpoints   []Endpoint `json:"endpoints"`
}

// Endpoint describes one route in GET /api/info.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// SatellitesResponse is the payload for GET /api/satellites. The same shape
// is broadcast on the WebSocket position stream.
type SatellitesResponse struct {
	Satellites []store.Satellite `json:"satellites"`
	Count      int               `json:"count"`
}

// ConjunctionResponse is the placeholder payload for
// POST /api/satellites/conjunction-analysis.
type ConjunctionResponse struct {
	Conjunctions []struct{} `json:"conjunctions"`
	AnalysisTime time.Time  `json:"analysis_time"`
	Message      string     `json:"message"`
}

// ReservationResponse is the placeholder payload for
// POST /api/satellites/create-reservation.
type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
