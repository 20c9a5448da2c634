package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/orbitalos/orbitalos/internal/metrics"
	"github.com/orbitalos/orbitalos/internal/store"
)

// maxBodyBytes bounds request bodies on the POST stubs.
const maxBodyBytes = 1 << 20

// Handler serves the satellite API routes. It holds the store by reference
// and performs exactly one store operation per request.
type Handler struct {
	store *store.Store
	now   func() time.Time // injectable for deterministic tests
}

// NewRouter builds the full request dispatcher: API routes, /metrics, the
// WebSocket stream and the asset resolver as the catch-all for non-API
// paths. stream may be nil to disable the WebSocket endpoint; assets must
// not be nil (the resolver itself answers 404 when no source is available).
func NewRouter(st *store.Store, stream http.Handler, assets http.Handler) http.Handler {
	h := &Handler{store: st, now: time.Now}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(requestMetrics)
	// CORS must run globally so OPTIONS preflights are answered. The frontend
	// may be served from another origin during development, so mirror the
	// original deployment's permissive policy.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         3600,
	}))

	r.Get("/health", h.health)
	r.Get("/api/info", h.info)
	r.Get("/api/satellites", h.satellites)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(60, time.Minute))
		r.Post("/api/satellites/conjunction-analysis", h.conjunctionAnalysis)
		r.Post("/api/satellites/create-reservation", h.createReservation)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	if stream != nil {
		r.Get("/ws/positions", stream.ServeHTTP)
	}

	r.NotFound(assets.ServeHTTP)
	return r
}

// --- route handlers ---------------------------------------------------------

// health returns GET /health - service identity and registry size.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		Service:         ServiceName,
		Version:         ServiceVersion,
		SatellitesCount: h.store.Count(),
	})
}

// info returns GET /api/info - static API metadata.
func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	jsonResp(w, http.StatusOK, InfoResponse{
		Name:        ServiceName,
		Version:     ServiceVersion,
		Description: serviceDesc,
		Endpoints: []Endpoint{
			{Method: "GET", Path: "/health", Description: "Health check endpoint"},
			{Method: "GET", Path: "/api/info", Description: "API information"},
			{Method: "GET", Path: "/api/satellites", Description: "Get satellite data"},
			{Method: "POST", Path: "/api/satellites/conjunction-analysis", Description: "Analyze satellite conjunctions"},
			{Method: "POST", Path: "/api/satellites/create-reservation", Description: "Create orbit reservation"},
		},
	})
}

// satellites returns GET /api/satellites - the full ordered snapshot.
func (h *Handler) satellites(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	jsonResp(w, http.StatusOK, SatellitesResponse{
		Satellites: snap,
		Count:      len(snap),
	})
}

// conjunctionAnalysis answers POST /api/satellites/conjunction-analysis.
// Placeholder: the request body is accepted and discarded, no shared state
// is touched beyond the timestamp, and the response is the fixed stub shape.
func (h *Handler) conjunctionAnalysis(w http.ResponseWriter, r *http.Request) {
	if !acceptJSONBody(w, r) {
		return
	}
	jsonResp(w, http.StatusOK, ConjunctionResponse{
		Conjunctions: []struct{}{},
		AnalysisTime: h.now().UTC(),
		Message:      MsgConjunctionStub,
	})
}

// createReservation answers POST /api/satellites/create-reservation.
// Placeholder: a fresh reservation ID is minted but nothing is stored.
func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	if !acceptJSONBody(w, r) {
		return
	}
	jsonResp(w, http.StatusOK, ReservationResponse{
		ReservationID: "res_" + uuid.NewString(),
		Status:        StatusReservationCreated,
		Message:       MsgReservationStub,
	})
}

// --- helpers ----------------------------------------------------------------

// acceptJSONBody validates that the request carries well-formed JSON of any
// shape. Oversized bodies yield a 413, unreadable or malformed ones a 400.
// The decoded value is intentionally discarded - the stub endpoints define no
// schema yet.
func acceptJSONBody(w http.ResponseWriter, r *http.Request) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonErr(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		jsonErr(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		jsonErr(w, http.StatusBadRequest, "request body must be valid JSON")
		return false
	}
	return true
}

func jsonResp(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
