// Package api implements the HTTP surface of the satellite service.
//
// NewRouter wires a chi router that serves:
//
//	GET  /health                                - service status + satellite count
//	GET  /api/info                              - API metadata and endpoint list
//	GET  /api/satellites                        - current registry snapshot + count
//	POST /api/satellites/conjunction-analysis   - placeholder (not implemented)
//	POST /api/satellites/create-reservation     - placeholder (not implemented)
//	GET  /metrics                               - Prometheus metrics
//	GET  /ws/positions                          - WebSocket position stream
//
// Every handler performs at most one store operation and never holds the
// store's lock across response serialization. The two POST routes are
// acknowledged stubs: they accept any JSON body, mutate nothing, and answer
// with a fixed-shape placeholder tagged by the Msg* constants so clients and
// tests can rely on the contract rather than on literal values. Unmatched
// paths fall through to the asset resolver.
package api
