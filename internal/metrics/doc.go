// Package metrics defines the Prometheus collectors for the satellite API:
// HTTP request counts and latencies, refresh pass outcomes and durations,
// the tracked-satellite gauge and live WebSocket client count. Handler()
// exposes them at /metrics via promhttp.
package metrics
