// Package ws implements the WebSocket position stream.
//
// Hub manages a set of connected clients and broadcasts the current
// satellite snapshot to all of them on a configurable interval (default 5s
// in production), so map frontends can animate positions without polling
// GET /api/satellites.
//
// New(store, interval) creates a Hub.
// Hub.Run(ctx) starts the broadcast ticker - blocks until ctx is cancelled,
// then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, sends the current
// snapshot immediately on connect, then streams updates on each tick.
//
// Message format sent to clients:
//
//	{
//	  "event": "positions",
//	  "data":  { /* same schema as GET /api/satellites */ }
//	}
//
// The upgrader accepts all origins, matching the API's permissive CORS
// policy. The stream is mounted at /ws/positions by the router.
package ws
