// Package config loads the server configuration.
//
// Load(path) starts from defaults, overlays an optional YAML file, applies
// environment overrides and validates the result:
//
//   - Host / Port            - bind address (default localhost:8082)
//   - FrontendDistDir        - filesystem directory for frontend assets
//   - OpenBrowser            - open a browser tab once the server is up
//   - CatalogPath            - optional YAML satellite catalog, hot-reloaded
//   - RefreshInterval        - position refresh cadence (default 30s)
//   - StreamInterval         - WebSocket broadcast cadence (default 5s)
//
// Environment variables HOST, PORT, FRONTEND_DIST_DIR, OPEN_BROWSER,
// CATALOG_PATH and REFRESH_INTERVAL override the file. Invalid environment
// values are logged and ignored in favour of the configured default - env
// problems never abort startup.
package config
