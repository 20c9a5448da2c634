// Package assets serves the frontend for every path the API does not claim.
//
// NewResolver picks one source at startup and never changes it afterward:
//
//  1. the configured filesystem directory, when it exists - unmatched paths
//     fall back to its index.html (single-page-app routing);
//  2. otherwise the compiled-in bundle (Bundle()), with the same index
//     fallback;
//  3. otherwise every non-API path answers 404.
//
// API paths (/health, /api/*, /ws/*, /metrics) are never resolved to assets,
// so the API keeps working no matter which mode is active.
package assets
