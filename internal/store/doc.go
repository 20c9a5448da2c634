// Package store owns the in-memory satellite registry and serializes all
// access to it behind a single mutex.
//
// The registry is populated once from a catalog at construction time and is
// only ever mutated wholesale by RefreshAll. Readers get owned copies via
// Snapshot - never live references - so a snapshot always reflects one
// complete refresh pass, never a mix of two. Propagation math runs outside
// the lock: RefreshAll copies the elements out, computes new states, then
// applies every result in one short locked pass.
package store
