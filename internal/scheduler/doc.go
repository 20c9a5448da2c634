// Package scheduler drives the periodic position refresh.
//
// Refresher ticks at a fixed interval measured from its start and calls
// Store.RefreshAll once per tick; the loop is strictly sequential, so at most
// one refresh is ever in flight and a slow pass skips ticks instead of
// overlapping. Tick failures are logged and counted, never fatal - the next
// tick proceeds regardless. Run blocks until its context is cancelled.
package scheduler
