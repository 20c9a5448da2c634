// Package catalog defines which satellites the service tracks and the orbital
// elements used to propagate them.
//
// Default() returns the built-in seed set the registry is populated with when
// no catalog file is configured. LoadFile(path) parses a YAML catalog of the
// same shape. Watch(ctx, path, onChange) monitors the catalog file with
// fsnotify and delivers freshly parsed entries on every write - the store
// applies element updates to satellites it already tracks; catalog changes
// never add or remove registry entries at runtime.
package catalog
