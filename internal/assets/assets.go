package assets

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed dist
var embedded embed.FS

// Bundle returns the compiled-in frontend bundle.
func Bundle() fs.FS {
	sub, err := fs.Sub(embedded, "dist")
	if err != nil {
		// The dist directory is part of the build; a failure here means a
		// broken binary, not a runtime condition.
		panic(err)
	}
	return sub
}

// apiPrefixes and apiExact are the paths owned by the API; the resolver never
// serves assets for them even when they fall through the router unmatched.
var (
	apiPrefixes = []string{"/api/", "/ws/"}
	apiExact    = []string{"/health", "/metrics"}
)

type mode int

const (
	modeNone mode = iota
	modeDir
	modeBundle
)

// Resolver serves frontend files from one source chosen at construction
// time. It is stateless after construction and safe for concurrent use.
type Resolver struct {
	mode   mode
	dir    string
	bundle fs.FS
}

// NewResolver decides the asset source once: dir wins when it exists,
// otherwise bundle (may be nil), otherwise nothing.
func NewResolver(dir string, bundle fs.FS) *Resolver {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			slog.Info("assets: serving frontend from directory", "dir", dir)
			return &Resolver{mode: modeDir, dir: dir}
		}
		slog.Info("assets: frontend directory not found", "dir", dir)
	}
	if bundle != nil {
		if _, err := fs.Stat(bundle, "index.html"); err == nil {
			slog.Info("assets: serving embedded frontend bundle")
			return &Resolver{mode: modeBundle, bundle: bundle}
		}
	}
	slog.Info("assets: no frontend available; non-API paths return 404")
	return &Resolver{mode: modeNone}
}

func (rv *Resolver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if isAPIPath(r.URL.Path) {
		http.NotFound(w, r)
		return
	}

	// Normalize the path up front: ServeFile refuses raw ".." elements, and
	// the SPA fallback should treat such paths like any other unknown route.
	if cleaned := path.Clean("/" + r.URL.Path); cleaned != r.URL.Path {
		r2 := new(http.Request)
		*r2 = *r
		u := *r.URL
		u.Path = cleaned
		r2.URL = &u
		r = r2
	}

	switch rv.mode {
	case modeDir:
		rv.serveDir(w, r)
	case modeBundle:
		rv.serveBundle(w, r)
	default:
		http.NotFound(w, r)
	}
}

// serveDir serves from the filesystem directory with SPA index fallback.
func (rv *Resolver) serveDir(w http.ResponseWriter, r *http.Request) {
	name := cleanPath(r.URL.Path)
	full := filepath.Join(rv.dir, filepath.FromSlash(name))

	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}

	index := filepath.Join(rv.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

// serveBundle serves from the embedded bundle with the same fallback.
func (rv *Resolver) serveBundle(w http.ResponseWriter, r *http.Request) {
	name := cleanPath(r.URL.Path)

	if info, err := fs.Stat(rv.bundle, name); err == nil && !info.IsDir() {
		http.ServeFileFS(w, r, rv.bundle, name)
		return
	}
	// Mode selection already verified index.html exists.
	http.ServeFileFS(w, r, rv.bundle, "index.html")
}

// cleanPath normalizes a request path into an fs-relative file name.
func cleanPath(p string) string {
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" {
		name = "index.html"
	}
	return name
}

func isAPIPath(p string) bool {
	for _, prefix := range apiPrefixes {
		if p == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(p, prefix) {
			return true
		}
	}
	for _, exact := range apiExact {
		if p == exact {
			return true
		}
	}
	return false
}
