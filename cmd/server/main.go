package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"

	"github.com/orbitalos/orbitalos/internal/api"
	"github.com/orbitalos/orbitalos/internal/assets"
	"github.com/orbitalos/orbitalos/internal/catalog"
	"github.com/orbitalos/orbitalos/internal/config"
	"github.com/orbitalos/orbitalos/internal/orbit"
	"github.com/orbitalos/orbitalos/internal/scheduler"
	"github.com/orbitalos/orbitalos/internal/store"
	"github.com/orbitalos/orbitalos/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// A local .env is a convenience for development; absence is the norm.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "err", err)
	}

	slog.Info("orbitalos-server starting", "config", *configPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	slog.Info("config loaded",
		"addr", cfg.Server.Addr(),
		"refresh_interval", cfg.Server.RefreshInterval,
		"stream_interval", cfg.Server.StreamInterval,
		"catalog_path", cfg.Server.CatalogPath,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Registry membership is fixed at startup: either the built-in seed set
	// or the configured catalog file. Later catalog edits only update orbital
	// elements of satellites that are already tracked.
	entries := catalog.Default()
	if cfg.Server.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.Server.CatalogPath)
		if err != nil {
			slog.Warn("failed to load satellite catalog, using built-in set",
				"path", cfg.Server.CatalogPath, "err", err)
		} else {
			entries = loaded
		}
	}

	st := store.New(entries)
	model := orbit.NewKepler(time.Now().UTC())
	slog.Info("registry seeded", "satellites", st.Count())

	// Background position refresh loop.
	go scheduler.New(st, model, cfg.Server.RefreshInterval).Run(ctx)

	if cfg.Server.CatalogPath != "" {
		go func() {
			err := catalog.Watch(ctx, cfg.Server.CatalogPath, func(entries []catalog.Entry) {
				n := st.ApplyElements(entries)
				slog.Info("catalog reloaded", "updated", n)
			})
			if err != nil {
				slog.Error("catalog watcher stopped", "err", err)
			}
		}()
	}

	// WebSocket hub - broadcasts position snapshots to UI clients.
	hub := ws.New(st, cfg.Server.StreamInterval)
	go hub.Run(ctx)

	// Frontend assets: a dist directory next to the binary (or the configured
	// one) takes precedence over the compiled-in bundle.
	distDir := cfg.Server.FrontendDistDir
	if distDir == "" {
		if exe, err := os.Executable(); err == nil {
			distDir = filepath.Join(filepath.Dir(exe), "dist")
		}
	}
	resolver := assets.NewResolver(distDir, assets.Bundle())

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(st, hub, resolver),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		slog.Error("failed to listen", "addr", srv.Addr, "err", err)
		os.Exit(1)
	}

	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "err", err)
		}
	}()

	if cfg.Server.OpenBrowser {
		url := fmt.Sprintf("http://%s", cfg.Server.Addr())
		go func() {
			// Give the server a beat to come up before the tab loads.
			time.Sleep(500 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				slog.Warn("failed to open browser", "url", url, "err", err)
			}
		}()
	}

	<-ctx.Done()
	slog.Info("orbitalos-server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx) //nolint:errcheck
}
