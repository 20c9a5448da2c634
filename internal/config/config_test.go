package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

// clearEnv blanks the override variables so ambient environment cannot leak
// into assertions about defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "FRONTEND_DIST_DIR", "OPEN_BROWSER", "CATALOG_PATH", "REFRESH_INTERVAL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("host: got %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("port: got %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("refresh_interval: got %v, want %v", cfg.Server.RefreshInterval, DefaultRefreshInterval)
	}
	if cfg.Server.StreamInterval != DefaultStreamInterval {
		t.Errorf("stream_interval: got %v, want %v", cfg.Server.StreamInterval, DefaultStreamInterval)
	}
}

func TestLoad_FullFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `server:
  host: 0.0.0.0
  port: 9090
  frontend_dist_dir: /srv/dist
  open_browser: true
  catalog_path: /etc/orbitalos/satellites.yaml
  refresh_interval: 10s
  stream_interval: 2s
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("addr: got %s, want 0.0.0.0:9090", cfg.Server.Addr())
	}
	if !cfg.Server.OpenBrowser {
		t.Error("open_browser: got false, want true")
	}
	if cfg.Server.CatalogPath != "/etc/orbitalos/satellites.yaml" {
		t.Errorf("catalog_path: got %q", cfg.Server.CatalogPath)
	}
	if cfg.Server.RefreshInterval != 10*time.Second {
		t.Errorf("refresh_interval: got %v, want 10s", cfg.Server.RefreshInterval)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, ":\n  - [")
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected error for invalid yaml")
	}
}

func TestLoad_RejectsOutOfRangePort(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "server:\n  port: 70000\n")
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected validation error for port 70000")
	}
}

func TestLoad_RejectsNonPositiveInterval(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "server:\n  refresh_interval: -5s\n")
	if _, err := Load(p); err == nil {
		t.Fatal("Load: expected validation error for negative refresh_interval")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("OPEN_BROWSER", "true")
	t.Setenv("REFRESH_INTERVAL", "45s")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:9000" {
		t.Errorf("addr: got %s, want 0.0.0.0:9000", cfg.Server.Addr())
	}
	if !cfg.Server.OpenBrowser {
		t.Error("OPEN_BROWSER=true not applied")
	}
	if cfg.Server.RefreshInterval != 45*time.Second {
		t.Errorf("refresh_interval: got %v, want 45s", cfg.Server.RefreshInterval)
	}
}

func TestLoad_InvalidEnvFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")
	t.Setenv("OPEN_BROWSER", "maybe")
	t.Setenv("REFRESH_INTERVAL", "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("port: got %d, want default %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.OpenBrowser {
		t.Error("open_browser: invalid env value was applied")
	}
	if cfg.Server.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("refresh_interval: got %v, want default", cfg.Server.RefreshInterval)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("PORT", "9091")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9091 {
		t.Errorf("port: got %d, want env override 9091", cfg.Server.Port)
	}
}
