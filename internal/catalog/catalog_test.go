package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "satellites.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return p
}

const validCatalog = `satellites:
  - id: iss
    name: ISS (ZARYA)
    orbit:
      altitude_km: 420
      inclination_deg: 51.6
      raan_deg: 120
  - id: noaa-19
    name: NOAA-19
    orbit:
      altitude_km: 870
      inclination_deg: 98.7
      phase_deg: 90
`

func TestDefault_ValidAndUnique(t *testing.T) {
	entries := Default()
	if len(entries) == 0 {
		t.Fatal("Default: empty seed set")
	}
	seen := map[string]struct{}{}
	for _, e := range entries {
		if e.ID == "" || e.Name == "" {
			t.Errorf("entry %+v missing id or name", e)
		}
		if _, dup := seen[e.ID]; dup {
			t.Errorf("duplicate id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
		if err := e.Elements.Validate(); err != nil {
			t.Errorf("seed %q: %v", e.ID, err)
		}
	}
}

func TestLoadFile_Valid(t *testing.T) {
	p := writeCatalog(t, validCatalog)
	entries, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].ID != "iss" {
		t.Errorf("entries[0].ID: got %q, want iss", entries[0].ID)
	}
	if entries[1].Elements.PhaseDeg != 90 {
		t.Errorf("noaa-19 phase: got %.1f, want 90", entries[1].Elements.PhaseDeg)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadFile on missing file: expected error")
	}
}

func TestLoadFile_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"invalid yaml", ":\n  - ["},
		{"no satellites", "satellites: []\n"},
		{"missing id", "satellites:\n  - name: X\n    orbit: {altitude_km: 400}\n"},
		{"duplicate id", "satellites:\n  - {id: a, orbit: {altitude_km: 400}}\n  - {id: a, orbit: {altitude_km: 500}}\n"},
		{"invalid elements", "satellites:\n  - {id: a, orbit: {altitude_km: -400}}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeCatalog(t, tc.content)
			if _, err := LoadFile(p); err == nil {
				t.Errorf("LoadFile: expected error for %s", tc.name)
			}
		})
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	p := writeCatalog(t, validCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan []Entry, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, p, func(entries []Entry) { got <- entries })
	}()

	// Give the watcher a beat to register before writing.
	time.Sleep(50 * time.Millisecond)

	updated := `satellites:
  - id: iss
    name: ISS (ZARYA)
    orbit:
      altitude_km: 418
      inclination_deg: 51.6
`
	if err := os.WriteFile(p, []byte(updated), 0o600); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	select {
	case entries := <-got:
		if len(entries) != 1 || entries[0].Elements.AltitudeKm != 418 {
			t.Errorf("reload: got %+v, want single iss at 418km", entries)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Watch: no reload within 3s")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatch_KeepsPreviousOnBadReload(t *testing.T) {
	p := writeCatalog(t, validCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan []Entry, 4)
	go func() { _ = Watch(ctx, p, func(entries []Entry) { got <- entries }) }()
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(p, []byte(":\n  - ["), 0o600); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	select {
	case entries := <-got:
		t.Fatalf("onChange fired for invalid catalog: %+v", entries)
	case <-time.After(300 * time.Millisecond):
		// expected: invalid content never reaches onChange
	}
}
