package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orbitalos/orbitalos/internal/orbit"
)

// Entry is one tracked satellite: a stable identifier, a display name and the
// orbital elements the position model propagates.
type Entry struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Elements orbit.Elements `yaml:"orbit"`
}

// file is the YAML catalog document shape.
type file struct {
	Satellites []Entry `yaml:"satellites"`
}

// Default returns the built-in seed set. IDs are stable across restarts;
// phases are staggered so the seed constellation is spread around the globe.
func Default() []Entry {
	return []Entry{
		{
			ID:   "iss",
			Name: "ISS (ZARYA)",
			Elements: orbit.Elements{
				AltitudeKm: 420, InclinationDeg: 51.6, RAANDeg: 120, PhaseDeg: 0,
			},
		},
		{
			ID:   "hubble",
			Name: "Hubble Space Telescope",
			Elements: orbit.Elements{
				AltitudeKm: 540, InclinationDeg: 28.5, RAANDeg: 80, PhaseDeg: 45,
			},
		},
		{
			ID:   "noaa-19",
			Name: "NOAA-19",
			Elements: orbit.Elements{
				AltitudeKm: 870, InclinationDeg: 98.7, RAANDeg: 200, PhaseDeg: 90,
			},
		},
		{
			ID:   "starlink-3040",
			Name: "Starlink-3040",
			Elements: orbit.Elements{
				AltitudeKm: 550, InclinationDeg: 53.0, RAANDeg: 310, PhaseDeg: 180,
			},
		},
		{
			ID:   "gps-iif-12",
			Name: "GPS IIF-12",
			Elements: orbit.Elements{
				AltitudeKm: 20180, InclinationDeg: 55.0, RAANDeg: 25, PhaseDeg: 270,
			},
		},
		{
			ID:   "sentinel-2b",
			Name: "Sentinel-2B",
			Elements: orbit.Elements{
				AltitudeKm: 786, InclinationDeg: 98.6, RAANDeg: 160, PhaseDeg: 315,
			},
		},
	}
}

// LoadFile reads a YAML satellite catalog. Entries with missing IDs or
// invalid elements are rejected so a bad catalog never half-populates the
// registry.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}
	if len(f.Satellites) == 0 {
		return nil, fmt.Errorf("catalog: %q defines no satellites", path)
	}

	seen := make(map[string]struct{}, len(f.Satellites))
	for i, e := range f.Satellites {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog: entry %d has no id", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
		if err := e.Elements.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: satellite %q: %w", e.ID, err)
		}
	}

	return f.Satellites, nil
}
