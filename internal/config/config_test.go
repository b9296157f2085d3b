package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "antikythera.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[observer]
latitude = 48.8566
longitude = 2.3522

[time]
start = "2024-03-20T21:00:00Z"
rate = 60

[log]
level = "debug"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Observer.LatitudeDeg != 48.8566 {
		t.Errorf("latitude = %v, want 48.8566", c.Observer.LatitudeDeg)
	}
	if math.Abs(c.LatRad()-48.8566*math.Pi/180) > 1e-12 {
		t.Errorf("LatRad() = %v", c.LatRad())
	}
	if c.Time.Rate != 60 {
		t.Errorf("rate = %v, want 60", c.Time.Rate)
	}
	if c.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", c.Log.Level)
	}

	want := time.Date(2024, 3, 20, 21, 0, 0, 0, time.UTC)
	if got := c.StartTime(); !got.Equal(want) {
		t.Errorf("StartTime() = %v, want %v", got, want)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[observer]
latitude = -33.9
longitude = 18.4
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Time.Rate != 1 {
		t.Errorf("rate = %v, want default 1", c.Time.Rate)
	}
	if c.Log.Level != "info" {
		t.Errorf("log level = %q, want default info", c.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"latitude out of range", "[observer]\nlatitude = 91.0\n"},
		{"zero rate", "[time]\nrate = 0.0\n"},
		{"bad start", "[time]\nstart = \"yesterday\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() accepted invalid config")
			}
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !c.StartTime().After(time.Now().Add(-time.Minute)) {
		t.Error("empty start should resolve to roughly now")
	}
}

func TestLoadCatalogs(t *testing.T) {
	var c Config

	stars, err := c.LoadStars()
	if err != nil {
		t.Fatalf("LoadStars() error: %v", err)
	}
	if len(stars) == 0 {
		t.Error("empty path should yield the embedded star catalog")
	}

	starPath := filepath.Join(t.TempDir(), "stars.dat")
	if err := os.WriteFile(starPath, []byte("1.0 0.5 2.5 Test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.Catalog.Stars = starPath
	stars, err = c.LoadStars()
	if err != nil {
		t.Fatalf("LoadStars() error: %v", err)
	}
	if len(stars) != 1 || stars[0].Name != "Test" {
		t.Errorf("LoadStars() = %+v", stars)
	}

	c.Catalog.Planets = filepath.Join(t.TempDir(), "missing.dat")
	if _, err := c.LoadPlanets(); err == nil {
		t.Error("LoadPlanets() with a missing file should fail")
	}
}
