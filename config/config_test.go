package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
	if len(c.Columns) != 9 || c.Columns[8] != "Outcome" {
		t.Errorf("Columns = %v", c.Columns)
	}
	if c.RandomState != 25031821 {
		t.Errorf("RandomState = %d", c.RandomState)
	}
	if c.TestRatio != 1.0/3 {
		t.Errorf("TestRatio = %v", c.TestRatio)
	}
	if c.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", c.Timeout)
	}
	src, ok := c.Source().(dataset.URLSource)
	if !ok || src.URL != dataset.DefaultURL {
		t.Errorf("Source() = %#v", c.Source())
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
file: /data/pima.csv
test_ratio: 0.25
random_state: 42
timeout: 5s
log_level: debug
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Default()
	want.File = "/data/pima.csv"
	want.TestRatio = 0.25
	want.RandomState = 42
	want.Timeout = 5 * time.Second
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(dataset.Source(dataset.FileSource{Path: "/data/pima.csv"}), c.Source()); diff != "" {
		t.Errorf("Source() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, err error)
	}{
		{
			name: "ratio out of range",
			yaml: "test_ratio: 1.5",
			check: func(t *testing.T, err error) {
				var ir *errors.InvalidRatioError
				if !errors.As(err, &ir) {
					t.Errorf("expected InvalidRatioError, got %v", err)
				}
			},
		},
		{
			name: "target not in columns",
			yaml: "target: Label",
			check: func(t *testing.T, err error) {
				var uc *errors.UnknownColumnError
				if !errors.As(err, &uc) {
					t.Errorf("expected UnknownColumnError, got %v", err)
				}
			},
		},
		{
			name: "no source",
			yaml: `url: ""`,
			check: func(t *testing.T, err error) {
				var ve *errors.ValueError
				if !errors.As(err, &ve) {
					t.Errorf("expected ValueError, got %v", err)
				}
			},
		},
		{
			name: "bad log level",
			yaml: "log_level: loud",
			check: func(t *testing.T, err error) {
				var ve *errors.ValueError
				if !errors.As(err, &ve) {
					t.Errorf("expected ValueError, got %v", err)
				}
			},
		},
		{
			name: "malformed yaml",
			yaml: "columns: [a, b",
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Error("expected decode error")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if c != nil {
				t.Error("expected nil config on error")
			}
			tt.check(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pimastat.yaml")
	if err := os.WriteFile(path, []byte("cache_file: diabetes.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.CacheFile != "diabetes.csv" {
		t.Errorf("CacheFile = %q", c.CacheFile)
	}
	if got := len(c.LoadOptions()); got != 2 {
		t.Errorf("LoadOptions() has %d entries, want 2", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Default().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse of marshalled default failed: %v", err)
	}
	if diff := cmp.Diff(Default(), back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
