package main

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/YuminosukeSato/pimastat/internal/testutil"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/youta-t/flarc"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1/3", 1.0 / 3, false},
		{" 1 / 4 ", 0.25, false},
		{"0.25", 0.25, false},
		{"1", 1, false},
		{"1/0", 0, true},
		{"third", 0, true},
		{"a/b", 0, true},
	}
	for _, tt := range tests {
		got, err := parseRatio(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRatio(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("parseRatio(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pimastat.yaml")
	if err := os.WriteFile(path, []byte("file: /data/a.csv\nrandom_state: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(Flags{Config: path, TestRatio: "1/4", Timeout: time.Second})
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}
	if cfg.File != "/data/a.csv" || cfg.RandomState != 9 {
		t.Errorf("config file values not applied: %+v", cfg)
	}
	if cfg.TestRatio != 0.25 || cfg.Timeout != time.Second {
		t.Errorf("flag overrides not applied: %+v", cfg)
	}

	cfg, err = resolveConfig(Flags{Config: path, URL: "http://example.invalid/x.csv", Seed: "3"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.File != "" || cfg.URL != "http://example.invalid/x.csv" || cfg.RandomState != 3 {
		t.Errorf("--url should replace the configured file: %+v", cfg)
	}

	if _, err := resolveConfig(Flags{TestRatio: "x"}); !errors.Is(err, flarc.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
	if _, err := resolveConfig(Flags{Head: -1}); !errors.Is(err, flarc.ErrUsage) {
		t.Errorf("--head -1: expected usage error, got %v", err)
	}
	if _, err := resolveConfig(Flags{Seed: "abc"}); !errors.Is(err, flarc.ErrUsage) {
		t.Errorf("--seed abc: expected usage error, got %v", err)
	}

	cfg, err = resolveConfig(Flags{Config: path, Seed: "0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RandomState != 0 {
		t.Errorf("--seed 0 not applied: RandomState = %d", cfg.RandomState)
	}
	var ir *errors.InvalidRatioError
	if _, err := resolveConfig(Flags{TestRatio: "3/2"}); !errors.As(err, &ir) {
		t.Errorf("expected InvalidRatioError, got %v", err)
	}
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(testutil.PimaCSV(99, 4))
	}))
	t.Cleanup(srv.Close)

	plotPath := filepath.Join(t.TempDir(), "outcome.svg")
	flags := Flags{URL: srv.URL, TestRatio: "1/3", Head: 3, Plot: plotPath}
	cfg, err := resolveConfig(flags)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), &out, cfg, flags); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, want := range []string{
		"Pima Indian Diabetes Dataset",
		"Stats for each feature",
		"Glucose",
		"Training instances (66 rows)",
		"Testing instances (33 rows)",
		"Stats for target variable",
		"Non-diabetic",
		"66.67%",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	svg, err := os.ReadFile(plotPath)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("plot is not an SVG document")
	}
}
