package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/YuminosukeSato/pimastat/analysis"
	"github.com/YuminosukeSato/pimastat/config"
	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/describe"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/YuminosukeSato/pimastat/pkg/log"
	"github.com/youta-t/flarc"
)

// Flags override the config file. Zero values keep the configured value.
type Flags struct {
	Config    string        `flag:"config" help:"YAML config file. Defaults are used when omitted."`
	URL       string        `flag:"url" help:"CSV URL to fetch."`
	File      string        `flag:"file" help:"Local CSV file, read instead of the URL."`
	CacheFile string        `flag:"cache-file" help:"Save the fetched CSV to this path and read it back."`
	TestRatio string        `flag:"test-ratio" help:"Share of rows held out for testing, as a fraction (1/3) or decimal (0.25)."`
	Seed      string        `flag:"seed" help:"Shuffle seed of the train/test partition. Any integer, 0 included."`
	Timeout   time.Duration `flag:"timeout" help:"Timeout of the HTTP fetch."`
	LogLevel  string        `flag:"log-level" help:"debug, info, warn or error."`
	Head      int           `flag:"head" help:"Rows shown for each table preview."`
	Plot      string        `flag:"plot" help:"Write a bar chart of the target distribution to this file (.png, .svg, .pdf)."`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	cmd, err := flarc.NewCommand(
		"Load the Pima Indians Diabetes dataset and report feature statistics, a train/test partition and the class distribution.",
		Flags{Head: 5},
		flarc.Args{},
		func(ctx context.Context, c flarc.Commandline[Flags], _ []any) error {
			cfg, err := resolveConfig(c.Flags())
			if err != nil {
				return err
			}
			if _, err := log.SetupLogger(cfg.LogLevel); err != nil {
				return err
			}
			return run(ctx, c.Stdout(), cfg, c.Flags())
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(flarc.Run(ctx, cmd))
}

// resolveConfig reads the config file, applies flag overrides and validates.
func resolveConfig(flags Flags) (*config.Config, error) {
	cfg := config.Default()
	if flags.Config != "" {
		var err error
		if cfg, err = config.Load(flags.Config); err != nil {
			return nil, err
		}
	}

	if flags.URL != "" {
		cfg.URL = flags.URL
		cfg.File = ""
	}
	if flags.File != "" {
		cfg.File = flags.File
	}
	if flags.CacheFile != "" {
		cfg.CacheFile = flags.CacheFile
	}
	if flags.TestRatio != "" {
		ratio, err := parseRatio(flags.TestRatio)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", flarc.ErrUsage, err)
		}
		cfg.TestRatio = ratio
	}
	if flags.Seed != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(flags.Seed), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid seed %q", flarc.ErrUsage, flags.Seed)
		}
		cfg.RandomState = seed
	}
	if flags.Timeout != 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.Head < 0 {
		return nil, fmt.Errorf("%w: --head must not be negative, got %d", flarc.ErrUsage, flags.Head)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseRatio accepts "n/d" or a decimal.
func parseRatio(s string) (float64, error) {
	num, den, isFrac := strings.Cut(s, "/")
	if !isFrac {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, errors.NewValueError("parseRatio", fmt.Sprintf("invalid ratio %q", s))
		}
		return v, nil
	}
	n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
	d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, errors.NewValueError("parseRatio", fmt.Sprintf("invalid ratio %q", s))
	}
	return n / d, nil
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, flags Flags) error {
	logger := log.GetLogger().With(log.DatasetNameKey, cfg.Name)

	loader := dataset.SharedLoader(cfg.Source(), cfg.Columns, cfg.LoadOptions()...)
	p := analysis.NewStandardProcessor(cfg.Name, loader,
		analysis.WithTarget(cfg.Target),
		analysis.WithRandomState(cfg.RandomState),
		analysis.WithLogger(logger),
	)
	if err := p.Load(ctx); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n\n", cfg.Name)
	if err := describe.WriteHead(w, "Dataset", p.Table(), flags.Head); err != nil {
		return err
	}

	stats, err := p.FeatureStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nStats for each feature")
	if err := describe.WriteFeatureStats(w, stats); err != nil {
		return err
	}

	part, err := p.Split(cfg.TestRatio)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nSplitting into training & testing, with test ratio=%.3f\n", cfg.TestRatio)
	if err := describe.WriteHead(w, "Training instances", part.TrainFeatures, flags.Head); err != nil {
		return err
	}
	if err := describe.WriteHead(w, "Testing instances", part.TestComplement, flags.Head); err != nil {
		return err
	}

	dist, err := p.TargetDistribution()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nStats for target variable")
	if err := describe.WriteDistribution(w, dist); err != nil {
		return err
	}

	if flags.Plot != "" {
		if err := writePlot(flags.Plot, dist); err != nil {
			return err
		}
		logger.Info("Plot written", log.OperationKey, log.OperationPlot, "path", flags.Plot)
	}
	return nil
}

func writePlot(path string, dist *describe.Distribution) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return describe.PlotClassDistribution(dist, f, format)
}
