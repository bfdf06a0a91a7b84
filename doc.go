// Package pimastat loads the Pima Indians Diabetes dataset and reports on it:
// per-feature statistics, a reproducible train/test partition and the class
// distribution of the outcome.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/pimastat/analysis"
//	    "github.com/YuminosukeSato/pimastat/dataset"
//	    "github.com/YuminosukeSato/pimastat/describe"
//	)
//
//	func main() {
//	    loader := dataset.SharedLoader(
//	        dataset.URLSource{URL: dataset.DefaultURL},
//	        dataset.ColumnNames(),
//	        dataset.WithLabelRecoder(dataset.TargetColumn, dataset.DiabetesLabel),
//	    )
//	    p := analysis.NewStandardProcessor("Pima Indian Diabetes Dataset", loader)
//	    if err := p.Load(context.Background()); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    stats, err := p.FeatureStats()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    describe.WriteFeatureStats(os.Stdout, stats)
//	}
//
// # Packages
//
//   - dataset: sources, loading with column-count validation, records, target split, shared loader
//   - selection: seeded train/test partition
//   - describe: feature statistics, class distribution, text and chart output
//   - analysis: the Processor contract and StandardProcessor
//   - config: YAML run parameters
//   - core/model: load-state tracking
//   - pkg/errors: structured error kinds and warnings
//   - pkg/log: structured logging
//
// The cmd/pimastat binary runs the whole workflow from the command line.
package pimastat
