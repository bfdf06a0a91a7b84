// Package selection partitions a feature table and its target into training
// and testing subsets.
package selection

import (
	"math"
	"math/rand"
	"slices"

	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/YuminosukeSato/pimastat/pkg/log"
)

// DefaultRandomState is the seed used when none is given.
const DefaultRandomState int64 = 25031821

// Partition is the result of TrainTestSplit.
//
// Two test sets are exposed. NominalTest* hold the rows the shuffle held out,
// in shuffled order. TestComplement holds every row of the source table that
// was not drawn for training, in source order and with the target column
// still attached; TestFeatures and TestTarget are its feature/target views.
// Both test sets contain the same rows.
type Partition struct {
	// TrainIndices are source row indices in shuffled order.
	TrainIndices []int
	// TestIndices are the nominal held-out row indices in shuffled order.
	TestIndices []int

	TrainFeatures *dataset.Table
	TrainTarget   *dataset.Column

	NominalTestFeatures *dataset.Table
	NominalTestTarget   *dataset.Column

	TestComplement *dataset.Table
	TestFeatures   *dataset.Table
	TestTarget     *dataset.Column

	TestRatio   float64
	RandomState int64
}

// ComplementIndices returns the source row indices not used for training,
// ascending.
func (p *Partition) ComplementIndices() []int {
	idx := slices.Clone(p.TestIndices)
	slices.Sort(idx)
	return idx
}

// SplitOption configures TrainTestSplit.
type SplitOption func(*splitConfig)

type splitConfig struct {
	randomState int64
	source      *dataset.Table
	logger      log.Logger
}

// WithRandomState sets the shuffle seed.
func WithRandomState(seed int64) SplitOption {
	return func(c *splitConfig) {
		c.randomState = seed
	}
}

// WithSource sets the full table the test complement is taken from. It must
// be row-aligned with the features. When omitted the features with the target
// appended are used.
func WithSource(table *dataset.Table) SplitOption {
	return func(c *splitConfig) {
		c.source = table
	}
}

// WithLogger sets the logger. Defaults to log.GetLogger().
func WithLogger(logger log.Logger) SplitOption {
	return func(c *splitConfig) {
		c.logger = logger
	}
}

// TestSize returns the nominal number of held-out rows, round(testRatio*n).
func TestSize(n int, testRatio float64) int {
	return int(math.Round(testRatio * float64(n)))
}

// TrainTestSplit shuffles row indices with a seeded generator, holds out
// TestSize(n, testRatio) rows and trains on the rest. testRatio must be in
// (0, 1]. The same inputs and seed always give the same partition.
//
// 使用例:
//
//	X, y, _ := dataset.SplitTarget(table, dataset.TargetColumn)
//	p, err := selection.TrainTestSplit(X, y, 1.0/3, selection.WithSource(table))
func TrainTestSplit(features *dataset.Table, target *dataset.Column, testRatio float64, opts ...SplitOption) (*Partition, error) {
	if !(testRatio > 0 && testRatio <= 1) {
		return nil, errors.NewInvalidRatioError(testRatio)
	}
	cfg := splitConfig{randomState: DefaultRandomState}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}
	logger := cfg.logger.With(log.ComponentKey, "selection", log.OperationKey, log.OperationSplit)

	n := features.Nrow()
	if target.Len() != n {
		return nil, errors.NewLengthMismatchError("TrainTestSplit", n, target.Len())
	}
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "TrainTestSplit")
	}
	source := cfg.source
	if source == nil {
		var err error
		if source, err = features.WithColumn(target); err != nil {
			return nil, err
		}
	}
	if source.Nrow() != n {
		return nil, errors.NewLengthMismatchError("TrainTestSplit.source", n, source.Nrow())
	}

	perm := rand.New(rand.NewSource(cfg.randomState)).Perm(n)
	nTest := TestSize(n, testRatio)
	p := &Partition{
		TestIndices:  perm[:nTest],
		TrainIndices: perm[nTest:],
		TestRatio:    testRatio,
		RandomState:  cfg.randomState,
	}

	var err error
	if p.TrainFeatures, err = features.Subset(p.TrainIndices); err != nil {
		return nil, err
	}
	if p.TrainTarget, err = target.Subset(p.TrainIndices); err != nil {
		return nil, err
	}
	if p.NominalTestFeatures, err = features.Subset(p.TestIndices); err != nil {
		return nil, err
	}
	if p.NominalTestTarget, err = target.Subset(p.TestIndices); err != nil {
		return nil, err
	}
	if p.TestComplement, err = source.Subset(complement(n, p.TrainIndices)); err != nil {
		return nil, err
	}
	if p.TestFeatures, err = p.TestComplement.Select(features.Names()...); err != nil {
		return nil, err
	}
	if p.TestTarget, err = p.TestComplement.Column(target.Name()); err != nil {
		return nil, err
	}

	if len(p.TrainIndices) == 0 {
		errors.Warn(errors.NewEmptyPartitionWarning("train", testRatio, n))
	}
	if len(p.TestIndices) == 0 {
		errors.Warn(errors.NewEmptyPartitionWarning("test", testRatio, n))
	}

	logger.Info("Partition computed",
		log.TestRatioKey, testRatio,
		log.RandomSeedKey, cfg.randomState,
		log.SamplesKey, n,
		log.TrainSizeKey, len(p.TrainIndices),
		log.TestSizeKey, p.TestComplement.Nrow(),
	)
	return p, nil
}

// complement returns the indices in [0, n) that are not in used, ascending.
func complement(n int, used []int) []int {
	taken := make([]bool, n)
	for _, i := range used {
		taken[i] = true
	}
	out := make([]int, 0, n-len(used))
	for i := 0; i < n; i++ {
		if !taken[i] {
			out = append(out, i)
		}
	}
	return out
}
