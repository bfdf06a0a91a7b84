// Package analysis defines the dataset processor contract and its standard
// implementation, which chains loading, target split, partitioning and
// descriptive statistics.
package analysis

import (
	"context"
	"sync"

	"github.com/YuminosukeSato/pimastat/core/model"
	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/describe"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/YuminosukeSato/pimastat/pkg/log"
	"github.com/YuminosukeSato/pimastat/selection"
)

// Processor は読み込んだデータセットに対する4つの操作を定義するインターフェースです。
// Load 以外の操作は Load が成功するまで NotLoadedError を返します。
type Processor interface {
	// Load はデータセットを読み込み、特徴量と目的変数に分けます。
	Load(ctx context.Context) error

	// FeatureStats は特徴量ごとの平均と標準偏差を返します。
	FeatureStats() ([]describe.FeatureStat, error)

	// Split は訓練データとテストデータに分割します。
	Split(testRatio float64) (*selection.Partition, error)

	// TargetDistribution は目的変数のクラス分布を返します。
	TargetDistribution() (*describe.Distribution, error)
}

// StandardProcessor is the default Processor.
type StandardProcessor struct {
	state *model.StateManager

	name        string
	loader      dataset.TableLoader
	target      string
	randomState int64
	logger      log.Logger

	mu       sync.RWMutex
	table    *dataset.Table
	features *dataset.Table
	labels   *dataset.Column
}

// Option configures a StandardProcessor.
type Option func(*StandardProcessor)

// WithTarget sets the target column. Defaults to dataset.TargetColumn.
func WithTarget(name string) Option {
	return func(p *StandardProcessor) {
		p.target = name
	}
}

// WithRandomState sets the partition seed. Defaults to selection.DefaultRandomState.
func WithRandomState(seed int64) Option {
	return func(p *StandardProcessor) {
		p.randomState = seed
	}
}

// WithLogger sets the logger. Defaults to log.GetLogger().
func WithLogger(logger log.Logger) Option {
	return func(p *StandardProcessor) {
		p.logger = logger
	}
}

// NewStandardProcessor creates a processor named name that reads its table
// from loader.
//
// 使用例:
//
//	loader := dataset.SharedLoader(dataset.URLSource{URL: dataset.DefaultURL}, dataset.ColumnNames())
//	p := analysis.NewStandardProcessor("Pima Indian Diabetes Dataset", loader)
//	if err := p.Load(ctx); err != nil {
//	    return err
//	}
//	stats, err := p.FeatureStats()
func NewStandardProcessor(name string, loader dataset.TableLoader, opts ...Option) *StandardProcessor {
	p := &StandardProcessor{
		state:       model.NewStateManager(),
		name:        name,
		loader:      loader,
		target:      dataset.TargetColumn,
		randomState: selection.DefaultRandomState,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = log.GetLogger()
	}
	p.logger = p.logger.With(log.DatasetNameKey, name, log.ComponentKey, "analysis")
	return p
}

// Name returns the processor name.
func (p *StandardProcessor) Name() string { return p.name }

// State returns a snapshot of the load state.
func (p *StandardProcessor) State() model.State { return p.state.GetState() }

// Table returns the loaded table, or nil before a successful Load.
func (p *StandardProcessor) Table() *dataset.Table {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table
}

// Load reads the table and splits off the target column. A failed Load
// leaves the processor in the not-loaded state, discarding any table from an
// earlier successful Load.
func (p *StandardProcessor) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logger.Info("Loading data", log.OperationKey, log.OperationLoad)
	table, err := p.loader.Load(ctx)
	if err == nil {
		var X *dataset.Table
		var y *dataset.Column
		if X, y, err = dataset.SplitTarget(table, p.target); err == nil {
			p.table, p.features, p.labels = table, X, y
			p.state.SetLoaded(X.Ncol(), X.Nrow())
			p.logger.Info("Data loaded", log.SamplesKey, X.Nrow(), log.FeaturesKey, X.Ncol(), log.TargetKey, p.target)
			return nil
		}
	}

	p.table, p.features, p.labels = nil, nil, nil
	p.state.Reset()
	p.logger.Error("Failed to load data", log.ErrAttrKey, err)
	return err
}

func (p *StandardProcessor) loaded(method string) error {
	if !p.state.IsLoaded() {
		return errors.NewNotLoadedError("StandardProcessor", method)
	}
	return nil
}

// FeatureStats returns mean and sample standard deviation of every numeric
// feature.
func (p *StandardProcessor) FeatureStats() ([]describe.FeatureStat, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := p.loaded("FeatureStats"); err != nil {
		return nil, err
	}
	p.logger.Debug("Computing stats per feature", log.OperationKey, log.OperationDescribe)
	return describe.FeatureStats(p.features)
}

// Split partitions the loaded rows. The test set of the returned partition is
// the complement of the training rows against the full loaded table.
func (p *StandardProcessor) Split(testRatio float64) (*selection.Partition, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := p.loaded("Split"); err != nil {
		return nil, err
	}
	return selection.TrainTestSplit(p.features, p.labels, testRatio,
		selection.WithSource(p.table),
		selection.WithRandomState(p.randomState),
		selection.WithLogger(p.logger),
	)
}

// TargetDistribution counts the values of the target column.
func (p *StandardProcessor) TargetDistribution() (*describe.Distribution, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := p.loaded("TargetDistribution"); err != nil {
		return nil, err
	}
	p.logger.Debug("Computing target distribution", log.OperationKey, log.OperationDistribution)
	return describe.ClassDistribution(p.labels)
}

var _ Processor = (*StandardProcessor)(nil)
