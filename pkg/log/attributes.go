// This file contains predefined attribute keys. Using the same keys in every
// package keeps the logs of a run filterable by dataset, operation and shape.
//
// Keys follow a hierarchical naming convention ("data.samples",
// "split.test_ratio") to enable structured log analysis.

package log

// Dataset and operation context.
const (
	// DatasetNameKey identifies the dataset a processor works on.
	// Example: "Pima Indian Diabetes Dataset"
	DatasetNameKey = "dataset.name"

	// SourceKey is the URL or file path a table was loaded from.
	SourceKey = "dataset.source"

	// OperationKey specifies the operation being performed.
	// Standard values: "load", "split", "describe", "distribution"
	OperationKey = "op.name"

	// ComponentKey identifies which package is logging.
	// Examples: "dataset", "selection", "describe", "analysis"
	ComponentKey = "op.component"
)

// Data shape.
const (
	// SamplesKey indicates the number of rows in a table.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns.
	FeaturesKey = "data.features"

	// ColumnKey names a single column.
	ColumnKey = "data.column"

	// TargetKey names the target column.
	TargetKey = "data.target"
)

// Partitioning.
const (
	// TestRatioKey records the requested held-out fraction.
	TestRatioKey = "split.test_ratio"

	// TrainSizeKey records the number of training rows.
	TrainSizeKey = "split.train_size"

	// TestSizeKey records the number of test rows.
	TestSizeKey = "split.test_size"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Performance and errors.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// BytesKey records the size of a fetched payload.
	BytesKey = "perf.bytes"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationLoad         = "load"
	OperationSplit        = "split"
	OperationDescribe     = "describe"
	OperationDistribution = "distribution"
	OperationPlot         = "plot"
)
