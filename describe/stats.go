// Package describe computes descriptive statistics of a loaded dataset: mean
// and standard deviation per feature, and the class distribution of the
// target column.
package describe

import (
	"fmt"

	"github.com/YuminosukeSato/pimastat/dataset"
	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FeatureStat は1つの数値列の要約統計量です。
type FeatureStat struct {
	// Name は列名
	Name string

	// Count は行数
	Count int

	// Mean は算術平均
	Mean float64

	// Std は標本標準偏差 (n-1 で割る)
	Std float64
}

// FeatureStats は数値列ごとに平均と標本標準偏差を計算します。
// 数値でない列は ExcludedColumnWarning を出して除外します。
// 結果に NaN や Inf が含まれる場合は NumericalInstabilityError を返します。
//
// 使用例:
//
//	X, _, _ := dataset.SplitTarget(table, dataset.TargetColumn)
//	stats, err := describe.FeatureStats(X)
func FeatureStats(table *dataset.Table) ([]FeatureStat, error) {
	for _, c := range table.Columns() {
		if !c.IsNumeric() {
			errors.Warn(errors.NewExcludedColumnWarning(c.Name(), c.Type()))
		}
	}

	m, names, err := table.Matrix()
	if err != nil {
		return nil, err
	}
	r, _ := m.Dims()

	stats := make([]FeatureStat, len(names))
	for j, name := range names {
		col := mat.Col(nil, j, m)
		mean, std := stat.MeanStdDev(col, nil)
		if err := errors.CheckNumericalStability("FeatureStats", name, mean, std); err != nil {
			return nil, err
		}
		stats[j] = FeatureStat{Name: name, Count: r, Mean: mean, Std: std}
	}
	return stats, nil
}

// ColumnMean returns the arithmetic mean of a numeric column.
func ColumnMean(table *dataset.Table, name string) (float64, error) {
	c, err := table.Column(name)
	if err != nil {
		return 0, err
	}
	if !c.IsNumeric() {
		return 0, errors.NewValueError("ColumnMean", fmt.Sprintf("column '%s' of type %s is not numeric", name, c.Type()))
	}
	if c.Len() == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "ColumnMean")
	}
	mean := stat.Mean(c.Float(), nil)
	if err := errors.CheckNumericalStability("ColumnMean", name, mean); err != nil {
		return 0, err
	}
	return mean, nil
}
